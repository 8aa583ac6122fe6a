//go:build linux || darwin

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestCoreLimit_Raised(t *testing.T) {
	next, ok := coreLimit{soft: 0, hard: unix.RLIM_INFINITY}.raised()
	assert.True(t, ok)
	assert.Equal(t, coreLimit{soft: unix.RLIM_INFINITY, hard: unix.RLIM_INFINITY}, next)

	same, ok := coreLimit{soft: 4096, hard: 4096}.raised()
	assert.False(t, ok)
	assert.Equal(t, coreLimit{soft: 4096, hard: 4096}, same)
}

func TestCoreLimit_String(t *testing.T) {
	assert.Equal(t, "0/unlimited", coreLimit{soft: 0, hard: unix.RLIM_INFINITY}.String())
	assert.Equal(t, "4096/8192", coreLimit{soft: 4096, hard: 8192}.String())
}
