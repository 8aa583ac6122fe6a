//go:build !linux && !darwin

package main

import (
	"context"
	"runtime/debug"
)

func prepareCrashDumps(context.Context) {
	debug.SetTraceback("crash")
}
