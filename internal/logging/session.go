package logging

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateSessionID creates a unique browse session identifier.
// Format: YYYYMMDD_HHMMSS_xxxxxxxx (timestamp + first uuid group)
// Example: 20251217_205106_a7b3c2d1
func GenerateSessionID() string {
	id := uuid.NewString()
	return time.Now().Format("20060102_150405") + "_" + id[:8]
}

// ShortSessionID extracts the random suffix from a full session ID.
// Example: "20251217_205106_a7b3c2d1" -> "a7b3c2d1"
func ShortSessionID(sessionID string) string {
	if i := strings.LastIndexByte(sessionID, '_'); i >= 0 {
		return sessionID[i+1:]
	}
	return sessionID
}

// SessionStartedAt parses the timestamp prefix of a session ID.
func SessionStartedAt(sessionID string) (time.Time, bool) {
	const layout = "20060102_150405"
	if len(sessionID) < len(layout) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(layout, sessionID[:len(layout)], time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
