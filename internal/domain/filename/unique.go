// Package filename picks names for files written into user directories.
package filename

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// maxAttempts bounds the numbered candidates tried before falling back to a
// nanosecond suffix.
const maxAttempts = 1000

// Unique returns name, or name with a "_(N)" suffix before its extension,
// such that filepath.Join(dir, result) does not exist according to exists.
func Unique(dir, name string, exists func(path string) bool) string {
	if !exists(filepath.Join(dir, name)) {
		return name
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i < maxAttempts; i++ {
		candidate := fmt.Sprintf("%s_(%d)%s", base, i, ext)
		if !exists(filepath.Join(dir, candidate)) {
			return candidate
		}
	}
	return fmt.Sprintf("%s_%d%s", base, time.Now().UnixNano(), ext)
}
