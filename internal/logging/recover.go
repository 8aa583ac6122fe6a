package logging

import (
	"context"
	"fmt"
	"runtime/debug"
)

// Recover logs a recovered panic with its stack instead of crashing the
// process. Use it as `defer logging.Recover(ctx, "engine events")` at the
// top of long-lived goroutines.
func Recover(ctx context.Context, where string) {
	if r := recover(); r != nil {
		FromContext(ctx).Error().
			Str("where", where).
			Str("panic", fmt.Sprint(r)).
			Bytes("stack", debug.Stack()).
			Msg("recovered from panic")
	}
}
