//go:build linux || darwin

package main

import (
	"context"
	"runtime/debug"
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/bnema/pagehost/internal/logging"
)

// coreLimit is the RLIMIT_CORE pair. The Chromium processes go-rod spawns
// inherit it from pagehost.
type coreLimit struct {
	soft uint64
	hard uint64
}

// raised returns the limit with the soft value lifted to the hard one, and
// whether that changes anything.
func (l coreLimit) raised() (coreLimit, bool) {
	if l.soft >= l.hard {
		return l, false
	}
	return coreLimit{soft: l.hard, hard: l.hard}, true
}

func (l coreLimit) String() string {
	return rlimitText(l.soft) + "/" + rlimitText(l.hard)
}

func rlimitText(v uint64) string {
	if v == unix.RLIM_INFINITY {
		return "unlimited"
	}
	return strconv.FormatUint(v, 10)
}

// prepareCrashDumps makes a runtime crash dump all goroutines and allows
// core files up to the hard limit for pagehost and the browser it launches.
func prepareCrashDumps(ctx context.Context) {
	debug.SetTraceback("crash")
	log := logging.FromContext(ctx)

	var rl unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_CORE, &rl); err != nil {
		log.Debug().Err(err).Msg("core limit unavailable")
		return
	}

	limit := coreLimit{soft: rl.Cur, hard: rl.Max}
	if next, ok := limit.raised(); ok {
		rl.Cur = next.soft
		if err := unix.Setrlimit(unix.RLIMIT_CORE, &rl); err != nil {
			log.Debug().Err(err).Stringer("core_limit", limit).Msg("core limit left as is")
			return
		}
		limit = next
	}
	log.Debug().Stringer("core_limit", limit).Msg("crash dumps prepared")
}
