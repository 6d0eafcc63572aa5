package log_test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/IvanBrykalov/pooledlist/log"
	"github.com/stretchr/testify/require"
)

func TestBackend(t *testing.T) {
	type levelName string
	const (
		TRACE    levelName = "Trace"
		DEBUG    levelName = "Debug"
		INFO     levelName = "Info"
		WARN     levelName = "Warn"
		ERROR    levelName = "Errorf"
		CRITICAL levelName = "Criticalf"
	)

	calls := map[levelName]*struct {
		called  bool
		message string
	}{
		TRACE:    {},
		DEBUG:    {},
		INFO:     {},
		WARN:     {},
		ERROR:    {},
		CRITICAL: {},
	}

	reset := func() {
		for _, c := range calls {
			c.called = false
			c.message = ""
		}
	}

	record := func(level levelName) func(string, ...any) {
		return func(format string, args ...any) {
			calls[level].called = true
			calls[level].message = fmt.Sprintf(format, args...)
		}
	}
	recordErr := func(level levelName) func(string, ...any) error {
		return func(format string, args ...any) error {
			// Deliberately drop the wrap chain: the package must not depend on
			// the backend preserving it.
			msg := fmt.Sprintf(format, args...)
			calls[level].called = true
			calls[level].message = msg
			return errors.New(msg)
		}
	}

	log.SetBackend(log.Backend{
		Trace:     record(TRACE),
		Debug:     record(DEBUG),
		Info:      record(INFO),
		Warn:      record(WARN),
		Errorf:    recordErr(ERROR),
		Criticalf: recordErr(CRITICAL),
	})
	t.Cleanup(func() { log.SetBackend(log.Backend{}) })

	for name, logger := range map[levelName]func(string, ...any){
		TRACE: log.Trace,
		DEBUG: log.Debug,
		INFO:  log.Info,
		WARN:  log.Warn,
	} {
		t.Run(string(name), func(t *testing.T) {
			defer reset()

			n := rand.Int()
			logger("%s %d", name, n)

			expected := fmt.Sprintf("%s %d", name, n)
			for level, c := range calls {
				if level == name {
					require.True(t, c.called)
					require.Equal(t, expected, c.message)
					continue
				}
				require.False(t, c.called, "level %s must not be called", level)
			}
		})
	}

	for name, logger := range map[levelName]func(string, ...any) error{
		ERROR:    log.Errorf,
		CRITICAL: log.Criticalf,
	} {
		t.Run(string(name), func(t *testing.T) {
			defer reset()

			cause := errors.New("cause")
			n := rand.Int()

			err := logger("%s %d: %w", name, n, cause)

			expected := fmt.Sprintf("%s %d: %v", name, n, cause)
			require.Equal(t, expected, err.Error())
			require.ErrorIs(t, err, cause)
			for level, c := range calls {
				if level == name {
					require.True(t, c.called)
					require.Equal(t, expected, c.message)
					continue
				}
				require.False(t, c.called, "level %s must not be called", level)
			}
		})
	}
}

func TestSetBackend_PartialFallsBack(t *testing.T) {
	var got string
	log.SetBackend(log.Backend{
		Info: func(format string, args ...any) { got = fmt.Sprintf(format, args...) },
	})
	t.Cleanup(func() { log.SetBackend(log.Backend{}) })

	log.Info("pool warmed with %d nodes", 64)
	require.Equal(t, "pool warmed with 64 nodes", got)

	// Unset levels use the default backend and must not panic.
	require.NotPanics(t, func() { log.Trace("trace %d", 1) })
}
