package logger

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	once sync.Once
	log  zerolog.Logger
)

// Get returns the process logger. The first call decides the level; the
// debug argument of later calls is ignored.
func Get(debug ...bool) *zerolog.Logger {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339
		level := zerolog.InfoLevel
		if len(debug) > 0 && debug[0] {
			level = zerolog.DebugLevel
		}
		zerolog.SetGlobalLevel(level)
		if level == zerolog.DebugLevel {
			log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).
				With().Timestamp().Caller().Logger()
			return
		}
		log = zerolog.New(os.Stdout).With().Timestamp().Logger()
	})
	return &log
}
