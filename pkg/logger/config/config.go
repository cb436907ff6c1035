package config

import (
	"errors"
	"fmt"
)

// log levels, same ordering as zapcore.Level
const (
	DEBUG_LEVEL = iota - 1
	INFO_LEVEL
	WARN_LEVEL
	ERROR_LEVEL
	DPANIC_LEVEL
	PANIC_LEVEL
	FATAL_LEVEL
)

var ErrInvalidLogConfig = errors.New("invalid logger configuration")

type Configuration struct {
	Level      int
	TimeFormat string
}

func (c Configuration) Validate() error {
	if c.Level < DEBUG_LEVEL || c.Level > FATAL_LEVEL {
		return fmt.Errorf("%w: LOG_LEVEL %d out of range [%d, %d]", ErrInvalidLogConfig,
			c.Level, DEBUG_LEVEL, FATAL_LEVEL)
	}
	if c.TimeFormat == "" {
		return fmt.Errorf("%w: empty LOG_TIME_FORMAT", ErrInvalidLogConfig)
	}
	return nil
}
