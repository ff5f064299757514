// Package logging configures the game's logrus logger. The terminal belongs
// to the game screen, so logs go to a size-rotated file.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// DefaultFile is the log file used when none is configured.
	DefaultFile = "campominato.log"
	// DefaultLevel is the log level used when none is configured.
	DefaultLevel = "info"

	maxSizeMB  = 5
	maxBackups = 3
)

// Config holds logging options.
type Config struct {
	File  string
	Level string
}

// New returns a logger writing text records to the configured file.
func New(cfg Config) (*logrus.Logger, error) {
	if cfg.File == "" {
		cfg.File = DefaultFile
	}
	return newWithWriter(cfg, &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
	})
}

func newWithWriter(cfg Config, w io.Writer) (*logrus.Logger, error) {
	if cfg.Level == "" {
		cfg.Level = DefaultLevel
	}
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	return log, nil
}
