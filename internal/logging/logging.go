package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"poker-night/internal/config"
)

// Init configures the global zerolog logger. Reports go to stdout, so logs
// default to stderr and optionally to a capped file as well.
func Init(cfg config.LogConfig) error {
	level := zerolog.InfoLevel
	if v := strings.TrimSpace(cfg.Level); v != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(v)); err == nil {
			level = parsed
		}
	}

	var output io.Writer = os.Stderr
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	if path := strings.TrimSpace(cfg.File); path != "" {
		fw, err := newCappedFileWriter(path, cfg.MaxMB)
		if err != nil {
			return err
		}
		output = zerolog.MultiLevelWriter(output, fw)
	}

	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).With().Timestamp().Logger()
	if cfg.SampleEvery > 1 {
		logger = logger.Sample(&zerolog.BasicSampler{N: uint32(cfg.SampleEvery)})
	}
	log.Logger = logger
	return nil
}
