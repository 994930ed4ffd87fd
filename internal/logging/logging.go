// Package logging builds the zap logger shared by every compiler phase and
// the evaluator, configured from internal/config rather than hardcoded —
// generalizing the teacher's internal/lsp.Server construction
// (zap.NewDevelopment, falling back to zap.NewNop on error) to respect a
// configurable level and output format.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/minipar-lang/minipar/internal/config"
)

// New builds a *zap.SugaredLogger from cfg. On any construction error it
// falls back to a no-op logger rather than failing the whole process —
// logging is diagnostic, never load-bearing.
func New(cfg config.LogConfig) *zap.SugaredLogger {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zcfg zap.Config
	switch cfg.Format {
	case "json":
		zcfg = zap.NewProductionConfig()
	default:
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zcfg.Build()
	if err != nil {
		fmt.Printf("warning: failed to build logger, falling back to no-op: %v\n", err)
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}
