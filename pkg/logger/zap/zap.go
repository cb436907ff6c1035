package zap

import (
	"github.com/lintang-b-s/klpartitioner/pkg/logger/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func New(cfg config.Configuration) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(zapcore.Level(cfg.Level))
	zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(cfg.TimeFormat)
	zapCfg.EncoderConfig.TimeKey = "time"
	zapCfg.DisableStacktrace = cfg.Level > config.DEBUG_LEVEL

	return zapCfg.Build()
}
