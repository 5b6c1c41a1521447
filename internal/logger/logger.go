package logger

import (
	"fmt"

	"github.com/nikolayk812/storefront/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewLogger(conf *config.App) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(conf.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("zap.ParseAtomicLevel[%s]: %w", conf.LogLevel, err)
	}

	var cfg zap.Config
	if conf.Mode == config.AppModeDevelop {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = lvl

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("cfg.Build: %w", err)
	}

	return logger, nil
}
