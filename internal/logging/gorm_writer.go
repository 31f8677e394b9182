package logging

import (
	"strings"

	"go.uber.org/zap"
)

// GormWriter adapts a zap logger to the Printf writer gorm's logger expects.
type GormWriter struct {
	logger *zap.SugaredLogger
}

func NewGormWriter(logger *zap.Logger) GormWriter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return GormWriter{logger: logger.Named("gorm").Sugar()}
}

func (writer GormWriter) Printf(format string, args ...interface{}) {
	writer.logger.Warnf(strings.TrimLeft(format, "\r\n"), args...)
}
