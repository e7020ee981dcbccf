package db

import (
	"fmt"
	"strings"
	"time"

	gormLogger "gorm.io/gorm/logger"

	"github.com/mpac-commercial/course-design-assessment/internal/platform/logger"
)

type zapWriter struct {
	log *logger.Logger
}

func (w zapWriter) Printf(format string, args ...interface{}) {
	w.log.Warn(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// NewGormLogger routes GORM warnings, errors and slow queries through zap.
func NewGormLogger(log *logger.Logger, slow time.Duration) gormLogger.Interface {
	if slow <= 0 {
		slow = time.Second
	}
	return gormLogger.New(
		zapWriter{log: log.With("component", "gorm")},
		gormLogger.Config{
			SlowThreshold:             slow,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
