package processor

import (
	"github.com/rs/zerolog"

	"resume-extract-go/internal/config"
)

// Option 提取器选项函数类型
type Option func(*ResumeExtractor)

// WithConfig 指定解析配置，覆盖默认阈值
func WithConfig(cfg *config.Config) Option {
	return func(e *ResumeExtractor) {
		if cfg != nil {
			e.cfg = cfg
		}
	}
}

// WithLogger 指定日志记录器
func WithLogger(l zerolog.Logger) Option {
	return func(e *ResumeExtractor) {
		e.log = l
	}
}
