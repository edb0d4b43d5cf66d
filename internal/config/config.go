package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"resume-extract-go/internal/logger"
)

// ParserConfig 版面重建与章节解析的可调参数
// 这些阈值直接影响真实简历上的提取准确率，调整后需用样本文档回归验证
type ParserConfig struct {
	// LineToleranceY 同一行的纵向容差（pt）
	// 纵坐标差在该范围内的片段归入同一行
	LineToleranceY float64 `yaml:"line_tolerance_y"`

	// ColumnGapThreshold 判定双栏布局的最小横向间隙（pt）
	ColumnGapThreshold float64 `yaml:"column_gap_threshold"`

	// MinColumnLines 判定双栏布局所需的最少跨栏行数
	MinColumnLines int `yaml:"min_column_lines"`
}

// Config 应用程序配置
type Config struct {
	Parser ParserConfig  `yaml:"parser"`
	Logger logger.Config `yaml:"logger"`
}

// DefaultConfig 返回默认配置
// 版面阈值的默认值在Letter/A4单双栏简历样本上标定
func DefaultConfig() *Config {
	return &Config{
		Parser: ParserConfig{
			LineToleranceY:     2.5,
			ColumnGapThreshold: 90.0,
			MinColumnLines:     6,
		},
		Logger: logger.Config{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadConfig 从YAML文件加载配置
// 路径为空时返回默认配置；文件中省略的字段同样回落到默认值
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	if configPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	if cfg.Parser.LineToleranceY <= 0 {
		cfg.Parser.LineToleranceY = DefaultConfig().Parser.LineToleranceY
	}
	if cfg.Parser.ColumnGapThreshold <= 0 {
		cfg.Parser.ColumnGapThreshold = DefaultConfig().Parser.ColumnGapThreshold
	}
	if cfg.Parser.MinColumnLines <= 0 {
		cfg.Parser.MinColumnLines = DefaultConfig().Parser.MinColumnLines
	}

	return cfg, nil
}
