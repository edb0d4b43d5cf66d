package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"resume-extract-go/internal/config"
	"resume-extract-go/internal/logger"
	"resume-extract-go/internal/processor"
	"resume-extract-go/internal/types"
)

var (
	version = "1.0.0" //nolint:gochecknoglobals
)

func main() {
	var (
		inputFile   string
		configPath  string
		format      string
		outputFile  string
		showVersion bool
	)
	pflag.StringVarP(&inputFile, "file", "f", "", "要解析的简历文件路径 (.pdf / .docx)")
	pflag.StringVarP(&configPath, "config", "c", "", "配置文件路径，缺省使用内置默认值")
	pflag.StringVar(&format, "format", "json", "输出格式，可选项：json, text")
	pflag.StringVarP(&outputFile, "output", "o", "", "结果保存路径，缺省输出到标准输出")
	pflag.BoolVar(&showVersion, "version", false, "打印版本后退出")
	pflag.Parse()

	if showVersion {
		fmt.Println("resume-extract", version)
		return
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.Logger)

	if inputFile == "" {
		fmt.Fprintln(os.Stderr, "错误: 必须提供简历文件路径，使用 -f 参数。")
		pflag.Usage()
		os.Exit(1)
	}

	data, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法读取文件 %s: %v\n", inputFile, err)
		os.Exit(1)
	}

	extractor := processor.NewResumeExtractor(processor.WithConfig(cfg))
	resume, err := extractor.ExtractSmart(context.Background(), data, inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "简历提取失败: %v\n", err)
		os.Exit(1)
	}

	var out string
	switch format {
	case "text":
		out = formatText(resume)
	default:
		encoded, err := json.MarshalIndent(resume, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "序列化结果失败: %v\n", err)
			os.Exit(1)
		}
		out = string(encoded)
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(out+"\n"), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "保存结果失败: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("结果已保存到: %s\n", outputFile)
		return
	}
	fmt.Println(out)
}

// formatText 把提取结果渲染为便于人工检查的摘要
func formatText(r *types.ResumeData) string {
	var sb strings.Builder
	sb.WriteString("===== 简历提取结果 =====\n")

	sb.WriteString(fmt.Sprintf("联系人: %s | %s | %s\n",
		orNA(r.Contact.Name), orNA(r.Contact.Email), orNA(r.Contact.Phone)))

	sb.WriteString(fmt.Sprintf("教育经历: %d 条\n", len(r.Education)))
	for _, edu := range r.Education {
		line := "  - " + edu.Institution
		if edu.Degree != "" {
			line += ", " + edu.Degree
		}
		if edu.Field != nil {
			line += " " + *edu.Field
		}
		if edu.GraduationYear != nil {
			line += fmt.Sprintf(" (%d)", *edu.GraduationYear)
		}
		sb.WriteString(line + "\n")
	}

	sb.WriteString(fmt.Sprintf("工作经历: %d 条\n", len(r.Experience)))
	for _, exp := range r.Experience {
		line := "  - " + exp.Company
		if exp.Role != nil {
			line += " | " + *exp.Role
		}
		if exp.StartDate != nil || exp.EndDate != nil {
			line += fmt.Sprintf(" (%s ~ %s)", orNA(exp.StartDate), orNA(exp.EndDate))
		}
		sb.WriteString(line + "\n")
	}

	sb.WriteString(fmt.Sprintf("技能: %d 项\n", len(r.Skills)))
	if len(r.Skills) > 0 {
		sb.WriteString("  " + strings.Join(r.Skills, ", ") + "\n")
	}

	if len(r.AdditionalSections) > 0 {
		sb.WriteString(fmt.Sprintf("其他章节: %d 个\n", len(r.AdditionalSections)))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func orNA(s *string) string {
	if s == nil {
		return "N/A"
	}
	return *s
}
