package processor

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"resume-extract-go/internal/config"
	"resume-extract-go/internal/constants"
	"resume-extract-go/internal/logger"
	"resume-extract-go/internal/parser"
	"resume-extract-go/internal/types"
)

// ResumeExtractor 简历提取编排器
// 按MIME类型选择转换与版面策略，依次调用章节解析器与四个字段提取器，
// 汇总为ResumeData并做跨字段一致性修正
// 单次调用内无共享可变状态，可被多个goroutine并发使用
type ResumeExtractor struct {
	cfg *config.Config
	log zerolog.Logger

	layout     *parser.LayoutParser
	sections   *parser.SectionParser
	contact    *parser.ContactExtractor
	education  *parser.EducationExtractor
	experience *parser.ExperienceExtractor
	skills     *parser.SkillsExtractor
}

// NewResumeExtractor 创建简历提取器
func NewResumeExtractor(opts ...Option) *ResumeExtractor {
	e := &ResumeExtractor{
		cfg: config.DefaultConfig(),
		log: logger.Logger,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.layout = parser.NewLayoutParser(e.cfg.Parser)
	e.sections = parser.NewSectionParser()
	e.contact = parser.NewContactExtractor()
	e.education = parser.NewEducationExtractor()
	e.experience = parser.NewExperienceExtractor()
	e.skills = parser.NewSkillsExtractor()
	return e
}

// Extract 从文档字节中提取结构化简历数据
// filename 仅用于诊断信息；相同字节输入保证产出相同结果或相同错误
func (e *ResumeExtractor) Extract(ctx context.Context, data []byte, mimeType string, filename string) (*types.ResumeData, error) {
	extractionID := uuid.New().String()
	start := time.Now()

	log := e.log.With().
		Str("extraction_id", extractionID).
		Str("filename", filename).
		Str("mime_type", mimeType).
		Logger()
	if ctxLog := zerolog.Ctx(ctx); ctxLog.GetLevel() != zerolog.Disabled {
		log = ctxLog.With().Str("extraction_id", extractionID).Str("filename", filename).Logger()
	}

	conv, err := parser.Convert(data, mimeType)
	if err != nil {
		log.Warn().Err(err).Msg("文档转换失败")
		switch {
		case errors.Is(err, parser.ErrUnsupportedMIME):
			return nil, NewUnsupportedFormatError(filename, mimeType)
		default:
			return nil, NewCorruptDocumentError(filename, err.Error())
		}
	}

	// PDF走版面重建；DOCX没有位置信息，直接使用段落顺序文本
	var lines []string
	if len(conv.Fragments) > 0 {
		lines = e.layout.Reconstruct(conv.Fragments)
	} else {
		lines = parser.CleanLines(conv.Text)
	}
	if len(lines) == 0 {
		log.Warn().Msg("文档中没有可提取的文本")
		return nil, NewEmptyDocumentError(filename)
	}

	blocks := e.sections.Partition(lines)
	log.Debug().Int("lines", len(lines)).Int("blocks", len(blocks)).Msg("章节切分完成")

	// 四个字段提取器相互独立，顺序执行已足够快
	result := &types.ResumeData{
		Contact:            e.contact.Extract(blocks),
		Education:          e.education.Extract(blocks),
		Experience:         e.experience.Extract(blocks),
		Skills:             e.skills.Extract(blocks),
		AdditionalSections: additionalSections(blocks),
		RawText:            strings.Join(lines, "\n"),
	}
	applyConsistencyFixups(result)

	log.Info().
		Dur("elapsed", time.Since(start)).
		Int("education", len(result.Education)).
		Int("experience", len(result.Experience)).
		Int("skills", len(result.Skills)).
		Msg("简历提取完成")
	return result, nil
}

// ExtractSmart 按文件扩展名自动选择MIME类型后提取
// PDF走版面感知解析，DOCX走纯文本解析
func (e *ResumeExtractor) ExtractSmart(ctx context.Context, data []byte, filename string) (*types.ResumeData, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return e.Extract(ctx, data, constants.MimePDF, filename)
	case ".docx":
		return e.Extract(ctx, data, constants.MimeDOCX, filename)
	default:
		return nil, NewUnsupportedFormatError(filename, filepath.Ext(filename))
	}
}

// additionalSections 把未归类章节收进 标题→正文 的映射
func additionalSections(blocks []types.TextBlock) map[string]string {
	sections := make(map[string]string)
	for _, b := range blocks {
		if b.Label != types.SectionOther || b.Heading == "" {
			continue
		}
		content := strings.TrimSpace(b.RawText)
		if content != "" {
			sections[b.Heading] = content
		}
	}
	return sections
}

// applyConsistencyFixups 跨字段一致性修正
// 1) 姓名被关键词匹配误捕为多词技能时从技能表剔除（已知误报模式）
// 2) 同一院校+学位的重复教育条目合并，保留字段更全的那条，平局取先出现的
func applyConsistencyFixups(r *types.ResumeData) {
	if r.Contact.Name != nil {
		name := *r.Contact.Name
		kept := r.Skills[:0]
		for _, s := range r.Skills {
			if strings.Contains(s, " ") && strings.EqualFold(s, name) {
				continue
			}
			kept = append(kept, s)
		}
		r.Skills = kept
	}

	if len(r.Education) > 1 {
		var dedup []types.Education
		for _, edu := range r.Education {
			merged := false
			for i := range dedup {
				if strings.EqualFold(dedup[i].Institution, edu.Institution) &&
					strings.EqualFold(dedup[i].Degree, edu.Degree) {
					if educationScore(edu) > educationScore(dedup[i]) {
						dedup[i] = edu
					}
					merged = true
					break
				}
			}
			if !merged {
				dedup = append(dedup, edu)
			}
		}
		r.Education = dedup
	}
}

// educationScore 已填充字段的个数，用于重复条目取舍
func educationScore(e types.Education) int {
	score := 0
	if e.Institution != "" {
		score++
	}
	if e.Degree != "" {
		score++
	}
	if e.Field != nil {
		score++
	}
	if e.GraduationYear != nil {
		score++
	}
	if e.GPA != nil {
		score++
	}
	return score
}
