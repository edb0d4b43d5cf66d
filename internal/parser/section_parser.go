package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"resume-extract-go/internal/constants"
	"resume-extract-go/internal/types"
)

// SectionParser 扫描文本行，按章节标题把文档切分为带标签的文本块
type SectionParser struct{}

// NewSectionParser 创建章节解析器
func NewSectionParser() *SectionParser {
	return &SectionParser{}
}

// CleanLines 清洗原始文本：统一换行符、压缩行内空白、去掉空行
func CleanLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = whitespacePattern.ReplaceAllString(strings.TrimSpace(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Partition 把有序文本行切分为带标签的章节块
// 第一个识别出的标题之前的内容构成隐式CONTACT块（简历头部通常是姓名与联系方式）
// 完全没有标题时整个文档归入单个OTHER块，由各字段提取器做全文回退扫描
func (p *SectionParser) Partition(lines []string) []types.TextBlock {
	var blocks []types.TextBlock

	current := types.TextBlock{Label: types.SectionContact, StartLine: 0}
	var content []string
	started := false

	closeCurrent := func(end int) {
		// 隐式头部块只有在确实有内容时才保留
		if !started && len(content) == 0 {
			return
		}
		current.RawText = strings.Join(content, "\n")
		current.EndLine = end
		blocks = append(blocks, current)
	}

	for i, line := range lines {
		label, ok := p.classifyHeading(line)
		if !ok {
			content = append(content, line)
			continue
		}

		closeCurrent(i)
		started = true
		current = types.TextBlock{
			Label:     label,
			Heading:   line,
			StartLine: i,
		}
		content = nil
	}
	closeCurrent(len(lines))

	if len(blocks) == 0 {
		return nil
	}

	// 无任何标题：整个文档作为单个OTHER块
	if !started {
		blocks[0].Label = types.SectionOther
	}
	return blocks
}

// classifyHeading 判断一行是否为章节标题并给出标签
// 标题须是短行（≤4词且≤50字符）、全大写/词首大写/以冒号结尾，并包含已知章节关键词
func (p *SectionParser) classifyHeading(line string) (types.SectionLabel, bool) {
	if !isHeadingShaped(line) {
		return "", false
	}

	lower := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(line), ":"))

	// 长词组关键词在各组内排前，类别按固定顺序检查，保证歧义标题的判定可复现
	for _, kw := range constants.EducationHeaders {
		if strings.Contains(lower, kw) {
			return types.SectionEducation, true
		}
	}
	for _, kw := range constants.ExperienceHeaders {
		if strings.Contains(lower, kw) {
			return types.SectionExperience, true
		}
	}
	for _, kw := range constants.SkillsHeaders {
		if strings.Contains(lower, kw) {
			return types.SectionSkills, true
		}
	}
	for _, kw := range constants.OtherHeaders {
		if strings.Contains(lower, kw) {
			return types.SectionOther, true
		}
	}
	return "", false
}

// isHeadingShaped 判断一行是否具有章节标题的形态
func isHeadingShaped(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || utf8.RuneCountInString(line) > constants.MaxSectionHeaderLength {
		return false
	}
	words := strings.Fields(line)
	if len(words) == 0 || len(words) > constants.MaxSectionHeaderWords {
		return false
	}

	if strings.HasSuffix(line, ":") {
		return true
	}
	if isAllCaps(line) {
		return true
	}
	return isTitleCased(words)
}

// isAllCaps 全大写（至少包含一个字母）
func isAllCaps(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// isTitleCased 每个词以大写字母开头
func isTitleCased(words []string) bool {
	for _, w := range words {
		r, _ := utf8.DecodeRuneInString(w)
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
