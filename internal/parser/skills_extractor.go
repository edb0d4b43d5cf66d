package parser

import (
	"strings"

	"resume-extract-go/internal/types"
)

// SkillsExtractor 依据技能词典从简历文本中提取技能
// 大小写不敏感、带词边界的匹配，避免 "R" 命中 "Regular" 这类子串误报
type SkillsExtractor struct{}

// NewSkillsExtractor 创建技能提取器
func NewSkillsExtractor() *SkillsExtractor {
	return &SkillsExtractor{}
}

// Extract 提取技能，按首次出现顺序输出规范技能名
// 先扫SKILLS块（章节缺失时回退到全文；章节存在但为空不触发回退），
// 再扫EXPERIENCE块补充描述中提到的技能，两个区域之间去重；
// 找不到任何技能时返回空序列
func (e *SkillsExtractor) Extract(blocks []types.TextBlock) []string {
	seen := make(map[string]bool)
	skills := []string{}

	primary, found := sectionText(blocks, types.SectionSkills)
	if !found {
		primary = joinBlocks(blocks)
	}
	skills = append(skills, matchSkills(primary, seen)...)

	if expText, ok := sectionText(blocks, types.SectionExperience); ok && expText != "" {
		skills = append(skills, matchSkills(expText, seen)...)
	}
	return skills
}

// sectionText 拼接指定标签全部块的正文
// 第二个返回值区分"章节不存在"与"章节存在但内容为空"
func sectionText(blocks []types.TextBlock, label types.SectionLabel) (string, bool) {
	var parts []string
	found := false
	for i := range blocks {
		if blocks[i].Label == label {
			found = true
			parts = append(parts, blocks[i].RawText)
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n")), found
}
