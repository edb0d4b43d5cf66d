package parser

import (
	"fmt"
	"strconv"
	"strings"

	"resume-extract-go/internal/constants"
	"resume-extract-go/internal/types"
)

// ExperienceExtractor 从简历文本中提取工作经历
// 在EXPERIENCE块内按"标题行(公司/职位) + 可选日期行 + 列表描述行"的重复模式切分条目
type ExperienceExtractor struct{}

// NewExperienceExtractor 创建工作经历提取器
func NewExperienceExtractor() *ExperienceExtractor {
	return &ExperienceExtractor{}
}

// Extract 提取工作经历，按文档顺序输出
// 简历惯例是最近的经历在前，提取器不重新排序
// 没有EXPERIENCE章节时返回空序列
func (e *ExperienceExtractor) Extract(blocks []types.TextBlock) []types.WorkExperience {
	result := []types.WorkExperience{}
	lines := sectionLines(blocks, types.SectionExperience)
	if lines == nil {
		return result
	}
	for _, entry := range splitExperienceEntries(lines) {
		if exp, ok := parseExperienceEntry(entry); ok {
			result = append(result, exp)
		}
	}
	return result
}

// splitExperienceEntries 把经历章节的行切分为单个条目
// 形似条目标题的行开启新条目；第一条标题行之前的零散行丢弃
// 例外：公司行紧跟的"职位+日期"行属于同一条目的第二个标题行，不另起条目
func splitExperienceEntries(lines []string) [][]string {
	var entries [][]string
	var current []string

	for _, line := range lines {
		if isLikelyJobHeader(line) && len(current) > 0 && !isSecondHeaderLine(current, line) {
			entries = append(entries, current)
			current = nil
		}
		if len(current) == 0 && !isLikelyJobHeader(line) {
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		entries = append(entries, current)
	}
	return entries
}

// isSecondHeaderLine 判断是否是当前条目的第二个标题行
// 模式：第一行是不含日期的公司行，紧跟一行"职位+日期区间"
func isSecondHeaderLine(current []string, line string) bool {
	return len(current) == 1 &&
		containsCompanyIndicator(current[0]) &&
		!dateRangePattern.MatchString(current[0]) &&
		containsRoleDatePattern(line)
}

// isLikelyJobHeader 判断一行是否像经历条目的标题行
// 公司特征、职位+日期组合、或较短的职位关键词行都算；列表项一律不算
func isLikelyJobHeader(line string) bool {
	if bulletPrefixPattern.MatchString(line) {
		return false
	}
	if isDescriptionLine(line) {
		return false
	}
	return containsCompanyIndicator(line) ||
		containsRoleDatePattern(line) ||
		(containsRoleKeyword(line) && len(strings.Fields(line)) <= 8)
}

// containsCompanyIndicator 判断一行是否带有公司名特征
// 公司后缀词、"职位 | 公司"管道格式、或"City, ST"地点后缀
func containsCompanyIndicator(line string) bool {
	lower := strings.ToLower(line)

	// 过长的行基本是描述文本，管道格式除外
	if len(strings.Fields(line)) > 10 && !strings.Contains(line, "|") {
		return false
	}

	if strings.Contains(line, "|") && containsRoleKeyword(line) {
		return true
	}
	for _, suffix := range constants.CompanySuffixes {
		if containsWord(lower, suffix) {
			return true
		}
	}
	return locationPattern.MatchString(line)
}

// containsRoleDatePattern 判断一行是否同时含有职位关键词与日期区间
func containsRoleDatePattern(line string) bool {
	return containsRoleKeyword(line) && dateRangePattern.MatchString(line)
}

// containsRoleKeyword 判断一行是否含有职位关键词
func containsRoleKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range constants.RoleKeywords {
		if containsWord(lower, kw) {
			return true
		}
	}
	return false
}

// isDescriptionLine 判断一行是否是职责描述（以常见动作动词开头）
func isDescriptionLine(line string) bool {
	lower := strings.ToLower(line)
	for _, starter := range constants.DescriptionStarters {
		if strings.HasPrefix(lower, starter) {
			return true
		}
	}
	return false
}

// containsWord 带词边界的子串包含判断，两侧参数均应为小写
func containsWord(text, word string) bool {
	return skillBoundaryMatch(text, word) >= 0
}

// parseExperienceEntry 解析单个经历条目
// 第一行按标题策略解析；随后的非列表行补齐缺失的职位/公司；
// 列表行合并为描述，并在其中扫描已知技能填充SkillsUsed
func parseExperienceEntry(lines []string) (types.WorkExperience, bool) {
	if len(lines) == 0 {
		return types.WorkExperience{}, false
	}

	exp := types.WorkExperience{SkillsUsed: []string{}}
	var descLines []string

	parseHeaderLine(lines[0], &exp)

	for _, line := range lines[1:] {
		isBullet := bulletPrefixPattern.MatchString(line)
		if !isBullet && exp.Role == nil && containsRoleDatePattern(line) {
			parseRoleDateLine(line, &exp)
			continue
		}
		if !isBullet && exp.Company == "" && containsCompanyIndicator(line) && !isDescriptionLine(line) {
			parseCompanyLine(line, &exp)
			continue
		}
		// 纯日期行不进描述，区间已在整条目文本上统一提取
		if !isBullet && dateRangePattern.MatchString(line) && stripDates(line) == "" {
			continue
		}
		clean := strings.TrimSpace(bulletPrefixPattern.ReplaceAllString(line, ""))
		if clean != "" {
			descLines = append(descLines, clean)
		}
	}

	if len(descLines) > 0 {
		desc := strings.Join(descLines, "\n")
		exp.Description = types.StrPtr(desc)

		seen := make(map[string]bool)
		exp.SkillsUsed = append(exp.SkillsUsed, matchSkills(desc, seen)...)
	}

	// 日期区间在整个条目文本上匹配，标题行或单独的日期行都能覆盖
	extractDateRange(strings.Join(lines, "\n"), &exp)

	if exp.Company == "" && exp.Role == nil {
		return types.WorkExperience{}, false
	}
	if exp.Company == "" {
		// 只有职位没有公司时退而用标题行充当公司名，保证必填字段非空
		exp.Company = strings.TrimSpace(lines[0])
	}
	return exp, true
}

// parseHeaderLine 解析条目的第一行
// 依次尝试："职位 | 公司"、"Role at Company"、"公司 City, ST"，
// 都不中时按公司/职位特征归类，默认当作公司名
func parseHeaderLine(line string, exp *types.WorkExperience) {
	if m := jobPipePattern.FindStringSubmatch(line); m != nil && strings.Contains(line, "|") {
		exp.Role = types.StrPtr(stripDates(m[1]))
		exp.Company = strings.TrimSpace(stripDates(m[2]))
		if loc := locationPattern.FindString(exp.Company); loc != "" {
			exp.Location = types.StrPtr(loc)
			exp.Company = strings.TrimSpace(strings.TrimSuffix(exp.Company, loc))
			exp.Company = strings.Trim(exp.Company, ", ")
		}
		return
	}

	if m := roleAtPattern.FindStringSubmatch(line); m != nil && !dateRangePattern.MatchString(line) {
		exp.Role = types.StrPtr(strings.TrimSpace(m[1]))
		exp.Company = strings.TrimSpace(m[2])
		return
	}

	if loc := locationPattern.FindString(line); loc != "" {
		exp.Location = types.StrPtr(loc)
		company := strings.TrimSpace(line[:strings.Index(line, loc)])
		if company != "" {
			exp.Company = strings.Trim(company, ", ")
		}
		return
	}

	if containsCompanyIndicator(line) {
		exp.Company = strings.TrimSpace(stripDates(line))
		return
	}
	if containsRoleKeyword(line) {
		exp.Role = types.StrPtr(stripDates(line))
		return
	}
	exp.Company = strings.TrimSpace(line)
}

// parseRoleDateLine 解析"职位 + 日期区间"行，日期之前的文本作为职位
func parseRoleDateLine(line string, exp *types.WorkExperience) {
	if loc := dateRangePattern.FindStringIndex(line); loc != nil {
		role := strings.Trim(strings.TrimSpace(line[:loc[0]]), ",|–- ")
		if role != "" && exp.Role == nil {
			exp.Role = types.StrPtr(role)
		}
	}
}

// parseCompanyLine 解析公司行，剥出地点
func parseCompanyLine(line string, exp *types.WorkExperience) {
	if loc := locationPattern.FindString(line); loc != "" {
		exp.Location = types.StrPtr(loc)
		company := strings.TrimSpace(line[:strings.Index(line, loc)])
		if company != "" {
			exp.Company = strings.Trim(company, ", ")
			return
		}
	}
	exp.Company = strings.TrimSpace(stripDates(line))
}

// stripDates 去掉文本中的日期区间，清理残留分隔符
func stripDates(s string) string {
	s = dateRangePattern.ReplaceAllString(s, "")
	return strings.Trim(strings.TrimSpace(s), ",|–- ")
}

// extractDateRange 提取并归一化日期区间
// 统一输出 YYYY-MM（已知月份）或 YYYY（只有年份）；
// 结束侧的 present（任意大小写）归一化为哨兵值 "Present"
func extractDateRange(text string, exp *types.WorkExperience) {
	m := dateRangePattern.FindStringSubmatch(text)
	if m == nil {
		return
	}
	if start := normalizeDateToken(m[1]); start != "" {
		exp.StartDate = types.StrPtr(start)
	}
	if end := normalizeDateToken(m[2]); end != "" {
		exp.EndDate = types.StrPtr(end)
	}
}

// normalizeDateToken 归一化单个日期记号
// "Jan 2023" → "2023-01"，"3/2023" → "2023-03"，"2023" → "2023"，"present" → "Present"
// 年份只有部分信息（仅年）同样视为有效日期
func normalizeDateToken(token string) string {
	token = strings.TrimSpace(token)
	if strings.EqualFold(token, "present") {
		return constants.PresentSentinel
	}

	m := dateTokenPattern.FindStringSubmatch(token)
	if m == nil {
		return ""
	}
	switch {
	case m[1] != "": // 月份名 + 年
		month := monthIndex[strings.ToLower(m[1])]
		return fmt.Sprintf("%s-%02d", m[2], month)
	case m[3] != "": // MM/YYYY
		month, err := strconv.Atoi(m[3])
		if err != nil || month < 1 || month > 12 {
			return m[4]
		}
		return fmt.Sprintf("%s-%02d", m[4], month)
	default: // 纯年份
		return m[5]
	}
}
