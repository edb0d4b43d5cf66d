package parser

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"resume-extract-go/internal/constants"
	"resume-extract-go/internal/types"
)

// EducationExtractor 从简历文本中提取教育经历
type EducationExtractor struct{}

// NewEducationExtractor 创建教育经历提取器
func NewEducationExtractor() *EducationExtractor {
	return &EducationExtractor{}
}

// fieldPrefixPattern 学位与专业之间的连接词，提取专业名时剥掉
var fieldPrefixPattern = regexp.MustCompile(`(?i)^\s*(?:of\s+|in\s+|science\s+|arts\s+|degree\s+|,\s*)+`)

// Extract 提取教育经历
// 优先扫描EDUCATION块，缺失时回退到全文；一条检出的院校产出一条记录，
// 什么都没找到时返回空序列而不是报错
// 同一条目出现多个年份时取最晚的（覆盖"预计毕业"写法）
func (e *EducationExtractor) Extract(blocks []types.TextBlock) []types.Education {
	lines := sectionLines(blocks, types.SectionEducation)
	if lines == nil {
		lines = allLines(blocks)
	}

	result := []types.Education{}
	for _, entry := range splitEducationEntries(lines) {
		if edu, ok := parseEducationEntry(entry); ok {
			result = append(result, edu)
		}
	}

	// 所有条目年份都可解析时按最近优先排序，否则保持文档顺序
	allDated := len(result) > 0
	for _, edu := range result {
		if edu.GraduationYear == nil {
			allDated = false
			break
		}
	}
	if allDated {
		sort.SliceStable(result, func(i, j int) bool {
			return *result[i].GraduationYear > *result[j].GraduationYear
		})
	}
	return result
}

// splitEducationEntries 把教育章节的行切分为单条目
// 院校行开启新条目；其余行（学位、年份、GPA等）归入当前条目
func splitEducationEntries(lines []string) [][]string {
	var entries [][]string
	var current []string

	for _, line := range lines {
		if institutionPattern.MatchString(line) && hasInstitutionLine(current) {
			entries = append(entries, current)
			current = nil
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		entries = append(entries, current)
	}
	return entries
}

func hasInstitutionLine(lines []string) bool {
	for _, line := range lines {
		if institutionPattern.MatchString(line) {
			return true
		}
	}
	return false
}

// parseEducationEntry 解析单条教育经历
// 至少要找到院校或学位之一才算有效条目
func parseEducationEntry(lines []string) (types.Education, bool) {
	text := strings.Join(lines, "\n")
	edu := types.Education{}

	for _, line := range lines {
		if institutionPattern.MatchString(line) {
			edu.Institution = institutionName(line)
			break
		}
	}

	if loc := degreePattern.FindStringIndex(text); loc != nil {
		edu.Degree = normalizeDegree(text[loc[0]:loc[1]])
		if field := fieldOfStudy(text[loc[1]:]); field != "" {
			edu.Field = types.StrPtr(field)
		}
	}

	if year, ok := latestYear(text); ok {
		edu.GraduationYear = types.IntPtr(year)
	}

	if m := gpaPattern.FindStringSubmatch(text); m != nil {
		if gpa, err := strconv.ParseFloat(m[1], 64); err == nil &&
			gpa >= constants.MinGPA && gpa <= constants.MaxGPA {
			edu.GPA = types.FloatPtr(gpa)
		}
	}

	if edu.Institution == "" && edu.Degree == "" {
		return types.Education{}, false
	}
	return edu, true
}

// institutionName 从院校行裁出院校名：逗号前的部分
func institutionName(line string) string {
	if idx := strings.Index(line, ","); idx > 0 {
		return strings.TrimSpace(line[:idx])
	}
	return strings.TrimSpace(line)
}

// normalizeDegree 归一化学位写法："b.s." → "B.S."，"bachelor" → "Bachelor"
func normalizeDegree(degree string) string {
	degree = strings.TrimSpace(degree)
	if strings.Contains(degree, ".") || len(degree) <= 3 {
		return strings.ToUpper(degree)
	}
	words := strings.Fields(strings.ToLower(degree))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// fieldOfStudy 从学位关键词之后的文本里提取专业名
// 剥掉"of/in"连接词后取到首个逗号、数字或行尾为止
func fieldOfStudy(after string) string {
	// 只看学位所在行的剩余部分
	if idx := strings.IndexAny(after, "\n"); idx >= 0 {
		after = after[:idx]
	}
	after = fieldPrefixPattern.ReplaceAllString(after, "")

	end := len(after)
	for i, r := range after {
		if r == ',' || r == '|' || r == '(' || unicode.IsDigit(r) {
			end = i
			break
		}
	}
	field := strings.TrimSpace(strings.Trim(after[:end], "-– ."))

	if len(field) < 2 {
		return ""
	}
	r := []rune(field)[0]
	if !unicode.IsUpper(r) {
		return ""
	}
	return field
}

// latestYear 取文本中处于毕业年份合法区间内的最大年份
func latestYear(text string) (int, bool) {
	best := 0
	for _, m := range yearPattern.FindAllString(text, -1) {
		y, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		if y < constants.MinGraduationYear || y > constants.MaxGraduationYear {
			continue
		}
		if y > best {
			best = y
		}
	}
	if best == 0 {
		return 0, false
	}
	return best, true
}

// sectionLines 收集指定标签全部块的非空行，没有该章节时返回nil
func sectionLines(blocks []types.TextBlock, label types.SectionLabel) []string {
	var lines []string
	found := false
	for i := range blocks {
		if blocks[i].Label == label {
			found = true
			lines = append(lines, blocks[i].Lines()...)
		}
	}
	if !found {
		return nil
	}
	if lines == nil {
		// 章节存在但内容为空：返回空切片与"章节不存在"区分开
		lines = []string{}
	}
	return lines
}

// allLines 收集全部块的非空行（不含标题行），供全文回退扫描
func allLines(blocks []types.TextBlock) []string {
	var lines []string
	for i := range blocks {
		lines = append(lines, blocks[i].Lines()...)
	}
	return lines
}
