package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nyaruka/phonenumbers"

	"resume-extract-go/internal/constants"
	"resume-extract-go/internal/types"
)

// ContactExtractor 从简历文本中提取联系方式
// 纯函数式：输入章节块序列，输出部分填充的ContactInfo，找不到的字段置空，从不报错
type ContactExtractor struct{}

// NewContactExtractor 创建联系方式提取器
func NewContactExtractor() *ContactExtractor {
	return &ContactExtractor{}
}

// Extract 提取联系方式
// 邮箱/电话/链接在全文中匹配首个出现；姓名只在隐式头部块中按启发式规则查找
func (e *ContactExtractor) Extract(blocks []types.TextBlock) types.ContactInfo {
	fullText := joinBlocks(blocks)

	contact := types.ContactInfo{}

	if m := emailPattern.FindString(fullText); m != "" {
		contact.Email = types.StrPtr(m)
	}
	if m := e.findValidPhone(fullText); m != "" {
		contact.Phone = types.StrPtr(m)
	}
	if m := linkedinPattern.FindString(fullText); m != "" {
		contact.LinkedIn = types.StrPtr(m)
	}
	if m := githubPattern.FindString(fullText); m != "" {
		contact.GitHub = types.StrPtr(m)
	}

	contact.Name = e.extractName(blocks)
	return contact
}

// findValidPhone 找出第一个能通过号码库校验的电话候选
// 正则只负责圈出候选，有效性交给phonenumbers按美国区号规则判定，
// 避免把日期、编号之类的数字串误认为电话
func (e *ContactExtractor) findValidPhone(text string) string {
	for _, candidate := range phonePattern.FindAllString(text, 8) {
		num, err := phonenumbers.Parse(candidate, "US")
		if err != nil {
			continue
		}
		if phonenumbers.IsValidNumber(num) {
			return strings.TrimSpace(candidate)
		}
	}
	return ""
}

// extractName 从隐式头部块提取姓名
// 取头部块中第一个满足条件的行：2-4个首字母大写的词、只含字母类字符、
// 不超过长度上限、本身不含邮箱/电话/链接、也不是"Resume"之类的头部词
func (e *ContactExtractor) extractName(blocks []types.TextBlock) *string {
	var header *types.TextBlock
	for i := range blocks {
		if blocks[i].Label == types.SectionContact {
			header = &blocks[i]
			break
		}
	}
	if header == nil {
		return nil
	}

	for _, line := range header.Lines() {
		if isLikelyName(line) {
			return types.StrPtr(line)
		}
	}
	return nil
}

// isLikelyName 判断一行文本是否像人名
func isLikelyName(line string) bool {
	if utf8.RuneCountInString(line) > constants.MaxNameLength {
		return false
	}
	if emailPattern.MatchString(line) ||
		phonePattern.MatchString(line) ||
		linkedinPattern.MatchString(line) ||
		githubPattern.MatchString(line) {
		return false
	}
	if !namePattern.MatchString(line) {
		return false
	}

	lower := strings.ToLower(line)
	for _, w := range constants.NonNameHeaderWords {
		if lower == w {
			return false
		}
	}

	words := strings.Fields(line)
	if len(words) < constants.MinNameWords || len(words) > constants.MaxNameWords {
		return false
	}
	for _, w := range words {
		r, _ := utf8.DecodeRuneInString(w)
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// joinBlocks 把全部章节块（含标题行）拼回完整文本，供全文扫描使用
func joinBlocks(blocks []types.TextBlock) string {
	var sb strings.Builder
	for _, b := range blocks {
		if b.Heading != "" {
			sb.WriteString(b.Heading)
			sb.WriteString("\n")
		}
		sb.WriteString(b.RawText)
		sb.WriteString("\n")
	}
	return sb.String()
}
