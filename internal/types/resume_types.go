package types

import "strings"

// SectionLabel 表示简历章节的归类标签
type SectionLabel string

const (
	// SectionContact 联系方式/简历头部章节（第一个标题之前的内容）
	SectionContact SectionLabel = "CONTACT"
	// SectionEducation 教育经历章节
	SectionEducation SectionLabel = "EDUCATION"
	// SectionExperience 工作经历章节
	SectionExperience SectionLabel = "EXPERIENCE"
	// SectionSkills 技能章节
	SectionSkills SectionLabel = "SKILLS"
	// SectionOther 未归类章节，保留原始标题文本作为键
	SectionOther SectionLabel = "OTHER"
)

// TextBlock 章节解析器输出的带标签文本块
// RawText 不包含标题行本身，标题行保存在 Heading 字段中
type TextBlock struct {
	Label     SectionLabel // 章节标签
	Heading   string       // 原始标题行文本，隐式头部块为空
	RawText   string       // 章节正文
	StartLine int          // 在重建文本中的起始行号（含标题行）
	EndLine   int          // 结束行号（不含）
}

// Lines 按行拆分章节正文，过滤空行
func (b *TextBlock) Lines() []string {
	var lines []string
	for _, line := range strings.Split(b.RawText, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// PositionedFragment 带位置信息的文本片段，仅PDF转换时产生
// 坐标已转换为"Y越大越靠下"的阅读坐标系，并按页偏移保证全局有序
type PositionedFragment struct {
	Text      string  // 片段文本
	X         float64 // 页面内横坐标
	Y         float64 // 转换后的纵坐标
	PageIndex int     // 页码，从0开始
	FontSize  float64 // 字号，未知时为0
}

// ConversionResult 文档转换结果
// Fragments 为 nil 表示该格式不提供版面信息（如DOCX），直接使用 Text
type ConversionResult struct {
	Text      string
	Fragments []PositionedFragment
}

// ContactInfo 联系方式
// 各字段要么是通过校验的字符串，要么缺失，绝不会是空字符串
type ContactInfo struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	LinkedIn *string `json:"linkedin,omitempty"`
	GitHub   *string `json:"github,omitempty"`
}

// Education 单条教育经历
type Education struct {
	Institution    string   `json:"institution"`
	Degree         string   `json:"degree"`
	Field          *string  `json:"field,omitempty"`
	GraduationYear *int     `json:"graduation_year,omitempty"`
	GPA            *float64 `json:"gpa,omitempty"`
}

// WorkExperience 单条工作经历
// EndDate 可能是归一化日期，也可能是哨兵值 "Present"
type WorkExperience struct {
	Company     string   `json:"company"`
	Role        *string  `json:"role,omitempty"`
	StartDate   *string  `json:"start_date,omitempty"`
	EndDate     *string  `json:"end_date,omitempty"`
	Location    *string  `json:"location,omitempty"`
	Description *string  `json:"description,omitempty"`
	SkillsUsed  []string `json:"skills_used"`
}

// ResumeData 简历提取的根输出记录
// 构造完成后不再修改，所有权归调用方
type ResumeData struct {
	Contact            ContactInfo       `json:"contact"`
	Education          []Education       `json:"education"`
	Experience         []WorkExperience  `json:"experience"`
	Skills             []string          `json:"skills"`
	AdditionalSections map[string]string `json:"additional_sections"`

	// RawText 重建后的文档全文，仅供调试，不参与序列化
	RawText string `json:"-"`
}

// GetSection 按名称查找未归类章节（大小写不敏感）
func (r *ResumeData) GetSection(name string) (string, bool) {
	for key, content := range r.AdditionalSections {
		if strings.EqualFold(key, name) {
			return content, true
		}
	}
	return "", false
}

// HasSection 判断未归类章节是否存在（大小写不敏感）
func (r *ResumeData) HasSection(name string) bool {
	_, ok := r.GetSection(name)
	return ok
}

// StrPtr 返回字符串指针，空字符串返回nil
func StrPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// IntPtr 返回整数指针
func IntPtr(v int) *int {
	return &v
}

// FloatPtr 返回浮点数指针
func FloatPtr(v float64) *float64 {
	return &v
}
