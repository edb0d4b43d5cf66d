package constants

// 支持的文档MIME类型
const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// 校验边界常量
const (
	// MaxNameLength 姓名最大长度（字符数）
	MaxNameLength = 50
	// MinNameWords 姓名最少词数
	MinNameWords = 2
	// MaxNameWords 姓名最多词数
	MaxNameWords = 4
	// MaxSectionHeaderLength 章节标题行最大长度
	MaxSectionHeaderLength = 50
	// MaxSectionHeaderWords 章节标题行最多词数
	MaxSectionHeaderWords = 4

	// MinGraduationYear 毕业年份下限
	MinGraduationYear = 1900
	// MaxGraduationYear 毕业年份上限
	MaxGraduationYear = 2100

	// MinGPA GPA下限
	MinGPA = 0.0
	// MaxGPA GPA上限（兼容5分制）
	MaxGPA = 5.0
)

// PresentSentinel 在职经历结束日期的哨兵值
const PresentSentinel = "Present"

// EducationHeaders 教育章节标题关键词
var EducationHeaders = []string{"education", "academic background", "academic"}

// ExperienceHeaders 工作经历章节标题关键词
// 长词组在前，保证 "work experience" 比 "work" 先命中
var ExperienceHeaders = []string{
	"work experience", "professional experience", "employment history",
	"work history", "experience", "employment", "internships", "internship",
}

// SkillsHeaders 技能章节标题关键词
var SkillsHeaders = []string{
	"technical skills", "core competencies", "skills", "competencies",
	"technologies", "technical",
}

// OtherHeaders 其他可识别章节的标题关键词
// 命中后生成OTHER块，以原始标题文本为键保留内容
var OtherHeaders = []string{
	"projects", "personal projects", "academic projects",
	"certifications", "certificates", "credentials",
	"awards", "honors", "achievements",
	"publications", "references",
	"summary", "objective", "profile",
	"activities", "volunteer", "leadership",
	"languages", "interests", "hobbies",
}

// RoleKeywords 职位名称常见关键词
var RoleKeywords = []string{
	"intern", "engineer", "developer", "analyst", "coordinator",
	"assistant", "associate", "manager", "specialist", "consultant",
	"director", "lead", "senior", "junior", "supervisor",
	"representative", "officer",
}

// CompanySuffixes 公司名称常见后缀
var CompanySuffixes = []string{
	"inc", "inc.", "corp", "corp.", "corporation", "llc", "ltd", "ltd.",
	"company", "co.", "group", "associates", "technologies", "labs",
	"solutions", "consulting",
}

// InstitutionSuffixes 教育机构名称关键词
var InstitutionSuffixes = []string{
	"university", "college", "institute", "school", "academy", "polytechnic",
}

// DescriptionStarters 职责描述行的常见起始动词
// 用于排除被误判为公司/职位行的描述文本
var DescriptionStarters = []string{
	"file ", "analyze ", "ensure ", "record ", "maintain ", "assisted ",
	"processed ", "communicated ", "collaborated ", "worked with",
	"managed ", "developed ", "created ", "implemented ", "led ",
	"responsible for", "coordinated ", "supervised ", "designed ",
	"built ", "wrote ", "improved ", "conducted ", "organized ",
}

// NonNameHeaderWords 不可能是姓名的头部词汇
var NonNameHeaderWords = []string{
	"resume", "cv", "curriculum vitae", "contact", "profile",
}
