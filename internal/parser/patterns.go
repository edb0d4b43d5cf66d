package parser

import "regexp"

// 全局编译好的正则模式，进程内只初始化一次，之后只读，可被并发调用安全共享
var (
	// emailPattern 简化版RFC邮箱模式
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// phonePattern 美式电话号码，可带国家码与常见分隔符
	phonePattern = regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

	// linkedinPattern LinkedIn个人主页链接
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/(?:in|pub)/[\w-]+(?:/[\w-]+)*`)

	// githubPattern GitHub个人主页链接
	githubPattern = regexp.MustCompile(`(?i)github\.com/[\w.-]+`)

	// degreePattern 学位关键词
	degreePattern = regexp.MustCompile(`(?i)\b(bachelor(?:['’]s)?|master(?:['’]s)?|doctorate|associate|mba|ph\.?d\.?|b\.?s\.?|b\.?a\.?|m\.?s\.?|m\.?a\.?)\b`)

	// gpaPattern "GPA: 3.7" 或 "GPA 3.7/4.0" 形式
	gpaPattern = regexp.MustCompile(`(?i)gpa[:\s]*(\d\.?\d*)`)

	// yearPattern 四位年份，1900-2100
	yearPattern = regexp.MustCompile(`\b(19\d{2}|20\d{2}|2100)\b`)

	// institutionPattern 教育机构关键词
	institutionPattern = regexp.MustCompile(`(?i)\b(university|college|institute|school|academy|polytechnic)\b`)

	// jobPipePattern "职位 | 公司" 形式的经历标题行
	jobPipePattern = regexp.MustCompile(`^(.+?)\s*\|\s*(.+?)$`)

	// roleAtPattern "Role at Company" 形式的经历标题行
	roleAtPattern = regexp.MustCompile(`(?i)^(.+?)\s+at\s+(.+)$`)

	// locationPattern "City, ST" 形式的地点，城市名1-3个词
	locationPattern = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+){0,2}),\s*([A-Z]{2})\b`)

	// dateTokenPattern 单个日期记号：月+年、MM/YYYY 或纯年份
	dateTokenPattern = regexp.MustCompile(`(?i)\b(?:(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+(\d{4})|(\d{1,2})/(\d{4})|(\d{4}))\b`)

	// dateRangePattern 日期区间：起始记号 + 连接符 + 结束记号或 present
	dateRangePattern = regexp.MustCompile(`(?i)((?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}|\d{1,2}/\d{4}|\d{4})\s*(?:[-–—~]|to)\s*((?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}|\d{1,2}/\d{4}|\d{4}|present)`)

	// bulletPrefixPattern 列表项前缀
	bulletPrefixPattern = regexp.MustCompile(`^[•\-*◦▪o]\s+`)

	// namePattern 姓名行：仅字母、空格、点、连字符与撇号
	namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z.'\- ]*$`)

	// whitespacePattern 连续空白
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// monthIndex 月份缩写到月序号的映射，用于日期归一化
var monthIndex = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}
