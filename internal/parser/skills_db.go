package parser

import (
	"strings"
	"unicode"
)

// Skill 技能词典中的一个条目
type Skill struct {
	Canonical string // 规范显示名
	Category  string // 所属类别
}

// skillsDB 技能词典，按类别分组，顺序固定以保证输出确定性
// 匹配时大小写不敏感，输出使用规范名
var skillsDB = []Skill{
	// 编程语言
	{"Python", "programming_languages"},
	{"Java", "programming_languages"},
	{"JavaScript", "programming_languages"},
	{"TypeScript", "programming_languages"},
	{"C++", "programming_languages"},
	{"C#", "programming_languages"},
	{"PHP", "programming_languages"},
	{"Ruby", "programming_languages"},
	{"Go", "programming_languages"},
	{"Rust", "programming_languages"},
	{"Swift", "programming_languages"},
	{"Kotlin", "programming_languages"},
	{"Scala", "programming_languages"},
	{"R", "programming_languages"},
	{"MATLAB", "programming_languages"},
	{"SQL", "programming_languages"},
	{"HTML", "programming_languages"},
	{"CSS", "programming_languages"},
	{"Dart", "programming_languages"},
	{"Perl", "programming_languages"},
	{"Bash", "programming_languages"},
	{"PowerShell", "programming_languages"},

	// 框架
	{"React", "frameworks"},
	{"Angular", "frameworks"},
	{"Vue", "frameworks"},
	{"Node.js", "frameworks"},
	{"Express", "frameworks"},
	{"Django", "frameworks"},
	{"Flask", "frameworks"},
	{"Spring", "frameworks"},
	{"Rails", "frameworks"},
	{"Laravel", "frameworks"},
	{"ASP.NET", "frameworks"},
	{"Bootstrap", "frameworks"},
	{"jQuery", "frameworks"},
	{"React Native", "frameworks"},
	{"Flutter", "frameworks"},
	{"Ionic", "frameworks"},
	{"Xamarin", "frameworks"},

	// 数据库
	{"MySQL", "databases"},
	{"PostgreSQL", "databases"},
	{"MongoDB", "databases"},
	{"Redis", "databases"},
	{"SQLite", "databases"},
	{"Oracle", "databases"},
	{"SQL Server", "databases"},
	{"Cassandra", "databases"},
	{"DynamoDB", "databases"},
	{"Elasticsearch", "databases"},

	// 工具
	{"Git", "tools"},
	{"Docker", "tools"},
	{"Kubernetes", "tools"},
	{"Jenkins", "tools"},
	{"AWS", "tools"},
	{"Azure", "tools"},
	{"GCP", "tools"},
	{"Terraform", "tools"},
	{"Ansible", "tools"},
	{"Webpack", "tools"},
	{"Maven", "tools"},
	{"Gradle", "tools"},
	{"Jira", "tools"},
	{"Confluence", "tools"},

	// 办公软件
	{"Excel", "office_applications"},
	{"Word", "office_applications"},
	{"PowerPoint", "office_applications"},
	{"Outlook", "office_applications"},
	{"SharePoint", "office_applications"},

	// 分析工具
	{"Tableau", "analytics_tools"},
	{"Power BI", "analytics_tools"},
	{"SAS", "analytics_tools"},
	{"SPSS", "analytics_tools"},
	{"Stata", "analytics_tools"},
	{"Snowflake", "analytics_tools"},
	{"Databricks", "analytics_tools"},

	// 设计工具
	{"Photoshop", "design_tools"},
	{"Illustrator", "design_tools"},
	{"Figma", "design_tools"},
	{"Sketch", "design_tools"},
	{"AutoCAD", "design_tools"},
	{"SolidWorks", "design_tools"},

	// 业务系统
	{"QuickBooks", "financial_tools"},
	{"SAP", "financial_tools"},
	{"NetSuite", "financial_tools"},
	{"Salesforce", "financial_tools"},
	{"HubSpot", "financial_tools"},

	// 概念
	{"Machine Learning", "concepts"},
	{"Data Science", "concepts"},
	{"Web Development", "concepts"},
	{"Mobile Development", "concepts"},
	{"DevOps", "concepts"},
	{"Agile", "concepts"},
	{"Scrum", "concepts"},
	{"API", "concepts"},
	{"Microservices", "concepts"},
	{"Cloud Computing", "concepts"},
	{"Cybersecurity", "concepts"},
	{"Blockchain", "concepts"},

	// 软技能
	{"Leadership", "soft_skills"},
	{"Teamwork", "soft_skills"},
	{"Communication", "soft_skills"},
	{"Problem Solving", "soft_skills"},
	{"Critical Thinking", "soft_skills"},
	{"Time Management", "soft_skills"},
	{"Project Management", "soft_skills"},
	{"Collaboration", "soft_skills"},
}

// isWordChar 判断字符是否属于词内字符
func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// skillBoundaryMatch 在小写文本中查找技能词的首个独立出现位置
// 词边界要求：前一个字符与后一个字符均不是字母/数字
// 避免 "R" 误匹配 "Regular" 这类子串，"C++" 之类的符号结尾技能同样适用
// 未找到时返回 -1
func skillBoundaryMatch(lowerText, lowerSkill string) int {
	if lowerSkill == "" {
		return -1
	}
	from := 0
	for {
		idx := strings.Index(lowerText[from:], lowerSkill)
		if idx < 0 {
			return -1
		}
		idx += from

		ok := true
		if idx > 0 {
			prev := []rune(lowerText[:idx])
			if isWordChar(prev[len(prev)-1]) {
				ok = false
			}
		}
		end := idx + len(lowerSkill)
		if ok && end < len(lowerText) {
			next := []rune(lowerText[end:])[0]
			if isWordChar(next) {
				ok = false
			}
			// "c++" 后紧跟 '+' 说明是更长的符号串，不算独立出现
			if next == '+' && strings.HasSuffix(lowerSkill, "+") {
				ok = false
			}
		}
		if ok {
			return idx
		}
		from = idx + 1
		if from >= len(lowerText) {
			return -1
		}
	}
}

// matchSkills 扫描文本，按首次出现位置排序返回命中的规范技能名
// seen 用于跨区域去重，调用方传入同一个集合即可
func matchSkills(text string, seen map[string]bool) []string {
	lower := strings.ToLower(text)

	type hit struct {
		canonical string
		pos       int
		order     int
	}
	var hits []hit
	for i, s := range skillsDB {
		if seen[s.Canonical] {
			continue
		}
		pos := skillBoundaryMatch(lower, strings.ToLower(s.Canonical))
		if pos >= 0 {
			hits = append(hits, hit{canonical: s.Canonical, pos: pos, order: i})
		}
	}

	// 按出现位置排序，位置相同时按词典顺序，保证确定性
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0; j-- {
			a, b := hits[j-1], hits[j]
			if b.pos < a.pos || (b.pos == a.pos && b.order < a.order) {
				hits[j-1], hits[j] = b, a
			} else {
				break
			}
		}
	}

	var out []string
	for _, h := range hits {
		seen[h.canonical] = true
		out = append(out, h.canonical)
	}
	return out
}
