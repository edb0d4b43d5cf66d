package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSkillsWordBoundary 单字母技能只匹配独立出现，不命中普通单词的子串
func TestSkillsWordBoundary(t *testing.T) {
	blocks := NewSectionParser().Partition([]string{
		"Skills",
		"R, MATLAB, and regular expressions",
	})

	skills := NewSkillsExtractor().Extract(blocks)
	assert.Equal(t, []string{"R", "MATLAB"}, skills)
}

// TestSkillsSymbolSuffix 符号结尾的技能名同样按边界匹配
func TestSkillsSymbolSuffix(t *testing.T) {
	blocks := NewSectionParser().Partition([]string{
		"Skills",
		"C++ and C# development experience",
	})

	skills := NewSkillsExtractor().Extract(blocks)
	assert.Contains(t, skills, "C++")
	assert.Contains(t, skills, "C#")
}

// TestSkillsCanonicalCasing 匹配大小写不敏感，输出使用词典中的规范写法
func TestSkillsCanonicalCasing(t *testing.T) {
	blocks := NewSectionParser().Partition([]string{
		"Skills",
		"python, POSTGRESQL, node.js",
	})

	skills := NewSkillsExtractor().Extract(blocks)
	assert.Equal(t, []string{"Python", "PostgreSQL", "Node.js"}, skills)
}

// TestSkillsFirstOccurrenceOrder 输出顺序由文本中的首次出现位置决定
func TestSkillsFirstOccurrenceOrder(t *testing.T) {
	blocks := NewSectionParser().Partition([]string{
		"Skills",
		"SQL then Tableau then Python",
	})

	skills := NewSkillsExtractor().Extract(blocks)
	assert.Equal(t, []string{"SQL", "Tableau", "Python"}, skills)
}

// TestSkillsDedupAcrossSections SKILLS块与EXPERIENCE块之间去重，经历中的新技能补充在后
func TestSkillsDedupAcrossSections(t *testing.T) {
	blocks := NewSectionParser().Partition([]string{
		"Skills",
		"Python, Git",
		"Experience",
		"Engineer | Acme Inc",
		"• Used Python and Docker daily",
	})

	skills := NewSkillsExtractor().Extract(blocks)
	assert.Equal(t, []string{"Python", "Git", "Docker"}, skills)
}

// TestSkillsFallbackToFullText 没有SKILLS章节时回退到全文扫描
func TestSkillsFallbackToFullText(t *testing.T) {
	blocks := NewSectionParser().Partition([]string{
		"Jane Doe",
		"Projects",
		"Built a web app with Flask and PostgreSQL",
	})

	skills := NewSkillsExtractor().Extract(blocks)
	assert.Equal(t, []string{"Flask", "PostgreSQL"}, skills)
}

// TestSkillsEmptySectionNoFallback SKILLS章节存在但为空时不回退到全文扫描
func TestSkillsEmptySectionNoFallback(t *testing.T) {
	blocks := NewSectionParser().Partition([]string{
		"Jane Doe",
		"Python enthusiast and Docker user",
		"Skills",
	})

	skills := NewSkillsExtractor().Extract(blocks)
	assert.NotNil(t, skills)
	assert.Empty(t, skills)
}

// TestSkillsNothingFound 找不到技能时返回空序列而不是nil
func TestSkillsNothingFound(t *testing.T) {
	blocks := NewSectionParser().Partition([]string{
		"Skills",
		"no recognizable entries here",
	})

	skills := NewSkillsExtractor().Extract(blocks)
	assert.NotNil(t, skills)
	assert.Empty(t, skills)
}
