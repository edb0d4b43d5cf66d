package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-extract-go/internal/types"
)

// TestPartitionBasicSections 测试常规简历的章节切分
func TestPartitionBasicSections(t *testing.T) {
	lines := []string{
		"Matthew Domingo",
		"mgdomingo@wisc.edu",
		"Education",
		"University of Wisconsin-Madison, B.S. Computer Science, 2024",
		"Experience",
		"Software Engineering Intern | Pharus.ai",
		"Skills",
		"Python, React, SQL",
	}

	blocks := NewSectionParser().Partition(lines)
	require.Len(t, blocks, 4)

	// 第一个标题之前的内容构成隐式头部块
	assert.Equal(t, types.SectionContact, blocks[0].Label)
	assert.Empty(t, blocks[0].Heading)
	assert.Contains(t, blocks[0].RawText, "Matthew Domingo")

	assert.Equal(t, types.SectionEducation, blocks[1].Label)
	assert.Equal(t, "Education", blocks[1].Heading)
	assert.Contains(t, blocks[1].RawText, "Wisconsin-Madison")

	assert.Equal(t, types.SectionExperience, blocks[2].Label)
	assert.Equal(t, types.SectionSkills, blocks[3].Label)
	assert.Equal(t, "Python, React, SQL", blocks[3].RawText)
}

// TestPartitionHeadingVariants 测试不同写法的标题识别
func TestPartitionHeadingVariants(t *testing.T) {
	tests := []struct {
		name    string
		heading string
		label   types.SectionLabel
	}{
		{"全大写", "EDUCATION", types.SectionEducation},
		{"冒号结尾", "Skills:", types.SectionSkills},
		{"多词标题", "Work Experience", types.SectionExperience},
		{"就业写法", "Employment History", types.SectionExperience},
		{"核心能力", "Core Competencies", types.SectionSkills},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := NewSectionParser().Partition([]string{tt.heading, "some content"})
			require.Len(t, blocks, 1)
			assert.Equal(t, tt.label, blocks[0].Label)
			assert.Equal(t, tt.heading, blocks[0].Heading)
		})
	}
}

// TestPartitionUnrecognizedHeading 未归入四大类的已知标题生成OTHER块并保留原始标题
func TestPartitionUnrecognizedHeading(t *testing.T) {
	lines := []string{
		"Jane Doe",
		"Volunteer Work",
		"Helped organize community events",
	}

	blocks := NewSectionParser().Partition(lines)
	require.Len(t, blocks, 2)
	assert.Equal(t, types.SectionOther, blocks[1].Label)
	assert.Equal(t, "Volunteer Work", blocks[1].Heading)
	assert.Equal(t, "Helped organize community events", blocks[1].RawText)
}

// TestPartitionNoHeadings 没有任何标题时整个文档成为单个OTHER块
func TestPartitionNoHeadings(t *testing.T) {
	lines := []string{
		"just some text without structure",
		"more unstructured text",
	}

	blocks := NewSectionParser().Partition(lines)
	require.Len(t, blocks, 1)
	assert.Equal(t, types.SectionOther, blocks[0].Label)
	assert.Empty(t, blocks[0].Heading)
}

// TestPartitionHeadingShape 形态不符的行不会被当成标题
func TestPartitionHeadingShape(t *testing.T) {
	notHeadings := []string{
		// 小写、非冒号结尾
		"education is important to me",
		// 超过4个词
		"My Education And Work Experience Overview Page",
		// 普通正文
		"studied computer science in college",
	}
	for _, line := range notHeadings {
		_, ok := NewSectionParser().classifyHeading(line)
		assert.False(t, ok, "不应识别为标题: %q", line)
	}
}

// TestPartitionEmptySection 标题后内容为空的章节仍然保留
func TestPartitionEmptySection(t *testing.T) {
	blocks := NewSectionParser().Partition([]string{"Skills"})
	require.Len(t, blocks, 1)
	assert.Equal(t, types.SectionSkills, blocks[0].Label)
	assert.Empty(t, blocks[0].RawText)
}

// TestCleanLines 测试文本清洗：统一换行、压缩空白、去空行
func TestCleanLines(t *testing.T) {
	text := "Line  one\r\n\r\n  Line\ttwo  \rLine three\n\n"
	lines := CleanLines(text)
	assert.Equal(t, []string{"Line one", "Line two", "Line three"}, lines)
}
