package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-extract-go/internal/types"
)

func educationBlocks(lines ...string) []types.TextBlock {
	return NewSectionParser().Partition(append([]string{"Education"}, lines...))
}

// TestEducationSingleLineEntry 院校、学位、专业、年份、GPA挤在同一行的紧凑写法
func TestEducationSingleLineEntry(t *testing.T) {
	blocks := educationBlocks(
		"University of Wisconsin-Madison, B.S. Computer Science, 2024, GPA: 3.7",
	)

	result := NewEducationExtractor().Extract(blocks)
	require.Len(t, result, 1)

	edu := result[0]
	assert.Equal(t, "University of Wisconsin-Madison", edu.Institution)
	assert.Equal(t, "B.S", edu.Degree)
	require.NotNil(t, edu.Field)
	assert.Equal(t, "Computer Science", *edu.Field)
	require.NotNil(t, edu.GraduationYear)
	assert.Equal(t, 2024, *edu.GraduationYear)
	require.NotNil(t, edu.GPA)
	assert.InDelta(t, 3.7, *edu.GPA, 1e-9)
}

// TestEducationMultiLineEntry 院校、学位、年份分行书写的展开写法
func TestEducationMultiLineEntry(t *testing.T) {
	blocks := educationBlocks(
		"Boston University",
		"Master of Science in Data Science",
		"Graduated May 2023",
	)

	result := NewEducationExtractor().Extract(blocks)
	require.Len(t, result, 1)

	edu := result[0]
	assert.Equal(t, "Boston University", edu.Institution)
	assert.Equal(t, "Master", edu.Degree)
	require.NotNil(t, edu.Field)
	assert.Equal(t, "Data Science", *edu.Field)
	require.NotNil(t, edu.GraduationYear)
	assert.Equal(t, 2023, *edu.GraduationYear)
	assert.Nil(t, edu.GPA)
}

// TestEducationLatestYearWins 同一条目出现多个年份时取最晚的（在读区间的毕业年）
func TestEducationLatestYearWins(t *testing.T) {
	blocks := educationBlocks(
		"University of Illinois",
		"B.S. Computer Engineering, 2019 - 2023",
	)

	result := NewEducationExtractor().Extract(blocks)
	require.Len(t, result, 1)
	require.NotNil(t, result[0].GraduationYear)
	assert.Equal(t, 2023, *result[0].GraduationYear)
}

// TestEducationGPABounds 超出合法区间的GPA被丢弃，带分母的写法取分子
func TestEducationGPABounds(t *testing.T) {
	t.Run("超出上限", func(t *testing.T) {
		blocks := educationBlocks("Springfield College, B.A. History, GPA: 7.8")
		result := NewEducationExtractor().Extract(blocks)
		require.Len(t, result, 1)
		assert.Nil(t, result[0].GPA)
	})

	t.Run("年份上限", func(t *testing.T) {
		blocks := educationBlocks("Springfield College, B.A. History, Expected 2100")
		result := NewEducationExtractor().Extract(blocks)
		require.Len(t, result, 1)
		require.NotNil(t, result[0].GraduationYear)
		assert.Equal(t, 2100, *result[0].GraduationYear)
	})

	t.Run("带分母", func(t *testing.T) {
		blocks := educationBlocks("Springfield College, B.A. History, GPA 3.9/4.0")
		result := NewEducationExtractor().Extract(blocks)
		require.Len(t, result, 1)
		require.NotNil(t, result[0].GPA)
		assert.InDelta(t, 3.9, *result[0].GPA, 1e-9)
	})
}

// TestEducationMultipleEntries 多所院校各自成条，年份齐全时按最近优先排序
func TestEducationMultipleEntries(t *testing.T) {
	blocks := educationBlocks(
		"Alpha College",
		"B.A. History, 2018",
		"Beta University",
		"M.S. Economics, 2024",
	)

	result := NewEducationExtractor().Extract(blocks)
	require.Len(t, result, 2)
	assert.Equal(t, "Beta University", result[0].Institution)
	assert.Equal(t, "Alpha College", result[1].Institution)
}

// TestEducationDocumentOrderWhenYearMissing 有条目缺年份时不排序，保持文档顺序
func TestEducationDocumentOrderWhenYearMissing(t *testing.T) {
	blocks := educationBlocks(
		"Alpha College",
		"B.A. History, 2018",
		"Beta University",
		"M.S. Economics",
	)

	result := NewEducationExtractor().Extract(blocks)
	require.Len(t, result, 2)
	assert.Equal(t, "Alpha College", result[0].Institution)
	assert.Equal(t, "Beta University", result[1].Institution)
}

// TestEducationFallbackToFullText 没有EDUCATION章节时回退到全文扫描
func TestEducationFallbackToFullText(t *testing.T) {
	blocks := NewSectionParser().Partition([]string{
		"John Smith",
		"Springfield College, B.A. Psychology, 2020",
		"Skills",
		"Python",
	})

	result := NewEducationExtractor().Extract(blocks)
	require.Len(t, result, 1)
	assert.Equal(t, "Springfield College", result[0].Institution)
	assert.Equal(t, "B.A", result[0].Degree)
}

// TestEducationNothingFound 找不到院校也找不到学位时返回空序列而不是nil
func TestEducationNothingFound(t *testing.T) {
	blocks := educationBlocks("worked on various projects")

	result := NewEducationExtractor().Extract(blocks)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}
