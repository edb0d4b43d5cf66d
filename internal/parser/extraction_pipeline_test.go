package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-extract-go/internal/config"
	"resume-extract-go/internal/types"
)

// TestFragmentPipeline 位置片段走完"版面重建→章节切分→字段提取"的完整链路
func TestFragmentPipeline(t *testing.T) {
	// 模拟单栏PDF的片段流，行内故意拆成多个片段、顺序打乱
	fragments := []types.PositionedFragment{
		frag("mgdomingo@wisc.edu", 50, 70, 0),
		frag("Matthew Domingo", 50, 50, 0),
		frag("EDUCATION", 50, 100, 0),
		frag("University of Wisconsin-Madison", 50, 120, 0),
		frag("B.S. Computer Science, 2024", 50, 140, 0),
		frag("SKILLS", 50, 170, 0),
		frag("SQL", 95, 190, 0),
		frag("Python,", 50, 190, 0),
	}

	lines := NewLayoutParser(config.DefaultConfig().Parser).Reconstruct(fragments)
	require.Equal(t, []string{
		"Matthew Domingo",
		"mgdomingo@wisc.edu",
		"EDUCATION",
		"University of Wisconsin-Madison",
		"B.S. Computer Science, 2024",
		"SKILLS",
		"Python, SQL",
	}, lines)

	blocks := NewSectionParser().Partition(lines)
	require.Len(t, blocks, 3)
	assert.Equal(t, types.SectionContact, blocks[0].Label)
	assert.Equal(t, types.SectionEducation, blocks[1].Label)
	assert.Equal(t, types.SectionSkills, blocks[2].Label)

	contact := NewContactExtractor().Extract(blocks)
	require.NotNil(t, contact.Name)
	assert.Equal(t, "Matthew Domingo", *contact.Name)
	require.NotNil(t, contact.Email)
	assert.Equal(t, "mgdomingo@wisc.edu", *contact.Email)

	education := NewEducationExtractor().Extract(blocks)
	require.Len(t, education, 1)
	assert.Equal(t, "University of Wisconsin-Madison", education[0].Institution)
	assert.Equal(t, "B.S", education[0].Degree)
	require.NotNil(t, education[0].GraduationYear)
	assert.Equal(t, 2024, *education[0].GraduationYear)

	skills := NewSkillsExtractor().Extract(blocks)
	assert.Equal(t, []string{"Python", "SQL"}, skills)
}
