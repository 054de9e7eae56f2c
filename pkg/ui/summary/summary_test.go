package summary

import (
	"strings"
	"testing"

	"github.com/arthur-debert/commhealth/pkg/generate"
	"github.com/stretchr/testify/assert"
)

func sampleResult() *generate.Result {
	return &generate.Result{
		Root:         "/project",
		DirsCreated:  []string{".github", "docs"},
		DirsExisting: []string{},
		Files: []generate.FileResult{
			{Path: ".github/FUNDING.yml", Bytes: 64},
			{Path: "docs/SUPPORT.md", Bytes: 900, Overwritten: true},
		},
		Warnings: []string{"QUESTION.md: invalid YAML"},
	}
}

func TestBanner(t *testing.T) {
	banner := Banner()
	assert.True(t, strings.HasPrefix(banner, "\n⋆⋅☆⋅⋆"))
	assert.True(t, strings.HasSuffix(banner, "☆⋅⋆\n\n"))
	assert.Contains(t, banner, "\n\n\n"+MsgSuccess+"\n\n\n")
	assert.Contains(t, banner, "⭐ my repository on GitHub: https://github.com\n")
	assert.Equal(t, 2, strings.Count(banner, StarLine))
}

func TestLines(t *testing.T) {
	assert.Equal(t, []string{
		"created .github/",
		"created docs/",
		"created .github/FUNDING.yml (64 bytes)",
		"overwritten docs/SUPPORT.md (900 bytes)",
		"warning: QUESTION.md: invalid YAML",
	}, Lines(sampleResult()))
}

func TestLinesDryRun(t *testing.T) {
	result := sampleResult()
	result.DryRun = true

	lines := Lines(result)
	assert.Equal(t, "would create .github/", lines[0])
	assert.Equal(t, "would create .github/FUNDING.yml (64 bytes)", lines[2])
	assert.Equal(t, "would overwrite docs/SUPPORT.md (900 bytes)", lines[3])
}

func TestMarkdown(t *testing.T) {
	md := Markdown(sampleResult())
	assert.Contains(t, md, "Root: `/project`")
	assert.Contains(t, md, "Directories created: `.github`, `docs`")
	assert.Contains(t, md, "| `docs/SUPPORT.md` | 900 | overwritten |")
	assert.Contains(t, md, "### Warnings\n\n- QUESTION.md: invalid YAML\n")
}

func TestMarkdownWithoutExtras(t *testing.T) {
	result := sampleResult()
	result.DirsCreated = nil
	result.Warnings = nil

	md := Markdown(result)
	assert.NotContains(t, md, "Directories created")
	assert.NotContains(t, md, "Warnings")
}
