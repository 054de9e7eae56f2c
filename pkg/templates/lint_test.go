package templates

import (
	"testing"

	"github.com/arthur-debert/commhealth/pkg/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLintRenderedOutputsAreClean(t *testing.T) {
	for _, o := range All() {
		out, err := o.Render(sampleAnswers())
		require.NoError(t, err)
		assert.Empty(t, Lint(o.Path, out), o.Path)
	}
}

func TestLintBrokenYAML(t *testing.T) {
	warnings := Lint("x/config.yml", "key: [unclosed\n")
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "x/config.yml: invalid YAML")
}

func TestLintFrontMatter(t *testing.T) {
	answers := prompt.NewAnswerSet(map[string]string{prompt.QuestionAssignee: "a: b"})
	var question Output
	for _, o := range All() {
		if o.Path == ".github/ISSUE_TEMPLATE/QUESTION.md" {
			question = o
		}
	}
	out, err := question.Render(answers)
	require.NoError(t, err)

	warnings := Lint(question.Path, out)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "(front matter)")
}

func TestLintIgnoresPlainMarkdown(t *testing.T) {
	assert.Empty(t, Lint("docs/README.md", "# Title\n\n---\nnot: [yaml\n---\n"))
	assert.Empty(t, Lint("notes.txt", "key: [unclosed"))
}

func TestFrontMatter(t *testing.T) {
	matter, ok := frontMatter("---\nname: x\r\n---\nbody\n")
	require.True(t, ok)
	assert.Equal(t, "name: x\r\n", matter)

	_, ok = frontMatter("---\nname: x\n")
	assert.False(t, ok)
}
