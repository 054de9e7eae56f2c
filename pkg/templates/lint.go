package templates

import (
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontMatterDelim = "---"

// Lint checks that rendered content still parses where the hosting platform
// expects YAML. Answers are free text, so a problem is reported as a warning
// and never stops generation.
func Lint(filePath, content string) []string {
	switch strings.ToLower(path.Ext(filePath)) {
	case ".yml", ".yaml":
		return lintYAML(filePath, content)
	case ".md":
		matter, ok := frontMatter(content)
		if !ok {
			return nil
		}
		return lintYAML(filePath+" (front matter)", matter)
	}
	return nil
}

func lintYAML(label, content string) []string {
	var doc interface{}
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return []string{fmt.Sprintf("%s: invalid YAML: %v", label, err)}
	}
	return nil
}

// frontMatter returns the block between a leading "---" line and the next one
func frontMatter(content string) (string, bool) {
	lines := strings.SplitAfter(content, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r\n") != frontMatterDelim {
		return "", false
	}
	var b strings.Builder
	for _, line := range lines[1:] {
		if strings.TrimRight(line, "\r\n") == frontMatterDelim {
			return b.String(), true
		}
		b.WriteString(line)
	}
	return "", false
}
