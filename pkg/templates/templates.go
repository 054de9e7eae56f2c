package templates

import (
	"bytes"
	"embed"
	"encoding/json"
	"strings"
	"text/template"

	"github.com/arthur-debert/commhealth/pkg/errors"
	"github.com/arthur-debert/commhealth/pkg/prompt"
)

//go:embed bodies/*.tmpl
var bodies embed.FS

var funcs = template.FuncMap{
	"join":      strings.Join,
	"jsonArray": jsonArray,
}

var parsed = template.Must(template.New("bodies").Funcs(funcs).ParseFS(bodies, "bodies/*.tmpl"))

// Output describes one output file: the body it renders from and where it goes
// relative to the destination root.
type Output struct {
	Name   string
	Path   string
	Render func(prompt.AnswerSet) (string, error)
}

// Relative output directories
const (
	DirGitHub     = ".github"
	DirDiscussion = ".github/DISCUSSION_TEMPLATE"
	DirIssue      = ".github/ISSUE_TEMPLATE"
	DirDocs       = "docs"
)

var table = []struct {
	body string
	path string
}{
	{"announcements.yml.tmpl", DirDiscussion + "/ANNOUNCEMENTS.yml"},
	{"ideas.yml.tmpl", DirDiscussion + "/IDEAS.yml"},
	{"bug_report.yml.tmpl", DirIssue + "/BUG_REPORT.yml"},
	{"feature_request.md.tmpl", DirIssue + "/FEATURE_REQUEST.md"},
	{"enhancement_request.yml.tmpl", DirIssue + "/ENHANCEMENT_REQUEST.yml"},
	{"question.md.tmpl", DirIssue + "/QUESTION.md"},
	{"issue_config.yml.tmpl", DirIssue + "/config.yml"},
	{"pull_request_template.md.tmpl", DirGitHub + "/PULL_REQUEST_TEMPLATE.md"},
	{"funding.yml.tmpl", DirGitHub + "/FUNDING.yml"},
	{"security.md.tmpl", DirGitHub + "/SECURITY.md"},
	{"contributing.md.tmpl", DirDocs + "/CONTRIBUTING.md"},
	{"governance.md.tmpl", DirDocs + "/GOVERNANCE.md"},
	{"support.md.tmpl", DirDocs + "/SUPPORT.md"},
	{"code_of_conduct.md.tmpl", DirDocs + "/CODE_OF_CONDUCT.md"},
}

// Dirs returns the output directories, parents before children
func Dirs() []string {
	return []string{DirGitHub, DirDiscussion, DirIssue, DirDocs}
}

// All returns the 14 outputs in write order
func All() []Output {
	outs := make([]Output, 0, len(table))
	for _, entry := range table {
		body := entry.body
		outs = append(outs, Output{
			Name: strings.TrimSuffix(body, ".tmpl"),
			Path: entry.path,
			Render: func(answers prompt.AnswerSet) (string, error) {
				return render(body, answers)
			},
		})
	}
	return outs
}

// SplitList splits a comma separated answer and trims each element.
// An empty answer yields a single empty element.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

// values is what the bodies see at render time
type values struct {
	AuthorName          string
	ProjectLicense      string
	BugAssignee         string
	EnhancementAssignee string
	FeatureAssignee     string
	QuestionAssignee    string
	OrgName             string
	SocialMedia         string
	Email               string
	GitHubUsers         []string
	PatreonUsername     string
	TideliftPackage     string
	CustomURLs          []string
}

func newValues(answers prompt.AnswerSet) values {
	return values{
		AuthorName:          answers.Get(prompt.AuthorName),
		ProjectLicense:      answers.Get(prompt.ProjectLicense),
		BugAssignee:         answers.Get(prompt.BugAssignee),
		EnhancementAssignee: answers.Get(prompt.EnhancementAssignee),
		FeatureAssignee:     answers.Get(prompt.FeatureAssignee),
		QuestionAssignee:    answers.Get(prompt.QuestionAssignee),
		OrgName:             answers.Get(prompt.OrgName),
		SocialMedia:         answers.Get(prompt.SocialMedia),
		Email:               answers.Get(prompt.Email),
		GitHubUsers:         SplitList(answers.Get(prompt.GitHubUsernames)),
		PatreonUsername:     answers.Get(prompt.PatreonUsername),
		TideliftPackage:     answers.Get(prompt.TideliftPackage),
		CustomURLs:          SplitList(answers.Get(prompt.CustomFunding)),
	}
}

func render(body string, answers prompt.AnswerSet) (string, error) {
	var buf bytes.Buffer
	if err := parsed.ExecuteTemplate(&buf, body, newValues(answers)); err != nil {
		return "", errors.Wrapf(err, errors.ErrRender, "failed to render %s", body)
	}
	return buf.String(), nil
}

// jsonArray renders items as a compact JSON array without HTML escaping.
// U+2028 and U+2029 are kept raw, as JavaScript's JSON.stringify does.
func jsonArray(items []string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(items); err != nil {
		return "", err
	}
	return unescapeLineSeparators(strings.TrimSuffix(buf.String(), "\n")), nil
}

// unescapeLineSeparators turns \u2028 and \u2029 escapes back into runes.
// Escaped backslashes are copied as pairs so `\\u2028` stays literal text.
func unescapeLineSeparators(s string) string {
	if !strings.Contains(s, `\u202`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		switch {
		case strings.HasPrefix(s[i:], `\u2028`):
			b.WriteRune('\u2028')
			i += len(`\u2028`) - 1
		case strings.HasPrefix(s[i:], `\u2029`):
			b.WriteRune('\u2029')
			i += len(`\u2029`) - 1
		default:
			b.WriteString(s[i : i+2])
			i++
		}
	}
	return b.String()
}
