package testutil

import (
	"strings"

	"github.com/arthur-debert/commhealth/pkg/prompt"
)

// sample holds one answer per question, in question order
var sample = []string{
	"Jane Doe",
	"MIT",
	"jane",
	"jim",
	"joe",
	"jill",
	"Acme",
	"https://social.example/acme",
	"jane@example.com",
	"alice, bob",
	"janedoe",
	"npm/acme",
	"https://a.example, https://b.example",
}

// AnswerLines returns the sample answers in the order they are asked
func AnswerLines() []string {
	out := make([]string, len(sample))
	copy(out, sample)
	return out
}

// AnswerInput returns the sample answers as newline terminated input
func AnswerInput() string {
	return strings.Join(sample, "\n") + "\n"
}

// SampleAnswers returns the sample answers keyed by question ID
func SampleAnswers() prompt.AnswerSet {
	values := make(map[string]string, len(sample))
	for i, q := range prompt.Questions() {
		values[q.ID] = sample[i]
	}
	return prompt.NewAnswerSet(values)
}

// Answers returns SampleAnswers with the given IDs replaced
func Answers(overrides map[string]string) prompt.AnswerSet {
	base := SampleAnswers()
	values := make(map[string]string, base.Len())
	for _, id := range base.IDs() {
		values[id] = base.Get(id)
	}
	for id, v := range overrides {
		values[id] = v
	}
	return prompt.NewAnswerSet(values)
}
