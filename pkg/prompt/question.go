package prompt

import (
	"strings"
)

// Question identifiers. Templates look answers up by these, never by position.
const (
	AuthorName          = "authorName"
	ProjectLicense      = "projectLicense"
	BugAssignee         = "bugAssignee"
	EnhancementAssignee = "enhancementAssignee"
	FeatureAssignee     = "featureAssignee"
	QuestionAssignee    = "questionAssignee"
	OrgName             = "orgName"
	SocialMedia         = "socialMedia"
	Email               = "email"
	GitHubUsernames     = "githubUsername"
	PatreonUsername     = "patreonUsername"
	TideliftPackage     = "tideliftPackage"
	CustomFunding       = "customFunding"
)

// Question is a single prompt in the sequence
type Question struct {
	ID        string
	Text      string
	Mandatory bool
}

// Label returns the question text without the input arrow
func (q Question) Label() string {
	return strings.TrimSpace(strings.TrimSuffix(q.Text, inputArrow))
}

var questions = []Question{
	{ID: AuthorName, Text: mandatoryMark + "What is the repository owner's name?" + inputArrow, Mandatory: true},
	{ID: ProjectLicense, Text: mandatoryMark + "What is the project license? (e.g., MIT, Apache, GPL):" + inputArrow, Mandatory: true},
	{ID: BugAssignee, Text: mandatoryMark + "Whom would you like to assign the raised bugs to?" + inputArrow, Mandatory: true},
	{ID: EnhancementAssignee, Text: mandatoryMark + "Who should be assigned the enhancement requests?" + inputArrow, Mandatory: true},
	{ID: FeatureAssignee, Text: mandatoryMark + "To whom would you like to assign the feature requests?" + inputArrow, Mandatory: true},
	{ID: QuestionAssignee, Text: mandatoryMark + "Who will be responsible for addressing questions related to the project?" + inputArrow, Mandatory: true},
	{ID: OrgName, Text: mandatoryMark + "What is your organization name?" + inputArrow, Mandatory: true},
	{ID: SocialMedia, Text: mandatoryMark + "What is your social media URL to connect?" + inputArrow, Mandatory: true},
	{ID: Email, Text: mandatoryMark + "Please provide the email address for developers and contributors to contact you:" + inputArrow, Mandatory: true},
	{ID: GitHubUsernames, Text: "Please provide the GitHub username(s) for funding (comma separated) or leave blank if none:" + inputArrow},
	{ID: PatreonUsername, Text: "Enter the Patreon username for funding (leave blank if none):" + inputArrow},
	{ID: TideliftPackage, Text: "Enter the Tidelift package name (e.g., npm/package-name) for funding (leave blank if none):" + inputArrow},
	{ID: CustomFunding, Text: "Enter any custom funding URLs (comma separated) or leave blank if none:" + inputArrow},
}

// Questions returns the fixed question sequence in the order it is asked.
// The returned slice is a copy.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}
