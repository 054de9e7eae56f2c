// Package prompt collects the answers that drive file generation.
//
// A Sequencer walks a fixed, ordered list of Questions over a Driver and
// produces an AnswerSet. Mandatory questions are re-asked until the raw
// answer is non-empty; optional questions accept anything, including the
// empty string. The driver is released once, after the last answer.
//
// Two drivers are provided: LineDriver reads plain lines from any io.Reader
// and is what tests and piped input use; SurveyDriver asks through
// github.com/AlecAivazis/survey/v2 when attached to a terminal.
package prompt
