package prompt

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/arthur-debert/commhealth/pkg/errors"
)

// Driver abstracts the interactive channel so the sequencer can be tested
// without a real terminal.
type Driver interface {
	// Ask shows q and returns exactly one raw answer
	Ask(q Question) (string, error)
	// Notify writes cosmetic text between questions
	Notify(msg string) error
}

// LineDriver reads one line per question from an io.Reader
type LineDriver struct {
	in     *bufio.Reader
	out    io.Writer
	closed bool
}

// NewLineDriver creates a driver over plain reader/writer pairs
func NewLineDriver(in io.Reader, out io.Writer) *LineDriver {
	return &LineDriver{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Ask writes the question text and reads a single line. Only the line
// terminator is stripped.
func (d *LineDriver) Ask(q Question) (string, error) {
	if d.closed {
		return "", errors.New(errors.ErrInputClosed, "prompt driver already released")
	}

	if _, err := io.WriteString(d.out, q.Text); err != nil {
		return "", errors.Wrap(err, errors.ErrPromptIO, "failed to write prompt")
	}

	line, err := d.in.ReadString('\n')
	if err != nil {
		if !stderrors.Is(err, io.EOF) {
			return "", errors.Wrap(err, errors.ErrPromptIO, "failed to read answer")
		}
		// A final unterminated line still counts as an answer
		if line == "" {
			return "", errors.Newf(errors.ErrInputClosed, "input closed before %q was answered", q.ID).
				WithDetail("question", q.ID)
		}
	}

	return trimEOL(line), nil
}

// Notify writes msg followed by a newline
func (d *LineDriver) Notify(msg string) error {
	if _, err := io.WriteString(d.out, msg+"\n"); err != nil {
		return errors.Wrap(err, errors.ErrPromptIO, "failed to write message")
	}
	return nil
}

// Close releases the driver; later calls to Ask fail
func (d *LineDriver) Close() error {
	d.closed = true
	return nil
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// SurveyDriver asks questions through survey on a real terminal
type SurveyDriver struct {
	in     terminal.FileReader
	out    terminal.FileWriter
	errOut io.Writer
}

// NewSurveyDriver creates a terminal driver
func NewSurveyDriver(in terminal.FileReader, out terminal.FileWriter, errOut io.Writer) *SurveyDriver {
	return &SurveyDriver{in: in, out: out, errOut: errOut}
}

// Ask renders q as a survey input. Empty answers are returned as-is; the
// sequencer decides whether to ask again.
func (d *SurveyDriver) Ask(q Question) (string, error) {
	var answer string
	input := &survey.Input{Message: q.Label()}
	if q.Mandatory {
		input.Help = "This question is mandatory."
	}

	if err := survey.AskOne(input, &answer, survey.WithStdio(d.in, d.out, d.errOut)); err != nil {
		return "", translateSurveyErr(err)
	}
	return answer, nil
}

// Notify writes msg to the terminal
func (d *SurveyDriver) Notify(msg string) error {
	if _, err := fmt.Fprintln(d.out, msg); err != nil {
		return errors.Wrap(err, errors.ErrPromptIO, "failed to write message")
	}
	return nil
}

func translateSurveyErr(err error) error {
	if stderrors.Is(err, terminal.InterruptErr) {
		return errors.Wrap(err, errors.ErrAborted, "prompt interrupted")
	}
	if stderrors.Is(err, io.EOF) {
		return errors.Wrap(err, errors.ErrInputClosed, "input closed")
	}
	return errors.Wrap(err, errors.ErrPromptIO, "prompt failed")
}
