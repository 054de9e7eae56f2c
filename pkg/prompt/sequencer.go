package prompt

import (
	"io"

	"github.com/arthur-debert/commhealth/pkg/logging"
	"github.com/rs/zerolog"
)

// Sequencer asks a fixed list of questions, strictly in order
type Sequencer struct {
	driver    Driver
	questions []Question
	released  bool
	logger    zerolog.Logger
}

// NewSequencer creates a sequencer over driver for the given questions
func NewSequencer(driver Driver, questions []Question) *Sequencer {
	return &Sequencer{
		driver:    driver,
		questions: questions,
		logger:    logging.GetLogger("prompt.sequencer"),
	}
}

// Run asks every question and returns the completed AnswerSet. Any driver
// error aborts the sequence and no answers are returned. The driver is
// released before Run returns, on success and failure alike.
func (s *Sequencer) Run() (answers AnswerSet, err error) {
	defer func() {
		if releaseErr := s.release(); releaseErr != nil && err == nil {
			answers, err = AnswerSet{}, releaseErr
		}
	}()

	if err := s.driver.Notify(MsgHeader); err != nil {
		return AnswerSet{}, err
	}

	values := make(map[string]string, len(s.questions))
	for i, q := range s.questions {
		if i > 0 {
			if err := s.driver.Notify(MsgSeparator); err != nil {
				return AnswerSet{}, err
			}
		}

		answer, err := s.ask(q)
		if err != nil {
			s.logger.Debug().Err(err).Str("question", q.ID).Msg("Prompt sequence aborted")
			return AnswerSet{}, err
		}
		values[q.ID] = answer
	}

	s.logger.Info().Int("answers", len(values)).Msg("Prompt sequence complete")
	return NewAnswerSet(values), nil
}

// ask repeats q until it gets an acceptable answer. Only the exact empty
// string is rejected, and only for mandatory questions.
func (s *Sequencer) ask(q Question) (string, error) {
	for attempt := 1; ; attempt++ {
		answer, err := s.driver.Ask(q)
		if err != nil {
			return "", err
		}

		if q.Mandatory && answer == "" {
			s.logger.Debug().Str("question", q.ID).Int("attempt", attempt).Msg("Mandatory question left empty")
			if err := s.driver.Notify(MsgMandatory); err != nil {
				return "", err
			}
			continue
		}

		s.logger.Debug().Str("question", q.ID).Int("length", len(answer)).Msg("Answer recorded")
		return answer, nil
	}
}

func (s *Sequencer) release() error {
	if s.released {
		return nil
	}
	s.released = true
	if closer, ok := s.driver.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
