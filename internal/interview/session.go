package interview

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrSessionComplete is returned by Submit and Retake after the last
	// answer has been accepted. It signals a caller bug, never a user error.
	ErrSessionComplete = errors.New("session is already complete")

	// ErrSessionIncomplete is returned by Summarize while questions remain.
	ErrSessionIncomplete = errors.New("session is not complete yet")
)

// Session owns one candidate's interview state: the fixed question set,
// the append-only answer sequence and the cursor. It is mutated only
// through Record, Retake and Submit, and becomes immutable once the
// cursor reaches the question count. One session is exclusively owned by
// one interview; sessions share nothing but the read-only bank.
type Session struct {
	ID        string
	Candidate *Candidate
	Questions []*Question
	Answers   []*Answer

	evaluator *Evaluator
	cursor    int
	pending   string
}

// NewSession starts a session over the selected questions.
func NewSession(candidate *Candidate, questions []*Question, evaluator *Evaluator) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Candidate: candidate,
		Questions: questions,
		evaluator: evaluator,
	}
}

// Current returns the question awaiting an answer, or nil when done.
func (s *Session) Current() *Question {
	if s.Done() {
		return nil
	}
	return s.Questions[s.cursor]
}

// Done reports whether every question has been answered.
func (s *Session) Done() bool {
	return s.cursor == len(s.Questions)
}

// Progress returns the number of answered questions and the total.
func (s *Session) Progress() (answered, total int) {
	return s.cursor, len(s.Questions)
}

// Record stores a transient transcript for the current question. It is
// replaced by the next Record, discarded by Retake and consumed by Submit.
func (s *Session) Record(transcript string) error {
	if s.Done() {
		return ErrSessionComplete
	}
	s.pending = transcript
	return nil
}

// Pending returns the transient transcript for the current question.
func (s *Session) Pending() string {
	return s.pending
}

// Retake discards the transient transcript without creating an answer or
// advancing the cursor.
func (s *Session) Retake() error {
	if s.Done() {
		return ErrSessionComplete
	}
	s.pending = ""
	return nil
}

// Submit evaluates the transcript against the current question, appends
// the answer and advances the cursor. An empty transcript is rejected
// with no state change.
func (s *Session) Submit(transcript string) (*Answer, error) {
	if s.Done() {
		return nil, ErrSessionComplete
	}
	if strings.TrimSpace(transcript) == "" {
		return nil, ErrEmptyTranscript
	}

	answer, err := s.evaluator.Evaluate(s.Current(), transcript)
	if err != nil {
		return nil, err
	}

	s.Answers = append(s.Answers, answer)
	s.cursor++
	s.pending = ""

	return answer, nil
}

// Summarize rolls the completed session up into a summary. It fails
// while answers are still outstanding.
func (s *Session) Summarize() (*Summary, error) {
	if !s.Done() {
		return nil, ErrSessionIncomplete
	}
	return Summarize(s.Questions, s.Answers)
}
