// Package session drives one quiz attempt on the client side: it owns the
// answer buffer, the current-question cursor, and the countdown, and it
// produces exactly one submission per attempt.
package session

import (
	"errors"
	"sync"
	"time"
)

// NoSelection marks an unanswered question slot
const NoSelection = -1

// State is the lifecycle state of a session
type State int

const (
	StateLoading State = iota
	StateInProgress
	StateSubmitting
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateInProgress:
		return "in_progress"
	case StateSubmitting:
		return "submitting"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

var (
	ErrInvalidQuiz    = errors.New("quiz has no questions")
	ErrNotInProgress  = errors.New("session is not in progress")
	ErrAlreadyStarted = errors.New("session already started")
	ErrNotFailed      = errors.New("session has not failed")
)

// Question is a sanitized question as served by the quiz API
type Question struct {
	QuestionText string   `json:"questionText"`
	Options      []string `json:"options"`
}

// Quiz is the sanitized quiz a session runs against. Immutable once fetched.
type Quiz struct {
	ID           uint       `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	PassingScore int        `json:"passingScore"`
	Duration     int        `json:"duration"` // whole minutes
	Questions    []Question `json:"questions"`
}

// Submission is the payload handed to the grading boundary
type Submission struct {
	QuizID    uint  `json:"quizId"`
	Answers   []int `json:"answers"`
	TimeSpent int   `json:"timeSpent"`
}

// Result is the graded outcome returned by the server
type Result struct {
	ID             uint      `json:"id"`
	Score          int       `json:"score"`
	CorrectAnswers int       `json:"correctAnswers"`
	TotalQuestions int       `json:"totalQuestions"`
	Passed         bool      `json:"passed"`
	TimeSpent      int       `json:"timeSpent"`
	Date           time.Time `json:"date"`
	Quiz           struct {
		ID           uint   `json:"id"`
		Title        string `json:"title"`
		PassingScore int    `json:"passingScore"`
	} `json:"quiz"`
}

// Submitter is the grading-engine boundary a session submits through
type Submitter interface {
	Submit(submission Submission) (*Result, error)
}

// Session is one user's progress through a fetched quiz
type Session struct {
	mu sync.Mutex

	quiz      Quiz
	state     State
	current   int
	answers   []int
	remaining int // seconds
	countdown *Countdown

	submitter Submitter
	result    *Result
	lastErr   error
}

// NewSession creates a session in the Loading state
func NewSession(submitter Submitter) *Session {
	return &Session{
		state:     StateLoading,
		submitter: submitter,
	}
}

// Start constructs the attempt for a fetched quiz and moves to InProgress.
// A quiz with zero questions is rejected.
func (s *Session) Start(quiz Quiz) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateLoading {
		return ErrAlreadyStarted
	}
	if len(quiz.Questions) == 0 {
		return ErrInvalidQuiz
	}

	s.quiz = quiz
	s.answers = make([]int, len(quiz.Questions))
	for i := range s.answers {
		s.answers[i] = NoSelection
	}
	s.current = 0
	s.remaining = quiz.Duration * 60
	s.state = StateInProgress

	return nil
}

// StartTimer starts the owned countdown, one tick per second. It is a no-op
// if a countdown is already running.
func (s *Session) StartTimer() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress || s.countdown != nil {
		return
	}
	s.countdown = newCountdown(time.Second, func() { s.Tick() })
}

// SelectAnswer records the chosen option for the current question. Outside
// InProgress, or with an option index out of range, the call is a no-op: UI
// races must not be treated as errors.
func (s *Session) SelectAnswer(optionIndex int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress {
		return
	}
	if optionIndex < 0 || optionIndex >= len(s.quiz.Questions[s.current].Options) {
		return
	}

	s.answers[s.current] = optionIndex
}

// Advance moves to the next question, clamped at the last one
func (s *Session) Advance() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress {
		return
	}
	if s.current < len(s.quiz.Questions)-1 {
		s.current++
	}
}

// Retreat moves to the previous question, clamped at the first one
func (s *Session) Retreat() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress {
		return
	}
	if s.current > 0 {
		s.current--
	}
}

// Tick decrements the remaining time by one second. When the countdown
// reaches zero while still InProgress, submission is forced; the user cannot
// prevent it.
func (s *Session) Tick() {
	s.mu.Lock()

	if s.state != StateInProgress {
		s.mu.Unlock()
		return
	}

	if s.remaining > 0 {
		s.remaining--
	}
	timedOut := s.remaining == 0

	s.mu.Unlock()

	if timedOut {
		// Submit re-checks state under the lock, so a racing manual submit
		// still yields exactly one submission.
		s.Submit() //nolint:errcheck
	}
}

// Submit packages the answer buffer and hands it to the grading boundary.
// Valid from InProgress only; while Submitting, re-entrant calls are ignored,
// so at most one submission is outstanding per session. On failure the
// session moves to Failed with the buffer intact so the caller may Retry.
func (s *Session) Submit() error {
	s.mu.Lock()
	if s.state != StateInProgress {
		s.mu.Unlock()
		return nil
	}
	s.state = StateSubmitting
	s.stopCountdownLocked()
	submission := s.buildSubmissionLocked()
	s.mu.Unlock()

	return s.deliver(submission)
}

// Retry re-sends the preserved buffer after a failed submission
func (s *Session) Retry() error {
	s.mu.Lock()
	if s.state != StateFailed {
		s.mu.Unlock()
		return ErrNotFailed
	}
	s.state = StateSubmitting
	submission := s.buildSubmissionLocked()
	s.mu.Unlock()

	return s.deliver(submission)
}

// Abandon discards an in-progress attempt and cancels the countdown
func (s *Session) Abandon() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress {
		return
	}
	s.stopCountdownLocked()
	s.state = StateFailed
	s.lastErr = errors.New("attempt abandoned")
}

func (s *Session) deliver(submission Submission) error {
	result, err := s.submitter.Submit(submission)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.state = StateFailed
		s.lastErr = err
		return err
	}

	s.state = StateCompleted
	s.result = result
	return nil
}

func (s *Session) buildSubmissionLocked() Submission {
	answers := make([]int, len(s.answers))
	copy(answers, s.answers)

	return Submission{
		QuizID:    s.quiz.ID,
		Answers:   answers,
		TimeSpent: s.quiz.Duration*60 - s.remaining,
	}
}

func (s *Session) stopCountdownLocked() {
	if s.countdown != nil {
		s.countdown.Stop()
		s.countdown = nil
	}
}

// State returns the current lifecycle state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CurrentQuestion returns the question under the cursor and its index
func (s *Session) CurrentQuestion() (Question, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quiz.Questions[s.current], s.current
}

// Answers returns a copy of the answer buffer
func (s *Session) Answers() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	answers := make([]int, len(s.answers))
	copy(answers, s.answers)
	return answers
}

// Remaining returns the remaining time in seconds
func (s *Session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}

// Answered returns how many questions have a selection
func (s *Session) Answered() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, a := range s.answers {
		if a != NoSelection {
			count++
		}
	}
	return count
}

// Result returns the graded outcome once the session is Completed
func (s *Session) Result() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Err returns the error that moved the session to Failed, if any
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
