// Package interview runs a training interview between a trainee and a
// simulated patient. A session is a strict state machine: active while the
// conversation runs, awaiting judgment once concluded, closed after the
// trainee's judgment is recorded.
package interview

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/taldlab/internal/llm"
	"github.com/abhisek/taldlab/internal/persona"
)

// State is the session lifecycle state.
type State string

const (
	StateActive           State = "active"
	StateAwaitingJudgment State = "awaiting_judgment"
	StateClosed           State = "closed"
)

// Speaker identifies who produced a turn.
type Speaker string

const (
	SpeakerTrainee Speaker = "trainee"
	SpeakerPatient Speaker = "patient"
)

// DefaultTurnLimit caps trainee utterances per session.
const DefaultTurnLimit = 20

const (
	replyMaxTokens   = 1024
	replyTemperature = 0.9
)

// Turn is one utterance in the transcript. Sequence starts at 1 and
// increases by one per turn, alternating trainee and patient.
type Turn struct {
	Sequence int
	Speaker  Speaker
	Text     string
	At       time.Time
}

// Judgment is the trainee's final call, one variant per mode.
type Judgment interface {
	isJudgment()
}

// GuidedJudgment names the single item the trainee believes was enacted.
type GuidedJudgment struct {
	ItemID    int
	Rationale string
}

func (GuidedJudgment) isJudgment() {}

// ExploratoryJudgment lists every item the trainee believes was enacted.
type ExploratoryJudgment struct {
	ItemIDs []int
}

func (ExploratoryJudgment) isJudgment() {}

// Session is a single training interview. All methods are safe for
// concurrent use; utterances are processed strictly one at a time.
type Session struct {
	ID        string
	Persona   *persona.Persona
	CreatedAt time.Time

	provider  llm.Provider
	turnLimit int

	mu    sync.Mutex
	state State
	turns []Turn
	// awaitingReply is set when the trainee turn is recorded but the
	// patient reply failed. The next submit retries the reply.
	awaitingReply bool
	judgment      Judgment
}

// Option configures a session.
type Option func(*Session)

// WithTurnLimit overrides the trainee turn budget.
func WithTurnLimit(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.turnLimit = n
		}
	}
}

// NewSession starts an active session for the given persona.
func NewSession(p *persona.Persona, provider llm.Provider, opts ...Option) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		Persona:   p,
		CreatedAt: time.Now(),
		provider:  provider,
		turnLimit: DefaultTurnLimit,
		state:     StateActive,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Transcript returns a copy of the turns recorded so far.
func (s *Session) Transcript() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Judgment returns the recorded judgment, or nil while the session is open.
func (s *Session) Judgment() Judgment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.judgment
}

// TurnLimit returns the trainee turn budget.
func (s *Session) TurnLimit() int {
	return s.turnLimit
}

// SubmitTraineeUtterance records the trainee's utterance and returns the
// patient's reply turn. The lock is held across the provider call, so
// utterances are strictly sequential. When the reply fails, the trainee
// turn stays in the transcript and the next call retries the reply without
// recording a new trainee turn. Once the trainee turn budget is spent the
// session moves to awaiting judgment and ErrTurnLimitReached is returned.
func (s *Session) SubmitTraineeUtterance(ctx context.Context, text string) (*Turn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateActive {
		return nil, &InvalidStateError{Op: "submit utterance", State: s.state}
	}

	if !s.awaitingReply {
		text = strings.TrimSpace(text)
		if text == "" {
			return nil, fmt.Errorf("utterance must not be empty")
		}
		if s.traineeTurnsLocked() >= s.turnLimit {
			s.state = StateAwaitingJudgment
			return nil, ErrTurnLimitReached
		}
		s.turns = append(s.turns, Turn{
			Sequence: len(s.turns) + 1,
			Speaker:  SpeakerTrainee,
			Text:     text,
			At:       time.Now(),
		})
		s.awaitingReply = true
	}

	traineeSeq := len(s.turns)

	reply, err := s.generateReplyLocked(ctx)
	if err != nil {
		return nil, &GenerationError{TurnSequence: traineeSeq, Err: err}
	}

	turn := Turn{
		Sequence: len(s.turns) + 1,
		Speaker:  SpeakerPatient,
		Text:     reply,
		At:       time.Now(),
	}
	s.turns = append(s.turns, turn)
	s.awaitingReply = false

	return &turn, nil
}

// Conclude moves an active session to awaiting judgment.
func (s *Session) Conclude() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateActive {
		return &InvalidStateError{Op: "conclude", State: s.state}
	}
	s.state = StateAwaitingJudgment
	return nil
}

// SubmitJudgment records the trainee's judgment exactly once and closes the
// session. Submitting from an active session concludes it implicitly. The
// judgment variant must match the session mode.
func (s *Session) SubmitJudgment(j Judgment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClosed {
		return &InvalidStateError{Op: "submit judgment", State: s.state}
	}
	if j == nil {
		return fmt.Errorf("judgment must not be nil")
	}

	switch v := j.(type) {
	case *GuidedJudgment:
		j = *v
	case *ExploratoryJudgment:
		j = *v
	}

	switch j.(type) {
	case GuidedJudgment:
		if s.Persona.Mode != persona.ModeGuided {
			return fmt.Errorf("guided judgment submitted to %s session", s.Persona.Mode)
		}
	case ExploratoryJudgment:
		if s.Persona.Mode != persona.ModeExploratory {
			return fmt.Errorf("exploratory judgment submitted to %s session", s.Persona.Mode)
		}
	default:
		return fmt.Errorf("unknown judgment type %T", j)
	}

	s.judgment = j
	s.state = StateClosed
	return nil
}

func (s *Session) traineeTurnsLocked() int {
	n := 0
	for _, t := range s.turns {
		if t.Speaker == SpeakerTrainee {
			n++
		}
	}
	return n
}

func (s *Session) generateReplyLocked(ctx context.Context) (string, error) {
	msgs := make([]llm.Message, 0, len(s.turns))
	for _, t := range s.turns {
		role := llm.RoleUser
		if t.Speaker == SpeakerPatient {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: t.Text})
	}

	ctx = llm.WithPurpose(ctx, llm.PurposePatientTurn)
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      s.Persona.SystemPrompt,
		Messages:    msgs,
		MaxTokens:   replyMaxTokens,
		Temperature: replyTemperature,
	})
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("empty patient reply")
	}
	return text, nil
}
