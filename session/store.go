package session

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/regexsoup-xyz/go-regexsoup/quizgen"
	"github.com/regexsoup-xyz/go-regexsoup/regex"
)

// DefaultGenerateTimeout is the wall-clock budget for quiz generation.
const DefaultGenerateTimeout = time.Second

// Store owns the channel→quiz map behind a single lock and exposes
// atomic read-modify-write operations, so concurrent commands never see a
// quiz mid-update. Generation runs off the lock; only the final insert is
// serialized.
type Store struct {
	mu      sync.Mutex
	quizzes map[string]*Quiz

	gen     *quizgen.Generator
	timeout time.Duration
	log     zerolog.Logger
}

// NewStore creates an empty store using gen for answers.
func NewStore(gen *quizgen.Generator, log zerolog.Logger) *Store {
	return &Store{
		quizzes: make(map[string]*Quiz),
		gen:     gen,
		timeout: DefaultGenerateTimeout,
		log:     log,
	}
}

// WithTimeout replaces the generation budget.
func (s *Store) WithTimeout(d time.Duration) *Store {
	s.timeout = d
	return s
}

// Start generates an answer and installs a fresh quiz on the channel.
// A channel can host at most one quiz at a time.
func (s *Store) Start(ctx context.Context, channel string, difficulty int) (*Quiz, error) {
	s.mu.Lock()
	_, active := s.quizzes[channel]
	s.mu.Unlock()
	if active {
		return nil, ErrQuizActive
	}

	answer, err := s.generate(ctx, difficulty)
	if err != nil {
		return nil, err
	}

	quiz := NewQuiz(difficulty, answer)
	s.log.Debug().
		Str("channel", channel).
		Str("quiz", quiz.ID()).
		Str("answer", regex.Render(answer)).
		Msg("quiz generated")

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, active := s.quizzes[channel]; active {
		return nil, ErrQuizActive
	}
	s.quizzes[channel] = quiz

	s.log.Info().
		Str("channel", channel).
		Str("quiz", quiz.ID()).
		Int("difficulty", difficulty).
		Msg("quiz started")
	return quiz, nil
}

// With runs fn with exclusive access to the channel's quiz. The whole
// check-then-mutate sequence happens under the store lock, so
// participant-membership checks and history updates cannot interleave.
func (s *Store) With(channel string, fn func(*Quiz) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	quiz, ok := s.quizzes[channel]
	if !ok {
		return ErrNoQuiz
	}
	return fn(quiz)
}

// End removes and returns the channel's quiz.
func (s *Store) End(channel string) (*Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	quiz, ok := s.quizzes[channel]
	if !ok {
		return nil, ErrNoQuiz
	}
	delete(s.quizzes, channel)

	s.log.Info().
		Str("channel", channel).
		Str("quiz", quiz.ID()).
		Int("queries", len(quiz.History())).
		Msg("quiz ended")
	return quiz, nil
}

// generate runs the CPU-bound sampler on its own goroutine and abandons
// it when the budget elapses. The sampler is pure, so the stray result is
// simply dropped.
func (s *Store) generate(ctx context.Context, difficulty int) (regex.Ast, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	type outcome struct {
		ast regex.Ast
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		ast, err := s.gen.Generate(difficulty)
		done <- outcome{ast, err}
	}()

	select {
	case out := <-done:
		return out.ast, out.err
	case <-ctx.Done():
		s.log.Warn().Int("difficulty", difficulty).Msg("quiz generation abandoned")
		return nil, ErrTimeout
	}
}
