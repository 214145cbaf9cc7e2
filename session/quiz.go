// Package session tracks running quizzes: the hidden answer, the ordered
// query history, and the participant set, plus the channel-keyed store
// that hands exclusive access to a quiz to one caller at a time. The
// regex/nfa/dfa core is consumed purely through Parse, Match and
// Equivalent; everything here is orchestration.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/regexsoup-xyz/go-regexsoup/alphabet"
	"github.com/regexsoup-xyz/go-regexsoup/dfa"
	"github.com/regexsoup-xyz/go-regexsoup/regex"
)

// EmptyWord is the caller-side sentinel for "test the empty word": the
// literal two-character input quote-quote.
const EmptyWord = `""`

// QueryRecord is one asked word and its outcome, in insertion order.
type QueryRecord struct {
	Input   string
	Matched bool
	AskedAt time.Time
}

// DisplayInput renders the query for a history listing, showing ε for the
// empty-word sentinel.
func (r QueryRecord) DisplayInput() string {
	if r.Input == EmptyWord {
		return "ε"
	}
	return r.Input
}

// GuessResult is the outcome of a full-answer guess.
type GuessResult struct {
	Input    string
	Accepted bool
}

// Quiz pairs a hidden answer with the bookkeeping of one game. A Quiz is
// not safe for concurrent use; the Store serializes access.
type Quiz struct {
	id         string
	difficulty int
	answer     regex.Ast
	matcher    *regex.Matcher
	domain     []alphabet.Symbol

	history  []QueryRecord
	outcomes map[string]bool

	order   []string
	members map[string]struct{}

	startedAt time.Time
}

// NewQuiz wraps a generated answer for the given difficulty.
func NewQuiz(difficulty int, answer regex.Ast) *Quiz {
	return &Quiz{
		id:         uuid.New().String(),
		difficulty: difficulty,
		answer:     answer,
		matcher:    regex.NewMatcher(answer),
		domain:     alphabet.Domain(difficulty),
		outcomes:   make(map[string]bool),
		members:    make(map[string]struct{}),
		startedAt:  time.Now(),
	}
}

func (q *Quiz) ID() string                 { return q.id }
func (q *Quiz) Difficulty() int            { return q.difficulty }
func (q *Quiz) Domain() []alphabet.Symbol  { return append([]alphabet.Symbol(nil), q.domain...) }
func (q *Quiz) StartedAt() time.Time       { return q.startedAt }
func (q *Quiz) Answer() regex.Ast          { return q.answer }
func (q *Quiz) History() []QueryRecord     { return append([]QueryRecord(nil), q.history...) }
func (q *Quiz) Participants() []string     { return append([]string(nil), q.order...) }
func (q *Quiz) Empty() bool                { return len(q.members) == 0 }
func (q *Quiz) IsParticipant(user string) bool {
	_, ok := q.members[user]
	return ok
}

// Query tests one word against the hidden answer and records the outcome.
// The EmptyWord sentinel stands for the empty word; anything else must be
// a word over the quiz domain. Repeating a query returns the recorded
// outcome without growing the history.
func (q *Quiz) Query(input string) (QueryRecord, error) {
	word, err := q.wordFromInput(input)
	if err != nil {
		return QueryRecord{}, err
	}

	if matched, seen := q.outcomes[input]; seen {
		return QueryRecord{Input: input, Matched: matched}, nil
	}

	record := QueryRecord{Input: input, Matched: q.matcher.Match(word), AskedAt: time.Now()}
	q.outcomes[input] = record.Matched
	q.history = append(q.history, record)
	return record, nil
}

// Guess parses a candidate expression and decides whether it is
// equivalent to the hidden answer. The candidate's used alphabet must stay
// inside the quiz domain.
func (q *Quiz) Guess(input string) (GuessResult, error) {
	candidate, err := regex.Parse(input)
	if err != nil {
		return GuessResult{}, err
	}
	if err := q.validate(regex.UsedAlphabet(candidate)); err != nil {
		return GuessResult{}, err
	}
	return GuessResult{Input: input, Accepted: dfa.Equivalent(q.answer, candidate)}, nil
}

// Register adds a participant; registering twice is an error.
func (q *Quiz) Register(user string) error {
	if _, ok := q.members[user]; ok {
		return ErrAlreadyRegistered
	}
	q.members[user] = struct{}{}
	q.order = append(q.order, user)
	return nil
}

// Withdraw removes a participant and returns how many remain. When the
// count reaches zero the quiz is over and the answer may be revealed.
func (q *Quiz) Withdraw(user string) (int, error) {
	if _, ok := q.members[user]; !ok {
		return len(q.members), ErrNotRegistered
	}
	delete(q.members, user)
	for i, u := range q.order {
		if u == user {
			q.order = append(q.order[:i], q.order[i+1:]...)
			break
		}
	}
	return len(q.members), nil
}

func (q *Quiz) wordFromInput(input string) ([]alphabet.Symbol, error) {
	if input == EmptyWord {
		return nil, nil
	}

	var invalid []string
	word := make([]alphabet.Symbol, 0, len(input))
	for _, r := range input {
		sym, err := alphabet.FromChar(r)
		if err != nil {
			invalid = append(invalid, string(r))
			continue
		}
		word = append(word, sym)
	}
	if len(invalid) > 0 {
		return nil, &DomainError{Invalid: invalid, Domain: q.Domain()}
	}
	if err := q.validate(word); err != nil {
		return nil, err
	}
	return word, nil
}

// validate rejects symbols beyond the difficulty's domain.
func (q *Quiz) validate(word []alphabet.Symbol) error {
	var invalid []string
	for _, sym := range word {
		if !alphabet.Contains(q.domain, sym) {
			invalid = append(invalid, sym.String())
		}
	}
	if len(invalid) > 0 {
		return &DomainError{Invalid: invalid, Domain: q.Domain()}
	}
	return nil
}
