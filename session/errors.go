package session

import (
	"errors"
	"fmt"

	"github.com/regexsoup-xyz/go-regexsoup/alphabet"
)

var (
	ErrAlreadyRegistered = errors.New("session: participant already registered")
	ErrNotRegistered     = errors.New("session: participant not registered")
	ErrQuizActive        = errors.New("session: a quiz is already running on this channel")
	ErrNoQuiz            = errors.New("session: no quiz running on this channel")

	// ErrTimeout reports that the wall-clock budget for quiz generation
	// elapsed. The computation is pure, so abandoning it leaves no state
	// behind and the caller may simply retry.
	ErrTimeout = errors.New("session: quiz generation timed out")
)

// DomainError reports a query containing symbols outside the alphabet
// selected by the quiz difficulty (or outside the fixed ten-letter set
// altogether). It is always recoverable; the message enumerates the
// offenders and the valid domain.
type DomainError struct {
	Invalid []string
	Domain  []alphabet.Symbol
}

func (e *DomainError) Error() string {
	noun := "is not a valid symbol"
	if len(e.Invalid) > 1 {
		noun = "are not valid symbols"
	}
	return fmt.Sprintf("session: %v %s; the valid domain is %v", e.Invalid, noun, e.Domain)
}
