package automaton

import "fmt"

// ErrorKind classifies automaton errors
type ErrorKind uint8

const (
	// InvalidConfig indicates configuration validation failed
	InvalidConfig ErrorKind = iota

	// InvalidState indicates a state id outside [0, states)
	InvalidState

	// InvalidSymbol indicates a bad alphabet or a transition on a symbol
	// outside the alphabet
	InvalidSymbol

	// NotTotal indicates a DFA transition table missing a successor
	NotTotal
)

// String returns a human-readable error kind name
func (k ErrorKind) String() string {
	switch k {
	case InvalidConfig:
		return "InvalidConfig"
	case InvalidState:
		return "InvalidState"
	case InvalidSymbol:
		return "InvalidSymbol"
	case NotTotal:
		return "NotTotal"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// Sentinel errors for errors.Is checks. Comparison is by Kind.
var (
	// ErrInvalidConfig indicates that the provided configuration is invalid.
	ErrInvalidConfig = &Error{Kind: InvalidConfig, Message: "invalid automaton configuration"}

	// ErrInvalidState indicates an out-of-range state id.
	ErrInvalidState = &Error{Kind: InvalidState, Message: "invalid state"}

	// ErrInvalidSymbol indicates a bad symbol or alphabet.
	ErrInvalidSymbol = &Error{Kind: InvalidSymbol, Message: "invalid symbol"}

	// ErrNotTotal indicates a DFA transition table that is not total.
	ErrNotTotal = &Error{Kind: NotTotal, Message: "transition table is not total"}
)

// Error is returned by the validating constructors and Config.Validate.
type Error struct {
	Kind    ErrorKind
	Message string
	State   StateID // StateNotFound when not tied to a state
	Symbol  Symbol  // meaningful for InvalidSymbol and NotTotal
	Cause   error   // Optional underlying error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := e.Message
	if e.State != StateNotFound && (e.Kind == InvalidState || e.Kind == NotTotal) {
		msg = fmt.Sprintf("%s (state %d)", msg, e.State)
	}
	if e.Kind == InvalidSymbol || e.Kind == NotTotal {
		if e.Symbol != Epsilon {
			msg = fmt.Sprintf("%s (symbol %q)", msg, rune(e.Symbol))
		}
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying error (for errors.Is/As)
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements error comparison for errors.Is
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
