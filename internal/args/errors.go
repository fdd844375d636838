package args

import "fmt"

// ErrorKind classifies an ArgumentError.
type ErrorKind int

const (
	ErrUnknownOption ErrorKind = iota + 1
	ErrMutuallyExclusive
	ErrGivenTwice
	ErrEmptyArgument
	ErrNotInteger
	ErrNoAuth
	ErrNoHost
	ErrNoUser
)

// ArgumentError reports why an argument list was rejected. Message is
// meant for humans and is printed verbatim after "Error:".
type ArgumentError struct {
	Kind ErrorKind

	// Option is the offending token, if any.
	Option string

	Message string
}

func (e *ArgumentError) Error() string {
	return e.Message
}

func unknownOption(token string) error {
	return &ArgumentError{Kind: ErrUnknownOption, Option: token, Message: "unknown option " + token}
}

func givenTwice(opt string) error {
	return &ArgumentError{Kind: ErrGivenTwice, Option: opt, Message: fmt.Sprintf("option %s was given twice.", opt)}
}

func notInteger(opt string) error {
	return &ArgumentError{Kind: ErrNotInteger, Option: opt, Message: fmt.Sprintf("option %s needs integer argument", opt)}
}

func emptyArgument(opt string) error {
	return &ArgumentError{Kind: ErrEmptyArgument, Option: opt, Message: "empty argument not allowed here."}
}

func mutuallyExclusive(opt string) error {
	return &ArgumentError{
		Kind:    ErrMutuallyExclusive,
		Option:  opt,
		Message: fmt.Sprintf("%s and %s are mutually exclusive.", optPassword, optKeyFile),
	}
}
