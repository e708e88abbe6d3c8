package sources

import (
	"errors"
	"fmt"
)

// ErrQueryFailed covers every way a character query can fail: transport,
// server side errors and undecodable responses.
var ErrQueryFailed = errors.New("query failed")

type QueryError struct {
	Op    string // "request", "decode"
	Key   string
	Cause error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s %s: %s: %v", ErrQueryFailed, e.Key, e.Op, e.Cause)
}

func (e *QueryError) Unwrap() error {
	return e.Cause
}

func (e *QueryError) Is(target error) bool {
	return target == ErrQueryFailed
}
