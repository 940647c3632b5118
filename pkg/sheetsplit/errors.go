package sheetsplit

import (
	"errors"
	"fmt"
)

// ErrNoData indicates the worksheet has no rows left after removing blank
// rows. The message text is matched by the host process, keep it stable.
var ErrNoData = errors.New("No data found")

// ArgumentError represents an invalid or unsafe command-line argument,
// detected before any conversion work begins.
type ArgumentError struct {
	Arg string // which argument failed, e.g. "input path"
	Err error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Arg, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

func argErr(arg string, format string, a ...interface{}) error {
	return &ArgumentError{Arg: arg, Err: fmt.Errorf(format, a...)}
}
