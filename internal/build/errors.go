package build

import "fmt"

// Process exit statuses.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitUsage      = 2
	ExitToolFailed = 127
)

// ExitError is a failure that ends the process with Code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
