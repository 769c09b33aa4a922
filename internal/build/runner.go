package build

import (
	"errors"
	"io"
	"os/exec"
)

// Runner starts a program and waits for it. A program that runs and exits
// non-zero reports its status with a nil error; err is set only when the
// program could not be run at all.
type Runner interface {
	Run(name string, args ...string) (status int, err error)
}

// ExecRunner runs child processes attached to the given streams.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (r ExecRunner) Run(name string, args ...string) (int, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return -1, err
	}
	return 0, nil
}
