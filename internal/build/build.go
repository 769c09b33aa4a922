package build

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"qasml/pkg/color"

	"github.com/charmbracelet/log"
)

const (
	failedMessage    = "\nSomething went wrong, you're on your own."
	runFailedMessage = "\nSomething appears to have gone wrong, don't care at this point."
)

// Builder assembles and links one source file.
type Builder struct {
	Config Config
	Runner Runner
	Out    io.Writer
}

func NewBuilder(cfg Config, runner Runner, out io.Writer) *Builder {
	return &Builder{Config: cfg, Runner: runner, Out: out}
}

// Build runs the assembler, then the linker, removes the object file unless
// it should be kept, and finally runs the output when autorun is set.
// Tool failures are returned as *ExitError with ExitToolFailed.
func (b *Builder) Build() error {
	object, err := ObjectPath(b.Config.TempDir, b.Config.Output)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}
	log.Debug("Resolved build", "input", b.Config.Input, "output", b.Config.Output,
		"format", b.Config.Format, "object", object)

	if err := b.step(b.Config.assembleCommand(object)); err != nil {
		// The object file, if any, is left for inspection.
		fmt.Fprintln(b.Out, color.Error(failedMessage))
		return &ExitError{Code: ExitToolFailed, Err: fmt.Errorf("assembly failed: %w", err)}
	}
	fmt.Fprintln(b.Out, color.GreenText("OK!"))

	if err := b.step(b.Config.linkCommand(object)); err != nil {
		fmt.Fprintln(b.Out, color.Error(failedMessage))
		b.discard(object)
		return &ExitError{Code: ExitToolFailed, Err: fmt.Errorf("linking failed: %w", err)}
	}
	fmt.Fprintln(b.Out, color.GreenText("OK!"))

	if !b.Config.KeepObject {
		fmt.Fprintln(b.Out, "Cleaning up "+color.CyanText(object))
		if err := os.Remove(object); err != nil {
			return &ExitError{Code: ExitFailure, Err: fmt.Errorf("failed to remove object file: %w", err)}
		}
	}

	if b.Config.Autorun {
		b.run()
	}

	return nil
}

// step echoes a command line and runs it.
func (b *Builder) step(command []string) error {
	fmt.Fprintln(b.Out, color.BoldText("Running:")+" "+strings.Join(command, " "))

	status, err := b.Runner.Run(command[0], command[1:]...)
	if err != nil {
		return fmt.Errorf("could not run %s: %w", command[0], err)
	}
	log.Debug("Command finished", "program", command[0], "status", status)
	if status != 0 {
		return fmt.Errorf("%s exited with status %d", command[0], status)
	}
	return nil
}

// discard removes the object file after a failed link.
func (b *Builder) discard(object string) {
	err := os.Remove(object)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn("Failed to remove object file", "object", object, "error", err)
	}
}

// run executes the linked program. Its outcome never fails the build.
func (b *Builder) run() {
	fmt.Fprintln(b.Out, color.BoldText("Running:")+" "+b.Config.Output)

	program, err := filepath.Abs(b.Config.Output)
	if err != nil {
		program = b.Config.Output
	}

	status, err := b.Runner.Run(program)
	if err != nil || status != 0 {
		fmt.Fprintln(b.Out, color.Warning(runFailedMessage))
		log.Debug("Program failed", "program", program, "status", status, "error", err)
	}
}
