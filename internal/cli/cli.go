package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"qasml/internal/build"
	"qasml/internal/logger"
	"qasml/internal/platform"
	"qasml/pkg/color"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const usageLine = "qasml [-hkr] [-c COMPILER] [-l LINKER] [-t TEMPDIRECTORY] [-f FORMAT] INPUTFILE OUTPUTFILE"

var errArgCount = errors.New("Incorrect amount of arguments")

// App is the qasml command-line driver. Everything it touches outside the
// filesystem is injected so a test can stand in for the host.
type App struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Runner  build.Runner // Starts the assembler, the linker and the built program
	Host    platform.Host
	TempDir string // Default directory for the object file
}

type options struct {
	build.Config
	Verbose bool
	NoColor bool
}

// Run parses args (without the program name), performs the build and
// returns the process exit status.
func (a *App) Run(args []string) int {
	logger.Init(a.Stderr, false, !color.IsColorEnabled())

	// The host default is settled before any option can override it.
	if !a.Host.Recognized() {
		log.Warn("Couldn't recognize host OS. Make sure the format is correct.", "os", a.Host.OS)
	}

	if args == nil {
		args = []string{}
	}
	cmd := a.newCommand()
	cmd.SetArgs(args)

	return a.exitCode(cmd, cmd.Execute())
}

func (a *App) newCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           usageLine,
		Short:         "Assemble and link a single assembly source file",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PreRun: func(cmd *cobra.Command, args []string) {
			if opts.NoColor {
				color.EnableColor(false)
			}
			logger.Init(a.Stderr, opts.Verbose, !color.IsColorEnabled())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, opts, args)
		},
	}

	cmd.SetOut(a.Stdout)
	cmd.SetErr(a.Stderr)
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		printUsage(c.OutOrStdout(), c)
	})
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		printUsage(c.OutOrStderr(), c)
		return nil
	})
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &build.ExitError{Code: build.ExitUsage, Err: err}
	})

	a.bindFlags(cmd.Flags(), opts)
	return cmd
}

func (a *App) bindFlags(fs *pflag.FlagSet, opts *options) {
	fs.SortFlags = false
	fs.BoolVarP(&opts.KeepObject, "keep-cfile", "k", false, "Don't remove compiled file after successful linking.")
	fs.BoolVarP(&opts.Autorun, "autorun", "r", false, "Automatically run the program after successful linking.")
	fs.StringVarP(&opts.Assembler, "compiler", "c", build.DefaultAssembler, "Select alternative compiler.")
	fs.StringVarP(&opts.Linker, "linker", "l", build.DefaultLinker, "Select alternative linker.")
	fs.StringVarP(&opts.TempDir, "temp-dir", "t", a.TempDir, "Change where to save the object file if you wish to keep it.")
	fs.StringVarP(&opts.Format, "format", "f", a.Host.Format(), "Change the target format. Defaults to ELF on Unix, Win32/64 on Windows and BIN on unrecognized OSes.")
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "Log the resolved build and tool exit codes.")
	fs.BoolVar(&opts.NoColor, "no-color", false, "Disable colored output.")
}

func (a *App) run(cmd *cobra.Command, opts *options, args []string) error {
	if cmd.Flags().Changed("temp-dir") {
		info, err := os.Stat(opts.TempDir)
		if err != nil || !info.IsDir() {
			return &build.ExitError{Code: build.ExitUsage, Err: fmt.Errorf("%s is not a directory!", opts.TempDir)}
		}
	}

	if len(args) != 2 {
		return &build.ExitError{Code: build.ExitUsage, Err: fmt.Errorf("%w: %q", errArgCount, args)}
	}
	opts.Input, opts.Output = args[0], args[1]

	info, err := os.Stat(opts.Input)
	if err != nil || !info.Mode().IsRegular() {
		return &build.ExitError{Code: build.ExitUsage, Err: fmt.Errorf("%s doesn't seem to exist.", opts.Input)}
	}

	log.Debug("Parsed options", "compiler", opts.Assembler, "linker", opts.Linker,
		"temp-dir", opts.TempDir, "keep", opts.KeepObject, "autorun", opts.Autorun)

	return build.NewBuilder(opts.Config, a.Runner, a.Stdout).Build()
}

func (a *App) exitCode(cmd *cobra.Command, err error) int {
	if err == nil {
		return build.ExitOK
	}

	var exitErr *build.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintln(a.Stderr, color.Error(err.Error()))
		return build.ExitFailure
	}

	if exitErr.Code != build.ExitUsage {
		log.Error("Build failed", "error", exitErr.Err)
		return exitErr.Code
	}

	fmt.Fprintln(a.Stderr, color.Error(err.Error()))
	if errors.Is(err, errArgCount) {
		printUsage(a.Stderr, cmd)
	}
	return exitErr.Code
}

func printUsage(w io.Writer, cmd *cobra.Command) {
	fmt.Fprintln(w, "Usage: "+usageLine)
	fmt.Fprint(w, cmd.Flags().FlagUsages())
}
