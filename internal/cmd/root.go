package cmd

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ezerfernandes/md2py/internal/extract"
	"github.com/ezerfernandes/md2py/internal/logging"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

//go:embed help/root.md
var rootHelp string

const (
	exitOK = iota
	exitFailure
	exitUsage
)

var (
	errMissingArgument = errors.New("missing basename argument")
	errTooManyArgs     = errors.New("only one basename argument is accepted")
)

type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func checkargs(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return &usageError{err: errMissingArgument}
	case len(args) > 1:
		return &usageError{err: fmt.Errorf("%w, got %d", errTooManyArgs, len(args))}
	case len(args[0]) == 0:
		return &usageError{err: errMissingArgument}
	}

	return nil
}

func rootCmd(fsys extract.FS) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "md2py basename",
		Short:   "Extract python code blocks from <basename>.md into <basename>.py",
		Long:    rootHelp,
		Args:    checkargs,
		Example: "  md2py docs/notebook",
		RunE: func(_ *cobra.Command, args []string) error {
			return extract.New(fsys).Extract(args[0])
		},

		SilenceErrors:     true,
		SilenceUsage:      true,
		DisableAutoGenTag: true,
	}

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	return cmd
}

func run(args []string, stdout, stderr io.Writer, fsys extract.FS) int {
	root := rootCmd(fsys)

	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return exitOK
	}

	logger := slog.New(logging.NewTerminalHandler(stderr))

	var uerr *usageError
	if errors.As(err, &uerr) {
		logger.Error("invalid arguments", tint.Err(err))
		fmt.Fprintln(stderr, root.UsageString())

		return exitUsage
	}

	attrs := []any{tint.Err(err)}

	var ferr *extract.FileAccessError
	if errors.As(err, &ferr) {
		attrs = append(attrs, slog.String("path", ferr.Path))
	}

	logger.Error("extraction failed", attrs...)

	return exitFailure
}

// Execute runs the md2py command line with args, excluding the program name,
// and terminates the process with a non-zero status on failure.
func Execute(args []string, stdout, stderr io.Writer) {
	if code := run(args, stdout, stderr, extract.OS()); code != exitOK {
		os.Exit(code)
	}
}
