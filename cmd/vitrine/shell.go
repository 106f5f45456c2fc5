package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/vitrine/internal/catalog"
	"github.com/alexisbeaulieu97/vitrine/internal/chrome"
	"github.com/alexisbeaulieu97/vitrine/internal/logger"
	"github.com/alexisbeaulieu97/vitrine/internal/tui/shell"
)

var errNotTerminal = errors.New("stdout is not a terminal")

func runShell(cmd *cobra.Command, v *viper.Viper) error {
	cat, err := catalog.Default()
	if err != nil {
		return newCommandError("start", "loading the catalog", err, "The embedded catalog is broken; rebuild vitrine.")
	}

	cfg, err := loadSettings(v, cat)
	if err != nil {
		return newCommandError("start", "reading flags", err, "Run 'vitrine --help' for accepted values.")
	}

	if !isTerminal(cmd.OutOrStdout()) {
		return newCommandError("start", "checking the terminal", errNotTerminal, "Run vitrine in an interactive terminal, or use 'vitrine catalog' for plain output.")
	}

	log, closeLog, err := openLogger(cfg)
	if err != nil {
		return newCommandError("start", "opening the log", err, "Check --log-file and --log-level.")
	}
	defer closeLog()

	model, err := shell.NewModel(shell.Options{
		Catalog:        cat,
		Theme:          chrome.NewThemeCell(cfg.Theme),
		Language:       cfg.Language,
		DarkBackground: lipgloss.HasDarkBackground(),
		Logger:         log,
	})
	if err != nil {
		return newCommandError("start", "building the shell", err, "The embedded catalog is broken; rebuild vitrine.")
	}

	opts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	log.Info("shell starting")
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		log.Error(err, "shell execution failed")
		return fmt.Errorf("failed to run shell: %w", err)
	}
	log.Info("shell closed")

	return nil
}

// openLogger writes JSON logs to the configured file. The terminal belongs to
// the shell, so without a file the logs are discarded.
func openLogger(cfg settings) (*logger.Logger, func(), error) {
	var writer io.Writer = io.Discard
	closeLog := func() {}

	if cfg.LogFile != "" {
		file, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		writer = file
		closeLog = func() { _ = file.Close() }
	}

	log, err := logger.New(logger.Options{
		Level:     cfg.LogLevel,
		Writer:    writer,
		SessionID: uuid.NewString(),
	})
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	return log, closeLog, nil
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
