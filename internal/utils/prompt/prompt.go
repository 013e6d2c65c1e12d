// Package prompt asks the user to pick from lists or type a value.
package prompt

import (
	"errors"
	"fmt"
	"os"

	"blobdl/internal/utils/logging"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrCanceled is returned when the user aborts a prompt.
var ErrCanceled = errors.New("operation canceled")

// Prompter is the interactive capability the wizard and the retry step need.
type Prompter interface {
	// SelectOne returns the index of the chosen option.
	SelectOne(message string, options []string, def int) (int, error)
	// SelectMany returns the chosen indices in ascending order.
	SelectMany(message string, options []string) ([]int, error)
	// Input returns the typed line, or def when left blank.
	Input(message, def string) (string, error)
}

// Survey renders prompts on the terminal. Prompts are written to stderr so
// stdout carries downloader output only.
type Survey struct {
	PageSize int
}

// NewSurvey returns a terminal Prompter.
func NewSurvey() *Survey {
	return &Survey{PageSize: 15}
}

func (s *Survey) opts() []survey.AskOpt {
	return []survey.AskOpt{
		survey.WithStdio(os.Stdin, os.Stderr, os.Stderr),
		survey.WithPageSize(s.PageSize),
	}
}

// SelectOne implements Prompter.
func (s *Survey) SelectOne(message string, options []string, def int) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("no options to choose from for %q", message)
	}

	q := &survey.Select{
		Message: message,
		Options: options,
	}
	if def >= 0 && def < len(options) {
		q.Default = options[def]
	}

	var idx int
	if err := survey.AskOne(q, &idx, s.opts()...); err != nil {
		return 0, wrap(err)
	}
	logging.D(2, "Selected %q for %q", options[idx], message)
	return idx, nil
}

// SelectMany implements Prompter.
func (s *Survey) SelectMany(message string, options []string) ([]int, error) {
	if len(options) == 0 {
		return nil, nil
	}

	var picked []int
	q := &survey.MultiSelect{
		Message: message,
		Options: options,
	}
	if err := survey.AskOne(q, &picked, s.opts()...); err != nil {
		return nil, wrap(err)
	}
	logging.D(2, "Selected indices %v for %q", picked, message)
	return picked, nil
}

// Input implements Prompter.
func (s *Survey) Input(message, def string) (string, error) {
	var response string
	q := &survey.Input{
		Message: message,
		Default: def,
	}
	if err := survey.AskOne(q, &response, s.opts()...); err != nil {
		return "", wrap(err)
	}
	if response == "" {
		return def, nil
	}
	return response, nil
}

func wrap(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		logging.I("Operation canceled during input.")
		return ErrCanceled
	}
	return err
}
