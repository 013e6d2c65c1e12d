package prompt

import (
	"fmt"
	"slices"
)

// Scripted replays canned answers in order. It records every message asked
// so callers can check which prompts were issued.
type Scripted struct {
	One    []int
	Many   [][]int
	Inputs []string

	Asked []string
	Shown [][]string
}

// SelectOne implements Prompter.
func (s *Scripted) SelectOne(message string, options []string, def int) (int, error) {
	s.record(message, options)
	if len(s.One) == 0 {
		return 0, fmt.Errorf("unexpected select prompt %q", message)
	}
	idx := s.One[0]
	s.One = s.One[1:]
	if idx < 0 {
		idx = def
	}
	if idx >= len(options) {
		return 0, fmt.Errorf("answer %d out of range for %q (%d options)", idx, message, len(options))
	}
	return idx, nil
}

// SelectMany implements Prompter.
func (s *Scripted) SelectMany(message string, options []string) ([]int, error) {
	s.record(message, options)
	if len(s.Many) == 0 {
		return nil, fmt.Errorf("unexpected multi-select prompt %q", message)
	}
	picked := slices.Clone(s.Many[0])
	s.Many = s.Many[1:]
	slices.Sort(picked)
	return picked, nil
}

// Input implements Prompter.
func (s *Scripted) Input(message, def string) (string, error) {
	s.record(message, nil)
	if len(s.Inputs) == 0 {
		return "", fmt.Errorf("unexpected input prompt %q", message)
	}
	in := s.Inputs[0]
	s.Inputs = s.Inputs[1:]
	if in == "" {
		return def, nil
	}
	return in, nil
}

func (s *Scripted) record(message string, options []string) {
	s.Asked = append(s.Asked, message)
	s.Shown = append(s.Shown, slices.Clone(options))
}
