package bridge

import (
	"errors"
	"strings"
)

var (
	ErrEmptyPrompt   = errors.New("please enter a prompt")
	ErrEmptyResponse = errors.New("empty response from model")
	ErrTimeout       = errors.New("generation timed out")
	ErrPanic         = errors.New("generator panicked")
)

// Validate rejects prompts that are empty after trimming whitespace.
// Callers run it before Generate; a rejected prompt is never dispatched.
func Validate(prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return ErrEmptyPrompt
	}
	return nil
}
