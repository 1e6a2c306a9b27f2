package api

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/neurovia/pkg/bridge"
)

var (
	ErrPromptTooLarge = errors.New("prompt exceeds maximum size")
	ErrInvalidRequest = errors.New("invalid request body")
)

// MapHTTPStatus maps request errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrPromptTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, ErrInvalidRequest) || errors.Is(err, bridge.ErrEmptyPrompt) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
