package aigame

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrMissingCredential = errors.New("Google Gemini API key is missing!")

type ModelNotFoundError struct {
	Model string
}

func (e *ModelNotFoundError) Error() string {
	return fmt.Sprintf("Model %s not found. Check your API access.", e.Model)
}

type ErrorKind int

const (
	KindUnexpected ErrorKind = iota
	KindRateLimited
	KindInvalidRequest
)

func (k ErrorKind) String() string {
	switch k {
	case KindRateLimited:
		return "rate_limited"
	case KindInvalidRequest:
		return "invalid_request"
	default:
		return "unexpected"
	}
}

// ProviderError is the only error shape a Provider returns.
type ProviderError struct {
	Kind ErrorKind
	Err  error
}

func (e *ProviderError) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Err.Error()
}

func (e *ProviderError) Unwrap() error { return e.Err }

func providerError(kind ErrorKind, err error) *ProviderError {
	return &ProviderError{Kind: kind, Err: err}
}

// StatusAndDetail maps a pipeline error onto the HTTP status and the detail
// string returned to the caller.
func StatusAndDetail(err error) (int, string) {
	var notFound *ModelNotFoundError
	var provErr *ProviderError

	switch {
	case errors.Is(err, ErrMissingCredential):
		return http.StatusInternalServerError, ErrMissingCredential.Error()
	case errors.As(err, &notFound):
		return http.StatusBadRequest, notFound.Error()
	case errors.As(err, &provErr):
		switch provErr.Kind {
		case KindRateLimited:
			return http.StatusTooManyRequests, "Quota exceeded. Please try again later."
		case KindInvalidRequest:
			return http.StatusBadRequest, "Invalid request: " + provErr.Error()
		default:
			return http.StatusInternalServerError, "Unexpected error: " + provErr.Error()
		}
	default:
		return http.StatusInternalServerError, "Unexpected error: " + err.Error()
	}
}
