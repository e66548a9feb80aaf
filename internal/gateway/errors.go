package gateway

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/go-github/v62/github"
)

var (
	// ErrNetwork reports a transport failure: DNS, connection, TLS,
	// cancellation or timeout.
	ErrNetwork = errors.New("network error")
	// ErrUnexpectedStatus reports a non-2xx answer from the search API.
	ErrUnexpectedStatus = errors.New("unexpected response status")
	// ErrMalformedResponse reports a body that is not the expected JSON shape.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrProfileDisabled is returned when no profile endpoint is configured.
	ErrProfileDisabled = errors.New("profile endpoint not configured")
)

// classifySearchError maps an error from go-github's Do onto one of the
// sentinel errors above, keeping the original error in the chain.
func classifySearchError(err error) error {
	var (
		errResp   *github.ErrorResponse
		rateErr   *github.RateLimitError
		abuseErr  *github.AbuseRateLimitError
		accepted  *github.AcceptedError
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &errResp), errors.As(err, &rateErr), errors.As(err, &abuseErr), errors.As(err, &accepted):
		return fmt.Errorf("%w: %w", ErrUnexpectedStatus, err)
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	default:
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}
}
