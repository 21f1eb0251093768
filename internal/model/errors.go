package model

import "errors"

// Narration failure taxonomy. Both errors are absorbed by the session engine
// and replaced with deterministic fallback content; they never reach the
// player. Unknown scenario or choice identifiers are reported as boolean
// results, not as error values.
var (
	// ErrServiceFailure indicates the text-generation service could not be
	// reached, timed out, or refused the request.
	ErrServiceFailure = errors.New("narration service request failed")

	// ErrMalformedResponse indicates the service replied but the content
	// does not decode to the expected structure.
	ErrMalformedResponse = errors.New("narration response is not in the expected format")
)
