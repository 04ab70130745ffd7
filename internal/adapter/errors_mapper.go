package adapter

import (
	"errors"
	"fmt"
	"net/url"

	"golang.org/x/oauth2"
)

// mapTokenError classifies an error returned by oauth2 into one of the
// token sentinels.
func mapTokenError(err error) error {
	if err == nil {
		return nil
	}

	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		status := 0
		if retrieveErr.Response != nil {
			status = retrieveErr.Response.StatusCode
		}
		return fmt.Errorf("%w: auth host answered %d", ErrTokenRejected, status)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%w: %w", ErrTokenTransport, err)
	}

	// oauth2 reports unparsable bodies and a missing access_token as plain
	// errors; everything that reached this point had a 2xx response.
	return fmt.Errorf("%w: %w", ErrTokenMalformed, err)
}
