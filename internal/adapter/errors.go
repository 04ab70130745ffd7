package adapter

import "errors"

var (
	// ErrTokenTransport means the token request never got a response
	// (connection refused, DNS failure, timeout, TLS failure).
	ErrTokenTransport = errors.New("token request failed")
	// ErrTokenRejected means the auth host answered with a non-2xx status,
	// typically because of wrong credentials or an unknown organization.
	ErrTokenRejected = errors.New("token request rejected")
	// ErrTokenMalformed means the auth host answered 2xx but the body could
	// not be parsed or carried no access_token.
	ErrTokenMalformed = errors.New("malformed token response")

	// ErrUpstreamTransport means a forwarded request never got a response.
	ErrUpstreamTransport = errors.New("upstream request failed")
	// ErrUnknownOperation means Forward was called with an operation that
	// has no upstream path.
	ErrUnknownOperation = errors.New("unknown operation")
)
