package models

// UpstreamResponse is the raw outcome of a completed upstream HTTP call.
// Classification into an [Envelope] happens in the service layer.
type UpstreamResponse struct {
	StatusCode int
	Body       []byte
}
