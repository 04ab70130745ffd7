package service

// Auth failure reasons placed in Envelope.Reason.
const (
	ReasonTransport = "transport"
	ReasonRejected  = "rejected"
	ReasonMalformed = "malformed"
)
