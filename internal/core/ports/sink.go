package ports

//go:generate mockgen -source=sink.go -destination=mocks/mock_sink.go -package=mocks

// Sink receives encoded write requests on their way to the transport.
type Sink interface {
	// Write hands one encoded request payload to the sink.
	Write(payload []byte) error
}
