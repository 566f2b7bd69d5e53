package ports

//go:generate mockgen -source=encoder.go -destination=mocks/mock_encoder.go -package=mocks

// Encoder renders a built write request into its wire form.
type Encoder interface {
	// Encode returns the wire bytes for one request.
	Encode(req Request) ([]byte, error)
}
