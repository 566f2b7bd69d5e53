package app

import "io"

// WriterSink implements ports.Sink by writing each payload to an
// io.Writer, one payload per line.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink creates a WriterSink over the given writer.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Write writes the payload followed by a newline.
func (s *WriterSink) Write(payload []byte) error {
	if _, err := s.w.Write(payload); err != nil {
		return err
	}
	_, err := s.w.Write([]byte{'\n'})
	return err
}
