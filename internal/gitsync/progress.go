package gitsync

import (
	"bytes"
	"io"
)

// lineWriter adapts the transfer progress byte stream into whole lines.
// Transports emit carriage-return separated percentage updates
// ("Receiving objects:  42% ..."); each completed line goes to the sink.
type lineWriter struct {
	sink func(string)
	buf  bytes.Buffer
}

// NewLineWriter returns an io.Writer that invokes sink once per completed
// progress line.
func NewLineWriter(sink func(string)) io.Writer {
	return &lineWriter{sink: sink}
}

func (w *lineWriter) Write(p []byte) (int, error) {
	for _, b := range p {
		if b == '\n' || b == '\r' {
			if w.buf.Len() > 0 {
				w.sink(w.buf.String())
				w.buf.Reset()
			}
			continue
		}
		w.buf.WriteByte(b)
	}
	return len(p), nil
}
