// Package speech defines the speech I/O capability the interview core
// depends on. Real capture and playback happen outside this program; the
// core only ever consumes and produces plain strings.
package speech

import "context"

// Transcriber captures one spoken answer and returns its final transcript.
// Implementations must honor context cancellation.
type Transcriber interface {
	Transcribe(ctx context.Context) (string, error)
}

// Speaker reads a question out loud. Implementations must honor context
// cancellation and return once playback has completed.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}
