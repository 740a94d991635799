// Package voice carries the capability seam for speech input/output. The
// browser does the actual recognition and synthesis; server deployments
// without a speech provider plug in the no-op implementations.
package voice

import (
	"context"
	"errors"
)

var ErrUnavailable = errors.New("speech capability not available")

// Input transcribes recorded audio into text.
type Input interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// Output synthesizes reply text into audio.
type Output interface {
	Speak(ctx context.Context, text string) ([]byte, error)
}

type NoopInput struct{}

func (NoopInput) Transcribe(ctx context.Context, audio []byte) (string, error) {
	return "", ErrUnavailable
}

type NoopOutput struct{}

func (NoopOutput) Speak(ctx context.Context, text string) ([]byte, error) {
	return nil, ErrUnavailable
}
