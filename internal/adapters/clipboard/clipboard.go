package clipboard

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	"prlinks/internal/logging"
	"prlinks/internal/ports"
)

// SystemWriter implements ports.ClipboardWriter with the local clipboard
type SystemWriter struct{}

// NewSystemWriter creates a writer for the local clipboard
func NewSystemWriter() *SystemWriter {
	return &SystemWriter{}
}

// Copy writes text to the system clipboard
func (w *SystemWriter) Copy(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility available")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	logging.Logger.Debug("Copied to system clipboard", "bytes", len(text))
	return nil
}

// OSC52Writer implements ports.ClipboardWriter by emitting an OSC 52
// escape sequence, which the user's terminal turns into a clipboard write.
// Used over SSH where the host clipboard is not the user's.
type OSC52Writer struct {
	out io.Writer
}

// NewOSC52Writer creates a writer that emits the sequence to out
func NewOSC52Writer(out io.Writer) *OSC52Writer {
	return &OSC52Writer{out: out}
}

// Copy emits the escape sequence carrying text
func (w *OSC52Writer) Copy(text string) error {
	if _, err := osc52.New(text).WriteTo(w.out); err != nil {
		return fmt.Errorf("failed to write clipboard sequence: %w", err)
	}
	logging.Logger.Debug("Copied via OSC52", "bytes", len(text))
	return nil
}

// FallbackWriter tries the system clipboard first, then OSC 52
type FallbackWriter struct {
	primary   ports.ClipboardWriter
	secondary ports.ClipboardWriter
}

// NewFallbackWriter creates a writer falling back to OSC 52 on out
func NewFallbackWriter(out io.Writer) *FallbackWriter {
	return &FallbackWriter{
		primary:   NewSystemWriter(),
		secondary: NewOSC52Writer(out),
	}
}

// Copy writes text to the first clipboard that accepts it
func (w *FallbackWriter) Copy(text string) error {
	if err := w.primary.Copy(text); err != nil {
		logging.Logger.Debug("System clipboard unavailable, using OSC52", "error", err)
		return w.secondary.Copy(text)
	}
	return nil
}
