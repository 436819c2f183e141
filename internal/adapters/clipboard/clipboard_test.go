package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	portsmocks "prlinks/internal/ports/mocks"
)

func TestOSC52Writer_Copy(t *testing.T) {
	var buf bytes.Buffer
	w := NewOSC52Writer(&buf)

	text := "https://x/7\nhttps://x/3"
	require.NoError(t, w.Copy(text))

	out := buf.String()
	assert.Contains(t, out, "]52;c;")
	assert.Contains(t, out, base64.StdEncoding.EncodeToString([]byte(text)))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestOSC52Writer_CopyError(t *testing.T) {
	w := NewOSC52Writer(failingWriter{})

	err := w.Copy("text")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed")
}

func TestFallbackWriter_Copy(t *testing.T) {
	text := "https://x/7"

	t.Run("system clipboard accepts", func(t *testing.T) {
		var buf bytes.Buffer
		primary := portsmocks.NewMockClipboardWriter(t)
		primary.EXPECT().Copy(text).Return(nil).Once()
		w := &FallbackWriter{primary: primary, secondary: NewOSC52Writer(&buf)}

		require.NoError(t, w.Copy(text))
		assert.Empty(t, buf.String())
	})

	t.Run("falls back to OSC52", func(t *testing.T) {
		var buf bytes.Buffer
		primary := portsmocks.NewMockClipboardWriter(t)
		primary.EXPECT().Copy(text).Return(errors.New("no clipboard utility available")).Once()
		w := &FallbackWriter{primary: primary, secondary: NewOSC52Writer(&buf)}

		require.NoError(t, w.Copy(text))
		assert.Contains(t, buf.String(), base64.StdEncoding.EncodeToString([]byte(text)))
	})

	t.Run("both fail", func(t *testing.T) {
		primary := portsmocks.NewMockClipboardWriter(t)
		primary.EXPECT().Copy(text).Return(errors.New("no clipboard utility available")).Once()
		w := &FallbackWriter{primary: primary, secondary: NewOSC52Writer(failingWriter{})}

		err := w.Copy(text)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "closed")
	})
}
