package terminal

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("read failed")
}

func TestReadChunks_Forwards(t *testing.T) {
	tests := []struct {
		name     string
		in       io.Reader
		expected []string
	}{
		{name: "text then eof", in: strings.NewReader("ab\x1b[A"), expected: []string{"ab\x1b[A"}},
		{name: "empty input", in: strings.NewReader(""), expected: nil},
		{name: "read error", in: failingReader{}, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := make(chan string)
			go readChunks(tt.in, chunks, make(chan struct{}))

			var got []string
			for c := range chunks {
				got = append(got, c)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestReadChunks_ReturnsAfterStopWithUnreadInput(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	chunks := make(chan string)
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		readChunks(r, chunks, done)
		close(finished)
	}()

	// stopped: nobody receives from chunks any more
	close(done)
	_, err := w.Write([]byte("q"))
	require.NoError(t, err)

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("reader still blocked after stop")
	}
	_, ok := <-chunks
	assert.False(t, ok)
}
