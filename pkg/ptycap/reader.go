package ptycap

import (
	"errors"
	"io"
	"os"
	"syscall"
	"time"
)

// chunk is one read of raw PTY output, handed from the reader goroutine
// to the driver over a buffered channel.
type chunk struct {
	data []byte
	err  error
}

// startReader spawns the single reader goroutine that owns the PTY
// master's read side. It sends each non-empty read as a chunk and
// closes ch when the PTY reaches end-of-stream or an unrecoverable
// error, matching spec.md §5's single-producer/single-consumer queue.
func startReader(f *os.File) <-chan chunk {
	ch := make(chan chunk, 64)
	go func() {
		defer close(ch)
		buf := make([]byte, 4096)
		for {
			n, err := f.Read(buf)
			if n > 0 {
				cp := make([]byte, n)
				copy(cp, buf[:n])
				ch <- chunk{data: cp}
			}
			if err != nil {
				// A Linux PTY master returns EIO once the slave side has
				// no more opens, which is the normal end-of-stream signal
				// for a PTY (unlike a pipe's plain EOF).
				if errors.Is(err, os.ErrClosed) || errors.Is(err, io.EOF) || errors.Is(err, syscall.EIO) {
					return
				}
				if isRetryable(err) {
					time.Sleep(10 * time.Millisecond)
					continue
				}
				return
			}
		}
	}()
	return ch
}

func isRetryable(err error) bool {
	return errors.Is(err, os.ErrDeadlineExceeded)
}
