package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner animates a status line on stderr while slow work (rasterizing,
// connecting to Redis) runs. It stops on Stop or when its context ends.
type spinner struct {
	message string
	w       io.Writer
	ctx     context.Context
	cancel  context.CancelFunc
	stopped chan struct{}
	once    sync.Once
	mu      sync.Mutex
}

func newSpinner(ctx context.Context, message string) *spinner {
	ctx, cancel := context.WithCancel(ctx)
	return &spinner{
		message: message,
		w:       os.Stderr,
		ctx:     ctx,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
}

// Start begins the animation in a goroutine.
func (s *spinner) Start() {
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-ticker.C:
				s.mu.Lock()
				fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(spinnerFrames[i%len(spinnerFrames)]), StyleDim.Render(s.message))
				s.mu.Unlock()
			}
		}
	}()
}

// Stop halts the animation and clears the line. It is safe to call more
// than once.
func (s *spinner) Stop() {
	s.once.Do(func() {
		s.cancel()
		<-s.stopped
	})
}

func (s *spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
}

// Cancelled reports whether the spinner's context has ended.
func (s *spinner) Cancelled() bool {
	return s.ctx.Err() != nil
}
