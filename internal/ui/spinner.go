package ui

import (
	"fmt"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner provides an animated progress indicator for long model calls.
type Spinner struct {
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
	mu       sync.Mutex
	message  string
	running  bool
}

// NewSpinner creates a spinner with default settings.
func NewSpinner() *Spinner {
	return &Spinner{
		interval: 80 * time.Millisecond,
	}
}

// Start begins the spinner animation with the given message.
func (s *Spinner) Start(message string) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.message = message
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	s.mu.Unlock()

	go s.loop()
}

func (s *Spinner) loop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	i := 0
	s.render(i)
	for {
		select {
		case <-s.stop:
			// Clear the spinner line.
			fmt.Print("\r\033[K")
			close(s.done)
			return
		case <-ticker.C:
			i = (i + 1) % len(spinnerFrames)
			s.render(i)
		}
	}
}

func (s *Spinner) render(i int) {
	s.mu.Lock()
	msg := s.message
	s.mu.Unlock()
	fmt.Printf("\r%s %s", SpinnerStyle.Render(spinnerFrames[i]), msg)
}

// Stop halts the spinner and clears its line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stop)
	<-s.done
}

// UpdateMessage changes the spinner message while running.
func (s *Spinner) UpdateMessage(message string) {
	s.mu.Lock()
	s.message = message
	s.mu.Unlock()
}
