package client

import (
	"sync"
	"time"
)

// ReviewStages are the progress labels rotated while an AI review request
// is in flight. Purely cosmetic latency masking.
var ReviewStages = []string{
	"Reading your answers",
	"Identifying patterns",
	"Generating insights",
}

// StageTicker advances through ReviewStages on a fixed cadence and parks
// on the last one. Stop is idempotent and safe from any goroutine.
type StageTicker struct {
	mu      sync.Mutex
	stage   int
	stopped bool
	done    chan struct{}
}

func NewStageTicker(interval time.Duration, onStage func(label string)) *StageTicker {
	t := &StageTicker{done: make(chan struct{})}
	if onStage != nil {
		onStage(ReviewStages[0])
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-t.done:
				return
			case <-ticker.C:
				label, advanced := t.advance()
				if !advanced {
					return
				}
				if onStage != nil {
					onStage(label)
				}
			}
		}
	}()
	return t
}

func (t *StageTicker) advance() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped || t.stage >= len(ReviewStages)-1 {
		return "", false
	}
	t.stage++
	return ReviewStages[t.stage], true
}

// Stage returns the current label.
func (t *StageTicker) Stage() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return ReviewStages[t.stage]
}

// Stop halts rotation; called once the real response (or error) arrives.
func (t *StageTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.stopped {
		t.stopped = true
		close(t.done)
	}
}
