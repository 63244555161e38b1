package services

import (
	"sync"

	"github.com/google/uuid"
)

// ResetState is the lifecycle stage of a ResetTask.
type ResetState string

const (
	ResetPending ResetState = "pending"
	ResetSent    ResetState = "sent"
	ResetRotated ResetState = "rotated"
	ResetFailed  ResetState = "failed"
	ResetSkipped ResetState = "skipped"
)

// ResetTask tracks one forgot-password dispatch. Rotated means the mail went
// out and the new hash is stored; Failed leaves the stored hash untouched
// unless the failure happened after the mail was sent.
type ResetTask struct {
	ID     string
	UserID string

	mu    sync.Mutex
	state ResetState
	err   error
	done  chan struct{}
}

func newResetTask(userID string) *ResetTask {
	return &ResetTask{
		ID:     uuid.NewString(),
		UserID: userID,
		state:  ResetPending,
		done:   make(chan struct{}),
	}
}

func (t *ResetTask) State() ResetState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *ResetTask) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Done is closed once the task reaches a terminal state.
func (t *ResetTask) Done() <-chan struct{} { return t.done }

func (t *ResetTask) setState(s ResetState) {
	t.mu.Lock()
	t.state = s
	t.mu.Unlock()
}

func (t *ResetTask) finish(s ResetState, err error) {
	t.mu.Lock()
	t.state = s
	t.err = err
	t.mu.Unlock()
	close(t.done)
}
