package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"enlistco_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

type recordingDispatcher struct {
	mu      sync.Mutex
	posts   []models.JobPost
	release chan struct{}
}

func (d *recordingDispatcher) DispatchJobAlert(post models.JobPost) error {
	if d.release != nil {
		<-d.release
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.posts = append(d.posts, post)
	return nil
}

func (d *recordingDispatcher) dispatched() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.posts)
}

func TestAlertWorkerDispatchesEnqueuedPosts(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	worker := NewAlertWorker(dispatcher, 4)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	worker.Start(ctx)

	worker.Enqueue(models.JobPost{JobTitle: "Nurse"})
	worker.Enqueue(models.JobPost{JobTitle: "Plumber"})

	assert.Eventually(t, func() bool {
		return dispatcher.dispatched() == 2
	}, time.Second, 10*time.Millisecond)
}

func TestAlertWorkerDropsWhenQueueFull(t *testing.T) {
	dispatcher := &recordingDispatcher{release: make(chan struct{})}
	worker := NewAlertWorker(dispatcher, 1)

	// No Start: the queue only drains when the loop runs, so the
	// buffer fills after one post.
	worker.Enqueue(models.JobPost{JobTitle: "kept"})

	done := make(chan struct{})
	go func() {
		worker.Enqueue(models.JobPost{JobTitle: "dropped"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked on a full queue")
	}
}
