package worker

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPool(t *testing.T) {
	p := NewPool(3)
	var mu sync.Mutex
	count := 0
	for i := 0; i < 5; i++ {
		p.Submit(func() {
			mu.Lock()
			count++
			mu.Unlock()
		})
	}
	p.Stop()
	require.Equal(t, 5, count)
}

func TestSubmitContextCancelled(t *testing.T) {
	p := NewPool(1)
	release := make(chan struct{})
	started := make(chan struct{})
	p.Submit(func() {
		close(started)
		<-release
	})
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ran := false
	err := p.SubmitContext(ctx, func() { ran = true })
	require.ErrorIs(t, err, context.Canceled)

	close(release)
	p.Stop()
	require.False(t, ran)
}

func TestSubmitContextRuns(t *testing.T) {
	p := NewPool(0)
	done := make(chan int, 1)
	require.NoError(t, p.SubmitContext(context.Background(), func() { done <- 42 }))
	require.Equal(t, 42, <-done)
	p.Stop()
}
