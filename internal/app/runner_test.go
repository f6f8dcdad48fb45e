package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRunTasks_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := runTasks(ctx, zap.NewNop(), func(ctx context.Context) error {
		<-ctx.Done()
		close(stopped)
		return nil
	})

	assert.NoError(t, err)
	select {
	case <-stopped:
	default:
		t.Fatal("task did not observe cancellation")
	}
}

func TestRunTasks_FailureCancelsSiblings(t *testing.T) {
	boom := errors.New("boom")

	err := runTasks(context.Background(), zap.NewNop(),
		func(ctx context.Context) error { return boom },
		func(ctx context.Context) error {
			<-ctx.Done()
			return nil
		},
	)

	assert.ErrorIs(t, err, boom)
}
