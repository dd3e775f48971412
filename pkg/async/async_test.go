package async_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formvalidation/pkg/async"
)

func TestAsync(t *testing.T) {
	t.Parallel()

	t.Run("returns result", func(t *testing.T) {
		t.Parallel()
		f := async.Async(context.Background(), 42, func(_ context.Context, n int) (string, error) {
			time.Sleep(10 * time.Millisecond)
			return fmt.Sprintf("Number: %d", n), nil
		})

		res, err := f.Await()
		require.NoError(t, err)
		assert.Equal(t, "Number: 42", res)
		assert.True(t, f.IsComplete())
	})

	t.Run("returns error", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		f := async.Async(context.Background(), 0, func(context.Context, int) (int, error) {
			return 0, boom
		})

		_, err := f.Await()
		assert.ErrorIs(t, err, boom)
	})

	t.Run("panic completes the future with an error", func(t *testing.T) {
		t.Parallel()
		f := async.Async(context.Background(), 0, func(context.Context, int) (int, error) {
			panic("engine exploded")
		})

		res, err := f.Await()
		require.ErrorIs(t, err, async.ErrPanic)
		assert.Contains(t, err.Error(), "engine exploded")
		assert.Zero(t, res)
		assert.True(t, f.IsComplete())
	})

	t.Run("pre-canceled context skips the function", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		called := false
		f := async.Async(ctx, 1, func(context.Context, int) (int, error) {
			called = true
			return 1, nil
		})

		_, err := f.Await()
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})

	t.Run("await is repeatable from many goroutines", func(t *testing.T) {
		t.Parallel()
		f := async.Async(context.Background(), 7, func(_ context.Context, n int) (int, error) {
			time.Sleep(5 * time.Millisecond)
			return n * 2, nil
		})

		var wg sync.WaitGroup
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				res, err := f.Await()
				assert.NoError(t, err)
				assert.Equal(t, 14, res)
			}()
		}
		wg.Wait()
	})
}

func TestFuture_Waiting(t *testing.T) {
	t.Parallel()

	slow := func() *async.Future[int] {
		return async.Async(context.Background(), 0, func(context.Context, int) (int, error) {
			time.Sleep(100 * time.Millisecond)
			return 1, nil
		})
	}

	t.Run("await with timeout", func(t *testing.T) {
		t.Parallel()
		f := slow()
		_, err := f.AwaitWithTimeout(10 * time.Millisecond)
		assert.ErrorIs(t, err, async.ErrTimeout)
		assert.False(t, f.IsComplete())

		res, err := f.AwaitWithTimeout(time.Second)
		require.NoError(t, err)
		assert.Equal(t, 1, res)
	})

	t.Run("await with context", func(t *testing.T) {
		t.Parallel()
		f := slow()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := f.AwaitContext(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)

		<-f.Done()
		assert.True(t, f.IsComplete())
	})
}

func TestResolved(t *testing.T) {
	t.Parallel()

	f := async.Resolved("done", nil)
	assert.True(t, f.IsComplete())

	res, err := f.Await()
	require.NoError(t, err)
	assert.Equal(t, "done", res)
}
