// Package async provides a small generic Future for running a computation in
// the background and waiting for its result.
//
// Async starts the supplied function in its own goroutine and immediately
// returns a *Future. The caller can wait with Await, bound the wait with
// AwaitWithTimeout or AwaitContext, select on Done, or poll with IsComplete.
// Resolved builds a Future that is already complete, which is handy for
// short-circuit paths that never leave the calling goroutine.
//
// # Usage
//
//	future := async.Async(ctx, inv, func(ctx context.Context, inv *validation.Invocation) (validation.Result, error) {
//		return v.Validate(ctx, inv)
//	})
//
//	// hand the future to whoever needs to wait for it ...
//	res, err := future.Await()
//
// # Error Handling
//
// Await returns whatever the function returned. AwaitWithTimeout returns
// ErrTimeout and AwaitContext returns ctx.Err() when they stop waiting early;
// in both cases the computation keeps running to completion.
package async
