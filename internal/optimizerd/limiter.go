package optimizerd

import (
	"context"
	"net/http"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// ConcurrencyLimiter bounds how many calls are processed at once,
// modeling a fixed-capacity worker pool. A full pool blocks new calls
// rather than rejecting them, so excess load turns into back-pressure on
// the transport.
type ConcurrencyLimiter struct {
	slots chan struct{}
}

// NewConcurrencyLimiter creates a limiter with the given number of
// worker slots. Capacities below one are clamped to one.
func NewConcurrencyLimiter(capacity int) *ConcurrencyLimiter {
	if capacity < 1 {
		capacity = 1
	}
	return &ConcurrencyLimiter{slots: make(chan struct{}, capacity)}
}

// Capacity returns the number of worker slots.
func (l *ConcurrencyLimiter) Capacity() int {
	return cap(l.slots)
}

// InFlight returns the number of slots currently held.
func (l *ConcurrencyLimiter) InFlight() int {
	return len(l.slots)
}

// Acquire blocks until a worker slot is free or ctx is done.
func (l *ConcurrencyLimiter) Acquire(ctx context.Context) error {
	select {
	case l.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release returns a slot to the pool. It must follow a successful
// Acquire.
func (l *ConcurrencyLimiter) Release() {
	<-l.slots
}

// UnaryInterceptor returns a gRPC interceptor that holds a worker slot
// for the duration of each call.
func (l *ConcurrencyLimiter) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if err := l.Acquire(ctx); err != nil {
			return nil, status.FromContextError(err).Err()
		}
		defer l.Release()
		return handler(ctx, req)
	}
}

// Middleware wraps an http.Handler with the same worker-pool bound.
func (l *ConcurrencyLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := l.Acquire(r.Context()); err != nil {
			http.Error(w, `{"error":"request cancelled while waiting for a worker"}`, http.StatusServiceUnavailable)
			return
		}
		defer l.Release()
		next.ServeHTTP(w, r)
	})
}
