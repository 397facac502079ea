package service

import "context"

// Provider is one source in a fallback chain. ok=false hands over to the
// next provider.
type Provider[T any] func(ctx context.Context) (T, bool)

// FirstOf runs the providers in order and returns the first successful
// value. The last provider is normally a static default that always
// succeeds; if none does, the zero value is returned.
func FirstOf[T any](ctx context.Context, providers ...Provider[T]) T {
	for _, p := range providers {
		if v, ok := p(ctx); ok {
			return v
		}
	}

	var zero T

	return zero
}

// Static is a provider that always succeeds with v.
func Static[T any](v T) Provider[T] {
	return func(context.Context) (T, bool) {
		return v, true
	}
}
