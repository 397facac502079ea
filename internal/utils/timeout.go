package utils

import (
	"context"
	"time"
)

// DefaultPageTimeout bounds all upstream calls made while rendering one page.
const DefaultPageTimeout = 20 * time.Second

func WithPageTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultPageTimeout)
}
