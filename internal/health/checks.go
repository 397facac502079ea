package health

import (
	"context"
	"fmt"
	"time"

	"github.com/hellofresh/health-go/v5"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// Endpoints are the upstream APIs the site depends on.
type Endpoints struct {
	Content  Pinger
	Commerce Pinger
}

func NewHealthHandler(version string, endpoints *Endpoints) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "saonamtg-web",
			Version: version,
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "content-api",
				Timeout:   5 * time.Second,
				SkipOnErr: false,
				Check:     pingCheck("content API", endpoints.Content),
			},
			// pages still render with an empty catalog
			health.Config{
				Name:      "commerce-api",
				Timeout:   5 * time.Second,
				SkipOnErr: true,
				Check:     pingCheck("commerce API", endpoints.Commerce),
			},
		),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}

func pingCheck(name string, p Pinger) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if p == nil {
			return fmt.Errorf("%s client is not initialized", name)
		}

		if err := p.Ping(ctx); err != nil {
			return fmt.Errorf("failed to reach %s: %w", name, err)
		}

		return nil
	}
}
