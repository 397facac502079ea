package repository

import (
	"github.com/aaravmahajanofficial/saonamtg-web/internal/config"
)

type Repository struct {
	Content ContentRepository
	Product ProductRepository
}

// New wires both upstream repositories from configuration. The commerce
// client is not traced by otelhttp since its URLs carry the consumer secret.
func New(cfg *config.Config) *Repository {
	contentClient := NewHTTPClient(cfg.WordPress.Timeout, true)
	commerceClient := NewHTTPClient(cfg.WooCommerce.Timeout, false)

	return &Repository{
		Content: NewContentRepo(cfg.WordPress.APIURL, cfg.WordPress.APIRoot, contentClient),
		Product: NewProductRepo(
			cfg.WooCommerce.BaseURL,
			commerceClient,
			QueryCredentials(cfg.WooCommerce.ConsumerKey, cfg.WooCommerce.ConsumerSecret),
		),
	}
}
