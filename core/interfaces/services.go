// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"content-normalizer-api/core/domain"
)

// NormalizerService fetches remote content and converts it into a normalized tree
type NormalizerService interface {
	// FetchAndNormalize fetches a single URL and normalizes its content
	FetchAndNormalize(ctx context.Context, url string) (*domain.NormalizedResult, error)

	// FetchAndNormalizeBatch normalizes several URLs, preserving input order
	FetchAndNormalizeBatch(ctx context.Context, urls []string) []domain.BatchItem

	// Evict drops any cached result for the URL
	Evict(ctx context.Context, url string) error
}
