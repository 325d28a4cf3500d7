package handlers

import (
	"context"

	"content-normalizer-api/core/domain"
)

// mockNormalizerService is a mock implementation of the normalizer service
type mockNormalizerService struct {
	normalizeFunc func(ctx context.Context, url string) (*domain.NormalizedResult, error)
	batchFunc     func(ctx context.Context, urls []string) []domain.BatchItem
	evictFunc     func(ctx context.Context, url string) error
}

func (m *mockNormalizerService) FetchAndNormalize(ctx context.Context, url string) (*domain.NormalizedResult, error) {
	if m.normalizeFunc != nil {
		return m.normalizeFunc(ctx, url)
	}
	return &domain.NormalizedResult{}, nil
}

func (m *mockNormalizerService) FetchAndNormalizeBatch(ctx context.Context, urls []string) []domain.BatchItem {
	if m.batchFunc != nil {
		return m.batchFunc(ctx, urls)
	}
	return nil
}

func (m *mockNormalizerService) Evict(ctx context.Context, url string) error {
	if m.evictFunc != nil {
		return m.evictFunc(ctx, url)
	}
	return nil
}
