package mockcache

import (
	"context"

	"github.com/stretchr/testify/mock"

	"payment-analytics-service/internal/cache"
	"payment-analytics-service/internal/model"
)

type Cache struct {
	mock.Mock
}

// Interface compliance check
var _ cache.InsightsCache = &Cache{}

func (m *Cache) GetInsights(ctx context.Context, key string) (model.PaymentInsights, bool, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(model.PaymentInsights), args.Bool(1), args.Error(2)
}

func (m *Cache) SetInsights(ctx context.Context, key string, insights model.PaymentInsights) error {
	args := m.Called(ctx, key, insights)
	return args.Error(0)
}
