package mockservice

import (
	"context"

	"github.com/stretchr/testify/mock"

	"payment-analytics-service/internal/model"
	"payment-analytics-service/internal/service"
)

type Service struct {
	mock.Mock
}

// Interface compliance check
var _ service.AnalyticsService = &Service{}

func (m *Service) GetPaymentAnalytics(ctx context.Context, filter model.RecordFilter) (model.PaymentAnalytics, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(model.PaymentAnalytics), args.Error(1)
}

func (m *Service) GetConversionMetrics(ctx context.Context, filter model.RecordFilter) (model.ConversionMetricsResponse, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(model.ConversionMetricsResponse), args.Error(1)
}

func (m *Service) GetPaymentInsights(ctx context.Context, filter model.RecordFilter) (model.PaymentInsights, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(model.PaymentInsights), args.Error(1)
}
