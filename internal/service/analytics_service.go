package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"payment-analytics-service/internal/cache"
	"payment-analytics-service/internal/model"
	"payment-analytics-service/internal/repository"
)

// defaultRange is the trailing window applied when the caller omits one.
const defaultRange = 30 * 24 * time.Hour

// AnalyticsService is the engine facade. Every call computes fresh derived
// values from immutable fetched records; no state survives between calls.
type AnalyticsService interface {
	GetPaymentAnalytics(ctx context.Context, filter model.RecordFilter) (model.PaymentAnalytics, error)
	GetConversionMetrics(ctx context.Context, filter model.RecordFilter) (model.ConversionMetricsResponse, error)
	GetPaymentInsights(ctx context.Context, filter model.RecordFilter) (model.PaymentInsights, error)
}

type analyticsService struct {
	repo              repository.PaymentRepository
	insightsCache     cache.InsightsCache
	logger            *zap.Logger
	assumedOrderValue float64
	now               func() time.Time
}

// NewAnalyticsService constructs an analyticsService. insightsCache may be
// nil, which disables response caching.
func NewAnalyticsService(repo repository.PaymentRepository, insightsCache cache.InsightsCache, logger *zap.Logger, assumedOrderValue float64) AnalyticsService {
	return &analyticsService{
		repo:              repo,
		insightsCache:     insightsCache,
		logger:            logger,
		assumedOrderValue: assumedOrderValue,
		now:               time.Now,
	}
}

// GetPaymentAnalytics computes the aggregate financial picture for the
// filter window. Depends on the payment fetch only.
func (s *analyticsService) GetPaymentAnalytics(ctx context.Context, filter model.RecordFilter) (model.PaymentAnalytics, error) {
	filter, err := s.normalizeFilter(filter)
	if err != nil {
		return model.PaymentAnalytics{}, err
	}

	payments, err := s.repo.FetchPayments(ctx, filter)
	if err != nil {
		return model.PaymentAnalytics{}, &DataAccessError{Op: "payments", Err: err}
	}
	if err := validatePayments(payments); err != nil {
		return model.PaymentAnalytics{}, err
	}

	m := calculatePaymentMetrics(payments)
	return model.PaymentAnalytics{
		TotalRevenue:            m.totalRevenue,
		TotalTransactions:       m.totalTransactions,
		SuccessRate:             m.successRate,
		AverageTransactionValue: m.averageTransactionValue,
		ConversionRate:          m.successRate,
		RefundRate:              m.refundRate,
		PaymentMethodBreakdown:  m.methodBreakdown,
		RevenueByType:           m.typeBreakdown,
		DailyRevenue:            bucketDaily(payments),
		MonthlyTrends:           bucketMonthly(payments),
	}, nil
}

// GetConversionMetrics attributes campaign spend against completed payments.
// Both fetches must succeed; no partial result is returned.
func (s *analyticsService) GetConversionMetrics(ctx context.Context, filter model.RecordFilter) (model.ConversionMetricsResponse, error) {
	filter, err := s.normalizeFilter(filter)
	if err != nil {
		return model.ConversionMetricsResponse{}, err
	}

	payments, campaigns, err := s.fetchBoth(ctx, filter)
	if err != nil {
		return model.ConversionMetricsResponse{}, err
	}

	resp := model.ConversionMetricsResponse{
		Meta: model.ConversionMeta{
			Period: model.Period{
				Start: filter.From.UTC().Format(time.RFC3339),
				End:   filter.To.UTC().Format(time.RFC3339),
			},
			AssumedOrderValue: s.assumedOrderValue,
		},
		Data: attributeConversions(campaigns, payments, s.assumedOrderValue),
	}
	if filter.VendorID != nil {
		resp.Meta.VendorID = *filter.VendorID
	}
	return resp, nil
}

// GetPaymentInsights composes metrics, trends, attribution, and the rule
// tables into the insights payload, with an optional cache in front.
func (s *analyticsService) GetPaymentInsights(ctx context.Context, filter model.RecordFilter) (model.PaymentInsights, error) {
	filter, err := s.normalizeFilter(filter)
	if err != nil {
		return model.PaymentInsights{}, err
	}

	key := insightsCacheKey(filter)
	if s.insightsCache != nil {
		cached, ok, cacheErr := s.insightsCache.GetInsights(ctx, key)
		if cacheErr != nil {
			s.logger.Warn("insights cache lookup failed", zap.Error(cacheErr))
		} else if ok {
			return cached, nil
		}
	}

	payments, campaigns, err := s.fetchBoth(ctx, filter)
	if err != nil {
		return model.PaymentInsights{}, err
	}

	m := calculatePaymentMetrics(payments)
	daily := bucketDaily(payments)
	monthly := bucketMonthly(payments)
	conversions := attributeConversions(campaigns, payments, s.assumedOrderValue)

	insights := buildPaymentInsights(m, daily, monthly, conversions)

	if s.insightsCache != nil {
		if cacheErr := s.insightsCache.SetInsights(ctx, key, insights); cacheErr != nil {
			s.logger.Warn("insights cache store failed", zap.Error(cacheErr))
		}
	}

	return insights, nil
}

// normalizeFilter applies the default trailing window and validates range
// ordering. The returned filter always has UTC bounds.
func (s *analyticsService) normalizeFilter(filter model.RecordFilter) (model.RecordFilter, error) {
	now := s.now().UTC()
	if filter.To.IsZero() {
		filter.To = now
	} else {
		filter.To = filter.To.UTC()
	}
	if filter.From.IsZero() {
		filter.From = filter.To.Add(-defaultRange)
	} else {
		filter.From = filter.From.UTC()
	}
	if filter.From.After(filter.To) {
		return model.RecordFilter{}, &ValidationError{Message: "from must be before to"}
	}
	return filter, nil
}

// fetchBoth issues the payment and campaign fetches concurrently; neither
// depends on the other's result, and both must succeed.
func (s *analyticsService) fetchBoth(ctx context.Context, filter model.RecordFilter) ([]model.PaymentRecord, []model.CampaignRecord, error) {
	var (
		wg        sync.WaitGroup
		payments  []model.PaymentRecord
		campaigns []model.CampaignRecord
		pErr      error
		cErr      error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		payments, pErr = s.repo.FetchPayments(ctx, filter)
	}()
	go func() {
		defer wg.Done()
		campaigns, cErr = s.repo.FetchCampaigns(ctx, filter)
	}()
	wg.Wait()

	if pErr != nil {
		return nil, nil, &DataAccessError{Op: "payments", Err: pErr}
	}
	if cErr != nil {
		return nil, nil, &DataAccessError{Op: "campaigns", Err: cErr}
	}
	if err := validatePayments(payments); err != nil {
		return nil, nil, err
	}
	return payments, campaigns, nil
}

// validatePayments enforces the provider contract the arithmetic relies on.
func validatePayments(payments []model.PaymentRecord) error {
	for _, p := range payments {
		if p.Amount < 0 {
			return &ComputationError{Message: fmt.Sprintf("payment %s has negative amount %.2f", p.ID, p.Amount)}
		}
	}
	return nil
}

func insightsCacheKey(filter model.RecordFilter) string {
	vendor := "all"
	if filter.VendorID != nil && *filter.VendorID != "" {
		vendor = *filter.VendorID
	}
	return fmt.Sprintf("%s:%d:%d", vendor, filter.From.Unix(), filter.To.Unix())
}
