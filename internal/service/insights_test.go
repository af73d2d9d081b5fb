package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment-analytics-service/internal/model"
)

func TestBuildRecommendations_LowSuccessRateOnly(t *testing.T) {
	stats := insightStats{successRate: 85, refundRate: 2}

	recs := buildRecommendations(stats)

	require.Len(t, recs, 1)
	assert.Equal(t, "payment_success", recs[0].Type)
	assert.Equal(t, model.PriorityHigh, recs[0].Priority)
	assert.Equal(t, "Improve Payment Success Rate", recs[0].Title)
}

func TestBuildRecommendations_RefundAndAdSpend(t *testing.T) {
	stats := insightStats{
		successRate:   95,
		refundRate:    6,
		campaignCount: 2,
		meanROAS:      1.2,
	}

	recs := buildRecommendations(stats)

	require.Len(t, recs, 2)
	assert.Equal(t, "refund_rate", recs[0].Type)
	assert.Equal(t, model.PriorityHigh, recs[0].Priority)
	assert.Equal(t, "ad_spend", recs[1].Type)
	assert.Equal(t, model.PriorityMedium, recs[1].Priority)
}

func TestBuildRecommendations_ROASRuleNeedsCampaigns(t *testing.T) {
	stats := insightStats{successRate: 95, refundRate: 0, campaignCount: 0, meanROAS: 0}

	recs := buildRecommendations(stats)

	assert.Empty(t, recs)
	assert.NotNil(t, recs)
}

func TestBuildRiskFactors_PaymentFailuresAtBoundary(t *testing.T) {
	risks := buildRiskFactors(insightStats{successRate: 85, refundRate: 2})

	require.Len(t, risks, 1)
	assert.Equal(t, "payment_failures", risks[0].Type)
	assert.Equal(t, model.SeverityHigh, risks[0].Severity)
}

func TestBuildRiskFactors_HighRefundAndLowConversion(t *testing.T) {
	stats := insightStats{
		successRate:        99,
		refundRate:         12,
		campaignCount:      3,
		meanConversionRate: 0.4,
	}

	risks := buildRiskFactors(stats)

	require.Len(t, risks, 2)
	assert.Equal(t, "high_refund_rate", risks[0].Type)
	assert.Equal(t, model.SeverityHigh, risks[0].Severity)
	assert.Equal(t, "low_conversion", risks[1].Type)
	assert.Equal(t, model.SeverityMedium, risks[1].Severity)
}

func TestSnapshotStats_MeansAcrossCampaigns(t *testing.T) {
	m := paymentMetrics{successRate: 92, refundRate: 3}
	conversions := []model.ConversionMetric{
		{ROAS: 1.0, ConversionRate: 2.0},
		{ROAS: 3.0, ConversionRate: 4.0},
	}

	stats := snapshotStats(m, conversions)

	assert.Equal(t, 2, stats.campaignCount)
	assert.InDelta(t, 2.0, stats.meanROAS, 1e-9)
	assert.InDelta(t, 3.0, stats.meanConversionRate, 1e-9)
}

func TestSeasonalPatterns_WeekendLift(t *testing.T) {
	// 2025-05-03 and 2025-05-04 are a Saturday and Sunday.
	buckets := []model.DailyBucket{
		{Date: "2025-05-01", Revenue: 100},
		{Date: "2025-05-02", Revenue: 100},
		{Date: "2025-05-03", Revenue: 300},
		{Date: "2025-05-04", Revenue: 280},
		{Date: "2025-05-05", Revenue: 100},
	}

	patterns := seasonalPatterns(buckets)

	require.Len(t, patterns, 1)
	assert.Equal(t, "Higher weekend revenue", patterns[0])
}

func TestSeasonalPatterns_NoPatternWithinLift(t *testing.T) {
	buckets := []model.DailyBucket{
		{Date: "2025-05-01", Revenue: 100},
		{Date: "2025-05-02", Revenue: 100},
		{Date: "2025-05-03", Revenue: 110},
		{Date: "2025-05-04", Revenue: 110},
	}

	patterns := seasonalPatterns(buckets)

	assert.Empty(t, patterns)
	assert.NotNil(t, patterns)
}

func TestSeasonalPatterns_NeedsBothKindsOfDays(t *testing.T) {
	weekendOnly := []model.DailyBucket{
		{Date: "2025-05-03", Revenue: 500},
		{Date: "2025-05-04", Revenue: 500},
	}
	assert.Empty(t, seasonalPatterns(weekendOnly))
}

func TestBuildPaymentInsights_TopCampaignLimit(t *testing.T) {
	var conversions []model.ConversionMetric
	for i := 0; i < 7; i++ {
		conversions = append(conversions, model.ConversionMetric{
			CampaignID: fmt.Sprintf("c%d", i),
			ROAS:       float64(10 - i),
		})
	}

	insights := buildPaymentInsights(paymentMetrics{successRate: 95}, nil, nil, conversions)

	require.Len(t, insights.TopPerformingCampaigns, 5)
	assert.Equal(t, "c0", insights.TopPerformingCampaigns[0].CampaignID)
	assert.Equal(t, "c4", insights.TopPerformingCampaigns[4].CampaignID)
}

func TestBuildPaymentInsights_ComposesTrends(t *testing.T) {
	daily := dailySeries([]float64{
		100, 100, 100, 100, 100, 100, 100,
		200, 200, 200, 200, 200, 200, 200,
	})
	monthly := []model.MonthlyBucket{
		{Month: "2025-04"},
		{Month: "2025-05", Growth: 40},
	}

	insights := buildPaymentInsights(paymentMetrics{successRate: 95}, daily, monthly, nil)

	assert.InDelta(t, 100, insights.PaymentTrends.WeeklyGrowth, 1e-9)
	assert.InDelta(t, 40, insights.PaymentTrends.MonthlyGrowth, 1e-9)
	assert.Empty(t, insights.TopPerformingCampaigns)
	assert.NotNil(t, insights.Recommendations)
	assert.NotNil(t, insights.RiskFactors)
}
