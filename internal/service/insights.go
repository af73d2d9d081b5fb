package service

import (
	"fmt"
	"time"

	"payment-analytics-service/internal/model"
)

// Thresholds behind recommendation and risk rules. Tests pin the exact
// boundary behavior of each threshold.
const (
	successRateRecommendBelow = 90.0
	refundRateRecommendAbove  = 5.0
	roasRecommendBelow        = 2.0

	refundRateRiskAbove      = 10.0
	conversionRateRiskBelow  = 1.0
	successRateRiskAtOrBelow = 85.0

	// Weekend revenue must exceed weekday revenue by this factor before a
	// seasonal pattern is reported.
	weekendLiftFactor = 1.2

	topCampaignLimit = 5
)

// insightStats is the snapshot the rule tables evaluate. Mean values are
// only meaningful when campaignCount > 0; rules guard on it.
type insightStats struct {
	successRate        float64
	refundRate         float64
	campaignCount      int
	meanROAS           float64
	meanConversionRate float64
}

func snapshotStats(m paymentMetrics, conversions []model.ConversionMetric) insightStats {
	s := insightStats{
		successRate:   m.successRate,
		refundRate:    m.refundRate,
		campaignCount: len(conversions),
	}
	if len(conversions) == 0 {
		return s
	}
	var roasSum, crSum float64
	for _, c := range conversions {
		roasSum += c.ROAS
		crSum += c.ConversionRate
	}
	s.meanROAS = roasSum / float64(len(conversions))
	s.meanConversionRate = crSum / float64(len(conversions))
	return s
}

// recommendationRules is an ordered (predicate, outcome) table; adding a rule
// never touches existing branches.
var recommendationRules = []struct {
	when  func(insightStats) bool
	build func(insightStats) model.Recommendation
}{
	{
		when: func(s insightStats) bool { return s.successRate < successRateRecommendBelow },
		build: func(s insightStats) model.Recommendation {
			return model.Recommendation{
				Type:        "payment_success",
				Priority:    model.PriorityHigh,
				Title:       "Improve Payment Success Rate",
				Description: fmt.Sprintf("Your payment success rate is %.1f%%, below the %.0f%% target.", s.successRate, successRateRecommendBelow),
				Impact:      "Failed payments are lost bookings and frustrated couples.",
				Action:      "Review declined transactions and offer an alternative payment method at checkout.",
			}
		},
	},
	{
		when: func(s insightStats) bool { return s.refundRate > refundRateRecommendAbove },
		build: func(s insightStats) model.Recommendation {
			return model.Recommendation{
				Type:        "refund_rate",
				Priority:    model.PriorityHigh,
				Title:       "Reduce Refund Rate",
				Description: fmt.Sprintf("%.1f%% of transactions are refunded, above the %.0f%% target.", s.refundRate, refundRateRecommendAbove),
				Impact:      "Refunds erode revenue and often signal mismatched expectations.",
				Action:      "Audit recent refunds for common causes and tighten listing descriptions.",
			}
		},
	},
	{
		when: func(s insightStats) bool { return s.campaignCount > 0 && s.meanROAS < roasRecommendBelow },
		build: func(s insightStats) model.Recommendation {
			return model.Recommendation{
				Type:        "ad_spend",
				Priority:    model.PriorityMedium,
				Title:       "Improve Return on Ad Spend",
				Description: fmt.Sprintf("Average ROAS across campaigns is %.2f, below the %.1fx target.", s.meanROAS, roasRecommendBelow),
				Impact:      "Under-performing campaigns consume budget without matching revenue.",
				Action:      "Shift budget toward the campaigns leading the ROAS ranking.",
			}
		},
	},
}

// riskRules mirrors the recommendation table for risk flags.
var riskRules = []struct {
	when  func(insightStats) bool
	build func(insightStats) model.RiskFactor
}{
	{
		when: func(s insightStats) bool { return s.refundRate > refundRateRiskAbove },
		build: func(s insightStats) model.RiskFactor {
			return model.RiskFactor{
				Type:           "high_refund_rate",
				Severity:       model.SeverityHigh,
				Description:    fmt.Sprintf("Refund rate of %.1f%% is more than double the acceptable level.", s.refundRate),
				Recommendation: "Investigate refund causes immediately; sustained refunds at this level threaten payout eligibility.",
			}
		},
	},
	{
		when: func(s insightStats) bool { return s.campaignCount > 0 && s.meanConversionRate < conversionRateRiskBelow },
		build: func(s insightStats) model.RiskFactor {
			return model.RiskFactor{
				Type:           "low_conversion",
				Severity:       model.SeverityMedium,
				Description:    fmt.Sprintf("Campaigns convert at %.2f%% on average, below the %.0f%% floor.", s.meanConversionRate, conversionRateRiskBelow),
				Recommendation: "Re-target campaigns or pause the weakest ones until conversion recovers.",
			}
		},
	},
	{
		when: func(s insightStats) bool { return s.successRate <= successRateRiskAtOrBelow },
		build: func(s insightStats) model.RiskFactor {
			return model.RiskFactor{
				Type:           "payment_failures",
				Severity:       model.SeverityHigh,
				Description:    fmt.Sprintf("Payment success rate of %.1f%% indicates systematic payment failures.", s.successRate),
				Recommendation: "Check the payment gateway configuration and retry policy with your provider.",
			}
		},
	},
}

func buildRecommendations(s insightStats) []model.Recommendation {
	recs := []model.Recommendation{}
	for _, rule := range recommendationRules {
		if rule.when(s) {
			recs = append(recs, rule.build(s))
		}
	}
	return recs
}

func buildRiskFactors(s insightStats) []model.RiskFactor {
	risks := []model.RiskFactor{}
	for _, rule := range riskRules {
		if rule.when(s) {
			risks = append(risks, rule.build(s))
		}
	}
	return risks
}

// seasonalPatterns compares mean weekend revenue against mean weekday
// revenue across the daily buckets. The weekend is derived from each
// bucket's calendar date, not its position in the sequence.
func seasonalPatterns(daily []model.DailyBucket) []string {
	var (
		weekendSum, weekdaySum   float64
		weekendDays, weekdayDays int
	)
	for _, b := range daily {
		date, err := time.Parse(dayLayout, b.Date)
		if err != nil {
			continue
		}
		switch date.Weekday() {
		case time.Saturday, time.Sunday:
			weekendSum += b.Revenue
			weekendDays++
		default:
			weekdaySum += b.Revenue
			weekdayDays++
		}
	}

	patterns := []string{}
	if weekendDays == 0 || weekdayDays == 0 {
		return patterns
	}

	weekendMean := weekendSum / float64(weekendDays)
	weekdayMean := weekdaySum / float64(weekdayDays)
	if weekendMean > weekdayMean*weekendLiftFactor {
		patterns = append(patterns, "Higher weekend revenue")
	}
	return patterns
}

// buildPaymentInsights composes metrics, buckets, and attributed conversions
// into the insights payload.
func buildPaymentInsights(m paymentMetrics, daily []model.DailyBucket, monthly []model.MonthlyBucket, conversions []model.ConversionMetric) model.PaymentInsights {
	stats := snapshotStats(m, conversions)

	top := conversions
	if len(top) > topCampaignLimit {
		top = top[:topCampaignLimit]
	}
	topCopy := make([]model.ConversionMetric, len(top))
	copy(topCopy, top)

	return model.PaymentInsights{
		TopPerformingCampaigns: topCopy,
		PaymentTrends: model.PaymentTrends{
			WeeklyGrowth:     weeklyGrowth(daily),
			MonthlyGrowth:    monthlyGrowth(monthly),
			SeasonalPatterns: seasonalPatterns(daily),
		},
		Recommendations: buildRecommendations(stats),
		RiskFactors:     buildRiskFactors(stats),
	}
}
