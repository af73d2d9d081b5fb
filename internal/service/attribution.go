package service

import (
	"sort"

	"payment-analytics-service/internal/model"
)

// attributeConversions joins each campaign's spend against the completed
// payments whose campaign reference matches it. The result is sorted by ROAS
// descending; ties keep campaign input order (stable sort, reproducible).
//
// assumedOrderValue is the fixed average-order-value divisor behind the
// conversion-rate estimate: conversions / (spend / assumedOrderValue) * 100.
func attributeConversions(campaigns []model.CampaignRecord, payments []model.PaymentRecord, assumedOrderValue float64) []model.ConversionMetric {
	type attributed struct {
		revenue     float64
		conversions int
	}
	byCampaign := map[string]*attributed{}

	for _, p := range payments {
		if !p.Completed() || p.CampaignID == "" {
			continue
		}
		agg, ok := byCampaign[p.CampaignID]
		if !ok {
			agg = &attributed{}
			byCampaign[p.CampaignID] = agg
		}
		agg.conversions++
		agg.revenue += p.Amount
	}

	metrics := make([]model.ConversionMetric, 0, len(campaigns))
	for _, c := range campaigns {
		m := model.ConversionMetric{
			CampaignID:   c.ID,
			CampaignName: c.Name,
			TotalSpent:   c.Budget,
		}
		if agg, ok := byCampaign[c.ID]; ok {
			m.TotalRevenue = agg.revenue
			m.Conversions = agg.conversions
		}

		if m.TotalSpent > 0 {
			m.ROAS = m.TotalRevenue / m.TotalSpent
			estimatedOrders := m.TotalSpent / assumedOrderValue
			m.ConversionRate = float64(m.Conversions) / estimatedOrders * 100
		}
		if m.Conversions > 0 {
			m.CostPerConversion = m.TotalSpent / float64(m.Conversions)
			m.RevenuePerConversion = m.TotalRevenue / float64(m.Conversions)
		}

		metrics = append(metrics, m)
	}

	sort.SliceStable(metrics, func(i, j int) bool { return metrics[i].ROAS > metrics[j].ROAS })
	return metrics
}
