package service

import (
	"sort"

	"payment-analytics-service/internal/model"
)

// paymentMetrics is the aggregate snapshot computed from one payment set.
// Only completed payments contribute to revenue; every division below is
// guarded against a zero denominator.
type paymentMetrics struct {
	totalRevenue            float64
	totalTransactions       int
	completedCount          int
	refundedCount           int
	successRate             float64
	refundRate              float64
	averageTransactionValue float64
	methodBreakdown         []model.MethodBreakdown
	typeBreakdown           []model.TypeBreakdown
}

// calculatePaymentMetrics derives totals, rates, and breakdowns from a
// payment record set. Pure function of its input.
func calculatePaymentMetrics(payments []model.PaymentRecord) paymentMetrics {
	m := paymentMetrics{
		totalTransactions: len(payments),
		methodBreakdown:   []model.MethodBreakdown{},
		typeBreakdown:     []model.TypeBreakdown{},
	}

	type methodAgg struct {
		count   int
		revenue float64
	}
	type typeAgg struct {
		count   int
		revenue float64
	}
	methods := map[string]*methodAgg{}
	types := map[string]*typeAgg{}

	for _, p := range payments {
		switch p.Status {
		case model.StatusCompleted:
			m.completedCount++
			m.totalRevenue += p.Amount

			ma, ok := methods[p.PaymentMethod]
			if !ok {
				ma = &methodAgg{}
				methods[p.PaymentMethod] = ma
			}
			ma.count++
			ma.revenue += p.Amount

			ta, ok := types[p.Category()]
			if !ok {
				ta = &typeAgg{}
				types[p.Category()] = ta
			}
			ta.count++
			ta.revenue += p.Amount
		case model.StatusRefunded:
			m.refundedCount++
		}
	}

	if m.totalTransactions > 0 {
		m.successRate = float64(m.completedCount) / float64(m.totalTransactions) * 100
		m.refundRate = float64(m.refundedCount) / float64(m.totalTransactions) * 100
	}
	if m.completedCount > 0 {
		m.averageTransactionValue = m.totalRevenue / float64(m.completedCount)
	}

	for method, agg := range methods {
		m.methodBreakdown = append(m.methodBreakdown, model.MethodBreakdown{
			Method:     method,
			Count:      agg.count,
			Revenue:    agg.revenue,
			Percentage: revenueShare(agg.revenue, m.totalRevenue),
		})
	}
	for category, agg := range types {
		m.typeBreakdown = append(m.typeBreakdown, model.TypeBreakdown{
			Type:         category,
			Revenue:      agg.revenue,
			Transactions: agg.count,
			Percentage:   revenueShare(agg.revenue, m.totalRevenue),
		})
	}

	// Deterministic output order: highest revenue first, name breaks ties.
	sort.Slice(m.methodBreakdown, func(i, j int) bool {
		if m.methodBreakdown[i].Revenue != m.methodBreakdown[j].Revenue {
			return m.methodBreakdown[i].Revenue > m.methodBreakdown[j].Revenue
		}
		return m.methodBreakdown[i].Method < m.methodBreakdown[j].Method
	})
	sort.Slice(m.typeBreakdown, func(i, j int) bool {
		if m.typeBreakdown[i].Revenue != m.typeBreakdown[j].Revenue {
			return m.typeBreakdown[i].Revenue > m.typeBreakdown[j].Revenue
		}
		return m.typeBreakdown[i].Type < m.typeBreakdown[j].Type
	})

	return m
}

func revenueShare(revenue, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return revenue / total * 100
}
