package service

import (
	"sort"

	"payment-analytics-service/internal/model"
)

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
)

// bucketDaily groups payments of any status by calendar date (UTC). Revenue
// sums completed payments only; buckets come out sorted ascending by date.
func bucketDaily(payments []model.PaymentRecord) []model.DailyBucket {
	type dayAgg struct {
		revenue   float64
		total     int
		completed int
	}
	days := map[string]*dayAgg{}

	for _, p := range payments {
		key := p.CreatedAt.UTC().Format(dayLayout)
		agg, ok := days[key]
		if !ok {
			agg = &dayAgg{}
			days[key] = agg
		}
		agg.total++
		if p.Completed() {
			agg.completed++
			agg.revenue += p.Amount
		}
	}

	buckets := make([]model.DailyBucket, 0, len(days))
	for date, agg := range days {
		b := model.DailyBucket{
			Date:         date,
			Revenue:      agg.revenue,
			Transactions: agg.total,
		}
		// A bucket only exists for dates with at least one record, but the
		// guard keeps the invariant local.
		if agg.total > 0 {
			b.SuccessRate = float64(agg.completed) / float64(agg.total) * 100
		}
		buckets = append(buckets, b)
	}

	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Date < buckets[j].Date })
	return buckets
}

// bucketMonthly groups completed payments by calendar month (UTC). Growth is
// computed against the immediately preceding month once the sequence is
// sorted; the first month is always 0.
func bucketMonthly(payments []model.PaymentRecord) []model.MonthlyBucket {
	type monthAgg struct {
		revenue float64
		count   int
	}
	months := map[string]*monthAgg{}

	for _, p := range payments {
		if !p.Completed() {
			continue
		}
		key := p.CreatedAt.UTC().Format(monthLayout)
		agg, ok := months[key]
		if !ok {
			agg = &monthAgg{}
			months[key] = agg
		}
		agg.count++
		agg.revenue += p.Amount
	}

	buckets := make([]model.MonthlyBucket, 0, len(months))
	for month, agg := range months {
		buckets = append(buckets, model.MonthlyBucket{
			Month:        month,
			Revenue:      agg.revenue,
			Transactions: agg.count,
		})
	}

	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Month < buckets[j].Month })

	for i := 1; i < len(buckets); i++ {
		prev := buckets[i-1].Revenue
		if prev > 0 {
			buckets[i].Growth = (buckets[i].Revenue - prev) / prev * 100
		}
	}

	return buckets
}

// weeklyGrowth compares the revenue of the last 7 daily buckets against the
// preceding 7. Returns 0 with fewer than 14 buckets or a zero prior week.
func weeklyGrowth(daily []model.DailyBucket) float64 {
	if len(daily) < 14 {
		return 0
	}

	var lastWeek, priorWeek float64
	for _, b := range daily[len(daily)-7:] {
		lastWeek += b.Revenue
	}
	for _, b := range daily[len(daily)-14 : len(daily)-7] {
		priorWeek += b.Revenue
	}

	if priorWeek == 0 {
		return 0
	}
	return (lastWeek - priorWeek) / priorWeek * 100
}

// monthlyGrowth is the growth of the most recent monthly bucket, 0 when the
// sequence has fewer than 2 months.
func monthlyGrowth(monthly []model.MonthlyBucket) float64 {
	if len(monthly) < 2 {
		return 0
	}
	return monthly[len(monthly)-1].Growth
}
