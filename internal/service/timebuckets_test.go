package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment-analytics-service/internal/model"
)

func paymentAt(status string, amount float64, at time.Time) model.PaymentRecord {
	p := payment(status, amount)
	p.CreatedAt = at
	return p
}

func TestBucketDaily_GroupsByCalendarDate(t *testing.T) {
	day1Morning := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	day1Evening := time.Date(2025, 3, 10, 22, 30, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)

	buckets := bucketDaily([]model.PaymentRecord{
		paymentAt(model.StatusCompleted, 500, day2),
		paymentAt(model.StatusCompleted, 100, day1Morning),
		paymentAt(model.StatusFailed, 900, day1Evening),
	})

	require.Len(t, buckets, 2)

	assert.Equal(t, "2025-03-10", buckets[0].Date)
	assert.Equal(t, 2, buckets[0].Transactions)
	assert.InDelta(t, 100, buckets[0].Revenue, 1e-9, "failed payment must not add revenue")
	assert.InDelta(t, 50, buckets[0].SuccessRate, 1e-9)

	assert.Equal(t, "2025-03-11", buckets[1].Date)
	assert.Equal(t, 1, buckets[1].Transactions)
	assert.InDelta(t, 500, buckets[1].Revenue, 1e-9)
	assert.InDelta(t, 100, buckets[1].SuccessRate, 1e-9)
}

func TestBucketMonthly_GrowthAgainstPreviousMonth(t *testing.T) {
	buckets := bucketMonthly([]model.PaymentRecord{
		paymentAt(model.StatusCompleted, 1000, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)),
		paymentAt(model.StatusCompleted, 900, time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)),
		paymentAt(model.StatusCompleted, 600, time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC)),
		paymentAt(model.StatusFailed, 5000, time.Date(2025, 2, 21, 0, 0, 0, 0, time.UTC)),
	})

	require.Len(t, buckets, 2)

	assert.Equal(t, "2025-01", buckets[0].Month)
	assert.Zero(t, buckets[0].Growth, "first month has no baseline")

	assert.Equal(t, "2025-02", buckets[1].Month)
	assert.Equal(t, 2, buckets[1].Transactions)
	assert.InDelta(t, 1500, buckets[1].Revenue, 1e-9)
	assert.InDelta(t, 50, buckets[1].Growth, 1e-9)
}

func TestBucketMonthly_ZeroPriorRevenueYieldsZeroGrowth(t *testing.T) {
	buckets := bucketMonthly([]model.PaymentRecord{
		paymentAt(model.StatusCompleted, 0, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)),
		paymentAt(model.StatusCompleted, 500, time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)),
	})

	require.Len(t, buckets, 2)
	assert.Zero(t, buckets[1].Growth)
}

func dailySeries(revenues []float64) []model.DailyBucket {
	buckets := make([]model.DailyBucket, len(revenues))
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	for i, r := range revenues {
		buckets[i] = model.DailyBucket{
			Date:         start.AddDate(0, 0, i).Format(dayLayout),
			Revenue:      r,
			Transactions: 1,
			SuccessRate:  100,
		}
	}
	return buckets
}

func TestWeeklyGrowth_RequiresFourteenBuckets(t *testing.T) {
	series := dailySeries(make([]float64, 13))
	assert.Zero(t, weeklyGrowth(series))
}

func TestWeeklyGrowth_ComparesLastTwoWeeks(t *testing.T) {
	revenues := make([]float64, 14)
	for i := 0; i < 7; i++ {
		revenues[i] = 100 // prior week: 700
	}
	for i := 7; i < 14; i++ {
		revenues[i] = 200 // last week: 1400
	}

	assert.InDelta(t, 100, weeklyGrowth(dailySeries(revenues)), 1e-9)
}

func TestWeeklyGrowth_ZeroPriorWeek(t *testing.T) {
	revenues := make([]float64, 14)
	for i := 7; i < 14; i++ {
		revenues[i] = 200
	}

	assert.Zero(t, weeklyGrowth(dailySeries(revenues)))
}

func TestMonthlyGrowth_TracksMostRecentBucket(t *testing.T) {
	assert.Zero(t, monthlyGrowth(nil))
	assert.Zero(t, monthlyGrowth([]model.MonthlyBucket{{Month: "2025-01", Growth: 0}}))

	buckets := []model.MonthlyBucket{
		{Month: "2025-01"},
		{Month: "2025-02", Growth: 25},
		{Month: "2025-03", Growth: -10},
	}
	assert.InDelta(t, -10, monthlyGrowth(buckets), 1e-9)
}

func TestBucketDaily_SortedAscendingAcrossMonths(t *testing.T) {
	var payments []model.PaymentRecord
	for day := 28; day >= 25; day-- {
		payments = append(payments, paymentAt(model.StatusCompleted, 10, time.Date(2025, 4, day, 12, 0, 0, 0, time.UTC)))
	}
	payments = append(payments, paymentAt(model.StatusCompleted, 10, time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)))

	buckets := bucketDaily(payments)

	require.Len(t, buckets, 5)
	for i := 1; i < len(buckets); i++ {
		assert.Less(t, buckets[i-1].Date, buckets[i].Date, fmt.Sprintf("bucket %d out of order", i))
	}
}
