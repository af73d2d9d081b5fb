package model

// MethodBreakdown aggregates completed payments for one payment method.
type MethodBreakdown struct {
	Method     string  `json:"method"`
	Count      int     `json:"count"`
	Revenue    float64 `json:"revenue"`
	Percentage float64 `json:"percentage"`
}

// TypeBreakdown aggregates completed payments for one payment type.
type TypeBreakdown struct {
	Type         string  `json:"type"`
	Revenue      float64 `json:"revenue"`
	Transactions int     `json:"transactions"`
	Percentage   float64 `json:"percentage"`
}

// DailyBucket holds one calendar day of payment statistics. Revenue covers
// completed payments only; Transactions counts every status.
type DailyBucket struct {
	Date         string  `json:"date"`
	Revenue      float64 `json:"revenue"`
	Transactions int     `json:"transactions"`
	SuccessRate  float64 `json:"successRate"`
}

// MonthlyBucket holds one calendar month (YYYY-MM) of completed payments.
// Growth is the revenue change against the previous month, in percent.
type MonthlyBucket struct {
	Month        string  `json:"month"`
	Revenue      float64 `json:"revenue"`
	Transactions int     `json:"transactions"`
	Growth       float64 `json:"growth"`
}

// PaymentAnalytics is the aggregate financial picture for a vendor and date
// range, serialized for the dashboard.
type PaymentAnalytics struct {
	TotalRevenue            float64           `json:"totalRevenue"`
	TotalTransactions       int               `json:"totalTransactions"`
	SuccessRate             float64           `json:"successRate"`
	AverageTransactionValue float64           `json:"averageTransactionValue"`
	ConversionRate          float64           `json:"conversionRate"`
	RefundRate              float64           `json:"refundRate"`
	PaymentMethodBreakdown  []MethodBreakdown `json:"paymentMethodBreakdown"`
	RevenueByType           []TypeBreakdown   `json:"revenueByType"`
	DailyRevenue            []DailyBucket     `json:"dailyRevenue"`
	MonthlyTrends           []MonthlyBucket   `json:"monthlyTrends"`
}
