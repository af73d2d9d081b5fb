package model

// ConversionMetric joins one campaign's spend against the completed payments
// attributed to it. ConversionRate is an estimate derived from the configured
// assumed order value, not a measured funnel rate.
type ConversionMetric struct {
	CampaignID           string  `json:"campaignId"`
	CampaignName         string  `json:"campaignName"`
	TotalSpent           float64 `json:"totalSpent"`
	TotalRevenue         float64 `json:"totalRevenue"`
	Conversions          int     `json:"conversions"`
	ROAS                 float64 `json:"roas"`
	CostPerConversion    float64 `json:"costPerConversion"`
	ConversionRate       float64 `json:"conversionRate"`
	RevenuePerConversion float64 `json:"revenuePerConversion"`
}

// ConversionMeta describes the window and estimate basis of a conversions
// response.
type ConversionMeta struct {
	VendorID          string  `json:"vendorId,omitempty"`
	Period            Period  `json:"period"`
	AssumedOrderValue float64 `json:"assumedOrderValue"`
}

// Period captures a query time window in RFC3339.
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ConversionMetricsResponse is returned to clients for conversion queries.
// Data is sorted by ROAS descending, stable under ties.
type ConversionMetricsResponse struct {
	Meta ConversionMeta     `json:"meta"`
	Data []ConversionMetric `json:"data"`
}

// Recommendation priorities and risk severities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"

	SeverityHigh   = "high"
	SeverityMedium = "medium"
)

// Recommendation is one actionable suggestion derived from computed stats.
type Recommendation struct {
	Type        string `json:"type"`
	Priority    string `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
	Action      string `json:"action"`
}

// RiskFactor flags a statistic that crossed a risk threshold.
type RiskFactor struct {
	Type           string `json:"type"`
	Severity       string `json:"severity"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
}

// PaymentTrends summarizes growth and seasonal signals.
type PaymentTrends struct {
	WeeklyGrowth     float64  `json:"weeklyGrowth"`
	MonthlyGrowth    float64  `json:"monthlyGrowth"`
	SeasonalPatterns []string `json:"seasonalPatterns"`
}

// PaymentInsights composes campaign performance, trends, recommendations,
// and risk factors for a vendor and date range.
type PaymentInsights struct {
	TopPerformingCampaigns []ConversionMetric `json:"topPerformingCampaigns"`
	PaymentTrends          PaymentTrends      `json:"paymentTrends"`
	Recommendations        []Recommendation   `json:"recommendations"`
	RiskFactors            []RiskFactor       `json:"riskFactors"`
}
