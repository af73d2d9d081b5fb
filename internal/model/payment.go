package model

import "time"

// Payment statuses as recorded by the marketplace payment pipeline.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
	StatusRefunded   = "refunded"
)

// DefaultPaymentType is assumed when a record carries no type.
const DefaultPaymentType = "booking"

// PaymentRecord is one financial transaction. Records are immutable once
// fetched; only completed payments contribute to revenue figures.
type PaymentRecord struct {
	ID            string
	VendorID      string
	Amount        float64
	Status        string
	PaymentMethod string
	Type          string
	CampaignID    string // weak reference to a CampaignRecord, empty when unattributed
	CreatedAt     time.Time
}

// Completed reports whether the payment contributes to revenue.
func (p PaymentRecord) Completed() bool {
	return p.Status == StatusCompleted
}

// Category returns the payment type, falling back to the default when the
// record was stored without one.
func (p PaymentRecord) Category() string {
	if p.Type == "" {
		return DefaultPaymentType
	}
	return p.Type
}

// CampaignRecord is one advertising campaign. Budget is treated as total
// spend for the queried period.
type CampaignRecord struct {
	ID        string
	Name      string
	VendorID  string
	Budget    float64
	CreatedAt time.Time
}

// RecordFilter scopes a fetch to an optional vendor and a date range.
type RecordFilter struct {
	VendorID *string
	From     time.Time
	To       time.Time
}
