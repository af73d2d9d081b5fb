package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"

	"payment-analytics-service/internal/model"
)

// PaymentRepository is the read-only data-access contract the analytics
// engine depends on. Implementations must not mutate returned records.
type PaymentRepository interface {
	// FetchPayments returns payment records inside the filter window,
	// optionally scoped to one vendor, ordered by creation time.
	FetchPayments(ctx context.Context, filter model.RecordFilter) ([]model.PaymentRecord, error)

	// FetchCampaigns returns campaign records inside the filter window,
	// optionally scoped to one vendor.
	FetchCampaigns(ctx context.Context, filter model.RecordFilter) ([]model.CampaignRecord, error)
}

type paymentRepository struct {
	conn clickhouse.Conn
}

// NewPaymentRepository creates a PaymentRepository backed by the ClickHouse
// analytics warehouse.
func NewPaymentRepository(conn clickhouse.Conn) PaymentRepository {
	return &paymentRepository{conn: conn}
}

const fetchPaymentsQuery = `
	SELECT id, vendor_id, amount, status, payment_method, type, campaign_id, created_at
	FROM payments
	WHERE created_at >= ? AND created_at <= ?%s
	ORDER BY created_at ASC
`

const fetchCampaignsQuery = `
	SELECT id, name, vendor_id, budget, created_at
	FROM campaigns
	WHERE created_at >= ? AND created_at <= ?%s
	ORDER BY created_at ASC
`

func (r *paymentRepository) FetchPayments(ctx context.Context, filter model.RecordFilter) ([]model.PaymentRecord, error) {
	query, args := buildRangeQuery(fetchPaymentsQuery, filter)

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	var payments []model.PaymentRecord
	for rows.Next() {
		var (
			p         model.PaymentRecord
			createdAt time.Time
		)
		if err := rows.Scan(&p.ID, &p.VendorID, &p.Amount, &p.Status, &p.PaymentMethod, &p.Type, &p.CampaignID, &createdAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		p.CreatedAt = createdAt.UTC()
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payments: %w", err)
	}

	return payments, nil
}

func (r *paymentRepository) FetchCampaigns(ctx context.Context, filter model.RecordFilter) ([]model.CampaignRecord, error) {
	query, args := buildRangeQuery(fetchCampaignsQuery, filter)

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []model.CampaignRecord
	for rows.Next() {
		var (
			c         model.CampaignRecord
			createdAt time.Time
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.VendorID, &c.Budget, &createdAt); err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		c.CreatedAt = createdAt.UTC()
		campaigns = append(campaigns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate campaigns: %w", err)
	}

	return campaigns, nil
}

// buildRangeQuery expands the optional vendor clause into the query template
// and collects the bind arguments in matching order.
func buildRangeQuery(template string, filter model.RecordFilter) (string, []any) {
	args := []any{filter.From, filter.To}
	clause := ""
	if filter.VendorID != nil && *filter.VendorID != "" {
		clause = " AND vendor_id = ?"
		args = append(args, *filter.VendorID)
	}
	return fmt.Sprintf(template, clause), args
}
