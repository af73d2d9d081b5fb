package mockrepository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"payment-analytics-service/internal/model"
	"payment-analytics-service/internal/repository"
)

type Repository struct {
	mock.Mock
}

// Interface compliance check
var _ repository.PaymentRepository = &Repository{}

func (m *Repository) FetchPayments(ctx context.Context, filter model.RecordFilter) ([]model.PaymentRecord, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([]model.PaymentRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Repository) FetchCampaigns(ctx context.Context, filter model.RecordFilter) ([]model.CampaignRecord, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([]model.CampaignRecord), args.Error(1)
	}
	return nil, args.Error(1)
}
