package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"

	"payment-analytics-service/internal/config"
	"payment-analytics-service/internal/db"
	"payment-analytics-service/internal/model"
)

// Development seeder: fills the warehouse with synthetic vendors, campaigns,
// and payments so the analytics endpoints return something worth looking at.

type seedConfig struct {
	Vendors   int
	Campaigns int
	Payments  int
	Days      int
}

func parseFlags() *seedConfig {
	c := &seedConfig{}
	flag.IntVar(&c.Vendors, "vendors", 5, "Vendor count")
	flag.IntVar(&c.Campaigns, "campaigns", 4, "Campaigns per vendor")
	flag.IntVar(&c.Payments, "payments", 2000, "Payments per vendor")
	flag.IntVar(&c.Days, "days", 60, "Spread records over the trailing N days")
	flag.Parse()
	return c
}

var (
	statuses = []string{
		model.StatusCompleted, model.StatusCompleted, model.StatusCompleted, model.StatusCompleted,
		model.StatusCompleted, model.StatusCompleted, model.StatusCompleted, model.StatusCompleted,
		model.StatusFailed, model.StatusRefunded,
	}
	methods      = []string{"card", "card", "bank_transfer", "wallet"}
	paymentTypes = []string{"booking", "booking", "booking", "subscription", "deposit"}
)

func main() {
	seedCfg := parseFlags()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn, err := db.NewConnection(ctx, cfg)
	if err != nil {
		log.Fatalf("connect clickhouse: %v", err)
	}
	defer conn.Close()

	if err := db.RunMigrations(ctx, conn); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	now := time.Now().UTC()
	totalPayments := 0

	for v := 0; v < seedCfg.Vendors; v++ {
		vendorID := fmt.Sprintf("vendor-%03d", v+1)

		campaignIDs, err := seedCampaigns(ctx, conn, vendorID, seedCfg.Campaigns, seedCfg.Days, now)
		if err != nil {
			log.Fatalf("seed campaigns for %s: %v", vendorID, err)
		}

		n, err := seedPayments(ctx, conn, vendorID, campaignIDs, seedCfg.Payments, seedCfg.Days, now)
		if err != nil {
			log.Fatalf("seed payments for %s: %v", vendorID, err)
		}
		totalPayments += n
		log.Printf("seeded %s: %d campaigns, %d payments", vendorID, len(campaignIDs), n)
	}

	log.Printf("done: %d vendors, %d payments", seedCfg.Vendors, totalPayments)
}

func seedCampaigns(ctx context.Context, conn clickhouse.Conn, vendorID string, count, days int, now time.Time) ([]string, error) {
	batch, err := conn.PrepareBatch(ctx, "INSERT INTO campaigns (id, name, vendor_id, budget, created_at)")
	if err != nil {
		return nil, fmt.Errorf("prepare campaign batch: %w", err)
	}

	names := []string{"Spring Showcase", "Summer Weddings", "Venue Spotlight", "Late Availability", "Honeymoon Upsell"}
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id := uuid.NewString()
		ids = append(ids, id)
		createdAt := now.AddDate(0, 0, -rand.Intn(days))
		budget := float64(rand.Intn(40)+10) * 500 // 5k..25k in steps of 500
		if err := batch.Append(id, names[i%len(names)], vendorID, budget, createdAt); err != nil {
			return nil, fmt.Errorf("append campaign: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return nil, fmt.Errorf("send campaign batch: %w", err)
	}
	return ids, nil
}

func seedPayments(ctx context.Context, conn clickhouse.Conn, vendorID string, campaignIDs []string, count, days int, now time.Time) (int, error) {
	batch, err := conn.PrepareBatch(ctx, "INSERT INTO payments (id, vendor_id, amount, status, payment_method, type, campaign_id, created_at)")
	if err != nil {
		return 0, fmt.Errorf("prepare payment batch: %w", err)
	}

	for i := 0; i < count; i++ {
		amount := float64(rand.Intn(190)+10) * 50 // 500..10000
		createdAt := now.Add(-time.Duration(rand.Intn(days*24)) * time.Hour)

		// Roughly 40% of payments arrive through a campaign.
		campaignID := ""
		if len(campaignIDs) > 0 && rand.Intn(10) < 4 {
			campaignID = campaignIDs[rand.Intn(len(campaignIDs))]
		}

		err := batch.Append(
			uuid.NewString(),
			vendorID,
			amount,
			statuses[rand.Intn(len(statuses))],
			methods[rand.Intn(len(methods))],
			paymentTypes[rand.Intn(len(paymentTypes))],
			campaignID,
			createdAt,
		)
		if err != nil {
			return 0, fmt.Errorf("append payment: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return 0, fmt.Errorf("send payment batch: %w", err)
	}
	return count, nil
}
