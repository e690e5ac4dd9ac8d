package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/saltroad/tradewinds/internal/domain/trading"
)

// LedgerRecord is the read model for persisted trades.
type LedgerRecord struct {
	ID         string
	Day        int64
	Side       trading.Side
	LocationID int
	GoodID     int
	Quantity   int
	UnitPrice  float64
	Total      int
	GoldBefore int
	GoldAfter  int
	RecordedAt time.Time
}

// GormTradeLedgerRepository persists executed trades using GORM.
type GormTradeLedgerRepository struct {
	db *gorm.DB
}

// NewGormTradeLedgerRepository creates a new GORM trade ledger repository.
func NewGormTradeLedgerRepository(db *gorm.DB) *GormTradeLedgerRepository {
	return &GormTradeLedgerRepository{db: db}
}

// Record persists one executed trade.
func (r *GormTradeLedgerRepository) Record(ctx context.Context, day int64, receipt *trading.Receipt) error {
	model := &TradeLedgerModel{
		ID:         uuid.New().String(),
		Day:        day,
		Side:       string(receipt.Side),
		LocationID: receipt.LocationID,
		GoodID:     receipt.GoodID,
		Quantity:   receipt.Quantity,
		UnitPrice:  receipt.UnitPrice,
		Total:      receipt.Total,
		GoldBefore: receipt.GoldBefore,
		GoldAfter:  receipt.GoldAfter,
		RecordedAt: time.Now(),
	}

	if result := r.db.WithContext(ctx).Create(model); result.Error != nil {
		return fmt.Errorf("failed to record trade: %w", result.Error)
	}
	return nil
}

// ListByLocation returns the trades executed at a city, newest first.
func (r *GormTradeLedgerRepository) ListByLocation(ctx context.Context, locationID, limit int) ([]*LedgerRecord, error) {
	var models []TradeLedgerModel
	query := r.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Order("recorded_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if result := query.Find(&models); result.Error != nil {
		return nil, fmt.Errorf("failed to list trades: %w", result.Error)
	}

	records := make([]*LedgerRecord, 0, len(models))
	for _, m := range models {
		records = append(records, modelToRecord(&m))
	}
	return records, nil
}

// NetGoldFlow sums the signed gold movement over all recorded trades:
// sells add proceeds, buys subtract costs.
func (r *GormTradeLedgerRepository) NetGoldFlow(ctx context.Context) (int, error) {
	type row struct {
		Net int
	}
	var res row
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(CASE WHEN side = 'SELL' THEN total ELSE -total END), 0) as net
		FROM trade_ledger
	`).Scan(&res).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute net gold flow: %w", err)
	}
	return res.Net, nil
}

func modelToRecord(m *TradeLedgerModel) *LedgerRecord {
	return &LedgerRecord{
		ID:         m.ID,
		Day:        m.Day,
		Side:       trading.Side(m.Side),
		LocationID: m.LocationID,
		GoodID:     m.GoodID,
		Quantity:   m.Quantity,
		UnitPrice:  m.UnitPrice,
		Total:      m.Total,
		GoldBefore: m.GoldBefore,
		GoldAfter:  m.GoldAfter,
		RecordedAt: m.RecordedAt,
	}
}
