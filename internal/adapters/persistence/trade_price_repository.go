package persistence

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/saltroad/tradewinds/internal/domain/trading"
)

// PricePoint is one persisted price observation.
type PricePoint struct {
	Day       int64
	UnitPrice int
	Quantity  int
	Side      trading.Side
}

// GormTradePriceRepository persists long-term transaction price records
// using GORM. Unlike the in-memory 30-sample tracker, this table is
// unbounded and queryable by day range.
type GormTradePriceRepository struct {
	db *gorm.DB
}

// NewGormTradePriceRepository creates a new GORM trade price repository.
func NewGormTradePriceRepository(db *gorm.DB) *GormTradePriceRepository {
	return &GormTradePriceRepository{db: db}
}

// Record persists one price observation.
func (r *GormTradePriceRepository) Record(ctx context.Context, day int64, receipt *trading.Receipt) error {
	model := &TradePriceHistoryModel{
		Day:        day,
		LocationID: receipt.LocationID,
		GoodID:     receipt.GoodID,
		UnitPrice:  int(receipt.UnitPrice + 0.5),
		Quantity:   receipt.Quantity,
		Side:       string(receipt.Side),
		RecordedAt: time.Now(),
	}
	if result := r.db.WithContext(ctx).Create(model); result.Error != nil {
		return fmt.Errorf("failed to record price: %w", result.Error)
	}
	return nil
}

// GetPriceHistory returns the observations for a (city, good) pair since the
// given day, oldest first.
func (r *GormTradePriceRepository) GetPriceHistory(ctx context.Context, locationID, goodID int, sinceDay int64, limit int) ([]*PricePoint, error) {
	var models []TradePriceHistoryModel
	query := r.db.WithContext(ctx).
		Where("location_id = ? AND good_id = ?", locationID, goodID)
	if sinceDay > 0 {
		query = query.Where("day >= ?", sinceDay)
	}
	query = query.Order("day ASC, id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if result := query.Find(&models); result.Error != nil {
		return nil, fmt.Errorf("failed to get price history: %w", result.Error)
	}

	points := make([]*PricePoint, 0, len(models))
	for _, m := range models {
		points = append(points, &PricePoint{
			Day:       m.Day,
			UnitPrice: m.UnitPrice,
			Quantity:  m.Quantity,
			Side:      trading.Side(m.Side),
		})
	}
	return points, nil
}

// AveragePrice returns the mean observed unit price for a (city, good) pair
// over the whole table, or an error when no observations exist.
func (r *GormTradePriceRepository) AveragePrice(ctx context.Context, locationID, goodID int) (float64, error) {
	type row struct {
		Avg   float64
		Count int
	}
	var res row
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(AVG(unit_price), 0) as avg, COUNT(*) as count
		FROM trade_price_history
		WHERE location_id = ? AND good_id = ?
	`, locationID, goodID).Scan(&res).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute average price: %w", err)
	}
	if res.Count == 0 {
		return 0, fmt.Errorf("no price observations for city %d good %d", locationID, goodID)
	}
	return res.Avg, nil
}
