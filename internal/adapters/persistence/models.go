package persistence

import "time"

// TradeLedgerModel represents the trade_ledger table: one row per executed
// buy or sell.
type TradeLedgerModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	Day        int64     `gorm:"column:day;index;not null"`
	Side       string    `gorm:"column:side;not null"`
	LocationID int       `gorm:"column:location_id;index;not null"`
	GoodID     int       `gorm:"column:good_id;index;not null"`
	Quantity   int       `gorm:"column:quantity;not null"`
	UnitPrice  float64   `gorm:"column:unit_price;not null"`
	Total      int       `gorm:"column:total;not null"`
	GoldBefore int       `gorm:"column:gold_before;not null"`
	GoldAfter  int       `gorm:"column:gold_after;not null"`
	RecordedAt time.Time `gorm:"column:recorded_at;not null"`
}

func (TradeLedgerModel) TableName() string {
	return "trade_ledger"
}

// TradePriceHistoryModel represents the trade_price_history table: the
// long-term record of observed transaction prices per (city, good).
type TradePriceHistoryModel struct {
	ID         int       `gorm:"column:id;primaryKey;autoIncrement"`
	Day        int64     `gorm:"column:day;index;not null"`
	LocationID int       `gorm:"column:location_id;index:idx_price_pair;not null"`
	GoodID     int       `gorm:"column:good_id;index:idx_price_pair;not null"`
	UnitPrice  int       `gorm:"column:unit_price;not null"`
	Quantity   int       `gorm:"column:quantity;not null"`
	Side       string    `gorm:"column:side;not null"`
	RecordedAt time.Time `gorm:"column:recorded_at;not null"`
}

func (TradePriceHistoryModel) TableName() string {
	return "trade_price_history"
}
