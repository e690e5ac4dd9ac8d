package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/saltroad/tradewinds/internal/domain/trading"
)

// DBTradeRecorder implements the engine's TradeRecorder port: every executed
// trade lands in both the ledger and the price history tables. The engine
// API is context-free (single logical thread of game control), so the
// recorder supplies its own background context.
type DBTradeRecorder struct {
	ledger *GormTradeLedgerRepository
	prices *GormTradePriceRepository
}

// NewDBTradeRecorder creates a recorder over the given database.
func NewDBTradeRecorder(db *gorm.DB) *DBTradeRecorder {
	return &DBTradeRecorder{
		ledger: NewGormTradeLedgerRepository(db),
		prices: NewGormTradePriceRepository(db),
	}
}

// Ledger exposes the underlying ledger repository for queries.
func (r *DBTradeRecorder) Ledger() *GormTradeLedgerRepository {
	return r.ledger
}

// Prices exposes the underlying price repository for queries.
func (r *DBTradeRecorder) Prices() *GormTradePriceRepository {
	return r.prices
}

// RecordTrade persists one executed trade.
func (r *DBTradeRecorder) RecordTrade(day int64, receipt *trading.Receipt) error {
	ctx := context.Background()
	if err := r.ledger.Record(ctx, day, receipt); err != nil {
		return err
	}
	return r.prices.Record(ctx, day, receipt)
}
