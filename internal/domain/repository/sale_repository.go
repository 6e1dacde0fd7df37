package repository

import (
	"context"
	"time"

	"github.com/sangkips/salon-billing-api/internal/domain/entity"
)

// SaleRepository provides completed sales, with their items, to the commission reports
type SaleRepository interface {
	// ListByDateRange returns the sales dated within [start, end], oldest first
	ListByDateRange(ctx context.Context, start, end time.Time) ([]entity.Sale, error)
}
