package repository

import (
	"context"
	"sort"
	"time"

	"github.com/sangkips/salon-billing-api/internal/domain/entity"
	domainRepo "github.com/sangkips/salon-billing-api/internal/domain/repository"
	"gorm.io/gorm"
)

// saleBatchSize bounds how many sales, with their items, are held per query
const saleBatchSize = 500

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

// ListByDateRange pages through the tenant's sales in batches and returns them oldest first
func (r *saleRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]entity.Sale, error) {
	sales := []entity.Sale{}
	var batch []entity.Sale

	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).
		Preload("Items").
		Where("sale_date BETWEEN ? AND ?", start, end).
		FindInBatches(&batch, saleBatchSize, func(tx *gorm.DB, _ int) error {
			sales = append(sales, batch...)
			return ctx.Err()
		}).Error
	if err != nil {
		return nil, err
	}

	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].SaleDate.Before(sales[j].SaleDate)
	})
	return sales, nil
}
