package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/franq/backend/internal/domain/franchise"
	"github.com/franq/backend/internal/domain/shared"
	"github.com/franq/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRoyaltyInvoiceRepository implements franchise.RoyaltyInvoiceRepository using GORM
type GormRoyaltyInvoiceRepository struct {
	db *gorm.DB
}

// NewGormRoyaltyInvoiceRepository creates a new GormRoyaltyInvoiceRepository
func NewGormRoyaltyInvoiceRepository(db *gorm.DB) *GormRoyaltyInvoiceRepository {
	return &GormRoyaltyInvoiceRepository{db: db}
}

// FindByID finds an invoice by its ID
func (r *GormRoyaltyInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*franchise.RoyaltyInvoice, error) {
	var model models.RoyaltyInvoiceModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByFranchise finds a unit's invoices, newest reference month first
func (r *GormRoyaltyInvoiceRepository) FindByFranchise(ctx context.Context, franchiseID uuid.UUID) ([]*franchise.RoyaltyInvoice, error) {
	var list []models.RoyaltyInvoiceModel
	if err := r.db.WithContext(ctx).
		Where("franchise_id = ?", franchiseID).
		Order("reference_month DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}

	invoices := make([]*franchise.RoyaltyInvoice, 0, len(list))
	for i := range list {
		invoices = append(invoices, list[i].ToDomain())
	}
	return invoices, nil
}

// ExistsForMonth reports whether an invoice already covers the month.
// The month argument is normalized to its first day before comparing.
func (r *GormRoyaltyInvoiceRepository) ExistsForMonth(ctx context.Context, franchiseID uuid.UUID, month time.Time) (bool, error) {
	normalized := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.RoyaltyInvoiceModel{}).
		Where("franchise_id = ? AND reference_month = ?", franchiseID, normalized).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates an invoice
func (r *GormRoyaltyInvoiceRepository) Save(ctx context.Context, invoice *franchise.RoyaltyInvoice) error {
	model := models.RoyaltyInvoiceModelFromDomain(invoice)
	return r.db.WithContext(ctx).Save(model).Error
}
