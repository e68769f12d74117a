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

// GormTransactionRepository implements franchise.TransactionRepository using GORM
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GormTransactionRepository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// FindByID finds a transaction by its ID
func (r *GormTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*franchise.Transaction, error) {
	var model models.TransactionModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByFranchise finds a unit's transactions within [from, to), oldest first
func (r *GormTransactionRepository) FindByFranchise(ctx context.Context, franchiseID uuid.UUID, from, to time.Time) ([]*franchise.Transaction, error) {
	var list []models.TransactionModel
	query := r.db.WithContext(ctx).Where("franchise_id = ?", franchiseID)
	if !from.IsZero() {
		query = query.Where("occurred_at >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("occurred_at < ?", to)
	}

	if err := query.Order("occurred_at ASC").Find(&list).Error; err != nil {
		return nil, err
	}

	transactions := make([]*franchise.Transaction, 0, len(list))
	for i := range list {
		transactions = append(transactions, list[i].ToDomain())
	}
	return transactions, nil
}

// Save creates or updates a transaction
func (r *GormTransactionRepository) Save(ctx context.Context, tx *franchise.Transaction) error {
	model := models.TransactionModelFromDomain(tx)
	return r.db.WithContext(ctx).Save(model).Error
}
