package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/franq/backend/internal/domain/recovery"
	"github.com/franq/backend/internal/domain/shared"
	"github.com/franq/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRecoveryCaseRepository implements recovery.CaseRepository using GORM
type GormRecoveryCaseRepository struct {
	db *gorm.DB
}

// NewGormRecoveryCaseRepository creates a new GormRecoveryCaseRepository
func NewGormRecoveryCaseRepository(db *gorm.DB) *GormRecoveryCaseRepository {
	return &GormRecoveryCaseRepository{db: db}
}

// FindByID finds a case by its ID, loading its notes
func (r *GormRecoveryCaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*recovery.Case, error) {
	var model models.RecoveryCaseModel
	if err := r.db.WithContext(ctx).
		Preload("Notes", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds cases matching the filter
func (r *GormRecoveryCaseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*recovery.Case, error) {
	var list []models.RecoveryCaseModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.RecoveryCaseModel{}).Preload("Notes"),
		filter,
	)

	if err := query.Find(&list).Error; err != nil {
		return nil, err
	}

	cases := make([]*recovery.Case, 0, len(list))
	for i := range list {
		cases = append(cases, list[i].ToDomain())
	}
	return cases, nil
}

// Save creates or updates a case with its append-only notes
func (r *GormRecoveryCaseRepository) Save(ctx context.Context, c *recovery.Case) error {
	model := models.RecoveryCaseModelFromDomain(c)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Notes").Save(model).Error; err != nil {
			return err
		}
		for i := range model.Notes {
			if err := tx.Save(&model.Notes[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Count counts cases matching the filter
func (r *GormRecoveryCaseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.RecoveryCaseModel{}),
		filter,
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormRecoveryCaseRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("created_at DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormRecoveryCaseRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("debtor_name ILIKE ?", searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "franchise_id":
			query = query.Where("franchise_id = ?", value)
		}
	}

	return query
}
