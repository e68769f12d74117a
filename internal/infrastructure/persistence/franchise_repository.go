package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/franq/backend/internal/domain/franchise"
	"github.com/franq/backend/internal/domain/shared"
	"github.com/franq/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormFranchiseRepository implements franchise.FranchiseRepository using GORM
type GormFranchiseRepository struct {
	db *gorm.DB
}

// NewGormFranchiseRepository creates a new GormFranchiseRepository
func NewGormFranchiseRepository(db *gorm.DB) *GormFranchiseRepository {
	return &GormFranchiseRepository{db: db}
}

// FindByID finds a franchise by its ID, loading its team
func (r *GormFranchiseRepository) FindByID(ctx context.Context, id uuid.UUID) (*franchise.Franchise, error) {
	var model models.FranchiseModel
	if err := r.db.WithContext(ctx).
		Preload("Team", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds franchises matching the filter
func (r *GormFranchiseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*franchise.Franchise, error) {
	var list []models.FranchiseModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.FranchiseModel{}).Preload("Team"),
		filter,
	)

	if err := query.Find(&list).Error; err != nil {
		return nil, err
	}

	franchises := make([]*franchise.Franchise, 0, len(list))
	for i := range list {
		franchises = append(franchises, list[i].ToDomain())
	}
	return franchises, nil
}

// Save creates or updates a franchise with its owned team members
func (r *GormFranchiseRepository) Save(ctx context.Context, f *franchise.Franchise) error {
	model := models.FranchiseModelFromDomain(f)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Team").Save(model).Error; err != nil {
			return err
		}

		currentIDs := make([]uuid.UUID, len(model.Team))
		for i := range model.Team {
			currentIDs[i] = model.Team[i].ID
		}

		// Delete members no longer on the team
		if len(currentIDs) > 0 {
			if err := tx.Where("franchise_id = ? AND id NOT IN ?", model.ID, currentIDs).
				Delete(&models.TeamMemberModel{}).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Where("franchise_id = ?", model.ID).
				Delete(&models.TeamMemberModel{}).Error; err != nil {
				return err
			}
		}

		for i := range model.Team {
			if err := tx.Save(&model.Team[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Count counts franchises matching the filter
func (r *GormFranchiseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.FranchiseModel{}),
		filter,
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormFranchiseRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
func (r *GormFranchiseRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR owner_name ILIKE ? OR city ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "city":
			query = query.Where("city = ?", value)
		}
	}

	return query
}
