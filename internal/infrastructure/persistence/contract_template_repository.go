package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/franq/backend/internal/domain/contract"
	"github.com/franq/backend/internal/domain/shared"
	"github.com/franq/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormContractTemplateRepository implements contract.TemplateRepository using GORM
type GormContractTemplateRepository struct {
	db *gorm.DB
}

// NewGormContractTemplateRepository creates a new GormContractTemplateRepository
func NewGormContractTemplateRepository(db *gorm.DB) *GormContractTemplateRepository {
	return &GormContractTemplateRepository{db: db}
}

// FindByID finds a template by its ID
func (r *GormContractTemplateRepository) FindByID(ctx context.Context, id uuid.UUID) (*contract.Template, error) {
	var model models.ContractTemplateModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds templates matching the filter
func (r *GormContractTemplateRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*contract.Template, error) {
	var list []models.ContractTemplateModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.ContractTemplateModel{}),
		filter,
	)

	if err := query.Find(&list).Error; err != nil {
		return nil, err
	}

	templates := make([]*contract.Template, 0, len(list))
	for i := range list {
		templates = append(templates, list[i].ToDomain())
	}
	return templates, nil
}

// Save creates or updates a template
func (r *GormContractTemplateRepository) Save(ctx context.Context, t *contract.Template) error {
	model := models.ContractTemplateModelFromDomain(t)
	return r.db.WithContext(ctx).Save(model).Error
}

// Count counts templates matching the filter
func (r *GormContractTemplateRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.ContractTemplateModel{}),
		filter,
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormContractTemplateRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
func (r *GormContractTemplateRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ?", searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "active":
			query = query.Where("active = ?", value)
		}
	}

	return query
}
