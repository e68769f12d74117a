package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/franq/backend/internal/domain/pipeline"
	"github.com/franq/backend/internal/domain/shared"
	"github.com/franq/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormLeadRepository implements pipeline.LeadRepository using GORM
type GormLeadRepository struct {
	db *gorm.DB
}

// NewGormLeadRepository creates a new GormLeadRepository
func NewGormLeadRepository(db *gorm.DB) *GormLeadRepository {
	return &GormLeadRepository{db: db}
}

// oldestFirst orders preloaded child rows by creation time. Documents
// must keep their checklist seeding order and notes read oldest-first,
// on every read path.
func oldestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

// FindByID finds a lead by its ID, loading its documents and notes
func (r *GormLeadRepository) FindByID(ctx context.Context, id uuid.UUID) (*pipeline.Lead, error) {
	var model models.LeadModel
	if err := r.db.WithContext(ctx).
		Preload("Documents", oldestFirst).
		Preload("Notes", oldestFirst).
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds leads matching the filter
func (r *GormLeadRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*pipeline.Lead, error) {
	var list []models.LeadModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.LeadModel{}).
			Preload("Documents", oldestFirst).
			Preload("Notes", oldestFirst),
		filter,
	)

	if err := query.Find(&list).Error; err != nil {
		return nil, err
	}

	leads := make([]*pipeline.Lead, 0, len(list))
	for i := range list {
		leads = append(leads, list[i].ToDomain())
	}
	return leads, nil
}

// FindByStage finds leads at a funnel stage
func (r *GormLeadRepository) FindByStage(ctx context.Context, stage pipeline.Stage) ([]*pipeline.Lead, error) {
	var list []models.LeadModel
	if err := r.db.WithContext(ctx).
		Preload("Documents", oldestFirst).
		Preload("Notes", oldestFirst).
		Where("status = ?", stage).
		Order("created_at ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}

	leads := make([]*pipeline.Lead, 0, len(list))
	for i := range list {
		leads = append(leads, list[i].ToDomain())
	}
	return leads, nil
}

// Save creates or updates a lead with its owned documents and notes
func (r *GormLeadRepository) Save(ctx context.Context, lead *pipeline.Lead) error {
	model := models.LeadModelFromDomain(lead)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Documents", "Notes").Save(model).Error; err != nil {
			return err
		}

		// Documents are a fixed checklist, notes are append-only. Both
		// sync by upsert; nothing is ever removed from either list.
		for i := range model.Documents {
			if err := tx.Save(&model.Documents[i]).Error; err != nil {
				return err
			}
		}
		for i := range model.Notes {
			if err := tx.Save(&model.Notes[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Count counts leads matching the filter
func (r *GormLeadRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.LeadModel{}),
		filter,
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByEmail reports whether a lead with this email is already registered
func (r *GormLeadRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.LeadModel{}).
		Where("lower(email) = lower(?)", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies filter options to the query
func (r *GormLeadRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
func (r *GormLeadRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR city ILIKE ?",
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
