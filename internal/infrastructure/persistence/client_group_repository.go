package persistence

import (
	"context"
	"errors"

	"github.com/advisory/backend/internal/domain/advisory"
	"github.com/advisory/backend/internal/domain/shared"
	"github.com/advisory/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var clientGroupOrderColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"status":     true,
}

// GormClientGroupRepository implements ClientGroupRepository using GORM
type GormClientGroupRepository struct {
	db *gorm.DB
}

// NewGormClientGroupRepository creates a new GormClientGroupRepository
func NewGormClientGroupRepository(db *gorm.DB) *GormClientGroupRepository {
	return &GormClientGroupRepository{db: db}
}

var _ advisory.ClientGroupRepository = (*GormClientGroupRepository)(nil)

// FindByID finds a client group by its ID
func (r *GormClientGroupRepository) FindByID(ctx context.Context, id uuid.UUID) (*advisory.ClientGroup, error) {
	var model models.ClientGroupModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all client groups matching the filter
func (r *GormClientGroupRepository) FindAll(ctx context.Context, filter shared.Filter) ([]advisory.ClientGroup, error) {
	var groupModels []models.ClientGroupModel
	query := r.applyFilters(r.db.WithContext(ctx).Model(&models.ClientGroupModel{}), filter)
	query = applyPagination(query, filter, clientGroupOrderColumns, "name ASC")

	if err := query.Find(&groupModels).Error; err != nil {
		return nil, err
	}

	groups := make([]advisory.ClientGroup, len(groupModels))
	for i, model := range groupModels {
		groups[i] = *model.ToDomain()
	}
	return groups, nil
}

// Save creates or updates a client group
func (r *GormClientGroupRepository) Save(ctx context.Context, group *advisory.ClientGroup) error {
	model := models.ClientGroupModelFromDomain(group)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a client group
func (r *GormClientGroupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ClientGroupModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts client groups matching the filter
func (r *GormClientGroupRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilters(r.db.WithContext(ctx).Model(&models.ClientGroupModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormClientGroupRepository) applyFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = applySearch(query, filter.Search, []string{"name", "notes"})

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "type":
			query = query.Where("type = ?", value)
		case "advised":
			query = query.Where("advised = ?", value)
		}
	}
	return query
}
