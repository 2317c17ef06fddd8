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

var associationOrderColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
}

// GormAssociationRepository implements ClientGroupProductOwnerRepository using GORM
type GormAssociationRepository struct {
	db *gorm.DB
}

// NewGormAssociationRepository creates a new GormAssociationRepository
func NewGormAssociationRepository(db *gorm.DB) *GormAssociationRepository {
	return &GormAssociationRepository{db: db}
}

var _ advisory.ClientGroupProductOwnerRepository = (*GormAssociationRepository)(nil)

// FindByID finds a junction record by its ID
func (r *GormAssociationRepository) FindByID(ctx context.Context, id uuid.UUID) (*advisory.ClientGroupProductOwner, error) {
	var model models.ClientGroupProductOwnerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByPair finds the junction record linking the given group and owner
func (r *GormAssociationRepository) FindByPair(ctx context.Context, clientGroupID, productOwnerID uuid.UUID) (*advisory.ClientGroupProductOwner, error) {
	var model models.ClientGroupProductOwnerModel
	if err := r.db.WithContext(ctx).
		Where("client_group_id = ? AND product_owner_id = ?", clientGroupID, productOwnerID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all junction records matching the filter
func (r *GormAssociationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]advisory.ClientGroupProductOwner, error) {
	var junctionModels []models.ClientGroupProductOwnerModel
	query := r.applyFilters(r.db.WithContext(ctx).Model(&models.ClientGroupProductOwnerModel{}), filter)
	query = applyPagination(query, filter, associationOrderColumns, "created_at DESC")

	if err := query.Find(&junctionModels).Error; err != nil {
		return nil, err
	}

	junctions := make([]advisory.ClientGroupProductOwner, len(junctionModels))
	for i, model := range junctionModels {
		junctions[i] = *model.ToDomain()
	}
	return junctions, nil
}

// Save creates or updates a junction record
func (r *GormAssociationRepository) Save(ctx context.Context, junction *advisory.ClientGroupProductOwner) error {
	model := models.ClientGroupProductOwnerModelFromDomain(junction)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a junction record
func (r *GormAssociationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ClientGroupProductOwnerModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts junction records matching the filter
func (r *GormAssociationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilters(r.db.WithContext(ctx).Model(&models.ClientGroupProductOwnerModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByClientGroupID reports whether any junction references the group
func (r *GormAssociationRepository) ExistsByClientGroupID(ctx context.Context, clientGroupID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ClientGroupProductOwnerModel{}).
		Where("client_group_id = ?", clientGroupID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByProductOwnerID reports whether any junction references the owner
func (r *GormAssociationRepository) ExistsByProductOwnerID(ctx context.Context, productOwnerID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ClientGroupProductOwnerModel{}).
		Where("product_owner_id = ?", productOwnerID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormAssociationRepository) applyFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "client_group_id":
			query = query.Where("client_group_id = ?", value)
		case "product_owner_id":
			query = query.Where("product_owner_id = ?", value)
		}
	}
	return query
}
