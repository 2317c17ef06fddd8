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

var productOwnerOrderColumns = map[string]bool{
	"created_at":    true,
	"updated_at":    true,
	"surname":       true,
	"firstname":     true,
	"date_of_birth": true,
}

// GormProductOwnerRepository implements ProductOwnerRepository using GORM
type GormProductOwnerRepository struct {
	db *gorm.DB
}

// NewGormProductOwnerRepository creates a new GormProductOwnerRepository
func NewGormProductOwnerRepository(db *gorm.DB) *GormProductOwnerRepository {
	return &GormProductOwnerRepository{db: db}
}

var _ advisory.ProductOwnerRepository = (*GormProductOwnerRepository)(nil)

// FindByID finds a product owner by its ID
func (r *GormProductOwnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*advisory.ProductOwner, error) {
	var model models.ProductOwnerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all product owners matching the filter
func (r *GormProductOwnerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]advisory.ProductOwner, error) {
	var ownerModels []models.ProductOwnerModel
	query := r.applyFilters(r.db.WithContext(ctx).Model(&models.ProductOwnerModel{}), filter)
	query = applyPagination(query, filter, productOwnerOrderColumns, "surname ASC, firstname ASC")

	if err := query.Find(&ownerModels).Error; err != nil {
		return nil, err
	}

	owners := make([]advisory.ProductOwner, len(ownerModels))
	for i, model := range ownerModels {
		owners[i] = *model.ToDomain()
	}
	return owners, nil
}

// Save creates or updates a product owner
func (r *GormProductOwnerRepository) Save(ctx context.Context, owner *advisory.ProductOwner) error {
	model := models.ProductOwnerModelFromDomain(owner)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a product owner
func (r *GormProductOwnerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ProductOwnerModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts product owners matching the filter
func (r *GormProductOwnerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilters(r.db.WithContext(ctx).Model(&models.ProductOwnerModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByAddressID reports whether any product owner references the address
func (r *GormProductOwnerRepository) ExistsByAddressID(ctx context.Context, addressID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ProductOwnerModel{}).
		Where("address_id = ?", addressID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormProductOwnerRepository) applyFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = applySearch(query, filter.Search, []string{"firstname", "surname", "email", "national_insurance_number"})

	for key, value := range filter.Filters {
		switch key {
		case "politically_exposed":
			query = query.Where("politically_exposed = ?", value)
		case "aml_check_passed":
			query = query.Where("aml_check_passed = ?", value)
		case "address_id":
			query = query.Where("address_id = ?", value)
		case "nationality":
			query = query.Where("nationality = ?", value)
		}
	}
	return query
}
