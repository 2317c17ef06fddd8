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

var addressOrderColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"line_1":     true,
}

// GormAddressRepository implements AddressRepository using GORM
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GormAddressRepository
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

var _ advisory.AddressRepository = (*GormAddressRepository)(nil)

// FindByID finds an address by its ID
func (r *GormAddressRepository) FindByID(ctx context.Context, id uuid.UUID) (*advisory.Address, error) {
	var model models.AddressModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all addresses matching the filter
func (r *GormAddressRepository) FindAll(ctx context.Context, filter shared.Filter) ([]advisory.Address, error) {
	var addressModels []models.AddressModel
	query := r.db.WithContext(ctx).Model(&models.AddressModel{})
	query = applySearch(query, filter.Search, []string{"line_1", "line_2", "line_3", "line_4", "line_5"})
	query = applyPagination(query, filter, addressOrderColumns, "created_at DESC")

	if err := query.Find(&addressModels).Error; err != nil {
		return nil, err
	}

	addresses := make([]advisory.Address, len(addressModels))
	for i, model := range addressModels {
		addresses[i] = *model.ToDomain()
	}
	return addresses, nil
}

// Save creates or updates an address
func (r *GormAddressRepository) Save(ctx context.Context, address *advisory.Address) error {
	model := models.AddressModelFromDomain(address)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes an address
func (r *GormAddressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AddressModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts addresses matching the filter
func (r *GormAddressRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.AddressModel{})
	query = applySearch(query, filter.Search, []string{"line_1", "line_2", "line_3", "line_4", "line_5"})

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
