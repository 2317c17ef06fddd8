package advisory

import (
	"context"

	"github.com/advisory/backend/internal/domain/advisory"
	"github.com/advisory/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AddressService handles address-related business operations
type AddressService struct {
	addressRepo advisory.AddressRepository
	ownerRepo   advisory.ProductOwnerRepository
}

// NewAddressService creates a new AddressService
func NewAddressService(addressRepo advisory.AddressRepository, ownerRepo advisory.ProductOwnerRepository) *AddressService {
	return &AddressService{
		addressRepo: addressRepo,
		ownerRepo:   ownerRepo,
	}
}

// Create creates a new address
func (s *AddressService) Create(ctx context.Context, req CreateAddressRequest) (*AddressResponse, error) {
	address, err := advisory.NewAddress(req.Line1, req.Line2, req.Line3, req.Line4, req.Line5)
	if err != nil {
		return nil, err
	}

	if err := s.addressRepo.Save(ctx, address); err != nil {
		return nil, err
	}

	response := ToAddressResponse(address)
	return &response, nil
}

// GetByID retrieves an address by ID
func (s *AddressService) GetByID(ctx context.Context, id uuid.UUID) (*AddressResponse, error) {
	address, err := s.addressRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToAddressResponse(address)
	return &response, nil
}

// List retrieves addresses with filtering and pagination
func (s *AddressService) List(ctx context.Context, filter ListFilter) ([]AddressResponse, int64, error) {
	domainFilter := toDomainFilter(filter)

	addresses, err := s.addressRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.addressRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToAddressResponses(addresses), total, nil
}

// Delete deletes an address. An address still referenced by a product
// owner cannot be deleted.
func (s *AddressService) Delete(ctx context.Context, id uuid.UUID) error {
	inUse, err := s.ownerRepo.ExistsByAddressID(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return shared.NewDomainError("REFERENCE_IN_USE", "Address is still referenced by a product owner")
	}

	return s.addressRepo.Delete(ctx, id)
}

// toDomainFilter converts a ListFilter to a domain filter with defaults applied
func toDomainFilter(filter ListFilter) shared.Filter {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	return domainFilter
}
