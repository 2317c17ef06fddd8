package advisory

import (
	"context"
	"errors"

	"github.com/advisory/backend/internal/domain/advisory"
	"github.com/advisory/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AssociationService handles the junction records linking product owners
// into client groups
type AssociationService struct {
	junctionRepo advisory.ClientGroupProductOwnerRepository
	groupRepo    advisory.ClientGroupRepository
	ownerRepo    advisory.ProductOwnerRepository
}

// NewAssociationService creates a new AssociationService
func NewAssociationService(
	junctionRepo advisory.ClientGroupProductOwnerRepository,
	groupRepo advisory.ClientGroupRepository,
	ownerRepo advisory.ProductOwnerRepository,
) *AssociationService {
	return &AssociationService{
		junctionRepo: junctionRepo,
		groupRepo:    groupRepo,
		ownerRepo:    ownerRepo,
	}
}

// Create links a product owner into a client group. Both referenced
// records must exist and a pair can only be linked once.
func (s *AssociationService) Create(ctx context.Context, req CreateAssociationRequest) (*AssociationResponse, error) {
	if _, err := s.groupRepo.FindByID(ctx, req.ClientGroupID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_REFERENCE", "client_group_id does not reference an existing client group")
		}
		return nil, err
	}

	if _, err := s.ownerRepo.FindByID(ctx, req.ProductOwnerID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_REFERENCE", "product_owner_id does not reference an existing product owner")
		}
		return nil, err
	}

	existing, err := s.junctionRepo.FindByPair(ctx, req.ClientGroupID, req.ProductOwnerID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product owner is already linked to this client group")
	}

	junction, err := advisory.NewClientGroupProductOwner(req.ClientGroupID, req.ProductOwnerID)
	if err != nil {
		return nil, err
	}

	if err := s.junctionRepo.Save(ctx, junction); err != nil {
		return nil, err
	}

	response := ToAssociationResponse(junction)
	return &response, nil
}

// GetByID retrieves a junction record by ID
func (s *AssociationService) GetByID(ctx context.Context, id uuid.UUID) (*AssociationResponse, error) {
	junction, err := s.junctionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToAssociationResponse(junction)
	return &response, nil
}

// List retrieves junction records with filtering and pagination
func (s *AssociationService) List(ctx context.Context, filter AssociationListFilter) ([]AssociationResponse, int64, error) {
	domainFilter := toDomainFilter(filter.ListFilter)

	if filter.ClientGroupID != nil {
		domainFilter.Filters["client_group_id"] = *filter.ClientGroupID
	}
	if filter.ProductOwnerID != nil {
		domainFilter.Filters["product_owner_id"] = *filter.ProductOwnerID
	}

	junctions, err := s.junctionRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.junctionRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToAssociationResponses(junctions), total, nil
}

// Delete deletes a junction record, unlinking the owner from the group
func (s *AssociationService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.junctionRepo.Delete(ctx, id)
}
