package advisory

import (
	"context"

	"github.com/advisory/backend/internal/domain/advisory"
	"github.com/advisory/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ClientGroupService handles client-group-related business operations
type ClientGroupService struct {
	groupRepo    advisory.ClientGroupRepository
	junctionRepo advisory.ClientGroupProductOwnerRepository
}

// NewClientGroupService creates a new ClientGroupService
func NewClientGroupService(
	groupRepo advisory.ClientGroupRepository,
	junctionRepo advisory.ClientGroupProductOwnerRepository,
) *ClientGroupService {
	return &ClientGroupService{
		groupRepo:    groupRepo,
		junctionRepo: junctionRepo,
	}
}

// Create creates a new client group. Type defaults to family when omitted.
func (s *ClientGroupService) Create(ctx context.Context, req CreateClientGroupRequest) (*ClientGroupResponse, error) {
	groupType := advisory.ClientGroupType(req.Type)
	if req.Type == "" {
		groupType = advisory.ClientGroupTypeFamily
	}

	group, err := advisory.NewClientGroup(req.Name, groupType)
	if err != nil {
		return nil, err
	}

	group.SetDeclarations(req.Advised, req.DeclaredBankrupt)
	if req.Notes != "" {
		group.SetNotes(req.Notes)
	}

	if err := s.groupRepo.Save(ctx, group); err != nil {
		return nil, err
	}

	response := ToClientGroupResponse(group)
	return &response, nil
}

// GetByID retrieves a client group by ID
func (s *ClientGroupService) GetByID(ctx context.Context, id uuid.UUID) (*ClientGroupResponse, error) {
	group, err := s.groupRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToClientGroupResponse(group)
	return &response, nil
}

// List retrieves client groups with filtering and pagination
func (s *ClientGroupService) List(ctx context.Context, filter ClientGroupListFilter) ([]ClientGroupResponse, int64, error) {
	domainFilter := toDomainFilter(filter.ListFilter)

	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.Type != "" {
		domainFilter.Filters["type"] = filter.Type
	}
	if filter.Advised != nil {
		domainFilter.Filters["advised"] = *filter.Advised
	}

	groups, err := s.groupRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.groupRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToClientGroupResponses(groups), total, nil
}

// Delete deletes a client group. A group that still has linked product
// owners cannot be deleted; the junction records must be removed first.
func (s *ClientGroupService) Delete(ctx context.Context, id uuid.UUID) error {
	linked, err := s.junctionRepo.ExistsByClientGroupID(ctx, id)
	if err != nil {
		return err
	}
	if linked {
		return shared.NewDomainError("REFERENCE_IN_USE", "Client group still has linked product owners")
	}

	return s.groupRepo.Delete(ctx, id)
}
