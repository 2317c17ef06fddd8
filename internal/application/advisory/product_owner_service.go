package advisory

import (
	"context"
	"errors"
	"time"

	"github.com/advisory/backend/internal/domain/advisory"
	"github.com/advisory/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductOwnerService handles product-owner-related business operations
type ProductOwnerService struct {
	ownerRepo    advisory.ProductOwnerRepository
	addressRepo  advisory.AddressRepository
	junctionRepo advisory.ClientGroupProductOwnerRepository
}

// NewProductOwnerService creates a new ProductOwnerService
func NewProductOwnerService(
	ownerRepo advisory.ProductOwnerRepository,
	addressRepo advisory.AddressRepository,
	junctionRepo advisory.ClientGroupProductOwnerRepository,
) *ProductOwnerService {
	return &ProductOwnerService{
		ownerRepo:    ownerRepo,
		addressRepo:  addressRepo,
		junctionRepo: junctionRepo,
	}
}

// Create creates a new product owner. When address_id is supplied the
// referenced address must already exist.
func (s *ProductOwnerService) Create(ctx context.Context, req CreateProductOwnerRequest) (*ProductOwnerResponse, error) {
	if req.AddressID != nil {
		if _, err := s.addressRepo.FindByID(ctx, *req.AddressID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_REFERENCE", "address_id does not reference an existing address")
			}
			return nil, err
		}
	}

	owner, err := advisory.NewProductOwner(req.Firstname, req.Surname)
	if err != nil {
		return nil, err
	}

	if req.Title != "" || req.Gender != "" || req.Nationality != "" || req.MaritalStatus != "" {
		owner.SetPersonalDetails(req.Title, req.Gender, req.Nationality, req.MaritalStatus)
	}

	if req.DOB != "" {
		dob, err := time.Parse(dateLayout, req.DOB)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_DOB", "dob must be in YYYY-MM-DD format")
		}
		if err := owner.SetDateOfBirth(dob); err != nil {
			return nil, err
		}
	}

	if req.Phone != "" || req.Email != "" {
		if err := owner.SetContact(req.Phone, req.Email); err != nil {
			return nil, err
		}
	}

	if req.Occupation != "" || req.Employer != "" || req.AnnualIncome != nil {
		if err := owner.SetEmployment(req.Occupation, req.Employer, req.AnnualIncome); err != nil {
			return nil, err
		}
	}

	if err := owner.SetCompliance(req.PoliticallyExposed, req.AMLCheckPassed, req.NationalInsuranceNumber); err != nil {
		return nil, err
	}

	owner.SetAddressID(req.AddressID)

	if err := s.ownerRepo.Save(ctx, owner); err != nil {
		return nil, err
	}

	response := ToProductOwnerResponse(owner)
	return &response, nil
}

// GetByID retrieves a product owner by ID
func (s *ProductOwnerService) GetByID(ctx context.Context, id uuid.UUID) (*ProductOwnerResponse, error) {
	owner, err := s.ownerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToProductOwnerResponse(owner)
	return &response, nil
}

// List retrieves product owners with filtering and pagination
func (s *ProductOwnerService) List(ctx context.Context, filter ProductOwnerListFilter) ([]ProductOwnerResponse, int64, error) {
	domainFilter := toDomainFilter(filter.ListFilter)

	if filter.PoliticallyExposed != nil {
		domainFilter.Filters["politically_exposed"] = *filter.PoliticallyExposed
	}
	if filter.AMLCheckPassed != nil {
		domainFilter.Filters["aml_check_passed"] = *filter.AMLCheckPassed
	}
	if filter.AddressID != nil {
		domainFilter.Filters["address_id"] = *filter.AddressID
	}
	if filter.Nationality != "" {
		domainFilter.Filters["nationality"] = filter.Nationality
	}

	owners, err := s.ownerRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.ownerRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToProductOwnerResponses(owners), total, nil
}

// Delete deletes a product owner. An owner still linked into a client
// group cannot be deleted; the junction record must be removed first.
func (s *ProductOwnerService) Delete(ctx context.Context, id uuid.UUID) error {
	linked, err := s.junctionRepo.ExistsByProductOwnerID(ctx, id)
	if err != nil {
		return err
	}
	if linked {
		return shared.NewDomainError("REFERENCE_IN_USE", "Product owner is still linked to a client group")
	}

	return s.ownerRepo.Delete(ctx, id)
}
