package advisory

import (
	"time"

	"github.com/advisory/backend/internal/domain/advisory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// =============================================================================
// Address DTOs
// =============================================================================

// CreateAddressRequest represents a request to create a new address
type CreateAddressRequest struct {
	Line1 string `json:"line_1" binding:"required,min=1,max=200"`
	Line2 string `json:"line_2" binding:"max=200"`
	Line3 string `json:"line_3" binding:"max=200"`
	Line4 string `json:"line_4" binding:"max=200"`
	Line5 string `json:"line_5" binding:"max=200"`
}

// AddressResponse represents an address in API responses
type AddressResponse struct {
	ID        uuid.UUID `json:"id"`
	Line1     string    `json:"line_1"`
	Line2     string    `json:"line_2"`
	Line3     string    `json:"line_3"`
	Line4     string    `json:"line_4"`
	Line5     string    `json:"line_5"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToAddressResponse converts a domain Address to a response DTO
func ToAddressResponse(a *advisory.Address) AddressResponse {
	return AddressResponse{
		ID:        a.ID,
		Line1:     a.Line1,
		Line2:     a.Line2,
		Line3:     a.Line3,
		Line4:     a.Line4,
		Line5:     a.Line5,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// ToAddressResponses converts a slice of domain Addresses to response DTOs
func ToAddressResponses(addresses []advisory.Address) []AddressResponse {
	responses := make([]AddressResponse, len(addresses))
	for i := range addresses {
		responses[i] = ToAddressResponse(&addresses[i])
	}
	return responses
}

// =============================================================================
// ProductOwner DTOs
// =============================================================================

// CreateProductOwnerRequest represents a request to create a new product owner
type CreateProductOwnerRequest struct {
	Firstname               string           `json:"firstname" binding:"required,min=1,max=100"`
	Surname                 string           `json:"surname" binding:"required,min=1,max=100"`
	Title                   string           `json:"title" binding:"max=20"`
	Gender                  string           `json:"gender" binding:"max=20"`
	Nationality             string           `json:"nationality" binding:"max=100"`
	MaritalStatus           string           `json:"marital_status" binding:"max=50"`
	DOB                     string           `json:"dob" binding:"omitempty,datetime=2006-01-02"`
	Phone                   string           `json:"phone" binding:"max=50"`
	Email                   string           `json:"email" binding:"omitempty,email,max=200"`
	Occupation              string           `json:"occupation" binding:"max=200"`
	Employer                string           `json:"employer" binding:"max=200"`
	AnnualIncome            *decimal.Decimal `json:"annual_income"`
	PoliticallyExposed      bool             `json:"politically_exposed"`
	AMLCheckPassed          bool             `json:"aml_check_passed"`
	NationalInsuranceNumber string           `json:"national_insurance_number" binding:"max=20"`
	AddressID               *uuid.UUID       `json:"address_id"`
}

// ProductOwnerResponse represents a product owner in API responses.
// Age is derived from the stored date of birth, never persisted.
type ProductOwnerResponse struct {
	ID                      uuid.UUID        `json:"id"`
	Firstname               string           `json:"firstname"`
	Surname                 string           `json:"surname"`
	Title                   string           `json:"title"`
	Gender                  string           `json:"gender"`
	Nationality             string           `json:"nationality"`
	MaritalStatus           string           `json:"marital_status"`
	DOB                     *string          `json:"dob"`
	Age                     *int             `json:"age"`
	Phone                   string           `json:"phone"`
	Email                   string           `json:"email"`
	Occupation              string           `json:"occupation"`
	Employer                string           `json:"employer"`
	AnnualIncome            *decimal.Decimal `json:"annual_income"`
	PoliticallyExposed      bool             `json:"politically_exposed"`
	AMLCheckPassed          bool             `json:"aml_check_passed"`
	NationalInsuranceNumber string           `json:"national_insurance_number"`
	AddressID               *uuid.UUID       `json:"address_id"`
	CreatedAt               time.Time        `json:"created_at"`
	UpdatedAt               time.Time        `json:"updated_at"`
}

// ToProductOwnerResponse converts a domain ProductOwner to a response DTO
func ToProductOwnerResponse(p *advisory.ProductOwner) ProductOwnerResponse {
	var dob *string
	if p.DateOfBirth != nil {
		formatted := p.DateOfBirth.Format(dateLayout)
		dob = &formatted
	}
	return ProductOwnerResponse{
		ID:                      p.ID,
		Firstname:               p.Firstname,
		Surname:                 p.Surname,
		Title:                   p.Title,
		Gender:                  p.Gender,
		Nationality:             p.Nationality,
		MaritalStatus:           p.MaritalStatus,
		DOB:                     dob,
		Age:                     p.Age(),
		Phone:                   p.Phone,
		Email:                   p.Email,
		Occupation:              p.Occupation,
		Employer:                p.Employer,
		AnnualIncome:            p.AnnualIncome,
		PoliticallyExposed:      p.PoliticallyExposed,
		AMLCheckPassed:          p.AMLCheckPassed,
		NationalInsuranceNumber: p.NationalInsuranceNumber,
		AddressID:               p.AddressID,
		CreatedAt:               p.CreatedAt,
		UpdatedAt:               p.UpdatedAt,
	}
}

// ToProductOwnerResponses converts a slice of domain ProductOwners to response DTOs
func ToProductOwnerResponses(owners []advisory.ProductOwner) []ProductOwnerResponse {
	responses := make([]ProductOwnerResponse, len(owners))
	for i := range owners {
		responses[i] = ToProductOwnerResponse(&owners[i])
	}
	return responses
}

// =============================================================================
// ClientGroup DTOs
// =============================================================================

// CreateClientGroupRequest represents a request to create a new client group
type CreateClientGroupRequest struct {
	Name             string `json:"name" binding:"required,min=2,max=200"`
	Type             string `json:"type" binding:"omitempty,oneof=family trust corporate"`
	Advised          bool   `json:"advised"`
	DeclaredBankrupt bool   `json:"declared_bankrupt"`
	Notes            string `json:"notes"`
}

// ClientGroupResponse represents a client group in API responses
type ClientGroupResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	Status           string    `json:"status"`
	Advised          bool      `json:"advised"`
	DeclaredBankrupt bool      `json:"declared_bankrupt"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ToClientGroupResponse converts a domain ClientGroup to a response DTO
func ToClientGroupResponse(g *advisory.ClientGroup) ClientGroupResponse {
	return ClientGroupResponse{
		ID:               g.ID,
		Name:             g.Name,
		Type:             string(g.Type),
		Status:           string(g.Status),
		Advised:          g.Advised,
		DeclaredBankrupt: g.DeclaredBankrupt,
		Notes:            g.Notes,
		CreatedAt:        g.CreatedAt,
		UpdatedAt:        g.UpdatedAt,
	}
}

// ToClientGroupResponses converts a slice of domain ClientGroups to response DTOs
func ToClientGroupResponses(groups []advisory.ClientGroup) []ClientGroupResponse {
	responses := make([]ClientGroupResponse, len(groups))
	for i := range groups {
		responses[i] = ToClientGroupResponse(&groups[i])
	}
	return responses
}

// =============================================================================
// ClientGroupProductOwner DTOs
// =============================================================================

// CreateAssociationRequest represents a request to link a product owner
// into a client group
type CreateAssociationRequest struct {
	ClientGroupID  uuid.UUID `json:"client_group_id" binding:"required"`
	ProductOwnerID uuid.UUID `json:"product_owner_id" binding:"required"`
}

// AssociationResponse represents a junction record in API responses
type AssociationResponse struct {
	ID             uuid.UUID `json:"id"`
	ClientGroupID  uuid.UUID `json:"client_group_id"`
	ProductOwnerID uuid.UUID `json:"product_owner_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToAssociationResponse converts a domain junction record to a response DTO
func ToAssociationResponse(j *advisory.ClientGroupProductOwner) AssociationResponse {
	return AssociationResponse{
		ID:             j.ID,
		ClientGroupID:  j.ClientGroupID,
		ProductOwnerID: j.ProductOwnerID,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
}

// ToAssociationResponses converts a slice of domain junction records to response DTOs
func ToAssociationResponses(junctions []advisory.ClientGroupProductOwner) []AssociationResponse {
	responses := make([]AssociationResponse, len(junctions))
	for i := range junctions {
		responses[i] = ToAssociationResponse(&junctions[i])
	}
	return responses
}

// =============================================================================
// List filters
// =============================================================================

// ListFilter holds common pagination and search parameters for list requests
type ListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size" binding:"omitempty,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search   string `form:"search"`
}

// ProductOwnerListFilter extends ListFilter with owner-specific filters
type ProductOwnerListFilter struct {
	ListFilter
	PoliticallyExposed *bool      `form:"politically_exposed"`
	AMLCheckPassed     *bool      `form:"aml_check_passed"`
	AddressID          *uuid.UUID `form:"address_id"`
	Nationality        string     `form:"nationality"`
}

// ClientGroupListFilter extends ListFilter with group-specific filters
type ClientGroupListFilter struct {
	ListFilter
	Status  string `form:"status" binding:"omitempty,oneof=active dormant archived"`
	Type    string `form:"type" binding:"omitempty,oneof=family trust corporate"`
	Advised *bool  `form:"advised"`
}

// AssociationListFilter extends ListFilter with junction-specific filters
type AssociationListFilter struct {
	ListFilter
	ClientGroupID  *uuid.UUID `form:"client_group_id"`
	ProductOwnerID *uuid.UUID `form:"product_owner_id"`
}
