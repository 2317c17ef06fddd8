package client

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddressPayload is the request body for creating an address
type AddressPayload struct {
	Line1 string `json:"line_1"`
	Line2 string `json:"line_2,omitempty"`
	Line3 string `json:"line_3,omitempty"`
	Line4 string `json:"line_4,omitempty"`
	Line5 string `json:"line_5,omitempty"`
}

// Address is an address resource as returned by the API
type Address struct {
	ID        uuid.UUID `json:"id"`
	Line1     string    `json:"line_1"`
	Line2     string    `json:"line_2"`
	Line3     string    `json:"line_3"`
	Line4     string    `json:"line_4"`
	Line5     string    `json:"line_5"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductOwnerPayload is the request body for creating a product owner
type ProductOwnerPayload struct {
	Firstname               string           `json:"firstname"`
	Surname                 string           `json:"surname"`
	Title                   string           `json:"title,omitempty"`
	Gender                  string           `json:"gender,omitempty"`
	Nationality             string           `json:"nationality,omitempty"`
	MaritalStatus           string           `json:"marital_status,omitempty"`
	DOB                     string           `json:"dob,omitempty"`
	Phone                   string           `json:"phone,omitempty"`
	Email                   string           `json:"email,omitempty"`
	Occupation              string           `json:"occupation,omitempty"`
	Employer                string           `json:"employer,omitempty"`
	AnnualIncome            *decimal.Decimal `json:"annual_income,omitempty"`
	PoliticallyExposed      bool             `json:"politically_exposed"`
	AMLCheckPassed          bool             `json:"aml_check_passed"`
	NationalInsuranceNumber string           `json:"national_insurance_number,omitempty"`
	AddressID               *uuid.UUID       `json:"address_id,omitempty"`
}

// ProductOwner is a product owner resource as returned by the API. Age is
// derived by the server from the date of birth.
type ProductOwner struct {
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

// ClientGroupPayload is the request body for creating a client group
type ClientGroupPayload struct {
	Name             string `json:"name"`
	Type             string `json:"type,omitempty"`
	Advised          bool   `json:"advised"`
	DeclaredBankrupt bool   `json:"declared_bankrupt"`
	Notes            string `json:"notes,omitempty"`
}

// ClientGroup is a client group resource as returned by the API
type ClientGroup struct {
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

// ClientGroupProductOwnerPayload is the request body for linking a product
// owner into a client group
type ClientGroupProductOwnerPayload struct {
	ClientGroupID  uuid.UUID `json:"client_group_id"`
	ProductOwnerID uuid.UUID `json:"product_owner_id"`
}

// ClientGroupProductOwner is a junction resource as returned by the API
type ClientGroupProductOwner struct {
	ID             uuid.UUID `json:"id"`
	ClientGroupID  uuid.UUID `json:"client_group_id"`
	ProductOwnerID uuid.UUID `json:"product_owner_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
