package advisory

import (
	"regexp"
	"strings"
	"time"

	"github.com/advisory/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ProductOwner represents a person who holds products advised on by the
// firm. It carries personal, contact, employment and AML details, and an
// optional weak reference to an Address.
type ProductOwner struct {
	shared.BaseAggregateRoot
	Firstname               string           `gorm:"type:varchar(100);not null"`
	Surname                 string           `gorm:"type:varchar(100);not null"`
	Title                   string           `gorm:"type:varchar(20)"`
	Gender                  string           `gorm:"type:varchar(20)"`
	Nationality             string           `gorm:"type:varchar(100)"`
	MaritalStatus           string           `gorm:"type:varchar(50)"`
	DateOfBirth             *time.Time       `gorm:"type:date"`
	Phone                   string           `gorm:"type:varchar(50)"`
	Email                   string           `gorm:"type:varchar(200);index"`
	Occupation              string           `gorm:"type:varchar(200)"`
	Employer                string           `gorm:"type:varchar(200)"`
	AnnualIncome            *decimal.Decimal `gorm:"type:decimal(18,4)"`
	PoliticallyExposed      bool             `gorm:"not null;default:false"`
	AMLCheckPassed          bool             `gorm:"not null;default:false"`
	NationalInsuranceNumber string           `gorm:"type:varchar(20)"`
	AddressID               *uuid.UUID       `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (ProductOwner) TableName() string {
	return "product_owners"
}

// NewProductOwner creates a new product owner with the mandatory name fields.
func NewProductOwner(firstname, surname string) (*ProductOwner, error) {
	firstname = strings.TrimSpace(firstname)
	surname = strings.TrimSpace(surname)
	if firstname == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "firstname required")
	}
	if surname == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "surname required")
	}
	if len(firstname) > 100 || len(surname) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Names cannot exceed 100 characters")
	}

	return &ProductOwner{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Firstname:         firstname,
		Surname:           surname,
	}, nil
}

// SetPersonalDetails sets the optional personal fields
func (p *ProductOwner) SetPersonalDetails(title, gender, nationality, maritalStatus string) {
	p.Title = title
	p.Gender = gender
	p.Nationality = nationality
	p.MaritalStatus = maritalStatus
	p.UpdatedAt = time.Now()
}

// SetDateOfBirth sets the date of birth; it must not be in the future
func (p *ProductOwner) SetDateOfBirth(dob time.Time) error {
	if dob.After(time.Now()) {
		return shared.NewDomainError("INVALID_DOB", "Date of birth cannot be in the future")
	}
	p.DateOfBirth = &dob
	p.UpdatedAt = time.Now()
	return nil
}

// SetContact sets the contact details
func (p *ProductOwner) SetContact(phone, email string) error {
	if email != "" && !emailPattern.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Email format is invalid")
	}
	p.Phone = phone
	p.Email = strings.ToLower(email)
	p.UpdatedAt = time.Now()
	return nil
}

// SetEmployment sets the employment details
func (p *ProductOwner) SetEmployment(occupation, employer string, annualIncome *decimal.Decimal) error {
	if annualIncome != nil && annualIncome.IsNegative() {
		return shared.NewDomainError("INVALID_INCOME", "Annual income cannot be negative")
	}
	p.Occupation = occupation
	p.Employer = employer
	p.AnnualIncome = annualIncome
	p.UpdatedAt = time.Now()
	return nil
}

// SetCompliance sets the AML-related fields
func (p *ProductOwner) SetCompliance(politicallyExposed, amlCheckPassed bool, nationalInsuranceNumber string) error {
	if len(nationalInsuranceNumber) > 20 {
		return shared.NewDomainError("INVALID_NINO", "National insurance number cannot exceed 20 characters")
	}
	p.PoliticallyExposed = politicallyExposed
	p.AMLCheckPassed = amlCheckPassed
	p.NationalInsuranceNumber = strings.ToUpper(strings.ReplaceAll(nationalInsuranceNumber, " ", ""))
	p.UpdatedAt = time.Now()
	return nil
}

// SetAddressID sets the weak reference to an address. The caller is
// responsible for checking the address exists.
func (p *ProductOwner) SetAddressID(addressID *uuid.UUID) {
	p.AddressID = addressID
	p.UpdatedAt = time.Now()
}

// Age returns the owner's age in whole years derived from DateOfBirth,
// or nil when no date of birth is recorded.
func (p *ProductOwner) Age() *int {
	return p.AgeAt(time.Now())
}

// AgeAt returns the owner's age at the given reference time
func (p *ProductOwner) AgeAt(ref time.Time) *int {
	if p.DateOfBirth == nil {
		return nil
	}
	dob := *p.DateOfBirth
	age := ref.Year() - dob.Year()
	if ref.Month() < dob.Month() || (ref.Month() == dob.Month() && ref.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		age = 0
	}
	return &age
}

// FullName returns the owner's display name
func (p *ProductOwner) FullName() string {
	return p.Firstname + " " + p.Surname
}
