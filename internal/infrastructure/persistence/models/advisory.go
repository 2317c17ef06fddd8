package models

import (
	"time"

	"github.com/advisory/backend/internal/domain/advisory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddressModel is the persistence model for the Address domain entity.
type AddressModel struct {
	AggregateModel
	Line1 string `gorm:"type:varchar(200);not null"`
	Line2 string `gorm:"type:varchar(200)"`
	Line3 string `gorm:"type:varchar(200)"`
	Line4 string `gorm:"type:varchar(200)"`
	Line5 string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (AddressModel) TableName() string {
	return "addresses"
}

// ToDomain converts the persistence model to a domain Address entity.
func (m *AddressModel) ToDomain() *advisory.Address {
	return &advisory.Address{
		BaseAggregateRoot: m.toDomainAggregateRoot(),
		Line1:             m.Line1,
		Line2:             m.Line2,
		Line3:             m.Line3,
		Line4:             m.Line4,
		Line5:             m.Line5,
	}
}

// AddressModelFromDomain creates a persistence model from a domain Address.
func AddressModelFromDomain(a *advisory.Address) *AddressModel {
	m := &AddressModel{
		Line1: a.Line1,
		Line2: a.Line2,
		Line3: a.Line3,
		Line4: a.Line4,
		Line5: a.Line5,
	}
	m.FromDomainAggregateRoot(a.BaseAggregateRoot)
	return m
}

// ProductOwnerModel is the persistence model for the ProductOwner domain entity.
type ProductOwnerModel struct {
	AggregateModel
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
func (ProductOwnerModel) TableName() string {
	return "product_owners"
}

// ToDomain converts the persistence model to a domain ProductOwner entity.
func (m *ProductOwnerModel) ToDomain() *advisory.ProductOwner {
	return &advisory.ProductOwner{
		BaseAggregateRoot:       m.toDomainAggregateRoot(),
		Firstname:               m.Firstname,
		Surname:                 m.Surname,
		Title:                   m.Title,
		Gender:                  m.Gender,
		Nationality:             m.Nationality,
		MaritalStatus:           m.MaritalStatus,
		DateOfBirth:             m.DateOfBirth,
		Phone:                   m.Phone,
		Email:                   m.Email,
		Occupation:              m.Occupation,
		Employer:                m.Employer,
		AnnualIncome:            m.AnnualIncome,
		PoliticallyExposed:      m.PoliticallyExposed,
		AMLCheckPassed:          m.AMLCheckPassed,
		NationalInsuranceNumber: m.NationalInsuranceNumber,
		AddressID:               m.AddressID,
	}
}

// ProductOwnerModelFromDomain creates a persistence model from a domain ProductOwner.
func ProductOwnerModelFromDomain(p *advisory.ProductOwner) *ProductOwnerModel {
	m := &ProductOwnerModel{
		Firstname:               p.Firstname,
		Surname:                 p.Surname,
		Title:                   p.Title,
		Gender:                  p.Gender,
		Nationality:             p.Nationality,
		MaritalStatus:           p.MaritalStatus,
		DateOfBirth:             p.DateOfBirth,
		Phone:                   p.Phone,
		Email:                   p.Email,
		Occupation:              p.Occupation,
		Employer:                p.Employer,
		AnnualIncome:            p.AnnualIncome,
		PoliticallyExposed:      p.PoliticallyExposed,
		AMLCheckPassed:          p.AMLCheckPassed,
		NationalInsuranceNumber: p.NationalInsuranceNumber,
		AddressID:               p.AddressID,
	}
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	return m
}

// ClientGroupModel is the persistence model for the ClientGroup domain entity.
type ClientGroupModel struct {
	AggregateModel
	Name             string                     `gorm:"type:varchar(200);not null"`
	Type             advisory.ClientGroupType   `gorm:"type:varchar(20);not null;default:'family'"`
	Status           advisory.ClientGroupStatus `gorm:"type:varchar(20);not null;default:'active'"`
	Advised          bool                       `gorm:"not null;default:false"`
	DeclaredBankrupt bool                       `gorm:"not null;default:false"`
	Notes            string                     `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ClientGroupModel) TableName() string {
	return "client_groups"
}

// ToDomain converts the persistence model to a domain ClientGroup entity.
func (m *ClientGroupModel) ToDomain() *advisory.ClientGroup {
	return &advisory.ClientGroup{
		BaseAggregateRoot: m.toDomainAggregateRoot(),
		Name:              m.Name,
		Type:              m.Type,
		Status:            m.Status,
		Advised:           m.Advised,
		DeclaredBankrupt:  m.DeclaredBankrupt,
		Notes:             m.Notes,
	}
}

// ClientGroupModelFromDomain creates a persistence model from a domain ClientGroup.
func ClientGroupModelFromDomain(g *advisory.ClientGroup) *ClientGroupModel {
	m := &ClientGroupModel{
		Name:             g.Name,
		Type:             g.Type,
		Status:           g.Status,
		Advised:          g.Advised,
		DeclaredBankrupt: g.DeclaredBankrupt,
		Notes:            g.Notes,
	}
	m.FromDomainAggregateRoot(g.BaseAggregateRoot)
	return m
}

// ClientGroupProductOwnerModel is the persistence model for the junction
// record linking product owners into client groups. The unique index on the
// pair backs the duplicate-membership check at the database level.
type ClientGroupProductOwnerModel struct {
	AggregateModel
	ClientGroupID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cgpo_pair,priority:1"`
	ProductOwnerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cgpo_pair,priority:2"`
}

// TableName returns the table name for GORM
func (ClientGroupProductOwnerModel) TableName() string {
	return "client_group_product_owners"
}

// ToDomain converts the persistence model to a domain junction entity.
func (m *ClientGroupProductOwnerModel) ToDomain() *advisory.ClientGroupProductOwner {
	return &advisory.ClientGroupProductOwner{
		BaseAggregateRoot: m.toDomainAggregateRoot(),
		ClientGroupID:     m.ClientGroupID,
		ProductOwnerID:    m.ProductOwnerID,
	}
}

// ClientGroupProductOwnerModelFromDomain creates a persistence model from a
// domain junction entity.
func ClientGroupProductOwnerModelFromDomain(j *advisory.ClientGroupProductOwner) *ClientGroupProductOwnerModel {
	m := &ClientGroupProductOwnerModel{
		ClientGroupID:  j.ClientGroupID,
		ProductOwnerID: j.ProductOwnerID,
	}
	m.FromDomainAggregateRoot(j.BaseAggregateRoot)
	return m
}
