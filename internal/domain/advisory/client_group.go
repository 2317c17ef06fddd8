package advisory

import (
	"strings"
	"time"

	"github.com/advisory/backend/internal/domain/shared"
)

// ClientGroupStatus represents the lifecycle status of a client group
type ClientGroupStatus string

const (
	ClientGroupStatusActive   ClientGroupStatus = "active"
	ClientGroupStatusDormant  ClientGroupStatus = "dormant"
	ClientGroupStatusArchived ClientGroupStatus = "archived"
)

// ClientGroupType represents the kind of grouping
type ClientGroupType string

const (
	ClientGroupTypeFamily    ClientGroupType = "family"
	ClientGroupTypeTrust     ClientGroupType = "trust"
	ClientGroupTypeCorporate ClientGroupType = "corporate"
)

const (
	minClientGroupNameLength = 2
	maxClientGroupNameLength = 200
)

// ClientGroup represents a named grouping of product owners advised as a
// unit. It is the aggregate root for group-level declarations and notes.
type ClientGroup struct {
	shared.BaseAggregateRoot
	Name             string            `gorm:"type:varchar(200);not null"`
	Type             ClientGroupType   `gorm:"type:varchar(20);not null;default:'family'"`
	Status           ClientGroupStatus `gorm:"type:varchar(20);not null;default:'active'"`
	Advised          bool              `gorm:"not null;default:false"`
	DeclaredBankrupt bool              `gorm:"not null;default:false"`
	Notes            string            `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ClientGroup) TableName() string {
	return "client_groups"
}

// NewClientGroup creates a new client group with the required name and type
func NewClientGroup(name string, groupType ClientGroupType) (*ClientGroup, error) {
	name = strings.TrimSpace(name)
	if len(name) < minClientGroupNameLength {
		return nil, shared.NewDomainError("INVALID_NAME", "Client group name must be at least 2 characters")
	}
	if len(name) > maxClientGroupNameLength {
		return nil, shared.NewDomainError("INVALID_NAME", "Client group name cannot exceed 200 characters")
	}
	if err := validateClientGroupType(groupType); err != nil {
		return nil, err
	}

	return &ClientGroup{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Type:              groupType,
		Status:            ClientGroupStatusActive,
	}, nil
}

// SetDeclarations records the group-level declarations
func (g *ClientGroup) SetDeclarations(advised, declaredBankrupt bool) {
	g.Advised = advised
	g.DeclaredBankrupt = declaredBankrupt
	g.UpdatedAt = time.Now()
}

// SetNotes sets free-text notes on the group
func (g *ClientGroup) SetNotes(notes string) {
	g.Notes = notes
	g.UpdatedAt = time.Now()
}

// MarkDormant moves an active group to dormant
func (g *ClientGroup) MarkDormant() error {
	if g.Status != ClientGroupStatusActive {
		return shared.NewDomainError("INVALID_STATE", "Only active client groups can be marked dormant")
	}
	g.Status = ClientGroupStatusDormant
	g.UpdatedAt = time.Now()
	return nil
}

// Archive moves a group to archived, from any non-archived status
func (g *ClientGroup) Archive() error {
	if g.Status == ClientGroupStatusArchived {
		return shared.NewDomainError("INVALID_STATE", "Client group is already archived")
	}
	g.Status = ClientGroupStatusArchived
	g.UpdatedAt = time.Now()
	return nil
}

func validateClientGroupType(t ClientGroupType) error {
	switch t {
	case ClientGroupTypeFamily, ClientGroupTypeTrust, ClientGroupTypeCorporate:
		return nil
	default:
		return shared.NewDomainError("INVALID_TYPE", "Client group type must be family, trust or corporate")
	}
}
