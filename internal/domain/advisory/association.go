package advisory

import (
	"github.com/advisory/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ClientGroupProductOwner is the junction record that links a product owner
// into a client group. It must never be created before both referenced
// records exist, and during rollback it must be deleted first.
type ClientGroupProductOwner struct {
	shared.BaseAggregateRoot
	ClientGroupID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cgpo_pair,priority:1"`
	ProductOwnerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cgpo_pair,priority:2"`
}

// TableName returns the table name for GORM
func (ClientGroupProductOwner) TableName() string {
	return "client_group_product_owners"
}

// NewClientGroupProductOwner creates a new junction record
func NewClientGroupProductOwner(clientGroupID, productOwnerID uuid.UUID) (*ClientGroupProductOwner, error) {
	if clientGroupID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "client_group_id is required")
	}
	if productOwnerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "product_owner_id is required")
	}

	return &ClientGroupProductOwner{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ClientGroupID:     clientGroupID,
		ProductOwnerID:    productOwnerID,
	}, nil
}
