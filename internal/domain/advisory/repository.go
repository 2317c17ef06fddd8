package advisory

import (
	"context"

	"github.com/advisory/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AddressRepository defines persistence operations for addresses
type AddressRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Address, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Address, error)
	Save(ctx context.Context, address *Address) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// ProductOwnerRepository defines persistence operations for product owners
type ProductOwnerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductOwner, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]ProductOwner, error)
	Save(ctx context.Context, owner *ProductOwner) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	// ExistsByAddressID reports whether any product owner references the
	// given address. Used to refuse deleting a referenced address.
	ExistsByAddressID(ctx context.Context, addressID uuid.UUID) (bool, error)
}

// ClientGroupRepository defines persistence operations for client groups
type ClientGroupRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ClientGroup, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]ClientGroup, error)
	Save(ctx context.Context, group *ClientGroup) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// ClientGroupProductOwnerRepository defines persistence operations for the
// client group / product owner junction records
type ClientGroupProductOwnerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ClientGroupProductOwner, error)
	FindByPair(ctx context.Context, clientGroupID, productOwnerID uuid.UUID) (*ClientGroupProductOwner, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]ClientGroupProductOwner, error)
	Save(ctx context.Context, junction *ClientGroupProductOwner) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	// ExistsByClientGroupID reports whether any junction references the group
	ExistsByClientGroupID(ctx context.Context, clientGroupID uuid.UUID) (bool, error)
	// ExistsByProductOwnerID reports whether any junction references the owner
	ExistsByProductOwnerID(ctx context.Context, productOwnerID uuid.UUID) (bool, error)
}
