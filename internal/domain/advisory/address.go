package advisory

import (
	"strings"

	"github.com/advisory/backend/internal/domain/shared"
)

const maxAddressLineLength = 200

// Address represents a postal address. Addresses are independently owned
// records; a ProductOwner may point at one through its AddressID, but the
// address does not belong to the owner.
type Address struct {
	shared.BaseAggregateRoot
	Line1 string `gorm:"type:varchar(200);not null"`
	Line2 string `gorm:"type:varchar(200)"`
	Line3 string `gorm:"type:varchar(200)"`
	Line4 string `gorm:"type:varchar(200)"`
	Line5 string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (Address) TableName() string {
	return "addresses"
}

// NewAddress creates a new address. Line 1 is mandatory, the remaining
// lines are free text and may be empty.
func NewAddress(line1, line2, line3, line4, line5 string) (*Address, error) {
	line1 = strings.TrimSpace(line1)
	if line1 == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Address line 1 is required")
	}
	for _, line := range []string{line1, line2, line3, line4, line5} {
		if len(line) > maxAddressLineLength {
			return nil, shared.NewDomainError("INVALID_ADDRESS", "Address lines cannot exceed 200 characters")
		}
	}

	return &Address{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Line1:             line1,
		Line2:             line2,
		Line3:             line3,
		Line4:             line4,
		Line5:             line5,
	}, nil
}
