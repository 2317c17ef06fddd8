package advisory

import (
	"context"

	"github.com/advisory/backend/internal/domain/advisory"
	"github.com/advisory/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAddressRepository is a mock implementation of AddressRepository
type MockAddressRepository struct {
	mock.Mock
}

func (m *MockAddressRepository) FindByID(ctx context.Context, id uuid.UUID) (*advisory.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*advisory.Address), args.Error(1)
}

func (m *MockAddressRepository) FindAll(ctx context.Context, filter shared.Filter) ([]advisory.Address, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]advisory.Address), args.Error(1)
}

func (m *MockAddressRepository) Save(ctx context.Context, address *advisory.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *MockAddressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAddressRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockProductOwnerRepository is a mock implementation of ProductOwnerRepository
type MockProductOwnerRepository struct {
	mock.Mock
}

func (m *MockProductOwnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*advisory.ProductOwner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*advisory.ProductOwner), args.Error(1)
}

func (m *MockProductOwnerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]advisory.ProductOwner, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]advisory.ProductOwner), args.Error(1)
}

func (m *MockProductOwnerRepository) Save(ctx context.Context, owner *advisory.ProductOwner) error {
	args := m.Called(ctx, owner)
	return args.Error(0)
}

func (m *MockProductOwnerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductOwnerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductOwnerRepository) ExistsByAddressID(ctx context.Context, addressID uuid.UUID) (bool, error) {
	args := m.Called(ctx, addressID)
	return args.Bool(0), args.Error(1)
}

// MockClientGroupRepository is a mock implementation of ClientGroupRepository
type MockClientGroupRepository struct {
	mock.Mock
}

func (m *MockClientGroupRepository) FindByID(ctx context.Context, id uuid.UUID) (*advisory.ClientGroup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*advisory.ClientGroup), args.Error(1)
}

func (m *MockClientGroupRepository) FindAll(ctx context.Context, filter shared.Filter) ([]advisory.ClientGroup, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]advisory.ClientGroup), args.Error(1)
}

func (m *MockClientGroupRepository) Save(ctx context.Context, group *advisory.ClientGroup) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockClientGroupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClientGroupRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockAssociationRepository is a mock implementation of ClientGroupProductOwnerRepository
type MockAssociationRepository struct {
	mock.Mock
}

func (m *MockAssociationRepository) FindByID(ctx context.Context, id uuid.UUID) (*advisory.ClientGroupProductOwner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*advisory.ClientGroupProductOwner), args.Error(1)
}

func (m *MockAssociationRepository) FindByPair(ctx context.Context, clientGroupID, productOwnerID uuid.UUID) (*advisory.ClientGroupProductOwner, error) {
	args := m.Called(ctx, clientGroupID, productOwnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*advisory.ClientGroupProductOwner), args.Error(1)
}

func (m *MockAssociationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]advisory.ClientGroupProductOwner, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]advisory.ClientGroupProductOwner), args.Error(1)
}

func (m *MockAssociationRepository) Save(ctx context.Context, junction *advisory.ClientGroupProductOwner) error {
	args := m.Called(ctx, junction)
	return args.Error(0)
}

func (m *MockAssociationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAssociationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAssociationRepository) ExistsByClientGroupID(ctx context.Context, clientGroupID uuid.UUID) (bool, error) {
	args := m.Called(ctx, clientGroupID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAssociationRepository) ExistsByProductOwnerID(ctx context.Context, productOwnerID uuid.UUID) (bool, error) {
	args := m.Called(ctx, productOwnerID)
	return args.Bool(0), args.Error(1)
}
