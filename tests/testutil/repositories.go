// Package testutil provides common test utilities for the advisory backend.
package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/advisory/backend/internal/domain/advisory"
	"github.com/advisory/backend/internal/domain/shared"
	"github.com/google/uuid"
)

var (
	_ advisory.AddressRepository                 = (*InMemoryAddressRepository)(nil)
	_ advisory.ProductOwnerRepository            = (*InMemoryProductOwnerRepository)(nil)
	_ advisory.ClientGroupRepository             = (*InMemoryClientGroupRepository)(nil)
	_ advisory.ClientGroupProductOwnerRepository = (*InMemoryAssociationRepository)(nil)
)

// InMemoryAddressRepository is a thread-safe in-memory AddressRepository
type InMemoryAddressRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]advisory.Address
}

// NewInMemoryAddressRepository creates an empty in-memory address repository
func NewInMemoryAddressRepository() *InMemoryAddressRepository {
	return &InMemoryAddressRepository{items: make(map[uuid.UUID]advisory.Address)}
}

func (r *InMemoryAddressRepository) FindByID(ctx context.Context, id uuid.UUID) (*advisory.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &item, nil
}

func (r *InMemoryAddressRepository) FindAll(ctx context.Context, filter shared.Filter) ([]advisory.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := make([]advisory.Address, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return items, nil
}

func (r *InMemoryAddressRepository) Save(ctx context.Context, address *advisory.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[address.ID] = *address
	return nil
}

func (r *InMemoryAddressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *InMemoryAddressRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}

// InMemoryProductOwnerRepository is a thread-safe in-memory ProductOwnerRepository
type InMemoryProductOwnerRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]advisory.ProductOwner
}

// NewInMemoryProductOwnerRepository creates an empty in-memory product owner repository
func NewInMemoryProductOwnerRepository() *InMemoryProductOwnerRepository {
	return &InMemoryProductOwnerRepository{items: make(map[uuid.UUID]advisory.ProductOwner)}
}

func (r *InMemoryProductOwnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*advisory.ProductOwner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &item, nil
}

func (r *InMemoryProductOwnerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]advisory.ProductOwner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := make([]advisory.ProductOwner, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return items, nil
}

func (r *InMemoryProductOwnerRepository) Save(ctx context.Context, owner *advisory.ProductOwner) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[owner.ID] = *owner
	return nil
}

func (r *InMemoryProductOwnerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *InMemoryProductOwnerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}

func (r *InMemoryProductOwnerRepository) ExistsByAddressID(ctx context.Context, addressID uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.items {
		if item.AddressID != nil && *item.AddressID == addressID {
			return true, nil
		}
	}
	return false, nil
}

// InMemoryClientGroupRepository is a thread-safe in-memory ClientGroupRepository
type InMemoryClientGroupRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]advisory.ClientGroup
}

// NewInMemoryClientGroupRepository creates an empty in-memory client group repository
func NewInMemoryClientGroupRepository() *InMemoryClientGroupRepository {
	return &InMemoryClientGroupRepository{items: make(map[uuid.UUID]advisory.ClientGroup)}
}

func (r *InMemoryClientGroupRepository) FindByID(ctx context.Context, id uuid.UUID) (*advisory.ClientGroup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &item, nil
}

func (r *InMemoryClientGroupRepository) FindAll(ctx context.Context, filter shared.Filter) ([]advisory.ClientGroup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := make([]advisory.ClientGroup, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return items, nil
}

func (r *InMemoryClientGroupRepository) Save(ctx context.Context, group *advisory.ClientGroup) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[group.ID] = *group
	return nil
}

func (r *InMemoryClientGroupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *InMemoryClientGroupRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}

// InMemoryAssociationRepository is a thread-safe in-memory
// ClientGroupProductOwnerRepository
type InMemoryAssociationRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]advisory.ClientGroupProductOwner
}

// NewInMemoryAssociationRepository creates an empty in-memory junction repository
func NewInMemoryAssociationRepository() *InMemoryAssociationRepository {
	return &InMemoryAssociationRepository{items: make(map[uuid.UUID]advisory.ClientGroupProductOwner)}
}

func (r *InMemoryAssociationRepository) FindByID(ctx context.Context, id uuid.UUID) (*advisory.ClientGroupProductOwner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &item, nil
}

func (r *InMemoryAssociationRepository) FindByPair(ctx context.Context, clientGroupID, productOwnerID uuid.UUID) (*advisory.ClientGroupProductOwner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.items {
		if item.ClientGroupID == clientGroupID && item.ProductOwnerID == productOwnerID {
			found := item
			return &found, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *InMemoryAssociationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]advisory.ClientGroupProductOwner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := make([]advisory.ClientGroupProductOwner, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return items, nil
}

func (r *InMemoryAssociationRepository) Save(ctx context.Context, junction *advisory.ClientGroupProductOwner) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[junction.ID] = *junction
	return nil
}

func (r *InMemoryAssociationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *InMemoryAssociationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}

func (r *InMemoryAssociationRepository) ExistsByClientGroupID(ctx context.Context, clientGroupID uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.items {
		if item.ClientGroupID == clientGroupID {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryAssociationRepository) ExistsByProductOwnerID(ctx context.Context, productOwnerID uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.items {
		if item.ProductOwnerID == productOwnerID {
			return true, nil
		}
	}
	return false, nil
}
