// Package provision implements the client group provisioning workflow.
// It creates an address, a product owner, a client group, and the junction
// record linking them, in that order, through the backend REST API. When
// any step fails the resources created so far are deleted in reverse
// order and the original failure is surfaced.
package provision

import (
	"context"
	"time"

	"github.com/advisory/backend/internal/client"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ResourceClients is the API surface the workflow needs. *client.Client
// satisfies it.
type ResourceClients interface {
	CreateAddress(ctx context.Context, payload client.AddressPayload) (*client.Address, error)
	DeleteAddress(ctx context.Context, id uuid.UUID) error
	CreateProductOwner(ctx context.Context, payload client.ProductOwnerPayload) (*client.ProductOwner, error)
	DeleteProductOwner(ctx context.Context, id uuid.UUID) error
	CreateClientGroup(ctx context.Context, payload client.ClientGroupPayload) (*client.ClientGroup, error)
	DeleteClientGroup(ctx context.Context, id uuid.UUID) error
	CreateClientGroupProductOwner(ctx context.Context, payload client.ClientGroupProductOwnerPayload) (*client.ClientGroupProductOwner, error)
	DeleteClientGroupProductOwner(ctx context.Context, id uuid.UUID) error
}

var _ ResourceClients = (*client.Client)(nil)

// State identifies where the workflow is in its lifecycle
type State string

const (
	StateIdle                 State = "idle"
	StateCreatingAddress      State = "creating_address"
	StateCreatingProductOwner State = "creating_product_owner"
	StateCreatingClientGroup  State = "creating_client_group"
	StateCreatingJunction     State = "creating_junction"
	StateCompleted            State = "completed"
	StateRollingBack          State = "rolling_back"
	StateFailed               State = "failed"
)

const defaultRollbackTimeout = 30 * time.Second

// Input carries the payloads for one provisioning run. Address is
// optional; when nil the address step is skipped and the product owner is
// created without an address reference.
type Input struct {
	Address      *client.AddressPayload     `json:"address,omitempty"`
	ProductOwner client.ProductOwnerPayload `json:"product_owner"`
	ClientGroup  client.ClientGroupPayload  `json:"client_group"`
}

// Result reports what a run created and where it ended up. After a failed
// run the resource fields still identify what was created before the
// failure, all of which the rollback attempted to delete. RollbackErrors
// lists deletes that failed; those resources are left behind.
type Result struct {
	State          State
	Address        *client.Address
	ProductOwner   *client.ProductOwner
	ClientGroup    *client.ClientGroup
	Junction       *client.ClientGroupProductOwner
	RollbackErrors []error
}

// Workflow orchestrates provisioning runs
type Workflow struct {
	clients         ResourceClients
	logger          *zap.Logger
	rollbackTimeout time.Duration
}

// WorkflowOption configures a Workflow
type WorkflowOption func(*Workflow)

// WithRollbackTimeout bounds how long a rollback may take
func WithRollbackTimeout(timeout time.Duration) WorkflowOption {
	return func(w *Workflow) {
		w.rollbackTimeout = timeout
	}
}

// NewWorkflow creates a provisioning workflow over the given API clients
func NewWorkflow(clients ResourceClients, logger *zap.Logger, opts ...WorkflowOption) *Workflow {
	w := &Workflow{
		clients:         clients,
		logger:          logger,
		rollbackTimeout: defaultRollbackTimeout,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// compensation is a pending delete for a resource created during the run
type compensation struct {
	resource string
	id       uuid.UUID
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

// Run executes one provisioning run. On failure the returned error is the
// error from the step that failed, never a rollback error; rollback
// problems are reported through Result.RollbackErrors.
func (w *Workflow) Run(ctx context.Context, input Input) (*Result, error) {
	result := &Result{State: StateIdle}
	var created []compensation

	fail := func(err error) (*Result, error) {
		w.logger.Error("provisioning step failed",
			zap.String("state", string(result.State)),
			zap.Error(err))
		w.rollback(ctx, result, created)
		return result, err
	}

	ownerPayload := input.ProductOwner

	if input.Address != nil {
		w.transition(result, StateCreatingAddress)
		address, err := w.clients.CreateAddress(ctx, *input.Address)
		if err != nil {
			return fail(err)
		}
		result.Address = address
		created = append(created, compensation{"address", address.ID, w.clients.DeleteAddress})
		ownerPayload.AddressID = &address.ID
	}

	w.transition(result, StateCreatingProductOwner)
	owner, err := w.clients.CreateProductOwner(ctx, ownerPayload)
	if err != nil {
		return fail(err)
	}
	result.ProductOwner = owner
	created = append(created, compensation{"product owner", owner.ID, w.clients.DeleteProductOwner})

	w.transition(result, StateCreatingClientGroup)
	group, err := w.clients.CreateClientGroup(ctx, input.ClientGroup)
	if err != nil {
		return fail(err)
	}
	result.ClientGroup = group
	created = append(created, compensation{"client group", group.ID, w.clients.DeleteClientGroup})

	w.transition(result, StateCreatingJunction)
	junction, err := w.clients.CreateClientGroupProductOwner(ctx, client.ClientGroupProductOwnerPayload{
		ClientGroupID:  group.ID,
		ProductOwnerID: owner.ID,
	})
	if err != nil {
		return fail(err)
	}
	result.Junction = junction

	w.transition(result, StateCompleted)
	w.logger.Info("provisioning completed",
		zap.String("client_group_id", group.ID.String()),
		zap.String("product_owner_id", owner.ID.String()),
		zap.String("junction_id", junction.ID.String()))
	return result, nil
}

// rollback deletes created resources in reverse creation order. It runs
// on a context detached from the caller's so a cancelled run still cleans
// up, and it keeps going past individual delete failures.
func (w *Workflow) rollback(ctx context.Context, result *Result, created []compensation) {
	w.transition(result, StateRollingBack)

	rollbackCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), w.rollbackTimeout)
	defer cancel()

	for i := len(created) - 1; i >= 0; i-- {
		comp := created[i]
		if err := comp.deleteFn(rollbackCtx, comp.id); err != nil {
			w.logger.Warn("rollback delete failed, resource left behind",
				zap.String("resource", comp.resource),
				zap.String("id", comp.id.String()),
				zap.Error(err))
			result.RollbackErrors = append(result.RollbackErrors, err)
			continue
		}
		w.logger.Info("rolled back resource",
			zap.String("resource", comp.resource),
			zap.String("id", comp.id.String()))
	}

	w.transition(result, StateFailed)
}

func (w *Workflow) transition(result *Result, next State) {
	w.logger.Debug("workflow state change",
		zap.String("from", string(result.State)),
		zap.String("to", string(next)))
	result.State = next
}
