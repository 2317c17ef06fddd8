package provision

import (
	"context"
	"fmt"
	"testing"

	"github.com/advisory/backend/internal/client"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// recordingClients implements ResourceClients while recording every call
// in order. Errors can be injected per operation.
type recordingClients struct {
	calls     []string
	failOn    map[string]error
	addressID uuid.UUID
	ownerID   uuid.UUID
	groupID   uuid.UUID
	pairID    uuid.UUID

	lastOwnerPayload client.ProductOwnerPayload
	lastPairPayload  client.ClientGroupProductOwnerPayload
}

func newRecordingClients() *recordingClients {
	return &recordingClients{
		failOn:    make(map[string]error),
		addressID: uuid.New(),
		ownerID:   uuid.New(),
		groupID:   uuid.New(),
		pairID:    uuid.New(),
	}
}

func (r *recordingClients) record(op string) error {
	r.calls = append(r.calls, op)
	return r.failOn[op]
}

func (r *recordingClients) CreateAddress(ctx context.Context, payload client.AddressPayload) (*client.Address, error) {
	if err := r.record("createAddress"); err != nil {
		return nil, err
	}
	return &client.Address{ID: r.addressID, Line1: payload.Line1}, nil
}

func (r *recordingClients) DeleteAddress(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.record("deleteAddress " + id.String())
}

func (r *recordingClients) CreateProductOwner(ctx context.Context, payload client.ProductOwnerPayload) (*client.ProductOwner, error) {
	r.lastOwnerPayload = payload
	if err := r.record("createProductOwner"); err != nil {
		return nil, err
	}
	return &client.ProductOwner{ID: r.ownerID, Firstname: payload.Firstname, Surname: payload.Surname, AddressID: payload.AddressID}, nil
}

func (r *recordingClients) DeleteProductOwner(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.record("deleteProductOwner " + id.String())
}

func (r *recordingClients) CreateClientGroup(ctx context.Context, payload client.ClientGroupPayload) (*client.ClientGroup, error) {
	if err := r.record("createClientGroup"); err != nil {
		return nil, err
	}
	return &client.ClientGroup{ID: r.groupID, Name: payload.Name}, nil
}

func (r *recordingClients) DeleteClientGroup(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.record("deleteClientGroup " + id.String())
}

func (r *recordingClients) CreateClientGroupProductOwner(ctx context.Context, payload client.ClientGroupProductOwnerPayload) (*client.ClientGroupProductOwner, error) {
	r.lastPairPayload = payload
	if err := r.record("createClientGroupProductOwner"); err != nil {
		return nil, err
	}
	return &client.ClientGroupProductOwner{ID: r.pairID, ClientGroupID: payload.ClientGroupID, ProductOwnerID: payload.ProductOwnerID}, nil
}

func (r *recordingClients) DeleteClientGroupProductOwner(ctx context.Context, id uuid.UUID) error {
	return r.record("deleteClientGroupProductOwner " + id.String())
}

func fullInput() Input {
	return Input{
		Address:      &client.AddressPayload{Line1: "12 King Street", Line2: "London"},
		ProductOwner: client.ProductOwnerPayload{Firstname: "Margaret", Surname: "Holt"},
		ClientGroup:  client.ClientGroupPayload{Name: "Holt Family"},
	}
}

func newWorkflow(clients ResourceClients) *Workflow {
	return NewWorkflow(clients, zap.NewNop())
}

func TestWorkflow_Run_Success(t *testing.T) {
	clients := newRecordingClients()
	workflow := newWorkflow(clients)

	result, err := workflow.Run(context.Background(), fullInput())

	require.NoError(t, err)
	assert.Equal(t, StateCompleted, result.State)
	assert.Equal(t, []string{
		"createAddress",
		"createProductOwner",
		"createClientGroup",
		"createClientGroupProductOwner",
	}, clients.calls)

	require.NotNil(t, result.Address)
	require.NotNil(t, result.ProductOwner)
	require.NotNil(t, result.ClientGroup)
	require.NotNil(t, result.Junction)

	// the created address must be wired into the product owner
	require.NotNil(t, clients.lastOwnerPayload.AddressID)
	assert.Equal(t, clients.addressID, *clients.lastOwnerPayload.AddressID)

	assert.Equal(t, clients.groupID, clients.lastPairPayload.ClientGroupID)
	assert.Equal(t, clients.ownerID, clients.lastPairPayload.ProductOwnerID)
	assert.Empty(t, result.RollbackErrors)
}

func TestWorkflow_Run_SkipsAddressWhenAbsent(t *testing.T) {
	clients := newRecordingClients()
	workflow := newWorkflow(clients)

	input := fullInput()
	input.Address = nil

	result, err := workflow.Run(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, StateCompleted, result.State)
	assert.Nil(t, result.Address)
	assert.NotContains(t, clients.calls, "createAddress")
	assert.Nil(t, clients.lastOwnerPayload.AddressID)
}

func TestWorkflow_Run_OwnerFails_RollsBackAddress(t *testing.T) {
	clients := newRecordingClients()
	stepErr := &client.Error{Op: "createProductOwner", Kind: client.KindValidation, Status: 422, Detail: "firstname required"}
	clients.failOn["createProductOwner"] = stepErr

	workflow := newWorkflow(clients)
	result, err := workflow.Run(context.Background(), fullInput())

	require.Error(t, err)
	assert.Same(t, stepErr, err.(*client.Error))
	assert.EqualError(t, err, "createProductOwner: firstname required")
	assert.Equal(t, StateFailed, result.State)

	assert.Equal(t, []string{
		"createAddress",
		"createProductOwner",
		"deleteAddress " + clients.addressID.String(),
	}, clients.calls)
	assert.Empty(t, result.RollbackErrors)
}

func TestWorkflow_Run_GroupFails_RollsBackInReverseOrder(t *testing.T) {
	clients := newRecordingClients()
	clients.failOn["createClientGroup"] = fmt.Errorf("createClientGroup: boom")

	workflow := newWorkflow(clients)
	result, err := workflow.Run(context.Background(), fullInput())

	require.Error(t, err)
	assert.Equal(t, StateFailed, result.State)
	assert.Equal(t, []string{
		"createAddress",
		"createProductOwner",
		"createClientGroup",
		"deleteProductOwner " + clients.ownerID.String(),
		"deleteAddress " + clients.addressID.String(),
	}, clients.calls)
}

func TestWorkflow_Run_JunctionFails_RollsBackEverything(t *testing.T) {
	clients := newRecordingClients()
	stepErr := &client.Error{Op: "createClientGroupProductOwner", Kind: client.KindServer, Status: 500, Detail: "Internal server error"}
	clients.failOn["createClientGroupProductOwner"] = stepErr

	workflow := newWorkflow(clients)
	result, err := workflow.Run(context.Background(), fullInput())

	require.Error(t, err)
	assert.EqualError(t, err, "createClientGroupProductOwner: Internal server error")
	assert.Equal(t, StateFailed, result.State)
	assert.Equal(t, []string{
		"createAddress",
		"createProductOwner",
		"createClientGroup",
		"createClientGroupProductOwner",
		"deleteClientGroup " + clients.groupID.String(),
		"deleteProductOwner " + clients.ownerID.String(),
		"deleteAddress " + clients.addressID.String(),
	}, clients.calls)
}

func TestWorkflow_Run_RollbackIsBestEffort(t *testing.T) {
	clients := newRecordingClients()
	stepErr := fmt.Errorf("createClientGroupProductOwner: boom")
	clients.failOn["createClientGroupProductOwner"] = stepErr
	deleteErr := &client.Error{Op: "deleteClientGroup", Kind: client.KindNetwork, Detail: "connection refused"}
	clients.failOn["deleteClientGroup "+clients.groupID.String()] = deleteErr

	workflow := newWorkflow(clients)
	result, err := workflow.Run(context.Background(), fullInput())

	// the step error wins, rollback failures are reported separately
	require.Error(t, err)
	assert.Same(t, stepErr, err)
	require.Len(t, result.RollbackErrors, 1)
	assert.Same(t, deleteErr, result.RollbackErrors[0].(*client.Error))

	// the remaining deletes still ran after the failed one
	assert.Contains(t, clients.calls, "deleteProductOwner "+clients.ownerID.String())
	assert.Contains(t, clients.calls, "deleteAddress "+clients.addressID.String())
}

func TestWorkflow_Run_SkippedAddressNotRolledBack(t *testing.T) {
	clients := newRecordingClients()
	clients.failOn["createClientGroup"] = fmt.Errorf("createClientGroup: boom")

	workflow := newWorkflow(clients)
	input := fullInput()
	input.Address = nil

	result, err := workflow.Run(context.Background(), input)

	require.Error(t, err)
	assert.Equal(t, StateFailed, result.State)
	assert.Equal(t, []string{
		"createProductOwner",
		"createClientGroup",
		"deleteProductOwner " + clients.ownerID.String(),
	}, clients.calls)
}

func TestWorkflow_Run_RollbackSurvivesCancelledContext(t *testing.T) {
	clients := newRecordingClients()
	ctx, cancel := context.WithCancel(context.Background())

	// cancel the caller's context as soon as the group step is reached,
	// then fail that step; the rollback deletes must still run
	blocking := &cancellingClients{recordingClients: clients, cancel: cancel}

	workflow := newWorkflow(blocking)
	result, err := workflow.Run(ctx, fullInput())

	require.Error(t, err)
	assert.Equal(t, StateFailed, result.State)
	assert.Contains(t, clients.calls, "deleteProductOwner "+clients.ownerID.String())
	assert.Contains(t, clients.calls, "deleteAddress "+clients.addressID.String())
	assert.Empty(t, result.RollbackErrors)
}

// cancellingClients cancels the run's context when the client group step
// is reached and fails that step with the context error
type cancellingClients struct {
	*recordingClients
	cancel context.CancelFunc
}

func (c *cancellingClients) CreateClientGroup(ctx context.Context, payload client.ClientGroupPayload) (*client.ClientGroup, error) {
	c.cancel()
	c.calls = append(c.calls, "createClientGroup")
	return nil, ctx.Err()
}
