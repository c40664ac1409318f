package session

import (
	"context"
	"testing"
	"time"

	"tchukudu-service/src/internal/entity"
	"tchukudu-service/src/pkg/kv"
	"tchukudu-service/src/pkg/log"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() log.Log {
	return log.Log{AppName: "test", LogLevel: 2, Logger: logrus.New()}
}

func testUser() *entity.User {
	return &entity.User{
		UserID:    "client-1",
		Phone:     "+243 812 345 678",
		FullName:  "Marie Kabongo",
		Type:      entity.UserTypeClient,
		CreatedAt: time.Now(),
	}
}

func TestEveryMutationIsMirrored(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemoryStore()
	store := NewStore(ctx, mem, testLogger(), "client-1")

	store.SetUser(ctx, testUser())
	store.SetUserType(ctx, entity.UserTypeClient)
	store.SetIsDriverActive(ctx, false)
	store.SetHasSubscription(ctx, false)

	// false flags are written out, not skipped
	raw, err := mem.Get(ctx, "TCHUKUDU:SESSION:client-1:isDriverActive")
	require.NoError(t, err)
	assert.Equal(t, "false", raw)

	raw, err = mem.Get(ctx, "TCHUKUDU:SESSION:client-1:hasSubscription")
	require.NoError(t, err)
	assert.Equal(t, "false", raw)

	raw, err = mem.Get(ctx, "TCHUKUDU:SESSION:client-1:userType")
	require.NoError(t, err)
	assert.Equal(t, entity.UserTypeClient, raw)
}

func TestNilWritesDeleteTheKey(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemoryStore()
	store := NewStore(ctx, mem, testLogger(), "client-1")

	store.SetUser(ctx, testUser())
	_, err := mem.Get(ctx, "TCHUKUDU:SESSION:client-1:user")
	require.NoError(t, err)

	store.SetUser(ctx, nil)
	_, err = mem.Get(ctx, "TCHUKUDU:SESSION:client-1:user")
	assert.ErrorIs(t, err, kv.ErrNotFound)
	assert.False(t, store.IsAuthenticated())
}

func TestHydrationRestoresState(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemoryStore()

	first := NewStore(ctx, mem, testLogger(), "transporter-1")
	first.SetUser(ctx, &entity.User{UserID: "transporter-1", FullName: "Jean Dupont", Type: entity.UserTypeTransporter})
	first.SetUserType(ctx, entity.UserTypeTransporter)
	first.SetVehicle(ctx, &entity.Vehicle{VehicleID: "vehicle-1", TransporterID: "transporter-1", Type: "motorcycle"})
	first.SetHasSubscription(ctx, true)
	require.NoError(t, first.SetActiveRide(ctx, &entity.ActiveRide{RideID: "ride-1", Status: "accepted", StartedAt: time.Now()}))

	// a fresh store over the same keys sees the same session
	second := NewStore(ctx, mem, testLogger(), "transporter-1")
	state := second.Snapshot()
	require.NotNil(t, state.User)
	assert.Equal(t, "Jean Dupont", state.User.FullName)
	assert.Equal(t, entity.UserTypeTransporter, state.UserType)
	require.NotNil(t, state.Vehicle)
	assert.True(t, state.HasSubscription)
	require.NotNil(t, state.ActiveRide)
	assert.Equal(t, "ride-1", state.ActiveRide.RideID)
	assert.False(t, second.NeedsSetup())
}

func TestSingleActiveRide(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, kv.NewMemoryStore(), testLogger(), "client-1")

	first := &entity.ActiveRide{RideID: "ride-1", Status: "searching", StartedAt: time.Now()}
	require.NoError(t, store.SetActiveRide(ctx, first))

	// binding a different ride fails without mutating anything
	err := store.SetActiveRide(ctx, &entity.ActiveRide{RideID: "ride-2"})
	assert.ErrorIs(t, err, ErrRideInProgress)
	assert.Equal(t, "ride-1", store.Snapshot().ActiveRide.RideID)

	// updating the same ride passes through
	update := *first
	update.Status = "accepted"
	require.NoError(t, store.SetActiveRide(ctx, &update))
	assert.Equal(t, "accepted", store.Snapshot().ActiveRide.Status)

	// clearing releases the slot for a new binding
	require.NoError(t, store.SetActiveRide(ctx, nil))
	require.NoError(t, store.SetActiveRide(ctx, &entity.ActiveRide{RideID: "ride-2"}))
}

func TestLogoutClearsEverything(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemoryStore()
	store := NewStore(ctx, mem, testLogger(), "transporter-1")

	store.SetUser(ctx, testUser())
	store.SetUserType(ctx, entity.UserTypeTransporter)
	store.SetVehicle(ctx, &entity.Vehicle{VehicleID: "vehicle-1"})
	store.SetIsDriverActive(ctx, true)
	store.SetHasSubscription(ctx, true)
	require.NoError(t, store.SetActiveRide(ctx, &entity.ActiveRide{RideID: "ride-1"}))

	store.Logout(ctx)

	state := store.Snapshot()
	assert.Nil(t, state.User)
	assert.Empty(t, state.UserType)
	assert.Nil(t, state.Vehicle)
	assert.False(t, state.IsDriverActive)
	assert.False(t, state.HasSubscription)
	assert.Nil(t, state.ActiveRide)
	assert.Equal(t, 0, mem.Len())
}

func TestSnapshotIsImmutable(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, kv.NewMemoryStore(), testLogger(), "client-1")
	store.SetUser(ctx, testUser())

	snapshot := store.Snapshot()
	snapshot.User.FullName = "Someone Else"

	assert.Equal(t, "Marie Kabongo", store.Snapshot().User.FullName)
}

func TestNeedsSetup(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, kv.NewMemoryStore(), testLogger(), "transporter-1")

	assert.True(t, store.NeedsSetup())

	store.SetVehicle(ctx, &entity.Vehicle{VehicleID: "vehicle-1"})
	assert.True(t, store.NeedsSetup(), "subscription still missing")

	store.SetHasSubscription(ctx, true)
	assert.False(t, store.NeedsSetup())
}

func TestManagerCachesStores(t *testing.T) {
	ctx := context.Background()
	manager := NewManager(kv.NewMemoryStore(), testLogger())

	a := manager.Session(ctx, "client-1")
	b := manager.Session(ctx, "client-1")
	assert.Same(t, a, b)

	manager.Drop("client-1")
	c := manager.Session(ctx, "client-1")
	assert.NotSame(t, a, c)
}
