package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"tchukudu-service/src/internal/entity"
	"tchukudu-service/src/pkg/kv"
	"tchukudu-service/src/pkg/log"
)

// ErrRideInProgress guards the single-active-ride invariant: a session with a
// bound ride cannot bind another until the first is cleared.
var ErrRideInProgress = errors.New("session: an active ride already exists")

const (
	keyUser            = "user"
	keyUserType        = "userType"
	keyVehicle         = "vehicle"
	keyIsDriverActive  = "isDriverActive"
	keyHasSubscription = "hasSubscription"
	keyActiveRide      = "activeRide"
)

var allKeys = []string{keyUser, keyUserType, keyVehicle, keyIsDriverActive, keyHasSubscription, keyActiveRide}

// State is an immutable snapshot of one session.
type State struct {
	User            *entity.User       `json:"user"`
	UserType        string             `json:"user_type"`
	Vehicle         *entity.Vehicle    `json:"vehicle"`
	IsDriverActive  bool               `json:"is_driver_active"`
	HasSubscription bool               `json:"has_subscription"`
	ActiveRide      *entity.ActiveRide `json:"active_ride"`
}

// Store is the single source of truth for one user's identity and
// operational flags. Every mutation mirrors to the key-value layer
// unconditionally: nil writes delete the key, false flags are written out, so
// observable state always equals persisted state. Mirror failures are logged
// and swallowed; in-memory state stays the effective truth.
type Store struct {
	log    log.Log
	kv     kv.Store
	prefix string

	mu    sync.RWMutex
	state State
}

// NewStore builds the store and performs its one hydration pass over the six
// mirrored keys.
func NewStore(ctx context.Context, kvStore kv.Store, logger log.Log, sessionID string) *Store {
	s := &Store{
		log:    logger,
		kv:     kvStore,
		prefix: fmt.Sprintf("TCHUKUDU:SESSION:%s:", sessionID),
	}
	s.hydrate(ctx)
	return s
}

func (s *Store) key(name string) string {
	return s.prefix + name
}

func (s *Store) hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if raw, err := s.kv.Get(ctx, s.key(keyUser)); err == nil {
		var user entity.User
		if err := json.Unmarshal([]byte(raw), &user); err == nil {
			s.state.User = &user
		} else {
			s.log.Error("session-store", "failed to decode persisted user", "hydrate", err.Error())
		}
	}
	if raw, err := s.kv.Get(ctx, s.key(keyUserType)); err == nil {
		s.state.UserType = raw
	}
	if raw, err := s.kv.Get(ctx, s.key(keyVehicle)); err == nil {
		var vehicle entity.Vehicle
		if err := json.Unmarshal([]byte(raw), &vehicle); err == nil {
			s.state.Vehicle = &vehicle
		} else {
			s.log.Error("session-store", "failed to decode persisted vehicle", "hydrate", err.Error())
		}
	}
	if raw, err := s.kv.Get(ctx, s.key(keyIsDriverActive)); err == nil {
		s.state.IsDriverActive, _ = strconv.ParseBool(raw)
	}
	if raw, err := s.kv.Get(ctx, s.key(keyHasSubscription)); err == nil {
		s.state.HasSubscription, _ = strconv.ParseBool(raw)
	}
	if raw, err := s.kv.Get(ctx, s.key(keyActiveRide)); err == nil {
		var activeRide entity.ActiveRide
		if err := json.Unmarshal([]byte(raw), &activeRide); err == nil {
			s.state.ActiveRide = &activeRide
		} else {
			s.log.Error("session-store", "failed to decode persisted ride", "hydrate", err.Error())
		}
	}
}

// mirror persists one key, deleting it when value is nil.
func (s *Store) mirror(ctx context.Context, name string, value interface{}) {
	if value == nil {
		if err := s.kv.Delete(ctx, s.key(name)); err != nil {
			s.log.Error("session-store", fmt.Sprintf("failed to delete key %s: %v", name, err), "mirror", "")
		}
		return
	}

	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case bool:
		raw = strconv.FormatBool(v)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			s.log.Error("session-store", fmt.Sprintf("failed to encode key %s: %v", name, err), "mirror", "")
			return
		}
		raw = string(encoded)
	}

	if err := s.kv.Set(ctx, s.key(name), raw); err != nil {
		s.log.Error("session-store", fmt.Sprintf("failed to persist key %s: %v", name, err), "mirror", "")
	}
}

func (s *Store) SetUser(ctx context.Context, user *entity.User) {
	s.mu.Lock()
	s.state.User = user
	s.mu.Unlock()
	if user == nil {
		s.mirror(ctx, keyUser, nil)
		return
	}
	s.mirror(ctx, keyUser, user)
}

func (s *Store) SetUserType(ctx context.Context, userType string) {
	s.mu.Lock()
	s.state.UserType = userType
	s.mu.Unlock()
	if userType == "" {
		s.mirror(ctx, keyUserType, nil)
		return
	}
	s.mirror(ctx, keyUserType, userType)
}

func (s *Store) SetVehicle(ctx context.Context, vehicle *entity.Vehicle) {
	s.mu.Lock()
	s.state.Vehicle = vehicle
	s.mu.Unlock()
	if vehicle == nil {
		s.mirror(ctx, keyVehicle, nil)
		return
	}
	s.mirror(ctx, keyVehicle, vehicle)
}

func (s *Store) SetIsDriverActive(ctx context.Context, active bool) {
	s.mu.Lock()
	s.state.IsDriverActive = active
	s.mu.Unlock()
	s.mirror(ctx, keyIsDriverActive, active)
}

func (s *Store) SetHasSubscription(ctx context.Context, has bool) {
	s.mu.Lock()
	s.state.HasSubscription = has
	s.mu.Unlock()
	s.mirror(ctx, keyHasSubscription, has)
}

// SetActiveRide binds, updates, or clears the session's single ride. Binding
// a different ride while one is active fails without mutating anything;
// updates to the same ride id pass through.
func (s *Store) SetActiveRide(ctx context.Context, activeRide *entity.ActiveRide) error {
	s.mu.Lock()
	if activeRide != nil && s.state.ActiveRide != nil && s.state.ActiveRide.RideID != activeRide.RideID {
		s.mu.Unlock()
		return ErrRideInProgress
	}
	s.state.ActiveRide = activeRide
	s.mu.Unlock()

	if activeRide == nil {
		s.mirror(ctx, keyActiveRide, nil)
		return nil
	}
	s.mirror(ctx, keyActiveRide, activeRide)
	return nil
}

// Logout removes all six persisted keys and resets every field to its
// initial value.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.state = State{}
	s.mu.Unlock()

	keys := make([]string, 0, len(allKeys))
	for _, name := range allKeys {
		keys = append(keys, s.key(name))
	}
	if err := s.kv.Delete(ctx, keys...); err != nil {
		s.log.Error("session-store", fmt.Sprintf("failed to clear persisted session: %v", err), "logout", "")
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state := s.state
	if state.User != nil {
		user := *state.User
		state.User = &user
	}
	if state.Vehicle != nil {
		vehicle := *state.Vehicle
		state.Vehicle = &vehicle
	}
	if state.ActiveRide != nil {
		activeRide := *state.ActiveRide
		state.ActiveRide = &activeRide
	}
	return state
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.User != nil
}

// NeedsSetup reports whether the transporter is blocked from going online.
func (s *Store) NeedsSetup() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Vehicle == nil || !s.state.HasSubscription
}
