//go:generate go run go.uber.org/mock/mockgen -source=registry.go -destination=../mocks/mock_registry.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"relay-desk/domain/relay"
	"relay-desk/errors"
	"relay-desk/storage"

	"github.com/google/uuid"
)

type IRegistry interface {
	UpsertUser(id int64, displayName, handle string) (relay.User, bool, error)
	GetUser(id int64) (relay.User, error)
	AppendMessage(id int64, text string, fromOperator bool) (relay.Message, error)
	ListActiveUsers() []relay.User
	SetActive(id int64, active bool) error
}

// Registry is the single source of truth for users and their timelines.
// All state lives in memory; every mutation rewrites the whole snapshot under
// the write lock. Keeping the full registry in one document is a conscious
// scalability ceiling, matching the one-file persistence contract.
type Registry struct {
	mu    sync.RWMutex
	users map[int64]*relay.User
	order []int64
	store *storage.SnapshotStore
	log   *slog.Logger
}

// NewRegistry loads the persisted snapshot. Corrupt or missing snapshots are
// tolerated by the store and surface here as an empty registry.
func NewRegistry(store *storage.SnapshotStore, log *slog.Logger) *Registry {
	doc := store.Load()
	r := &Registry{
		users: make(map[int64]*relay.User, len(doc.Users)),
		store: store,
		log:   log,
	}
	for id, du := range doc.Users {
		user := fromDiskUser(du)
		r.users[id] = &user
		r.order = append(r.order, id)
	}
	// Creation order, reconstructed: JSON objects carry no ordering.
	sort.Slice(r.order, func(i, j int) bool {
		a, b := r.users[r.order[i]], r.users[r.order[j]]
		if !a.JoinedAt.Equal(b.JoinedAt) {
			return a.JoinedAt.Before(b.JoinedAt)
		}
		return a.ID < b.ID
	})
	log.Info("Registry loaded", "users", len(r.users))
	return r
}

// UpsertUser creates the record on first contact. Calling it again for a
// known id returns the existing record untouched and performs no durable
// write. The created flag reports which path was taken.
func (r *Registry) UpsertUser(id int64, displayName, handle string) (relay.User, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.users[id]; ok {
		return cloneUser(existing), false, nil
	}

	user := &relay.User{
		ID:          id,
		DisplayName: displayName,
		Handle:      handle,
		JoinedAt:    time.Now().UTC(),
		Active:      true,
	}
	r.users[id] = user
	r.order = append(r.order, id)

	if err := r.snapshotLocked(); err != nil {
		return relay.User{}, false, fmt.Errorf("persist new user %d: %w", id, err)
	}
	return cloneUser(user), true, nil
}

func (r *Registry) GetUser(id int64) (relay.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return relay.User{}, errors.ErrUserNotFound
	}
	return cloneUser(user), nil
}

// AppendMessage appends to the target user's timeline with the current time.
// The caller is responsible for upserting first.
func (r *Registry) AppendMessage(id int64, text string, fromOperator bool) (relay.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return relay.Message{}, errors.ErrUserNotFound
	}

	message := relay.Message{
		ID:           uuid.New(),
		Text:         text,
		At:           time.Now().UTC(),
		FromOperator: fromOperator,
	}
	user.Messages = append(user.Messages, message)

	if err := r.snapshotLocked(); err != nil {
		return relay.Message{}, fmt.Errorf("persist message for user %d: %w", id, err)
	}
	return message, nil
}

// ListActiveUsers returns active records in creation order.
func (r *Registry) ListActiveUsers() []relay.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var users []relay.User
	for _, id := range r.order {
		if user := r.users[id]; user.Active {
			users = append(users, cloneUser(user))
		}
	}
	return users
}

// SetActive toggles the block state. Setting the current value still succeeds
// and still persists.
func (r *Registry) SetActive(id int64, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return errors.ErrUserNotFound
	}
	user.Active = active

	if err := r.snapshotLocked(); err != nil {
		return fmt.Errorf("persist active state for user %d: %w", id, err)
	}
	return nil
}

// snapshotLocked serializes the whole registry. Caller holds the write lock.
func (r *Registry) snapshotLocked() error {
	doc := storage.EmptyDocument()
	for id, user := range r.users {
		doc.Users[id] = toDiskUser(user)
	}
	return r.store.Save(doc)
}

// cloneUser detaches the returned record from registry-internal state so
// callers can never alias the live timeline slice.
func cloneUser(user *relay.User) relay.User {
	clone := *user
	clone.Messages = make([]relay.Message, len(user.Messages))
	copy(clone.Messages, user.Messages)
	return clone
}

func toDiskUser(user *relay.User) storage.DiskUser {
	messages := make([]storage.DiskMessage, 0, len(user.Messages))
	for _, m := range user.Messages {
		messages = append(messages, storage.DiskMessage{
			ID:           m.ID.String(),
			Text:         m.Text,
			At:           m.At,
			FromOperator: m.FromOperator,
		})
	}
	return storage.DiskUser{
		ID:          user.ID,
		Handle:      user.Handle,
		DisplayName: user.DisplayName,
		JoinedAt:    user.JoinedAt,
		Messages:    messages,
		Active:      user.Active,
	}
}

func fromDiskUser(du storage.DiskUser) relay.User {
	messages := make([]relay.Message, 0, len(du.Messages))
	for _, m := range du.Messages {
		// A snapshot that survived the malformed-file check can still carry an
		// odd message id; uuid.Nil is good enough, the text is what matters.
		parsed, _ := uuid.Parse(m.ID)
		messages = append(messages, relay.Message{
			ID:           parsed,
			Text:         m.Text,
			At:           m.At,
			FromOperator: m.FromOperator,
		})
	}
	return relay.User{
		ID:          du.ID,
		Handle:      du.Handle,
		DisplayName: du.DisplayName,
		JoinedAt:    du.JoinedAt,
		Messages:    messages,
		Active:      du.Active,
	}
}
