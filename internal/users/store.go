package users

import (
	"sync"
)

// Store is the set of operations handlers need over user records.
type Store interface {
	List() []User
	FindByID(id int) (User, error)
	Create(name string) (User, error)
	Update(id int, name string) (User, error)
	Delete(id int) (User, error)
}

// MemoryStore is a thread-safe, in-memory Store that keeps records in
// insertion order. All public methods are safe for concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	users  []User
	nextID int
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a store holding a copy of seed. Ids handed out by
// Create start after the largest seed id and are never reused.
func NewMemoryStore(seed []User) *MemoryStore {
	s := &MemoryStore{
		users:  make([]User, 0, len(seed)),
		nextID: 1,
	}
	for _, u := range seed {
		s.users = append(s.users, u)
		if u.ID >= s.nextID {
			s.nextID = u.ID + 1
		}
	}
	return s
}

// List returns a copy of all users in insertion order.
func (s *MemoryStore) List() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]User, len(s.users))
	copy(out, s.users)
	return out
}

// FindByID returns the user with the given id, or ErrNotFound.
func (s *MemoryStore) FindByID(id int) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return User{}, ErrNotFound
	}
	return s.users[i], nil
}

// Create validates name, assigns the next id and appends the new user.
func (s *MemoryStore) Create(name string) (User, error) {
	name, err := Validate(name)
	if err != nil {
		return User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u := User{ID: s.nextID, Nombre: name}
	s.nextID++
	s.users = append(s.users, u)
	return u, nil
}

// Update replaces the name of an existing user. A missing id wins over an
// invalid name.
func (s *MemoryStore) Update(id int, name string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return User{}, ErrNotFound
	}
	name, err := Validate(name)
	if err != nil {
		return User{}, err
	}
	s.users[i].Nombre = name
	return s.users[i], nil
}

// Delete removes a user and returns the removed record.
func (s *MemoryStore) Delete(id int) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return User{}, ErrNotFound
	}
	u := s.users[i]
	s.users = append(s.users[:i], s.users[i+1:]...)
	return u, nil
}

// indexOf does a linear scan. Callers must hold mu.
func (s *MemoryStore) indexOf(id int) int {
	for i, u := range s.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}
