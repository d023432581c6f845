// Package auth owns the user roster and the login session. Credentials are
// compared as opaque strings: this is the prototype auth scheme the product
// ships with, not a credential system.
package auth

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/archemics/salessnap/internal/kv"
	"github.com/archemics/salessnap/internal/models"
)

const (
	usersKey = "salessnap:users"
	// Session identity is stored separately from the roster so clearing one
	// never touches the other.
	sessionKey = "salessnap:currentUser"
)

// ErrInvalidCredentials is returned for every login failure: wrong password,
// unknown username and deactivated account are indistinguishable on purpose.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Store holds the in-memory roster backed by the durable key-value substrate.
type Store struct {
	mu      sync.RWMutex
	kv      kv.Store
	users   []models.User
	current string // logged-in user id, empty when logged out
}

// NewStore loads the roster and any persisted session. An empty substrate
// gets the built-in trio so a fresh install can log in.
func NewStore(db kv.Store) *Store {
	s := &Store{kv: db}
	if raw, ok, err := db.Get(usersKey); err != nil {
		logrus.WithError(err).Warn("auth: loading user roster")
	} else if ok {
		if err := json.Unmarshal(raw, &s.users); err != nil {
			logrus.WithError(err).Warn("auth: decoding user roster")
		}
	}
	if len(s.users) == 0 {
		s.users = defaultUsers()
		s.persistUsers()
	}
	if raw, ok, err := db.Get(sessionKey); err == nil && ok {
		s.current = string(raw)
	}
	return s
}

func defaultUsers() []models.User {
	return []models.User{
		{ID: "1", Username: "admin", Password: "admin123", Role: models.RoleAdmin, FullName: "Admin User", Active: true},
		{ID: "2", Username: "sales1", Password: "sales123", Role: models.RoleSales, FullName: "John Sales", Active: true},
		{ID: "3", Username: "manager1", Password: "manager123", Role: models.RoleManager, FullName: "Jane Manager", Active: true},
	}
}

// Login matches username, password and active together; any mismatch fails
// with the same error.
func (s *Store) Login(username, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username && u.Password == password && u.Active {
			s.current = u.ID
			s.persistSession()
			return u, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = ""
	if err := s.kv.Delete(sessionKey); err != nil {
		logrus.WithError(err).Warn("auth: clearing session")
	}
}

// Current returns the logged-in user, if any.
func (s *Store) Current() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findLocked(s.current)
}

func (s *Store) IsAdmin() bool   { return s.currentRole() == models.RoleAdmin }
func (s *Store) IsManager() bool { return s.currentRole() == models.RoleManager }
func (s *Store) IsSales() bool   { return s.currentRole() == models.RoleSales }

func (s *Store) currentRole() models.Role {
	u, ok := s.Current()
	if !ok {
		return ""
	}
	return u.Role
}

// ByID resolves a user id; used by the session middleware and by readers
// labelling who created a quotation.
func (s *Store) ByID(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findLocked(id)
}

func (s *Store) findLocked(id string) (models.User, bool) {
	if id == "" {
		return models.User{}, false
	}
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// Users returns a copy of the roster.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// UserInput is the validated payload for creating a user.
type UserInput struct {
	Username string
	Password string
	Role     models.Role
	FullName string
	Active   bool
}

// AddUser appends a user with a fresh id. Username uniqueness is the one
// roster invariant enforced here.
func (s *Store) AddUser(in UserInput) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == in.Username {
			return models.User{}, errors.New("username already taken")
		}
	}
	u := models.User{
		ID:       uuid.NewString(),
		Username: in.Username,
		Password: in.Password,
		Role:     in.Role,
		FullName: in.FullName,
		Active:   in.Active,
	}
	s.users = append(s.users, u)
	s.persistUsers()
	return u, nil
}

// UserUpdate lists the mutable user fields; nil means leave unchanged.
type UserUpdate struct {
	Username *string
	Role     *models.Role
	FullName *string
	Active   *bool
}

func (s *Store) UpdateUser(id string, upd UserUpdate) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		if upd.Username != nil {
			s.users[i].Username = *upd.Username
		}
		if upd.Role != nil {
			s.users[i].Role = *upd.Role
		}
		if upd.FullName != nil {
			s.users[i].FullName = *upd.FullName
		}
		if upd.Active != nil {
			s.users[i].Active = *upd.Active
		}
		s.persistUsers()
		return s.users[i], true
	}
	return models.User{}, false
}

// ToggleActive flips the login eligibility gate.
func (s *Store) ToggleActive(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Active = !s.users[i].Active
			s.persistUsers()
			return s.users[i], true
		}
	}
	return models.User{}, false
}

func (s *Store) ChangePassword(id, newPassword string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Password = newPassword
			s.persistUsers()
			return true
		}
	}
	return false
}

// persist is best-effort: a write failure degrades durability, never the
// in-memory mutation that already happened.
func (s *Store) persistUsers() {
	raw, err := json.Marshal(s.users)
	if err != nil {
		logrus.WithError(err).Warn("auth: encoding user roster")
		return
	}
	if err := s.kv.Put(usersKey, raw); err != nil {
		logrus.WithError(err).Warn("auth: persisting user roster")
	}
}

func (s *Store) persistSession() {
	if err := s.kv.Put(sessionKey, []byte(s.current)); err != nil {
		logrus.WithError(err).Warn("auth: persisting session")
	}
}
