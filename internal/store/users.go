package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/seenhub/seenhub-server/internal/domain"
)

const (
	userPrefix        = "user:"
	userByLoginPrefix = "idx:user:login:"
)

var (
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned when the login name is already taken.
	ErrUserExists = errors.New("user already exists")
)

// normalizeLogin lowercases a login name so lookups are case-insensitive.
func normalizeLogin(login string) string {
	return strings.ToLower(strings.TrimSpace(login))
}

// CreateUser stores a new user and the login-name index atomically.
// Login names are unique case-insensitively.
func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	loginKey := []byte(userByLoginPrefix + normalizeLogin(user.LoginName))

	taken, err := s.exists(loginKey)
	if err != nil {
		return fmt.Errorf("check login taken: %w", err)
	}
	if taken {
		return ErrUserExists
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		data, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("marshal user: %w", err)
		}

		if err := txn.Set([]byte(userPrefix+user.ID), data); err != nil {
			return err
		}
		return txn.Set(loginKey, []byte(user.ID))
	})
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("user created", "id", user.ID, "login_name", user.LoginName)
	}
	return nil
}

// GetUser retrieves a user by ID.
func (s *Store) GetUser(_ context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := s.get([]byte(userPrefix+id), &user); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

// GetUserByLogin retrieves a user by login name, case-insensitively.
func (s *Store) GetUserByLogin(ctx context.Context, login string) (*domain.User, error) {
	loginKey := []byte(userByLoginPrefix + normalizeLogin(login))

	var userID string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(loginKey)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			userID = string(val)
			return nil
		})
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by login: %w", err)
	}

	return s.GetUser(ctx, userID)
}

// UpdateUser overwrites an existing user. Login names are immutable, so the
// login index never needs rewriting.
func (s *Store) UpdateUser(_ context.Context, user *domain.User) error {
	key := []byte(userPrefix + user.ID)

	exists, err := s.exists(key)
	if err != nil {
		return fmt.Errorf("check user exists: %w", err)
	}
	if !exists {
		return ErrUserNotFound
	}

	if err := s.set(key, user); err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("user updated", "id", user.ID)
	}
	return nil
}

// SoftDeleteUser marks a user as deleted. The login-name index is kept so
// the name cannot be re-registered. Deleting an already deleted user is a
// no-op.
func (s *Store) SoftDeleteUser(ctx context.Context, id string) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if user.Deleted {
		return nil
	}

	user.Deleted = true
	if err := s.set([]byte(userPrefix+id), user); err != nil {
		return fmt.Errorf("soft delete user: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("user deleted", "id", id)
	}
	return nil
}

// CountUsers returns the number of stored users, including deleted ones.
func (s *Store) CountUsers(_ context.Context) (int, error) {
	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(userPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}
