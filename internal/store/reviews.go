package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/seenhub/seenhub-server/internal/domain"
)

const reviewPrefix = "review:"

var (
	// ErrReviewNotFound is returned when a review does not exist.
	ErrReviewNotFound = errors.New("review not found")
	// ErrReviewExists is returned when creating a review whose ID is taken.
	ErrReviewExists = errors.New("review already exists")
)

// CreateReview stores a new review.
func (s *Store) CreateReview(_ context.Context, review *domain.Review) error {
	key := []byte(reviewPrefix + review.ID)

	exists, err := s.exists(key)
	if err != nil {
		return fmt.Errorf("check review exists: %w", err)
	}
	if exists {
		return ErrReviewExists
	}

	if err := s.set(key, review); err != nil {
		return fmt.Errorf("create review: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("review created", "id", review.ID)
	}
	return nil
}

// GetReview retrieves a review by ID.
func (s *Store) GetReview(_ context.Context, id string) (*domain.Review, error) {
	var review domain.Review
	if err := s.get([]byte(reviewPrefix+id), &review); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	return &review, nil
}

// UpdateReview overwrites an existing review.
func (s *Store) UpdateReview(_ context.Context, review *domain.Review) error {
	key := []byte(reviewPrefix + review.ID)

	exists, err := s.exists(key)
	if err != nil {
		return fmt.Errorf("check review exists: %w", err)
	}
	if !exists {
		return ErrReviewNotFound
	}

	if err := s.set(key, review); err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	return nil
}

// DeleteReview removes a review. Reviews have no lifecycle of their own;
// once the owning entry drops its reference the record is gone for good.
func (s *Store) DeleteReview(_ context.Context, id string) error {
	key := []byte(reviewPrefix + id)

	exists, err := s.exists(key)
	if err != nil {
		return fmt.Errorf("check review exists: %w", err)
	}
	if !exists {
		return ErrReviewNotFound
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("review deleted", "id", id)
	}
	return nil
}
