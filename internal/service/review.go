package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/seenhub/seenhub-server/internal/domain"
	domainerrors "github.com/seenhub/seenhub-server/internal/errors"
	"github.com/seenhub/seenhub-server/internal/id"
	"github.com/seenhub/seenhub-server/internal/store"
)

// ReviewService manages free-form review comments. Reviews are linked to
// catalog entries by the entry's commentId field, which the client sets
// after creating the review.
type ReviewService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(store *store.Store, logger *slog.Logger) *ReviewService {
	return &ReviewService{store: store, logger: logger}
}

// CreateReviewRequest contains the review text.
type CreateReviewRequest struct {
	Comment string `json:"comment" validate:"required,max=4096"`
}

// Create stores a new review with a server-assigned ID.
func (s *ReviewService) Create(ctx context.Context, req CreateReviewRequest) (*domain.Review, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	reviewID, err := id.Generate("review")
	if err != nil {
		return nil, fmt.Errorf("generate review ID: %w", err)
	}

	review := &domain.Review{
		ID:      reviewID,
		Comment: req.Comment,
	}
	if err := s.store.CreateReview(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

// Get returns a review by ID.
func (s *ReviewService) Get(ctx context.Context, reviewID string) (*domain.Review, error) {
	if !id.Valid("review", reviewID) {
		return nil, domainerrors.Validation(invalidIDMessage)
	}

	review, err := s.store.GetReview(ctx, reviewID)
	if err != nil {
		if errors.Is(err, store.ErrReviewNotFound) {
			return nil, domainerrors.NotFound("review not found")
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	return review, nil
}

// Update replaces the review text.
func (s *ReviewService) Update(ctx context.Context, reviewID string, req CreateReviewRequest) (*domain.Review, error) {
	if !id.Valid("review", reviewID) {
		return nil, domainerrors.Validation(invalidIDMessage)
	}
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	review := &domain.Review{ID: reviewID, Comment: req.Comment}
	if err := s.store.UpdateReview(ctx, review); err != nil {
		if errors.Is(err, store.ErrReviewNotFound) {
			return nil, domainerrors.NotFound("review not found")
		}
		return nil, fmt.Errorf("update review: %w", err)
	}
	return review, nil
}

// Delete removes a review.
func (s *ReviewService) Delete(ctx context.Context, reviewID string) error {
	if !id.Valid("review", reviewID) {
		return domainerrors.Validation(invalidIDMessage)
	}

	if err := s.store.DeleteReview(ctx, reviewID); err != nil {
		if errors.Is(err, store.ErrReviewNotFound) {
			return domainerrors.NotFound("review not found")
		}
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}
