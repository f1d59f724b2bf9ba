package service

import (
	"context"
	"fmt"

	"github.com/medicall/medicall/internal/model"
	"github.com/medicall/medicall/internal/repository"
	"go.uber.org/zap"
)

type ReviewService struct {
	reviewRepo *repository.ReviewRepository
	shiftRepo  *repository.ShiftRepository
	logger     *zap.Logger
}

func NewReviewService(
	reviewRepo *repository.ReviewRepository,
	shiftRepo *repository.ShiftRepository,
	logger *zap.Logger,
) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		shiftRepo:  shiftRepo,
		logger:     logger,
	}
}

// CreateReview создаёт отзыв по итогам смены
func (s *ReviewService) CreateReview(ctx context.Context, review *model.ShiftReview) error {
	if review.Rating < 1 || review.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalid)
	}

	shift, err := s.shiftRepo.GetByID(ctx, review.ShiftID)
	if err != nil {
		return err
	}
	if shift == nil {
		return ErrNotFound
	}

	exists, err := s.reviewRepo.Exists(ctx, review.ShiftID, review.ReviewerID, review.ReviewedUserID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: you have already reviewed this user for this shift", ErrInvalid)
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return err
	}

	s.logger.Info("Review created",
		zap.Int64("shift_id", review.ShiftID),
		zap.Int64("reviewer_id", review.ReviewerID),
		zap.Int("rating", review.Rating),
	)

	return nil
}

// ByReviewer получает отзывы, оставленные пользователем
func (s *ReviewService) ByReviewer(ctx context.Context, reviewerID int64) ([]*model.ShiftReview, error) {
	return s.reviewRepo.GetByReviewerID(ctx, reviewerID)
}

// ForUser получает отзывы, полученные пользователем
func (s *ReviewService) ForUser(ctx context.Context, userID int64) ([]*model.ShiftReview, error) {
	return s.reviewRepo.GetForUser(ctx, userID)
}
