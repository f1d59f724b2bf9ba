package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/medicall/medicall/internal/model"
)

type ReviewRepository struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

// Create создаёт новый отзыв
func (r *ReviewRepository) Create(ctx context.Context, review *model.ShiftReview) error {
	query := `
		INSERT INTO shift_reviews (shift_id, reviewer_id, reviewed_user_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		review.ShiftID,
		review.ReviewerID,
		review.ReviewedUserID,
		review.Rating,
		review.Comment,
	).Scan(&review.ID, &review.CreatedAt)

	if err != nil {
		return fmt.Errorf("create review: %w", err)
	}

	return nil
}

// Exists проверяет оставлял ли пользователь отзыв по этой смене
func (r *ReviewRepository) Exists(ctx context.Context, shiftID, reviewerID, reviewedUserID int64) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM shift_reviews
			WHERE shift_id = $1 AND reviewer_id = $2 AND reviewed_user_id = $3
		)
	`

	var exists bool
	err := r.pool.QueryRow(ctx, query, shiftID, reviewerID, reviewedUserID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check review exists: %w", err)
	}

	return exists, nil
}

// GetByReviewerID получает отзывы, оставленные пользователем
func (r *ReviewRepository) GetByReviewerID(ctx context.Context, reviewerID int64) ([]*model.ShiftReview, error) {
	query := `
		SELECT id, shift_id, reviewer_id, reviewed_user_id, rating, comment, created_at
		FROM shift_reviews
		WHERE reviewer_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, reviewerID)
	if err != nil {
		return nil, fmt.Errorf("get reviews by reviewer: %w", err)
	}
	defer rows.Close()

	var reviews []*model.ShiftReview
	for rows.Next() {
		var review model.ShiftReview
		err := rows.Scan(
			&review.ID,
			&review.ShiftID,
			&review.ReviewerID,
			&review.ReviewedUserID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, rows.Err()
}

// GetForUser получает отзывы, полученные пользователем
func (r *ReviewRepository) GetForUser(ctx context.Context, reviewedUserID int64) ([]*model.ShiftReview, error) {
	query := `
		SELECT id, shift_id, reviewer_id, reviewed_user_id, rating, comment, created_at
		FROM shift_reviews
		WHERE reviewed_user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, reviewedUserID)
	if err != nil {
		return nil, fmt.Errorf("get reviews for user: %w", err)
	}
	defer rows.Close()

	var reviews []*model.ShiftReview
	for rows.Next() {
		var review model.ShiftReview
		err := rows.Scan(
			&review.ID,
			&review.ShiftID,
			&review.ReviewerID,
			&review.ReviewedUserID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, rows.Err()
}
