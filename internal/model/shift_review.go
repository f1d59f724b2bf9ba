package model

import "time"

type ShiftReview struct {
	ID             int64     `json:"id"`
	ShiftID        int64     `json:"shift_id"`
	ReviewerID     int64     `json:"reviewer_id"`
	ReviewedUserID int64     `json:"reviewed_user_id"`
	Rating         int       `json:"rating"` // 1..5
	Comment        string    `json:"comment"`
	CreatedAt      time.Time `json:"created_at"`
}
