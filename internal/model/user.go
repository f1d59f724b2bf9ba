package model

import "time"

type UserType string

const (
	UserTypeHospital UserType = "hospital"
	UserTypeWorker   UserType = "worker"
)

type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	UserType  UserType  `json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
}
