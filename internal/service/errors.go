package service

import "errors"

// Сервисы возвращают эти ошибки (напрямую или обёрнутыми через %w),
// API-слой переводит их в HTTP-статусы
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	ErrInvalid   = errors.New("invalid request")
)
