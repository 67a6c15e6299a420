package repositories

import "errors"

// Repository errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrAlertNotFound     = errors.New("fraud alert not found")
	ErrChamaNotFound     = errors.New("chama not found")
	ErrGoalNotFound      = errors.New("savings goal not found")
	ErrDatabaseOperation = errors.New("database operation failed")
)
