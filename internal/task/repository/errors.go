package repository

import "errors"

var (
	ErrNotFound = errors.New("task record not found")
)
