package usecase

import (
	"errors"

	"museum-chat/internal/data/store"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrInvalidID  = errors.New("invalid id")

	ErrConversationNotFound = store.ErrConversationNotFound
)
