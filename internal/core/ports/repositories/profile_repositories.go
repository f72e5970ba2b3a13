package repositories

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// ProfileReader defines read operations for user profiles
type ProfileReader interface {
	ListProfiles(ctx context.Context) ([]domain.Profile, error)
}
