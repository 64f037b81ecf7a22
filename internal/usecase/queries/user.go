package queries

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user_mock.go -package=queriesmock

import (
	"context"

	"github.com/google/uuid"
)

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserProfileView, error)
	FindByUsername(ctx context.Context, username string) (*AuthUserView, error)
}
