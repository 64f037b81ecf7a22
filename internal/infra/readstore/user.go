package readstore

import (
	"context"

	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/db"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	findUserByIDSQL = `SELECT id, username, email, address FROM users WHERE id = $1`

	findUserByUsernameSQL = `SELECT id, username, password_hash FROM users WHERE username = $1`
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserProfileView, error) {
	view := &queries.UserProfileView{}
	err := r.db.QueryRow(ctx, findUserByIDSQL, id).Scan(&view.ID, &view.Username, &view.Email, &view.Address)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return view, nil
}

func (r *UserReadStore) FindByUsername(ctx context.Context, username string) (*queries.AuthUserView, error) {
	view := &queries.AuthUserView{}
	err := r.db.QueryRow(ctx, findUserByUsernameSQL, username).Scan(&view.ID, &view.Username, &view.PasswordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by username", err)
	}
	return view, nil
}
