//go:build unit || e2e

package builder

import (
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

// TestPasswordHash is bcrypt("password123").
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

type UserBuilder struct {
	ID           uuid.UUID
	Username     string
	Email        string
	Address      string
	PasswordHash string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Username:     "taro",
		Email:        "taro@example.com",
		Address:      "1-1 Chiyoda, Tokyo",
		PasswordHash: TestPasswordHash,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildProfile() *queries.UserProfileView {
	return &queries.UserProfileView{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Address:  u.Address,
	}
}

func (u *UserBuilder) BuildAuthView() *queries.AuthUserView {
	return &queries.AuthUserView{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
	}
}

func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}
