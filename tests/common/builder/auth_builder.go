//go:build unit || e2e

package builder

import (
	reqdto "car-rental-api/internal/handler/dto/request"
)

type AuthBuilder struct {
	Username string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Username: "taro",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Username: a.Username,
		Password: a.Password,
	}
}
