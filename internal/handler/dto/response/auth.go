package response

import "github.com/google/uuid"

type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	ExpiresIn   int64       `json:"expires_in"`
	User        UserSummary `json:"user"`
}

type VerifyTokenResponse struct {
	Valid bool        `json:"valid"`
	User  UserSummary `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
