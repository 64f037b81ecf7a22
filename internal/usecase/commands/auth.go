package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock

import (
	"context"

	"car-rental-api/internal/domain/user"
	reqdto "car-rental-api/internal/handler/dto/request"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/pkg/jwt"
	"car-rental-api/internal/pkg/password"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	UserID      uuid.UUID
	Username    string
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	account, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	accessToken, err := a.jwtService.GenerateAccessToken(account.ID, account.Username)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		UserID:      account.ID,
		Username:    account.Username,
		AccessToken: accessToken,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.AuthUserView, error) {
	account, err := a.readStore.FindByUsername(ctx, credentials.Username().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a password mismatch to prevent user enumeration
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if err := password.Compare(account.PasswordHash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}
