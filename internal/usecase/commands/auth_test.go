//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/pkg/jwt"
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/tests/common/builder"
	queriesmock "car-rental-api/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthCommands(t *testing.T) (commands.AuthCommands, *queriesmock.MockUserReadStore, *jwt.Service) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockUserReadStore(ctrl)
	jwtService := jwt.NewService("test-secret", time.Hour, clock.NewRealClock())
	return commands.NewAuthCommands(store, jwtService), store, jwtService
}

func TestAuthCommands_Login(t *testing.T) {
	account := builder.NewUserBuilder()

	t.Run("success issues a token for the user", func(t *testing.T) {
		cmds, store, jwtService := newAuthCommands(t)
		store.EXPECT().FindByUsername(gomock.Any(), "taro").Return(account.BuildAuthView(), nil)

		result, err := cmds.Login(context.Background(), builder.NewAuthBuilder().BuildDTO())

		require.NoError(t, err)
		assert.Equal(t, account.ID, result.UserID)
		assert.Equal(t, "taro", result.Username)

		claims, err := jwtService.ValidateToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, account.ID, claims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		cmds, store, _ := newAuthCommands(t)
		store.EXPECT().FindByUsername(gomock.Any(), "taro").Return(account.BuildAuthView(), nil)

		req := builder.NewAuthBuilder().BuildDTO()
		req.Password = "wrong-password"
		_, err := cmds.Login(context.Background(), req)

		assert.True(t, errs.Is(err, commands.ErrInvalidCredentials))
	})

	t.Run("unknown user reads the same as a wrong password", func(t *testing.T) {
		cmds, store, _ := newAuthCommands(t)
		store.EXPECT().FindByUsername(gomock.Any(), "taro").
			Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		_, err := cmds.Login(context.Background(), builder.NewAuthBuilder().BuildDTO())

		assert.True(t, errs.Is(err, commands.ErrInvalidCredentials))
	})

	t.Run("storage failure", func(t *testing.T) {
		cmds, store, _ := newAuthCommands(t)
		store.EXPECT().FindByUsername(gomock.Any(), "taro").
			Return(nil, infra.WrapRepoErr("db down", assert.AnError))

		_, err := cmds.Login(context.Background(), builder.NewAuthBuilder().BuildDTO())

		assert.True(t, errs.Is(err, commands.ErrAuthenticationFailed))
	})

	t.Run("blank username never reaches the store", func(t *testing.T) {
		cmds, _, _ := newAuthCommands(t)

		req := builder.NewAuthBuilder().BuildDTO()
		req.Username = "   "
		_, err := cmds.Login(context.Background(), req)

		assert.True(t, errs.Is(err, commands.ErrInvalidCredentials))
	})
}
