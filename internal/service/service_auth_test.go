// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/billable-hours/internal/config"
	"github.com/MKhiriev/billable-hours/internal/logger"
	"github.com/MKhiriev/billable-hours/internal/mock"
	"github.com/MKhiriev/billable-hours/internal/store"
	"github.com/MKhiriev/billable-hours/internal/utils"
	"github.com/MKhiriev/billable-hours/internal/validators"
	"github.com/MKhiriev/billable-hours/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

func testAppConfig() config.App {
	return config.App{
		SessionSignKey:  "test-sign-key",
		SessionIssuer:   "billable-hours-test",
		SessionDuration: time.Hour,
		PasswordCost:    bcrypt.MinCost,
	}
}

func newTestAuthService(t *testing.T) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	return NewAuthService(repo, testAppConfig(), logger.Nop()), repo
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return hash
}

// ─────────────────────────────────────────────
// Signup
// ─────────────────────────────────────────────

func TestAuthService_Signup_Success(t *testing.T) {
	svc, repo := newTestAuthService(t)

	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "alice", u.Username)
			assert.False(t, u.IsAdmin)
			assert.NoError(t, utils.CheckPassword(u.PasswordHash, "secret123"))
			u.ID = 1
			return u, nil
		})

	user, err := svc.Signup(testContext(), models.Credentials{Username: "  alice ", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}

func TestAuthService_Signup_InvalidCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Signup(testContext(), models.Credentials{Username: "al", Password: "1"})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrUsernameInvalid)
	assert.ErrorIs(t, err, validators.ErrPasswordTooShort)
}

func TestAuthService_Signup_UsernameTaken(t *testing.T) {
	svc, repo := newTestAuthService(t)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUsernameTaken)

	_, err := svc.Signup(testContext(), models.Credentials{Username: "alice", Password: "secret123"})

	assert.ErrorIs(t, err, store.ErrUsernameTaken)
}

// ─────────────────────────────────────────────
// CreateAdmin
// ─────────────────────────────────────────────

func TestAuthService_CreateAdmin_EmptyDatabase(t *testing.T) {
	svc, repo := newTestAuthService(t)

	gomock.InOrder(
		repo.EXPECT().CountUsers(gomock.Any()).Return(int64(0), nil),
		repo.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
				assert.True(t, u.IsAdmin)
				u.ID = 1
				return u, nil
			}),
	)

	user, err := svc.CreateAdmin(testContext(), models.Credentials{Username: "root", Password: "secret123"})

	require.NoError(t, err)
	assert.True(t, user.IsAdmin)
}

func TestAuthService_CreateAdmin_UsersExist(t *testing.T) {
	svc, repo := newTestAuthService(t)

	repo.EXPECT().CountUsers(gomock.Any()).Return(int64(2), nil)

	_, err := svc.CreateAdmin(testContext(), models.Credentials{Username: "root", Password: "secret123"})

	assert.ErrorIs(t, err, ErrUsersAlreadyExist)
}

func TestAuthService_CreateAdmin_CountFails(t *testing.T) {
	svc, repo := newTestAuthService(t)

	repo.EXPECT().CountUsers(gomock.Any()).Return(int64(0), errStorage)

	_, err := svc.CreateAdmin(testContext(), models.Credentials{Username: "root", Password: "secret123"})

	assert.ErrorIs(t, err, errStorage)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	stored := models.User{ID: 7, Username: "alice", PasswordHash: hashed(t, "secret123")}

	tests := []struct {
		name     string
		creds    models.Credentials
		findUser models.User
		findErr  error
		wantErr  error
	}{
		{name: "success", creds: models.Credentials{Username: "alice", Password: "secret123"}, findUser: stored},
		{name: "wrong password", creds: models.Credentials{Username: "alice", Password: "nope-nope"}, findUser: stored, wantErr: ErrWrongCredentials},
		{name: "unknown user", creds: models.Credentials{Username: "bob", Password: "secret123"}, findErr: store.ErrUserNotFound, wantErr: ErrWrongCredentials},
		{name: "storage failure", creds: models.Credentials{Username: "alice", Password: "secret123"}, findErr: errStorage, wantErr: errStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestAuthService(t)
			repo.EXPECT().FindUserByUsername(gomock.Any(), tt.creds.Username).Return(tt.findUser, tt.findErr)

			user, err := svc.Login(testContext(), tt.creds)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored.ID, user.ID)
		})
	}
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(testContext(), models.Credentials{Username: " ", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Login(testContext(), models.Credentials{Username: "alice"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// ChangePassword
// ─────────────────────────────────────────────

func TestAuthService_ChangePassword_Success(t *testing.T) {
	svc, repo := newTestAuthService(t)

	repo.EXPECT().FindUserByID(gomock.Any(), int64(7)).
		Return(models.User{ID: 7, PasswordHash: hashed(t, "old-secret")}, nil)
	repo.EXPECT().UpdatePasswordHash(gomock.Any(), int64(7), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, hash string) error {
			assert.NoError(t, utils.CheckPassword(hash, "new-secret"))
			return nil
		})

	err := svc.ChangePassword(testContext(), models.PasswordChange{
		UserID: 7, CurrentPassword: "old-secret", NewPassword: "new-secret", Confirmation: "new-secret",
	})

	require.NoError(t, err)
}

func TestAuthService_ChangePassword_WrongCurrent(t *testing.T) {
	svc, repo := newTestAuthService(t)

	repo.EXPECT().FindUserByID(gomock.Any(), int64(7)).
		Return(models.User{ID: 7, PasswordHash: hashed(t, "old-secret")}, nil)

	err := svc.ChangePassword(testContext(), models.PasswordChange{
		UserID: 7, CurrentPassword: "guess", NewPassword: "new-secret", Confirmation: "new-secret",
	})

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_ChangePassword_Mismatch(t *testing.T) {
	svc, _ := newTestAuthService(t)

	err := svc.ChangePassword(testContext(), models.PasswordChange{
		UserID: 7, CurrentPassword: "old-secret", NewPassword: "new-secret", Confirmation: "other",
	})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrPasswordsDoNotMatch)
}

// ─────────────────────────────────────────────
// Session tokens
// ─────────────────────────────────────────────

func TestAuthService_SessionToken_RoundTrip(t *testing.T) {
	svc, repo := newTestAuthService(t)
	user := models.User{ID: 3, Username: "carol", IsAdmin: true}
	repo.EXPECT().FindUserByID(gomock.Any(), int64(3)).Return(user, nil)

	token, err := svc.CreateSessionToken(testContext(), user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, time.Minute)

	session, err := svc.ParseSessionToken(testContext(), token.String())
	require.NoError(t, err)
	assert.Equal(t, int64(3), session.UserID)
	assert.Equal(t, "carol", session.Username)
	assert.True(t, session.IsAdmin)
}

func TestAuthService_CreateSessionToken_InvalidUser(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.CreateSessionToken(testContext(), models.User{})

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseSessionToken_Rejects(t *testing.T) {
	svc, _ := newTestAuthService(t)

	cfg := testAppConfig()
	cfg.SessionIssuer = "someone-else"
	foreign := NewAuthService(nil, cfg, logger.Nop())
	foreignToken, err := foreign.CreateSessionToken(testContext(), models.User{ID: 1})
	require.NoError(t, err)

	for _, raw := range []string{"", "garbage", foreignToken.String()} {
		_, err := svc.ParseSessionToken(testContext(), raw)
		assert.ErrorIs(t, err, ErrSessionIsExpiredOrInvalid, raw)
	}
}

func TestAuthService_ParseSessionToken_UsesStoredUser(t *testing.T) {
	svc, repo := newTestAuthService(t)

	token, err := svc.CreateSessionToken(testContext(), models.User{ID: 3, Username: "carol", IsAdmin: true})
	require.NoError(t, err)

	// carol was demoted after logging in.
	repo.EXPECT().FindUserByID(gomock.Any(), int64(3)).Return(models.User{ID: 3, Username: "carol"}, nil)

	session, err := svc.ParseSessionToken(testContext(), token.String())

	require.NoError(t, err)
	assert.Equal(t, int64(3), session.UserID)
	assert.False(t, session.IsAdmin)
}

func TestAuthService_ParseSessionToken_UserGone(t *testing.T) {
	svc, repo := newTestAuthService(t)

	token, err := svc.CreateSessionToken(testContext(), models.User{ID: 3, Username: "carol"})
	require.NoError(t, err)

	repo.EXPECT().FindUserByID(gomock.Any(), int64(3)).Return(models.User{}, store.ErrUserNotFound)
	_, err = svc.ParseSessionToken(testContext(), token.String())
	assert.ErrorIs(t, err, ErrSessionIsExpiredOrInvalid)

	repo.EXPECT().FindUserByID(gomock.Any(), int64(3)).Return(models.User{}, errStorage)
	_, err = svc.ParseSessionToken(testContext(), token.String())
	assert.ErrorIs(t, err, errStorage)
	assert.NotErrorIs(t, err, ErrSessionIsExpiredOrInvalid)
}
