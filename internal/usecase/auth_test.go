//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/jwt"
	"stayhub/internal/pkg/password"
	"stayhub/internal/usecase"
	"stayhub/internal/usecase/readmodel"
	usecasemock "stayhub/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestJWTService() *jwt.Service {
	return jwt.NewService("unit-test-secret", time.Hour)
}

func activeUserRM(id uuid.UUID, role string) *readmodel.AuthorizedUserRM {
	return &readmodel.AuthorizedUserRM{
		ID:       id,
		Name:     "Grace Hopper",
		Email:    "grace@example.com",
		Role:     role,
		IsActive: true,
	}
}

func mustCredentials(t *testing.T, emailStr, passwordStr string) user.Credentials {
	t.Helper()
	email, err := user.NewEmail(emailStr)
	require.NoError(t, err)
	pw, err := user.NewPassword(passwordStr)
	require.NoError(t, err)
	return user.NewCredentials(email, pw)
}

func TestAuthUseCase_Register(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	validReq := usecase.RegisterRequest{
		Name:     "Grace Hopper",
		Email:    "grace@example.com",
		Password: "S3curePassw0rd",
		Role:     "guest",
	}

	testCases := []struct {
		name        string
		req         usecase.RegisterRequest
		setupMock   func(repo *usecasemock.MockUserRepository)
		expectedErr error
	}{
		{
			name: "success: guest account created",
			req:  validReq,
			setupMock: func(repo *usecasemock.MockUserRepository) {
				repo.EXPECT().Create(ctx, gomock.Any()).Return(userID, nil)
				repo.EXPECT().FindByID(ctx, userID).Return(activeUserRM(userID, "guest"), nil)
			},
		},
		{
			name: "error: admin role is rejected",
			req: usecase.RegisterRequest{
				Name:     "Grace Hopper",
				Email:    "grace@example.com",
				Password: "S3curePassw0rd",
				Role:     "admin",
			},
			setupMock:   func(repo *usecasemock.MockUserRepository) {},
			expectedErr: usecase.ErrUserValidation,
		},
		{
			name: "error: malformed email",
			req: usecase.RegisterRequest{
				Name:     "Grace Hopper",
				Email:    "not-an-email",
				Password: "S3curePassw0rd",
				Role:     "guest",
			},
			setupMock:   func(repo *usecasemock.MockUserRepository) {},
			expectedErr: usecase.ErrUserValidation,
		},
		{
			name: "error: duplicate email",
			req:  validReq,
			setupMock: func(repo *usecasemock.MockUserRepository) {
				repo.EXPECT().Create(ctx, gomock.Any()).
					Return(uuid.Nil, infra.NewRepoErr(infra.KindDuplicateKey, "email taken", nil))
			},
			expectedErr: usecase.ErrEmailAlreadyExists,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := usecasemock.NewMockUserRepository(ctrl)
			tc.setupMock(repo)
			uc := usecase.NewAuthUseCase(repo, newTestJWTService())

			rm, err := uc.Register(ctx, tc.req)

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, rm)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, rm)
			assert.Equal(t, userID, rm.ID)
		})
	}
}

func TestAuthUseCase_Login(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	plainPassword := "S3curePassw0rd"

	hash, err := password.HashPassword(plainPassword)
	require.NoError(t, err)

	testCases := []struct {
		name        string
		password    string
		setupMock   func(repo *usecasemock.MockUserRepository)
		expectedErr error
	}{
		{
			name:     "success: token issued and last login recorded",
			password: plainPassword,
			setupMock: func(repo *usecasemock.MockUserRepository) {
				repo.EXPECT().FindByEmail(ctx, gomock.Any()).Return(activeUserRM(userID, "guest"), hash, nil)
				repo.EXPECT().UpdateLastLogin(ctx, userID).Return(nil)
			},
		},
		{
			name:     "error: unknown email",
			password: plainPassword,
			setupMock: func(repo *usecasemock.MockUserRepository) {
				repo.EXPECT().FindByEmail(ctx, gomock.Any()).
					Return(nil, "", infra.NewRepoErr(infra.KindNotFound, "user not found", nil))
			},
			expectedErr: usecase.ErrUserNotFound,
		},
		{
			name:     "error: wrong password",
			password: "WrongPassw0rd",
			setupMock: func(repo *usecasemock.MockUserRepository) {
				repo.EXPECT().FindByEmail(ctx, gomock.Any()).Return(activeUserRM(userID, "guest"), hash, nil)
			},
			expectedErr: usecase.ErrInvalidCredentials,
		},
		{
			name:     "error: deactivated account",
			password: plainPassword,
			setupMock: func(repo *usecasemock.MockUserRepository) {
				rm := activeUserRM(userID, "guest")
				rm.IsActive = false
				repo.EXPECT().FindByEmail(ctx, gomock.Any()).Return(rm, hash, nil)
			},
			expectedErr: usecase.ErrUserInactive,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := usecasemock.NewMockUserRepository(ctrl)
			tc.setupMock(repo)
			svc := newTestJWTService()
			uc := usecase.NewAuthUseCase(repo, svc)

			token, rm, err := uc.Login(ctx, mustCredentials(t, "grace@example.com", tc.password))

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, rm)
			assert.Equal(t, userID, rm.ID)

			claims, err := svc.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, userID, claims.UserID)
			assert.Equal(t, user.RoleGuest, claims.Role)
		})
	}
}

func TestAuthUseCase_GetCurrentUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	testCases := []struct {
		name        string
		setupMock   func(repo *usecasemock.MockUserRepository)
		expectedErr error
	}{
		{
			name: "success: active user returned",
			setupMock: func(repo *usecasemock.MockUserRepository) {
				repo.EXPECT().FindByID(ctx, userID).Return(activeUserRM(userID, "host"), nil)
			},
		},
		{
			name: "error: unknown user",
			setupMock: func(repo *usecasemock.MockUserRepository) {
				repo.EXPECT().FindByID(ctx, userID).
					Return(nil, infra.NewRepoErr(infra.KindNotFound, "user not found", nil))
			},
			expectedErr: usecase.ErrUserNotFound,
		},
		{
			name: "error: deactivated user",
			setupMock: func(repo *usecasemock.MockUserRepository) {
				rm := activeUserRM(userID, "host")
				rm.IsActive = false
				repo.EXPECT().FindByID(ctx, userID).Return(rm, nil)
			},
			expectedErr: usecase.ErrUserInactive,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := usecasemock.NewMockUserRepository(ctrl)
			tc.setupMock(repo)
			uc := usecase.NewAuthUseCase(repo, newTestJWTService())

			rm, err := uc.GetCurrentUser(ctx, userID)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, rm.ID)
		})
	}
}

func TestAuthUseCase_ValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := usecasemock.NewMockUserRepository(ctrl)
	svc := newTestJWTService()
	uc := usecase.NewAuthUseCase(repo, svc)

	userID := uuid.New()
	token, err := svc.GenerateToken(userID, user.RoleHost)
	require.NoError(t, err)

	gotID, gotRole, err := uc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, user.RoleHost, gotRole)

	_, _, err = uc.ValidateToken("garbage.token.value")
	assert.ErrorIs(t, err, usecase.ErrTokenValidation)
}
