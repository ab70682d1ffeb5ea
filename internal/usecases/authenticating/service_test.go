package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/mdsai/analytics-api/infrastructure/repository/mocks"
	"github.com/mdsai/analytics-api/internal/config"
	"github.com/mdsai/analytics-api/internal/domain"
	"github.com/mdsai/analytics-api/pkg/apiErrors"
)

func authTestConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{Secret: "test-secret"},
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return string(hash)
}

func asAuthError(t *testing.T, err error) *AuthError {
	t.Helper()

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)

	return authErr
}

func TestLoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, authTestConfig())
	ctx := context.Background()

	password := "Sunrise#2025"
	hash := hashPassword(t, password)

	tests := []struct {
		name     string
		username string
		password string
		setup    func()
		validate func(t *testing.T, user *domain.User, token string, err error)
	}{
		{
			name:     "successful login returns the user and a valid token",
			username: "dana",
			password: password,
			setup: func() {
				userRepo.EXPECT().
					GetUserByUsername(gomock.Any(), "dana").
					Return(&domain.User{
						ID:           "user-1",
						Username:     "dana",
						Name:         "Dana",
						Active:       true,
						RoleID:       2,
						PasswordHash: hash,
					}, nil).
					Times(1)
			},
			validate: func(t *testing.T, user *domain.User, token string, err error) {
				require.NoError(t, err)
				require.NotNil(t, user)
				assert.Empty(t, user.PasswordHash)
				require.NotEmpty(t, token)

				claims, err := service.ValidateToken(token)
				require.NoError(t, err)
				assert.Equal(t, "user-1", claims.UserID)
				assert.Equal(t, "dana", claims.UserUsername)
				assert.Equal(t, 2, claims.UserRoleID)
			},
		},
		{
			name:     "username is lowercased and trimmed before the lookup",
			username: "  Dana ",
			password: password,
			setup: func() {
				userRepo.EXPECT().
					GetUserByUsername(gomock.Any(), "dana").
					Return(&domain.User{ID: "user-1", Username: "dana", Active: true, PasswordHash: hash}, nil).
					Times(1)
			},
			validate: func(t *testing.T, user *domain.User, token string, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, user)
			},
		},
		{
			name:     "wrong password",
			username: "dana",
			password: "wrong-password",
			setup: func() {
				userRepo.EXPECT().
					GetUserByUsername(gomock.Any(), "dana").
					Return(&domain.User{ID: "user-1", Username: "dana", Active: true, PasswordHash: hash}, nil).
					Times(1)
			},
			validate: func(t *testing.T, user *domain.User, token string, err error) {
				assert.Nil(t, user)
				assert.ErrorIs(t, err, ErrInvalidCredentials)

				authErr := asAuthError(t, err)
				assert.Equal(t, apiErrors.ErrInvalidCredentials, authErr.Code)
				assert.Equal(t, "Incorrect username or password", authErr.Details)
			},
		},
		{
			name:     "unknown username is indistinguishable from a wrong password",
			username: "nobody",
			password: password,
			setup: func() {
				userRepo.EXPECT().
					GetUserByUsername(gomock.Any(), "nobody").
					Return(nil, nil).
					Times(1)
			},
			validate: func(t *testing.T, user *domain.User, token string, err error) {
				assert.Nil(t, user)
				assert.ErrorIs(t, err, ErrInvalidCredentials)

				authErr := asAuthError(t, err)
				assert.Equal(t, apiErrors.ErrInvalidCredentials, authErr.Code)
				assert.Equal(t, "Incorrect username or password", authErr.Details)
			},
		},
		{
			name:     "disabled account",
			username: "dana",
			password: password,
			setup: func() {
				userRepo.EXPECT().
					GetUserByUsername(gomock.Any(), "dana").
					Return(&domain.User{ID: "user-1", Username: "dana", Active: false, PasswordHash: hash}, nil).
					Times(1)
			},
			validate: func(t *testing.T, user *domain.User, token string, err error) {
				assert.ErrorIs(t, err, ErrUserDisabled)

				authErr := asAuthError(t, err)
				assert.Equal(t, apiErrors.ErrUserDisabled, authErr.Code)
				assert.Equal(t, "user-1", authErr.UserID)
			},
		},
		{
			name:     "missing credentials never reach the store",
			username: "dana",
			password: "",
			setup:    func() {},
			validate: func(t *testing.T, user *domain.User, token string, err error) {
				assert.ErrorIs(t, err, ErrMissingRequiredData)
				assert.Equal(t, apiErrors.ErrMissingRequiredData, asAuthError(t, err).Code)
			},
		},
		{
			name:     "store failure",
			username: "dana",
			password: password,
			setup: func() {
				userRepo.EXPECT().
					GetUserByUsername(gomock.Any(), "dana").
					Return(nil, errors.New("connection refused")).
					Times(1)
			},
			validate: func(t *testing.T, user *domain.User, token string, err error) {
				assert.Equal(t, apiErrors.ErrDatabaseOperation, asAuthError(t, err).Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			user, token, err := service.LoginUser(ctx, tt.username, tt.password)
			tt.validate(t, user, token, err)
		})
	}
}

func TestValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockUserRepository(ctrl), authTestConfig()).(*Service)

	user := &domain.User{ID: "user-1", Username: "dana", Name: "Dana", Active: true, RoleID: 1}

	t.Run("roundtrip", func(t *testing.T) {
		token, err := generateJWT(user, "test-secret")
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, 1, claims.UserRoleID)
		assert.True(t, claims.UserActive)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.Claims{
			UserID: "user-1",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})
		token, err := expired.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.Equal(t, apiErrors.ErrExpiredToken, asAuthError(t, err).Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		token, err := generateJWT(user, "other-secret")
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Equal(t, apiErrors.ErrInvalidToken, asAuthError(t, err).Code)
	})

	t.Run("unsigned token is rejected", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, domain.Claims{UserID: "user-1"})
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestCreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, authTestConfig())
	ctx := context.Background()

	t.Run("creates an active user with a hashed password", func(t *testing.T) {
		userRepo.EXPECT().
			GetUserByUsername(gomock.Any(), "ortiz").
			Return(nil, nil).
			Times(1)

		userRepo.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
				assert.Len(t, user.ID, 8)
				assert.Equal(t, "ortiz", user.Username)
				assert.Equal(t, "dana@example.com", user.Email)
				assert.True(t, user.Active)
				assert.Equal(t, 2, user.RoleID)
				assert.False(t, user.CreatedAt.IsZero())

				err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Sunrise#2025"))
				assert.NoError(t, err)

				return user, nil
			}).
			Times(1)

		created, err := service.CreateUser(ctx, &domain.CreateUserRequest{
			Username: " Ortiz ",
			Name:     "Dana",
			Lastname: "Ortiz",
			Email:    " Dana@Example.COM",
			Password: "Sunrise#2025",
			RoleID:   2,
		})
		require.NoError(t, err)
		assert.Empty(t, created.PasswordHash)
	})

	t.Run("missing role falls back to viewer", func(t *testing.T) {
		userRepo.EXPECT().
			GetUserByUsername(gomock.Any(), "ortiz").
			Return(nil, nil).
			Times(1)

		userRepo.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
				assert.Equal(t, defaultRoleID, user.RoleID)
				return user, nil
			}).
			Times(1)

		_, err := service.CreateUser(ctx, &domain.CreateUserRequest{
			Username: "ortiz",
			Name:     "Dana",
			Password: "Sunrise#2025",
		})
		assert.NoError(t, err)
	})

	t.Run("duplicate username", func(t *testing.T) {
		userRepo.EXPECT().
			GetUserByUsername(gomock.Any(), "ortiz").
			Return(&domain.User{ID: "user-9", Username: "ortiz"}, nil).
			Times(1)

		_, err := service.CreateUser(ctx, &domain.CreateUserRequest{
			Username: "ortiz",
			Name:     "Dana",
			Password: "Sunrise#2025",
		})
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
		assert.Equal(t, apiErrors.ErrUserAlreadyExists, asAuthError(t, err).Code)
	})

	t.Run("missing fields never reach the store", func(t *testing.T) {
		_, err := service.CreateUser(ctx, &domain.CreateUserRequest{Username: "ortiz"})
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestUpdateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, authTestConfig())
	ctx := context.Background()

	existing := func() *domain.User {
		return &domain.User{
			ID:       "user-1",
			Username: "dana",
			Name:     "Dana",
			Lastname: "Ortiz",
			Email:    "dana@example.com",
			Active:   true,
			RoleID:   3,
		}
	}

	t.Run("applies only the provided fields", func(t *testing.T) {
		userRepo.EXPECT().
			GetUserByID(gomock.Any(), "user-1").
			Return(existing(), nil).
			Times(1)

		userRepo.EXPECT().
			UpdateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *domain.User) error {
				assert.Equal(t, "Dayna", user.Name)
				assert.Equal(t, "Ortiz", user.Lastname)
				assert.Equal(t, "new@example.com", user.Email)
				assert.False(t, user.Active)
				assert.Equal(t, 3, user.RoleID)
				assert.False(t, user.UpdatedAt.IsZero())
				return nil
			}).
			Times(1)

		name := "Dayna"
		email := " New@Example.com "
		active := false
		err := service.UpdateUser(ctx, &domain.UpdateUserRequest{
			ID:     "user-1",
			Name:   &name,
			Email:  &email,
			Active: &active,
		})
		assert.NoError(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		userRepo.EXPECT().
			GetUserByID(gomock.Any(), "ghost").
			Return(nil, nil).
			Times(1)

		err := service.UpdateUser(ctx, &domain.UpdateUserRequest{ID: "ghost"})
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Equal(t, apiErrors.ErrUserNotFound, asAuthError(t, err).Code)
	})

	t.Run("missing ID", func(t *testing.T) {
		err := service.UpdateUser(ctx, &domain.UpdateUserRequest{})
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})

	t.Run("store failure", func(t *testing.T) {
		userRepo.EXPECT().
			GetUserByID(gomock.Any(), "user-1").
			Return(existing(), nil).
			Times(1)

		userRepo.EXPECT().
			UpdateUser(gomock.Any(), gomock.Any()).
			Return(errors.New("connection refused")).
			Times(1)

		err := service.UpdateUser(ctx, &domain.UpdateUserRequest{ID: "user-1"})
		assert.Equal(t, apiErrors.ErrDatabaseOperation, asAuthError(t, err).Code)
	})
}

func TestListUsersClearsPasswordHashes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, authTestConfig())

	userRepo.EXPECT().
		ListUsers(gomock.Any()).
		Return([]*domain.User{
			{ID: "user-1", Username: "dana", PasswordHash: "hash-1"},
			{ID: "user-2", Username: "sam", PasswordHash: "hash-2"},
		}, nil).
		Times(1)

	users, err := service.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, user := range users {
		assert.Empty(t, user.PasswordHash)
	}
}

func TestGetUserProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, authTestConfig())
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		userRepo.EXPECT().
			GetUserByID(gomock.Any(), "user-1").
			Return(&domain.User{ID: "user-1", Username: "dana", PasswordHash: "hash"}, nil).
			Times(1)

		user, err := service.GetUserProfile(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "dana", user.Username)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("not found", func(t *testing.T) {
		userRepo.EXPECT().
			GetUserByID(gomock.Any(), "ghost").
			Return(nil, nil).
			Times(1)

		_, err := service.GetUserProfile(ctx, "ghost")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestNormalizeUsername(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"  Dana ", "dana"},
		{"JO HN", "john"},
		{"already", "already"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, normalizeUsername(tt.in))
	}
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, IsCredentialsError(NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "")))
	assert.True(t, IsCredentialsError(NewAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, "")))
	assert.False(t, IsCredentialsError(NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "")))

	assert.True(t, IsAuthorizationError(NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")))
	assert.True(t, IsAuthorizationError(NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")))
	assert.False(t, IsAuthorizationError(NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "")))
}
