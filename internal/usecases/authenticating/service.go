package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mdsai/analytics-api/infrastructure/repository"
	"github.com/mdsai/analytics-api/internal/config"
	"github.com/mdsai/analytics-api/internal/domain"
	"github.com/mdsai/analytics-api/pkg/apiErrors"
	"github.com/mdsai/analytics-api/pkg/log"
	"github.com/mdsai/analytics-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// defaultRoleID is assigned when a create request carries no role. Viewers
// get read access to the dashboard and nothing else.
const defaultRoleID = 3

type Authenticator interface {
	LoginUser(ctx context.Context, username, password string) (*domain.User, string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GetUserProfile(ctx context.Context, userID string) (*domain.User, error)
	CreateUser(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	UpdateUser(ctx context.Context, req *domain.UpdateUserRequest) error
	ListUsers(ctx context.Context) ([]*domain.User, error)
}

type Service struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *Service) LoginUser(ctx context.Context, username, password string) (*domain.User, string, error) {
	if username == "" || password == "" {
		return nil, "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Username and password are required")
	}

	username = normalizeUsername(username)

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Error looking up user")
	}

	// Unknown usernames get the same answer as wrong passwords so the login
	// form cannot be used to probe for accounts.
	if user == nil {
		return nil, "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Incorrect username or password")
	}

	if !user.Active {
		return nil, "", NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Account disabled")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Incorrect username or password")
	}

	token, err := generateJWT(user, s.cfg.Auth.Secret)
	if err != nil {
		return nil, "", NewAuthError(err, apiErrors.ErrInternalServer, "Error generating authentication token")
	}

	user.PasswordHash = ""

	return user, token, nil
}

func (s *Service) GetUserProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("fetching user profile")
		return nil, err
	}

	if user == nil {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "User not found")
	}

	user.PasswordHash = ""

	return user, nil
}

func (s *Service) CreateUser(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if req.Username == "" || req.Name == "" || req.Password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Username, name and password are required")
	}

	username := normalizeUsername(req.Username)

	existing, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Error looking up user")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Username already taken")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	roleID := req.RoleID
	if roleID == 0 {
		roleID = defaultRoleID
	}

	now := time.Now()
	user := &domain.User{
		ID:           id,
		Username:     username,
		Name:         req.Name,
		Lastname:     req.Lastname,
		Email:        normalizeUsername(req.Email),
		PasswordHash: string(hashedPassword),
		Active:       true,
		RoleID:       roleID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	user, err = s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Error creating user")
	}

	user.PasswordHash = ""

	return user, nil
}

func (s *Service) UpdateUser(ctx context.Context, req *domain.UpdateUserRequest) error {
	if req.ID == "" {
		return NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "User ID is required")
	}

	user, err := s.userRepo.GetUserByID(ctx, req.ID)
	if err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Error looking up user")
	}
	if user == nil {
		return NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, fmt.Sprintf("no user with ID %s", req.ID))
	}

	if req.Name != nil {
		user.Name = *req.Name
	}

	if req.Lastname != nil {
		user.Lastname = *req.Lastname
	}

	if req.Email != nil {
		user.Email = normalizeUsername(*req.Email)
	}

	if req.Active != nil {
		user.Active = *req.Active
	}

	if req.RoleID != nil {
		user.RoleID = *req.RoleID
	}

	user.UpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Error updating user")
	}

	return nil
}

func (s *Service) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		user.PasswordHash = ""
	}

	return users, nil
}

func normalizeUsername(s string) string {
	username := strings.ToLower(s)
	username = strings.TrimSpace(username)
	username = strings.ReplaceAll(username, " ", "")
	return username
}

func generateJWT(user *domain.User, secret string) (string, error) {
	claims := domain.Claims{
		UserID:       user.ID,
		UserUsername: user.Username,
		UserName:     user.Name,
		UserLastname: user.Lastname,
		UserEmail:    user.Email,
		UserActive:   user.Active,
		UserRoleID:   user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Token expired")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Invalid token")
	}

	return claims, nil
}
