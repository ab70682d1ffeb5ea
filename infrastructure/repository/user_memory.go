package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/mdsai/analytics-api/internal/domain"
)

// memoryUserRepository backs demo deployments that run without a database.
// Seed users are created at startup and any mutation lives only for the life
// of the process.
type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

func NewMemoryUserRepository(seed ...*domain.User) UserRepository {
	users := make(map[string]*domain.User, len(seed))
	for _, user := range seed {
		copied := *user
		users[user.ID] = &copied
	}

	return &memoryUserRepository{users: users}
}

func (r *memoryUserRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *user
	r.users[user.ID] = &copied

	return user, nil
}

func (r *memoryUserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[user.ID]
	if !ok {
		return nil
	}

	existing.Active = user.Active
	existing.UpdatedAt = user.UpdatedAt

	if user.Name != "" {
		existing.Name = user.Name
	}

	if user.Lastname != "" {
		existing.Lastname = user.Lastname
	}

	if user.Email != "" {
		existing.Email = user.Email
	}

	if user.PasswordHash != "" {
		existing.PasswordHash = user.PasswordHash
	}

	if user.RoleID != 0 {
		existing.RoleID = user.RoleID
	}

	return nil
}

func (r *memoryUserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}

	return nil, nil
}

func (r *memoryUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return nil, nil
	}

	copied := *user
	return &copied, nil
}

func (r *memoryUserRepository) ListUsers(ctx context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*domain.User, 0, len(r.users))
	for _, user := range r.users {
		copied := *user
		users = append(users, &copied)
	}

	sort.Slice(users, func(i, j int) bool {
		return users[i].Name < users[j].Name
	})

	return users, nil
}
