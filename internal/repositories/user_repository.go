package repositories

import (
	"sync"

	"haveli_pos_backend/internal/models"
)

// UserRepository stores console login accounts, seeded at startup.
type UserRepository interface {
	GetByUsername(username string) (models.User, error)
	Save(user models.User)
}

type userRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

// NewUserRepository creates an empty account store.
func NewUserRepository() UserRepository {
	return &userRepository{users: make(map[string]models.User)}
}

func (r *userRepository) GetByUsername(username string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[username]; ok {
		return u, nil
	}
	return models.User{}, ErrNotFound
}

func (r *userRepository) Save(user models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.Username] = user
}
