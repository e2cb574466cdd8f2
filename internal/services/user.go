package services

import (
	"context"
	"errors"
	"log"

	"github.com/dileepkhanna/jobportal/internal/auth"
	"github.com/dileepkhanna/jobportal/internal/store"
	"github.com/dileepkhanna/jobportal/types"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByUserID(ctx context.Context, userID string) (types.User, error)
	GetByUserIDAndPhone(ctx context.Context, userID, phone string) (types.User, error)
	Create(ctx context.Context, user types.User) (types.User, error)
}

// RegistrationNotifier is told about every successful signup.
type RegistrationNotifier interface {
	Registered(ctx context.Context, user types.User)
}

// UserService encapsulates login and signup.
type UserService struct {
	repo     UserRepository
	notifier RegistrationNotifier
}

func NewUserService(repo UserRepository, notifier RegistrationNotifier) *UserService {
	return &UserService{repo: repo, notifier: notifier}
}

// Authenticate returns the user whose userid, password and phone all match.
// ok is false when no such user exists; err is reserved for storage failures.
func (s *UserService) Authenticate(ctx context.Context, userID, password, phone string) (user types.User, ok bool, err error) {
	user, err = s.repo.GetByUserIDAndPhone(ctx, userID, phone)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.User{}, false, nil
		}
		return types.User{}, false, err
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return types.User{}, false, nil
	}
	return user, true, nil
}

// CreateUser registers a new user and reports whether it succeeded. It fails
// when the userid is taken or the insert is rolled back. Values are stored
// exactly as given so Authenticate accepts the same credentials.
func (s *UserService) CreateUser(ctx context.Context, name, userID, password, phone string) bool {
	if _, err := s.repo.GetByUserID(ctx, userID); err == nil {
		return false
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Printf("[Users] lookup %q failed: %v", userID, err)
		return false
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		log.Printf("[Users] hash password for %q failed: %v", userID, err)
		return false
	}

	created, err := s.repo.Create(ctx, types.User{
		Name:         name,
		UserID:       userID,
		PasswordHash: hashed,
		Phone:        phone,
	})
	if err != nil {
		log.Printf("[Users] create %q failed: %v", userID, err)
		return false
	}

	if s.notifier != nil {
		s.notifier.Registered(ctx, created)
	}
	return true
}

func (s *UserService) GetUserByUserID(ctx context.Context, userID string) (types.User, error) {
	return s.repo.GetByUserID(ctx, userID)
}
