package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"career-compass/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserItem struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Username    string
	Password    string
	DisplayName string
}

type UserUsecase interface {
	CreateUser(ctx context.Context, in CreateUserInput) (UserItem, error)
	GetUser(ctx context.Context, id uuid.UUID) (UserItem, error)
}

type UserService struct {
	users repository.UserRepository
}

func NewUserUsecase(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// CreateUser stores the password as a bcrypt hash; the hash never leaves
// this package.
func (u *UserService) CreateUser(ctx context.Context, in CreateUserInput) (UserItem, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || len(in.Password) < 8 {
		return UserItem{}, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserItem{}, ErrInternal
	}

	created, err := u.users.Create(ctx, repository.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
		DisplayName:  strings.TrimSpace(in.DisplayName),
	})
	if err != nil {
		if isUniqueViolation(err) {
			return UserItem{}, ErrUsernameTaken
		}
		return UserItem{}, ErrInternal
	}

	return userItem(created), nil
}

func (u *UserService) GetUser(ctx context.Context, id uuid.UUID) (UserItem, error) {
	if id == uuid.Nil {
		return UserItem{}, ErrInvalidInput
	}
	found, err := u.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserItem{}, ErrUserNotFound
		}
		return UserItem{}, ErrInternal
	}
	return userItem(found), nil
}

func userItem(u repository.User) UserItem {
	return UserItem{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}
