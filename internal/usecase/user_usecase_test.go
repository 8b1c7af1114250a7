package usecase

import (
	"context"
	"errors"
	"testing"

	"career-compass/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	byID      map[uuid.UUID]repository.User
	created   *repository.User
	createErr error
}

func (m *mockUserRepo) Create(_ context.Context, u repository.User) (repository.User, error) {
	if m.createErr != nil {
		return repository.User{}, m.createErr
	}
	m.created = &u
	return u, nil
}

func (m *mockUserRepo) FindByID(_ context.Context, id uuid.UUID) (repository.User, error) {
	if u, ok := m.byID[id]; ok {
		return u, nil
	}
	return repository.User{}, repository.ErrUserNotFound
}

func (m *mockUserRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := m.byID[id]
	return ok, nil
}

func TestUserService_CreateUser_HashesPassword(t *testing.T) {
	repo := &mockUserRepo{}
	uc := NewUserUsecase(repo)

	item, err := uc.CreateUser(context.Background(), CreateUserInput{
		Username:    "alex",
		Password:    "correct horse",
		DisplayName: "Alex",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if item.Username != "alex" {
		t.Fatalf("unexpected item: %+v", item)
	}
	if repo.created == nil {
		t.Fatalf("expected user to reach the repository")
	}
	if repo.created.PasswordHash == "correct horse" {
		t.Fatalf("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(repo.created.PasswordHash), []byte("correct horse")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestUserService_CreateUser_ShortPassword(t *testing.T) {
	uc := NewUserUsecase(&mockUserRepo{})

	_, err := uc.CreateUser(context.Background(), CreateUserInput{Username: "alex", Password: "short"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUserService_CreateUser_UsernameTaken(t *testing.T) {
	uc := NewUserUsecase(&mockUserRepo{createErr: &pgconn.PgError{Code: "23505"}})

	_, err := uc.CreateUser(context.Background(), CreateUserInput{Username: "alex", Password: "long enough"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	uc := NewUserUsecase(&mockUserRepo{})

	_, err := uc.GetUser(context.Background(), uuid.New())
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
