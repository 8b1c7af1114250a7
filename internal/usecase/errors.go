package usecase

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrInternal     = errors.New("internal error")
	ErrInvalidInput = errors.New("invalid input")

	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrSkillNotFound      = errors.New("skill not found")
	ErrCareerPathNotFound = errors.New("career path not found")
	ErrGoalNotFound       = errors.New("user goal not found")
	ErrProgressNotFound   = errors.New("user progress not found")
	ErrResourceNotFound   = errors.New("resource not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrUserSkillNotFound  = errors.New("user skill not found")

	ErrInvalidProficiencyLevel = errors.New("invalid proficiency level")
	ErrInvalidProgressValue    = errors.New("invalid progress value")
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}
