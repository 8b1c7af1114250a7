package repository

import (
	"context"
	"database/sql"
	"errors"

	"career-compass/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrUserSkillNotFound = errors.New("user skill not found")

type UserSkill struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	SkillID          uuid.UUID
	SkillName        string
	SkillDescription string
	ProficiencyLevel int
}

type UserSkillRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]UserSkill, error)
	Upsert(ctx context.Context, userID uuid.UUID, skillID uuid.UUID, proficiencyLevel int) (UserSkill, error)
	UpdateProficiency(ctx context.Context, id uuid.UUID, proficiencyLevel int) (UserSkill, error)
	CountAcquired(ctx context.Context, userID uuid.UUID, threshold int) (int, error)
}

type PostgresUserSkillRepository struct {
	db database.DB
}

func NewPostgresUserSkillRepository(db database.DB) *PostgresUserSkillRepository {
	return &PostgresUserSkillRepository{db: db}
}

func (r *PostgresUserSkillRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]UserSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT us.id, us.user_id, us.skill_id, s.name, s.description, us.proficiency_level
		 FROM user_skills us
		 JOIN skills s ON s.id = us.skill_id
		 WHERE us.user_id = $1
		 ORDER BY s.name ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]UserSkill, 0)
	for rows.Next() {
		var us UserSkill
		if err := rows.Scan(&us.ID, &us.UserID, &us.SkillID, &us.SkillName, &us.SkillDescription, &us.ProficiencyLevel); err != nil {
			return nil, err
		}
		out = append(out, us)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Upsert inserts or updates the proficiency for (userID, skillID) in one
// statement, relying on the unique constraint instead of a read-then-write.
func (r *PostgresUserSkillRepository) Upsert(ctx context.Context, userID uuid.UUID, skillID uuid.UUID, proficiencyLevel int) (UserSkill, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO user_skills (id, user_id, skill_id, proficiency_level)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, skill_id)
		 DO UPDATE SET proficiency_level = EXCLUDED.proficiency_level, updated_at = now()
		 RETURNING id, user_id, skill_id, proficiency_level`,
		uuid.New(), userID, skillID, proficiencyLevel,
	)

	var us UserSkill
	if err := row.Scan(&us.ID, &us.UserID, &us.SkillID, &us.ProficiencyLevel); err != nil {
		return UserSkill{}, err
	}
	return us, nil
}

func (r *PostgresUserSkillRepository) UpdateProficiency(ctx context.Context, id uuid.UUID, proficiencyLevel int) (UserSkill, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE user_skills
		 SET proficiency_level = $1, updated_at = now()
		 WHERE id = $2
		 RETURNING id, user_id, skill_id, proficiency_level`,
		proficiencyLevel, id,
	)

	var us UserSkill
	if err := row.Scan(&us.ID, &us.UserID, &us.SkillID, &us.ProficiencyLevel); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return UserSkill{}, ErrUserSkillNotFound
		}
		return UserSkill{}, err
	}
	return us, nil
}

func (r *PostgresUserSkillRepository) CountAcquired(ctx context.Context, userID uuid.UUID, threshold int) (int, error) {
	var count int
	row := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM user_skills WHERE user_id = $1 AND proficiency_level >= $2`,
		userID, threshold,
	)
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
