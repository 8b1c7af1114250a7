package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestAssessment_ProcessAssessment_UpsertsEachSkillOnce(t *testing.T) {
	skills := &mockUserSkillRepo{}
	goals := &mockGoalRepo{}
	uc := NewAssessmentUsecase(skills, goals)

	userID := uuid.New()
	a, b := uuid.New(), uuid.New()
	pathID := uuid.New()

	err := uc.ProcessAssessment(context.Background(), userID, AssessmentInput{
		Skills: []SkillAssessment{
			{SkillID: a, ProficiencyLevel: 3},
			{SkillID: b, ProficiencyLevel: 5},
		},
		CareerGoal: &pathID,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if skills.upserts[a] != 1 || skills.upserts[b] != 1 {
		t.Fatalf("expected one upsert per skill, got %v", skills.upserts)
	}
	if goals.upsertCalls != 1 {
		t.Fatalf("expected one goal upsert, got %d", goals.upsertCalls)
	}
}

func TestAssessment_ProcessAssessment_InvalidRatingAbortsBatch(t *testing.T) {
	skills := &mockUserSkillRepo{}
	uc := NewAssessmentUsecase(skills, &mockGoalRepo{})

	err := uc.ProcessAssessment(context.Background(), uuid.New(), AssessmentInput{
		Skills: []SkillAssessment{
			{SkillID: uuid.New(), ProficiencyLevel: 4},
			{SkillID: uuid.New(), ProficiencyLevel: 6},
		},
	})
	if !errors.Is(err, ErrInvalidProficiencyLevel) {
		t.Fatalf("expected ErrInvalidProficiencyLevel, got %v", err)
	}
	if len(skills.upserts) != 0 {
		t.Fatalf("expected no upserts after validation failure, got %v", skills.upserts)
	}
}

func TestAssessment_ProcessAssessment_RatingBounds(t *testing.T) {
	uc := NewAssessmentUsecase(&mockUserSkillRepo{}, &mockGoalRepo{})

	for _, level := range []int{0, 6} {
		err := uc.ProcessAssessment(context.Background(), uuid.New(), AssessmentInput{
			Skills: []SkillAssessment{{SkillID: uuid.New(), ProficiencyLevel: level}},
		})
		if !errors.Is(err, ErrInvalidProficiencyLevel) {
			t.Fatalf("level %d: expected ErrInvalidProficiencyLevel, got %v", level, err)
		}
	}
	for _, level := range []int{1, 5} {
		err := uc.ProcessAssessment(context.Background(), uuid.New(), AssessmentInput{
			Skills: []SkillAssessment{{SkillID: uuid.New(), ProficiencyLevel: level}},
		})
		if err != nil {
			t.Fatalf("level %d: unexpected err: %v", level, err)
		}
	}
}

func TestAssessment_ProcessAssessment_EmptyInput(t *testing.T) {
	uc := NewAssessmentUsecase(&mockUserSkillRepo{}, &mockGoalRepo{})

	err := uc.ProcessAssessment(context.Background(), uuid.New(), AssessmentInput{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAssessment_ProcessAssessment_UnknownSkill(t *testing.T) {
	skills := &mockUserSkillRepo{upsertErr: &pgconn.PgError{Code: "23503"}}
	uc := NewAssessmentUsecase(skills, &mockGoalRepo{})

	err := uc.ProcessAssessment(context.Background(), uuid.New(), AssessmentInput{
		Skills: []SkillAssessment{{SkillID: uuid.New(), ProficiencyLevel: 2}},
	})
	if !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestAssessment_ProcessAssessment_UnknownCareerPath(t *testing.T) {
	goals := &mockGoalRepo{upsertErr: &pgconn.PgError{Code: "23503"}}
	uc := NewAssessmentUsecase(&mockUserSkillRepo{}, goals)

	pathID := uuid.New()
	err := uc.ProcessAssessment(context.Background(), uuid.New(), AssessmentInput{CareerGoal: &pathID})
	if !errors.Is(err, ErrCareerPathNotFound) {
		t.Fatalf("expected ErrCareerPathNotFound, got %v", err)
	}
}
