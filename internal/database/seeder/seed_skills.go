package seeder

import (
	"context"
	"fmt"

	"career-compass/internal/database"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Name        string
		Description string
	}{
		{Name: "Python", Description: "General-purpose programming and scripting"},
		{Name: "SQL", Description: "Querying and modeling relational data"},
		{Name: "Excel", Description: "Spreadsheet analysis and reporting"},
		{Name: "Statistics", Description: "Descriptive and inferential statistics"},
		{Name: "Data Visualization", Description: "Charts, dashboards and visual storytelling"},
		{Name: "JavaScript", Description: "Programming for the web platform"},
		{Name: "TypeScript", Description: "Typed JavaScript at scale"},
		{Name: "React", Description: "Component-based UI development"},
		{Name: "HTML & CSS", Description: "Web page structure and styling"},
		{Name: "Git", Description: "Version control and collaboration"},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO skills (id, name, description) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (name) DO NOTHING`,
			it.Name,
			it.Description,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
