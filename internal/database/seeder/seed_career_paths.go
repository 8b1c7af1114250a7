package seeder

import (
	"context"
	"fmt"

	"career-compass/internal/database"

	"github.com/google/uuid"
)

type stepSeed struct {
	Title       string
	Description string
	Skills      []string
}

type careerPathSeed struct {
	Title       string
	Description string
	Skills      []string
	Steps       []stepSeed
}

// CareerPathsSeeder seeds the reference career paths together with their
// ordered roadmap steps. Step skill names must match rows from SkillsSeeder.
type CareerPathsSeeder struct{}

func (CareerPathsSeeder) Name() string { return "career_paths" }

func (CareerPathsSeeder) Run(ctx context.Context, db database.DB) error {
	paths := []careerPathSeed{
		{
			Title:       "Data Analyst",
			Description: "Turn raw data into decisions with SQL, Python and visualization.",
			Skills:      []string{"Python", "SQL", "Excel", "Statistics", "Data Visualization"},
			Steps: []stepSeed{
				{Title: "Learn Python Basics", Description: "Syntax, data structures and scripting fundamentals.", Skills: []string{"Python"}},
				{Title: "Learn SQL for Data Analysis", Description: "Joins, aggregations and window functions.", Skills: []string{"SQL"}},
				{Title: "Complete a Data Analysis Course", Description: "End-to-end analysis with statistics and visualization.", Skills: []string{"Statistics", "Data Visualization"}},
				{Title: "Build a Portfolio Project", Description: "Publish a real analysis from raw data to report.", Skills: []string{"Python", "SQL", "Data Visualization"}},
			},
		},
		{
			Title:       "Frontend Developer",
			Description: "Build interactive web applications users love.",
			Skills:      []string{"JavaScript", "TypeScript", "React", "HTML & CSS", "Git"},
			Steps: []stepSeed{
				{Title: "Master HTML & CSS", Description: "Semantic markup, layout and responsive design.", Skills: []string{"HTML & CSS"}},
				{Title: "Learn JavaScript Deeply", Description: "The language, the DOM and asynchronous patterns.", Skills: []string{"JavaScript"}},
				{Title: "Adopt TypeScript and React", Description: "Typed components and state management.", Skills: []string{"TypeScript", "React"}},
				{Title: "Ship a Frontend Project", Description: "A deployed application under version control.", Skills: []string{"React", "Git"}},
			},
		},
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	skillIDs, err := skillIDsByName(ctx, tx)
	if err != nil {
		return err
	}

	for _, p := range paths {
		required, err := resolveSkillIDs(skillIDs, p.Skills)
		if err != nil {
			return err
		}

		_, err = tx.Exec(
			ctx,
			`INSERT INTO career_paths (id, title, description, required_skills)
			 VALUES (gen_random_uuid(), $1, $2, $3)
			 ON CONFLICT (title) DO NOTHING`,
			p.Title, p.Description, required,
		)
		if err != nil {
			return err
		}

		var pathID uuid.UUID
		row := tx.QueryRow(ctx, `SELECT id FROM career_paths WHERE title = $1`, p.Title)
		if err := row.Scan(&pathID); err != nil {
			return err
		}

		for i, st := range p.Steps {
			stepSkills, err := resolveSkillIDs(skillIDs, st.Skills)
			if err != nil {
				return err
			}
			_, err = tx.Exec(
				ctx,
				`INSERT INTO roadmap_steps (id, career_path_id, title, description, position, required_skills)
				 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5)
				 ON CONFLICT (career_path_id, position) DO NOTHING`,
				pathID, st.Title, st.Description, i+1, stepSkills,
			)
			if err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func skillIDsByName(ctx context.Context, tx database.Tx) (map[string]uuid.UUID, error) {
	rows, err := tx.Query(ctx, `SELECT id, name FROM skills`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		out[name] = id
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func resolveSkillIDs(byName map[string]uuid.UUID, names []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(names))
	for _, n := range names {
		id, ok := byName[n]
		if !ok {
			return nil, fmt.Errorf("unknown skill: %s", n)
		}
		out = append(out, id)
	}
	return out, nil
}
