package seeder

import (
	"context"
	"fmt"

	"career-compass/internal/database"
)

type resourceSeed struct {
	Title    string
	Provider string
	URL      string
	Type     string
	Rating   *float64
	Duration *string
	Skills   []string
}

func ptrFloat(v float64) *float64 { return &v }
func ptrString(v string) *string  { return &v }

type ResourcesSeeder struct{}

func (ResourcesSeeder) Name() string { return "resources" }

func (ResourcesSeeder) Run(ctx context.Context, db database.DB) error {
	items := []resourceSeed{
		{
			Title: "Python for Everybody", Provider: "Coursera", URL: "https://www.coursera.org/specializations/python",
			Type: "course", Rating: ptrFloat(4.8), Duration: ptrString("8 weeks"), Skills: []string{"Python"},
		},
		{
			Title: "SQL Tutorial - Full Database Course", Provider: "YouTube", URL: "https://www.youtube.com/watch?v=HXV3zeQKqGY",
			Type: "video", Duration: ptrString("4 hours"), Skills: []string{"SQL"},
		},
		{
			Title: "Statistics Fundamentals", Provider: "Khan Academy", URL: "https://www.khanacademy.org/math/statistics-probability",
			Type: "course", Rating: ptrFloat(4.6), Skills: []string{"Statistics"},
		},
		{
			Title: "Data Visualization with Tableau", Provider: "Udemy", URL: "https://www.udemy.com/course/tableau10",
			Type: "course", Rating: ptrFloat(4.5), Duration: ptrString("12 hours"), Skills: []string{"Data Visualization", "Excel"},
		},
		{
			Title: "The Modern JavaScript Tutorial", Provider: "javascript.info", URL: "https://javascript.info",
			Type: "article", Skills: []string{"JavaScript"},
		},
		{
			Title: "React - The Complete Guide", Provider: "Udemy", URL: "https://www.udemy.com/course/react-the-complete-guide",
			Type: "course", Rating: ptrFloat(4.7), Duration: ptrString("48 hours"), Skills: []string{"React", "TypeScript"},
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

	for _, it := range items {
		ids, err := resolveSkillIDs(skillIDs, it.Skills)
		if err != nil {
			return err
		}
		_, err = tx.Exec(
			ctx,
			`INSERT INTO resources (id, title, provider, url, resource_type, rating, duration, skill_ids)
			 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (title) DO NOTHING`,
			it.Title, it.Provider, it.URL, it.Type, it.Rating, it.Duration, ids,
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
