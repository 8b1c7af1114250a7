package migration

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoadMigrations_SortsByVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"V10__add_tasks.sql": {Data: []byte("CREATE TABLE tasks (id UUID);")},
		"V2__add_skills.sql": {Data: []byte("CREATE TABLE skills (id UUID);")},
		"V1__init.sql":       {Data: []byte("CREATE TABLE users (id UUID);")},
		"README.md":          {Data: []byte("not a migration")},
	}

	migs, err := loadMigrations(fsys, "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) != 3 {
		t.Fatalf("expected 3 migrations, got %d", len(migs))
	}
	for i, want := range []int64{1, 2, 10} {
		if migs[i].Version != want {
			t.Fatalf("position %d: expected version %d, got %d", i, want, migs[i].Version)
		}
	}
	if migs[2].Name != "add_tasks" {
		t.Fatalf("unexpected name: %q", migs[2].Name)
	}
	if migs[0].Checksum == "" || migs[0].Checksum == migs[1].Checksum {
		t.Fatalf("expected distinct non-empty checksums")
	}
}

func TestLoadMigrations_DuplicateVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"V1__init.sql":  {Data: []byte("SELECT 1;")},
		"V1__again.sql": {Data: []byte("SELECT 2;")},
	}

	_, err := loadMigrations(fsys, "")
	if err == nil || !strings.Contains(err.Error(), "duplicate migration version") {
		t.Fatalf("expected duplicate version error, got %v", err)
	}
}

func TestLoadMigrations_EmptyFile(t *testing.T) {
	fsys := fstest.MapFS{
		"V1__init.sql": {Data: []byte("   \n")},
	}

	_, err := loadMigrations(fsys, "")
	if err == nil || !strings.Contains(err.Error(), "empty migration file") {
		t.Fatalf("expected empty file error, got %v", err)
	}
}

func TestLoadMigrations_MissingDir(t *testing.T) {
	migs, err := loadMigrations(fstest.MapFS{}, "db/migrations")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if migs != nil {
		t.Fatalf("expected nil migrations for missing dir, got %v", migs)
	}
}
