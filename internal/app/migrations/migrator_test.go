package migrations

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMigrationVersion(t *testing.T) {
	cases := map[string]string{
		"001_init.sql":              "001",
		"migrations/002_add_x.sql":  "002",
		"003_final_tests_table.sql": "003",
	}
	for in, want := range cases {
		if got := MigrationVersion(in); got != want {
			t.Errorf("MigrationVersion(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPendingFilesSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"002_b.sql", "001_a.sql", "README.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("--"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "003_dir.sql"), 0o700); err != nil {
		t.Fatal(err)
	}

	files, err := PendingFiles(dir)
	if err != nil {
		t.Fatalf("PendingFiles: %v", err)
	}
	if len(files) != 2 || filepath.Base(files[0]) != "001_a.sql" || filepath.Base(files[1]) != "002_b.sql" {
		t.Fatalf("unexpected files: %v", files)
	}
}

func TestMigrationFilesShipWithRepo(t *testing.T) {
	files, err := PendingFiles(filepath.Join("..", "..", "..", "migrations"))
	if err != nil {
		t.Fatalf("PendingFiles: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("expected at least one migration")
	}
}
