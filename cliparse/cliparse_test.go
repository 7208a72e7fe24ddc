// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")

	cfg, err := ParseFlags([]string{"-env-file", ""})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabasePostgres {
		t.Errorf("expected postgres, got %q", cfg.DatabaseType)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-env-file", ""})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabaseSQLite {
		t.Errorf("expected default type sqlite, got %q", cfg.DatabaseType)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_TYPE", "")

	cfg, err := ParseFlags([]string{"-d", "file:test.db", "-env-file", ""})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", cfg.Port)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_TYPE", "")
	t.Setenv("PORT", "")

	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "missing database url", args: []string{"-env-file", ""}},
		{name: "unsupported type", args: []string{"-d", "x", "-t", "oracle", "-env-file", ""}},
		{name: "bad port env", args: []string{"-d", "x", "-env-file", ""}, env: map[string]string{"PORT": "abc"}},
		{name: "unknown flag", args: []string{"-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseFlags_EnvFile(t *testing.T) {
	// godotenv sets variables with os.Setenv; register them so t.Setenv restores them
	t.Setenv("DATABASE_URL", "")
	os.Unsetenv("DATABASE_URL")
	t.Setenv("DATABASE_TYPE", "")
	os.Unsetenv("DATABASE_TYPE")

	path := filepath.Join(t.TempDir(), "test.env")
	content := "DATABASE_URL=root:@tcp(127.0.0.1:3306)/dcr_db\nDATABASE_TYPE=mysql\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFlags([]string{"-env-file", path})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DatabaseType != DatabaseMySQL {
		t.Errorf("expected mysql from env file, got %q", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "root:@tcp(127.0.0.1:3306)/dcr_db" {
		t.Errorf("unexpected database url %q", cfg.DatabaseURL)
	}
}

func TestParseFlags_MissingEnvFileIgnored(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.env")
	if _, err := ParseFlags([]string{"-d", "file:test.db", "-env-file", missing}); err != nil {
		t.Fatalf("missing env file should be ignored: %v", err)
	}
}
