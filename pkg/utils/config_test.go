package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), ".env"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.App.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.App.Port)
	}
	if cfg.Database.Name != "online_movie_rating" {
		t.Errorf("database = %q", cfg.Database.Name)
	}
	if cfg.Database.Autocommit {
		t.Error("autocommit should default to false")
	}
	if cfg.Database.ConnectTimeout != 5*time.Second {
		t.Errorf("connect timeout = %v", cfg.Database.ConnectTimeout)
	}
	if cfg.Database.MaxConns != 10 {
		t.Errorf("max conns = %d", cfg.Database.MaxConns)
	}
}

func TestLoadConfigFileAndEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "DB_HOST=db.internal\nDB_USER=critic\nDB_AUTOCOMMIT=true\nPORT=9090\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	t.Setenv("DB_HOST", "override.internal")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	tt := []struct {
		name string
		got  any
		want any
	}{
		{name: "environment wins", got: cfg.Database.Host, want: "override.internal"},
		{name: "file user", got: cfg.Database.User, want: "critic"},
		{name: "file autocommit", got: cfg.Database.Autocommit, want: true},
		{name: "file port", got: cfg.App.Port, want: "9090"},
		{name: "unset password", got: cfg.Database.Password, want: ""},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %v, want %v", tc.got, tc.want)
			}
		})
	}
}
