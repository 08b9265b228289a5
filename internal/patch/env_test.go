package patch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAppendEnvBlock(t *testing.T) {
	path := filepath.Join(t.TempDir(), EnvFile)
	if err := os.WriteFile(path, []byte("APP_ENV=development\n"), 0644); err != nil {
		t.Fatal(err)
	}

	appended, err := AppendEnvBlock(path, "REDIS_URL", "# Redis configuration\nREDIS_URL=redis://localhost:6379/0\n")
	if err != nil {
		t.Fatalf("AppendEnvBlock() error: %v", err)
	}
	if !appended {
		t.Error("appended = false, want true")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.Contains(content, "APP_ENV=development") {
		t.Error("existing content was lost")
	}
	if !strings.Contains(content, "REDIS_URL=redis://localhost:6379/0") {
		t.Errorf("block not appended:\n%s", content)
	}
}

func TestAppendEnvBlockSentinelPresent(t *testing.T) {
	path := filepath.Join(t.TempDir(), EnvFile)
	original := "REDIS_URL=redis://prod:6379/0\n"
	if err := os.WriteFile(path, []byte(original), 0644); err != nil {
		t.Fatal(err)
	}

	appended, err := AppendEnvBlock(path, "REDIS_URL", "REDIS_URL=redis://localhost:6379/0\n")
	if err != nil {
		t.Fatal(err)
	}
	if appended {
		t.Error("appended = true despite sentinel present")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != original {
		t.Errorf("file changed: %q", data)
	}
}

func TestAppendEnvBlockCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), EnvFile)

	appended, err := AppendEnvBlock(path, "RABBITMQ_URL", "RABBITMQ_URL=amqp://localhost/\n")
	if err != nil {
		t.Fatal(err)
	}
	if !appended {
		t.Error("appended = false, want true")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("env file not created: %v", err)
	}
	if got, want := string(data), "RABBITMQ_URL=amqp://localhost/\n"; got != want {
		t.Errorf("content = %q, want %q", got, want)
	}
}
