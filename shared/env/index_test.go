package env

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// chdir moves the test into dir and restores the previous cwd afterwards.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestLoadWithoutDotEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("NODE_ENV", "production")
	t.Setenv("QUIZ_CONFIG_DIR", "/tmp/quiz")

	v, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if v.NODE_ENV != "production" {
		t.Errorf("Unexpected NODE_ENV. Expected: production but received %q", v.NODE_ENV)
	}
	if v.QUIZ_CONFIG_DIR != "/tmp/quiz" {
		t.Errorf("Unexpected QUIZ_CONFIG_DIR. Expected: /tmp/quiz but received %q", v.QUIZ_CONFIG_DIR)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	// register for cleanup, then unset so the file value is used
	t.Setenv("QUIZ_CONFIG_DIR", "")
	os.Unsetenv("QUIZ_CONFIG_DIR")
	t.Setenv("NODE_ENV", "")
	os.Unsetenv("NODE_ENV")

	content := "NODE_ENV=production\n# comment\nQUIZ_CONFIG_DIR=./cfg\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	v, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if v.NODE_ENV != "production" {
		t.Errorf("Unexpected NODE_ENV. Expected: production but received %q", v.NODE_ENV)
	}
	if v.QUIZ_CONFIG_DIR != "./cfg" {
		t.Errorf("Unexpected QUIZ_CONFIG_DIR. Expected: ./cfg but received %q", v.QUIZ_CONFIG_DIR)
	}
}

func TestLoadProcessEnvWins(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("NODE_ENV", "staging")

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("NODE_ENV=production\n"), 0600); err != nil {
		t.Fatal(err)
	}

	v, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if v.NODE_ENV != "staging" {
		t.Errorf("Unexpected NODE_ENV. Expected: staging but received %q", v.NODE_ENV)
	}
}

func TestLoadUnset(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("NODE_ENV", "")
	os.Unsetenv("NODE_ENV")

	v, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if v.NODE_ENV != "" {
		t.Errorf("Expected empty NODE_ENV but received %q", v.NODE_ENV)
	}
}

func writeMalformedDotEnv(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("NOT VALID LINE\n"), 0600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMalformedDotEnv(t *testing.T) {
	writeMalformedDotEnv(t)
	t.Setenv("NODE_ENV", "production")
	t.Setenv("QUIZ_CONFIG_DIR", "/tmp/quiz")

	v, err := Load()
	if err == nil {
		t.Error("Expected an error for the malformed .env file")
	}
	if v.NODE_ENV != "production" {
		t.Errorf("Unexpected NODE_ENV. Expected: production but received %q", v.NODE_ENV)
	}
	if v.QUIZ_CONFIG_DIR != "/tmp/quiz" {
		t.Errorf("Unexpected QUIZ_CONFIG_DIR. Expected: /tmp/quiz but received %q", v.QUIZ_CONFIG_DIR)
	}
}

func TestValuesMalformedDotEnv(t *testing.T) {
	writeMalformedDotEnv(t)
	t.Setenv("NODE_ENV", "production")

	loadOnce, values = sync.Once{}, Env{}
	t.Cleanup(func() { loadOnce, values = sync.Once{}, Env{} })

	if got := Values().NODE_ENV; got != "production" {
		t.Errorf("Unexpected NODE_ENV. Expected: production but received %q", got)
	}
}
