package cmd

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/asd-xiv/node-utils/fetch"
	"github.com/asd-xiv/node-utils/internal/configs"
	"github.com/asd-xiv/node-utils/jsonfile"
	"github.com/google/uuid"
)

// runNu executes the nu command with args against a temporary config file
// and returns what it wrote to stdout and stderr.
func runNu(t *testing.T, configFile string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("CI", "true")

	ResetGlobalState()
	t.Cleanup(ResetGlobalState)

	if configFile == "" {
		configFile = filepath.Join(t.TempDir(), "config.toml")
	}

	var stdout, stderr bytes.Buffer
	NuCmd.SetOut(&stdout)
	NuCmd.SetErr(&stderr)
	NuCmd.SetArgs(append([]string{"--config", configFile}, args...))

	err := NuCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestRootPrintsBanner(t *testing.T) {
	stdout, _, err := runNu(t, "")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if !strings.Contains(stdout, "nu --help") {
		t.Errorf("banner missing help hint: %q", stdout)
	}
}

func TestTruncateCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default decimals", []string{"truncate", "10.999"}, "10\n"},
		{"two decimals", []string{"truncate", "-p", "2", "10.999"}, "10.99\n"},
		{"several numbers", []string{"truncate", "-p", "3", "0.123456789", "0"}, "0.123\n0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runNu(t, "", tt.args...)
			if err != nil {
				t.Fatalf("Command failed: %v", err)
			}
			if stdout != tt.want {
				t.Errorf("got %q, want %q", stdout, tt.want)
			}
		})
	}

	if _, _, err := runNu(t, "", "truncate", "ten"); err == nil {
		t.Error("expected error for invalid number")
	}
}

func TestHrtimeCommand(t *testing.T) {
	stdout, _, err := runNu(t, "", "hrtime", "65s", "1.234s", "100ms", "552133ns")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if want := "1m 5s\n1.234s\n100ms\n0.552ms\n"; stdout != want {
		t.Errorf("got %q, want %q", stdout, want)
	}

	stdout, _, err = runNu(t, "", "hrtime", "--ns", "5405000")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if stdout != "5.405ms\n" {
		t.Errorf("got %q, want %q", stdout, "5.405ms\n")
	}

	if _, _, err := runNu(t, "", "hrtime", "-5s"); err == nil {
		t.Error("expected error for negative duration")
	}
	if _, _, err := runNu(t, "", "hrtime", "soon"); err == nil {
		t.Error("expected error for invalid duration")
	}
}

func TestPaintCommand(t *testing.T) {
	stdout, _, err := runNu(t, "", "paint", "-s", "red", "hello", "world")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if stdout != "hello world\n" {
		t.Errorf("CI output should be plain, got %q", stdout)
	}

	stdout, _, err = runNu(t, "", "paint", "--force", "-s", "yellow,bold", "Warning!")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if want := "\x1b[1m\x1b[33mWarning!\x1b[0m\n"; stdout != want {
		t.Errorf("got %q, want %q", stdout, want)
	}

	if _, _, err := runNu(t, "", "paint", "-s", "sparkly", "x"); err == nil {
		t.Error("expected error for unknown style")
	}
}

func TestReadCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte(`{"name":"nu","tags":["a"]}`), 0600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	stdout, stderr, err := runNu(t, "", "--level", "info", "read", path)
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	want := "{\n  \"name\": \"nu\",\n  \"tags\": [\n    \"a\"\n  ]\n}\n"
	if stdout != want {
		t.Errorf("got %q, want %q", stdout, want)
	}
	if !strings.Contains(stderr, "INF nu: JSON read path="+path) {
		t.Errorf("expected info log, got %q", stderr)
	}

	stdout, _, err = runNu(t, "", "read", "--compact", path)
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if stdout != `{"name":"nu","tags":["a"]}`+"\n" {
		t.Errorf("compact output = %q", stdout)
	}
}

func TestReadCommandErrors(t *testing.T) {
	_, stderr, err := runNu(t, "", "read", filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, jsonfile.ErrRead) {
		t.Errorf("error = %v, want ErrRead", err)
	}
	if !strings.Contains(stderr, "ERR nu: Failed to read JSON") {
		t.Errorf("expected error log, got %q", stderr)
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte(`{`), 0600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if _, _, err := runNu(t, "", "read", bad); !errors.Is(err, jsonfile.ErrParse) {
		t.Errorf("error = %v, want ErrParse", err)
	}
}

func TestFetchCommand(t *testing.T) {
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Query().Get("page") != "2" {
			t.Errorf("query page = %q, want 2", r.URL.Query().Get("page"))
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("config header not sent, Accept = %q", r.Header.Get("Accept"))
		}
		if r.Header.Get("Authorization") != "Bearer token" {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"name":"John"}` {
			t.Errorf("body = %q", body)
		}
		_, _ = io.WriteString(w, `{"id":1}`)
	}))
	defer srv.Close()

	config := writeConfig(t, "[fetch]\ntimeout = \"5s\"\n[fetch.headers]\nAccept = \"application/json\"\n")
	stdout, stderr, err := runNu(t, config,
		"fetch", "-X", "post", "-q", "page=2", "-H", "Authorization=Bearer token", "-d", `{"name":"John"}`, srv.URL)
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}

	if stdout != "{\n  \"id\": 1\n}\n" {
		t.Errorf("got %q", stdout)
	}
	if _, err := uuid.Parse(requestID); err != nil {
		t.Errorf("X-Request-Id %q is not a UUID: %v", requestID, err)
	}
	wantLog := "SUC nu: POST " + srv.URL + "... done duration="
	if !strings.Contains(stderr, wantLog) || !strings.Contains(stderr, "request="+requestID) {
		t.Errorf("expected %q with request id in %q", wantLog, stderr)
	}
}

func TestFetchCommandStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, stderr, err := runNu(t, "", "fetch", srv.URL)
	if !errors.Is(err, fetch.ErrApplication) {
		t.Errorf("error = %v, want ErrApplication", err)
	}
	if !strings.Contains(stderr, "ERR nu: GET "+srv.URL+"... failed") {
		t.Errorf("expected failure log, got %q", stderr)
	}
}

func TestFetchCommandInvalidData(t *testing.T) {
	_, _, err := runNu(t, "", "fetch", "-d", "{", "http://127.0.0.1:0")
	if !errors.Is(err, jsonfile.ErrParse) {
		t.Errorf("error = %v, want ErrParse", err)
	}
}

func TestLevelFlag(t *testing.T) {
	if _, _, err := runNu(t, "", "--level", "debug", "truncate", "1"); err == nil {
		t.Error("expected error for unknown level")
	}

	_, stderr, err := runNu(t, "", "--level", "info", "--namespace", "calc", "truncate", "1")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if !strings.Contains(stderr, "INF calc: Configuration loaded") {
		t.Errorf("expected namespaced info log, got %q", stderr)
	}
}

func TestSinceLastFlag(t *testing.T) {
	_, stderr, err := runNu(t, "", "--level", "info", "--since-last", "truncate", "1")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if !strings.Contains(stderr, "level=info (") {
		t.Errorf("expected time since last annotation, got %q", stderr)
	}
}

func TestUnknownConfigKeyWarns(t *testing.T) {
	config := writeConfig(t, "[logger]\ncolour = \"red\"\n")

	_, stderr, err := runNu(t, config, "truncate", "1")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if !strings.Contains(stderr, "WRN nu: Unknown config key key=logger.colour") {
		t.Errorf("expected warning, got %q", stderr)
	}
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nu", "config.toml")

	stdout, stderr, err := runNu(t, path, "config", "init")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if stdout != path+"\n" {
		t.Errorf("got %q, want %q", stdout, path+"\n")
	}
	if !strings.Contains(stderr, "SUC nu: Config written") {
		t.Errorf("expected success log, got %q", stderr)
	}

	loaded, _, err := configs.Load(path)
	if err != nil {
		t.Fatalf("Failed to load written config: %v", err)
	}
	if loaded.Logger.Namespace != "nu" {
		t.Errorf("namespace = %q, want nu", loaded.Logger.Namespace)
	}

	if _, _, err := runNu(t, path, "config", "init"); err == nil {
		t.Error("expected error when config already exists")
	}
	if _, _, err := runNu(t, path, "config", "init", "--force"); err != nil {
		t.Errorf("--force should overwrite: %v", err)
	}

	stdout, _, err = runNu(t, path, "--level", "info", "config", "show")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if !strings.Contains(stdout, `level = "info"`) {
		t.Errorf("show should reflect flags, got %q", stdout)
	}
}
