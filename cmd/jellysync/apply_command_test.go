package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// stubJellyfin answers the handful of endpoints an apply run touches.
type stubJellyfin struct {
	mu        sync.Mutex
	folders   []map[string]any
	mutations []string
}

func (s *stubJellyfin) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.Method != http.MethodGet {
		s.mutations = append(s.mutations, r.Method+" "+r.URL.Path)
	}

	switch {
	case r.URL.Path == "/System/Info":
		_ = json.NewEncoder(w).Encode(map[string]any{"ServerName": "stub", "Version": "10.9.0"})
	case r.URL.Path == "/Library/VirtualFolders" && r.Method == http.MethodGet:
		_ = json.NewEncoder(w).Encode(s.folders)
	case r.URL.Path == "/Library/VirtualFolders" && r.Method == http.MethodPost:
		s.folders = append(s.folders, map[string]any{
			"Name":   r.URL.Query().Get("name"),
			"ItemId": fmt.Sprintf("item-%d", len(s.folders)+1),
		})
		w.WriteHeader(http.StatusNoContent)
	case r.URL.Path == "/System/Configuration" && r.Method == http.MethodGet:
		_ = json.NewEncoder(w).Encode(map[string]any{"QuickConnectAvailable": false})
	case r.URL.Path == "/ScheduledTasks" && r.Method == http.MethodGet:
		_ = json.NewEncoder(w).Encode([]map[string]any{})
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *stubJellyfin) mutationList() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.mutations...)
}

func writeTestConfig(t *testing.T, serverURL string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jellyfin.config.json")
	content := fmt.Sprintf(`{
  "server": {"url": %q, "api_key": "test-token"},
  "libraries": [{"name": "Movies", "content_type": "movies", "folders": ["/media/movies"]}]
}`, serverURL)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestApplyCreatesLibraryAndRendersReport(t *testing.T) {
	stub := &stubJellyfin{}
	server := httptest.NewServer(stub)
	defer server.Close()

	output, err := execute(t, "apply", "--config", writeTestConfig(t, server.URL))
	if err != nil {
		t.Fatalf("apply: %v\n%s", err, output)
	}

	if !strings.Contains(output, "Movies") || !strings.Contains(output, "create") {
		t.Fatalf("report missing library outcome:\n%s", output)
	}

	var created bool
	for _, call := range stub.mutationList() {
		if call == "POST /Library/VirtualFolders" {
			created = true
		}
	}
	if !created {
		t.Fatalf("library was not created, mutations: %v", stub.mutationList())
	}
}

func TestPlanMakesNoWrites(t *testing.T) {
	stub := &stubJellyfin{}
	server := httptest.NewServer(stub)
	defer server.Close()

	output, err := execute(t, "plan", "--config", writeTestConfig(t, server.URL))
	if err != nil {
		t.Fatalf("plan: %v\n%s", err, output)
	}
	if mutations := stub.mutationList(); len(mutations) != 0 {
		t.Fatalf("plan issued writes: %v", mutations)
	}
	if !strings.Contains(output, "Movies") {
		t.Fatalf("plan should still render the report:\n%s", output)
	}
}

func TestApplyDryRunFlagMakesNoWrites(t *testing.T) {
	stub := &stubJellyfin{}
	server := httptest.NewServer(stub)
	defer server.Close()

	_, err := execute(t, "apply", "--dry-run", "--config", writeTestConfig(t, server.URL))
	if err != nil {
		t.Fatalf("apply --dry-run: %v", err)
	}
	if mutations := stub.mutationList(); len(mutations) != 0 {
		t.Fatalf("dry run issued writes: %v", mutations)
	}
}

func TestApplyReportsUnreachableServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	output, err := execute(t, "apply", "--config", writeTestConfig(t, url))
	if err == nil {
		t.Fatalf("expected connectivity error, output:\n%s", output)
	}
	if !strings.Contains(err.Error(), "connect to "+url) {
		t.Fatalf("error should name the server: %v", err)
	}
}

func TestApplyFailsOnMissingConfig(t *testing.T) {
	_, err := execute(t, "apply", "--config", filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	t.Setenv("JELLYFIN_API_KEY", "env-token")
	path := filepath.Join(t.TempDir(), "jellyfin.config.json")

	output, err := execute(t, "config", "init", "--config", path)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(output, path) {
		t.Fatalf("init should report the written path:\n%s", output)
	}

	// A second init without --overwrite must refuse.
	if _, err := execute(t, "config", "init", "--config", path); err == nil {
		t.Fatal("expected refusal to overwrite existing config")
	}
	if _, err := execute(t, "config", "init", "--overwrite", "--config", path); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	output, err = execute(t, "config", "validate", "--config", path)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	if !strings.Contains(output, "Configuration valid") {
		t.Fatalf("unexpected validate output:\n%s", output)
	}
}
