package templates

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"minimal", false},
		{"page", false},
		{"s3", false},
		{"nonexistent", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := Get(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error")
				}
				if !strings.Contains(err.Error(), "E145") {
					t.Errorf("error = %v, want E145", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tmpl.Name != tt.name {
				t.Errorf("Name = %q, want %q", tmpl.Name, tt.name)
			}
			if tmpl.Description == "" {
				t.Error("Description should not be empty")
			}
		})
	}
}

func TestList(t *testing.T) {
	got := strings.Join(List(), ",")
	if got != "minimal,page,s3" {
		t.Errorf("List() = %s", got)
	}
}

func readJSON(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	var v map[string]any
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("%s is not valid JSON: %v\n%s", path, err, data)
	}
	return v
}

func TestTemplate_Create(t *testing.T) {
	tests := []struct {
		template string
		files    []string
	}{
		{"minimal", []string{"animate.json", "settings.json"}},
		{"page", []string{"README.md", "animate.json", "index.html", "settings.json"}},
		{"s3", []string{"README.md", "animate.json", "settings.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			dir := t.TempDir()
			tmpl, _ := Get(tt.template)
			written, err := tmpl.Create(dir, Config{
				ProjectName: `my "site"`,
				Description: "Scroll animations",
				Bucket:      "assets",
			})
			if err != nil {
				t.Fatalf("Create() error: %v", err)
			}
			if len(written) != len(tt.files) {
				t.Errorf("wrote %d files, want %d", len(written), len(tt.files))
			}
			for _, f := range tt.files {
				if _, err := os.Stat(filepath.Join(dir, f)); err != nil {
					t.Errorf("missing %s", f)
				}
			}

			project := readJSON(t, filepath.Join(dir, "animate.json"))
			if project["name"] != `my "site"` {
				t.Errorf("name = %v", project["name"])
			}
			readJSON(t, filepath.Join(dir, "settings.json"))
		})
	}
}

func TestTemplate_Create_S3(t *testing.T) {
	dir := t.TempDir()
	tmpl, _ := Get("s3")
	if _, err := tmpl.Create(dir, Config{Bucket: "assets"}); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	project := readJSON(t, filepath.Join(dir, "animate.json"))
	s3 := project["settings"].(map[string]any)["s3"].(map[string]any)
	if s3["bucket"] != "assets" || s3["key"] != "animate/settings.json" || s3["region"] != "us-east-1" {
		t.Errorf("s3 = %v", s3)
	}
	readme, _ := os.ReadFile(filepath.Join(dir, "README.md"))
	if !strings.Contains(string(readme), "s3://assets/animate/settings.json") {
		t.Errorf("README should name the object:\n%s", readme)
	}
}

func TestTemplate_Create_KeepsExisting(t *testing.T) {
	dir := t.TempDir()
	settingsPath := filepath.Join(dir, "settings.json")
	if err := os.WriteFile(settingsPath, []byte(`{"once":true}`), 0644); err != nil {
		t.Fatal(err)
	}

	tmpl, _ := Get("minimal")
	written, err := tmpl.Create(dir, Config{})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if len(written) != 1 || filepath.Base(written[0]) != "animate.json" {
		t.Errorf("written = %v", written)
	}
	if data, _ := os.ReadFile(settingsPath); string(data) != `{"once":true}` {
		t.Errorf("existing settings.json was replaced: %s", data)
	}

	if _, err := tmpl.Create(dir, Config{Overwrite: true}); err != nil {
		t.Fatalf("Create(Overwrite) error: %v", err)
	}
	if data, _ := os.ReadFile(settingsPath); string(data) != "{}\n" {
		t.Errorf("Overwrite should replace settings.json: %s", data)
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	if cfg.ProjectName != "site" || cfg.Port != 8080 || cfg.Key == "" || cfg.Region == "" {
		t.Errorf("withDefaults() = %+v", cfg)
	}
	cfg = Config{ProjectName: "x", Port: 9000}.withDefaults()
	if cfg.ProjectName != "x" || cfg.Port != 9000 {
		t.Errorf("withDefaults() overrode set fields: %+v", cfg)
	}
}
