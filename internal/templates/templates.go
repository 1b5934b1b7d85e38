package templates

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/vango-dev/animate/internal/errors"
)

// Config contains template configuration.
type Config struct {
	// ProjectName is the name of the project.
	ProjectName string

	// Description is a short project description.
	Description string

	// Port is the port written to animate.json. Default: 8080.
	Port int

	// Bucket, Key and Region locate the settings object for the s3 template.
	Bucket string
	Key    string
	Region string

	// Overwrite replaces files that already exist.
	Overwrite bool
}

func (c Config) withDefaults() Config {
	if c.ProjectName == "" {
		c.ProjectName = "site"
	}
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.Key == "" {
		c.Key = "animate/settings.json"
	}
	if c.Region == "" {
		c.Region = "us-east-1"
	}
	return c
}

// Template represents a project template.
type Template struct {
	// Name is the template name.
	Name string

	// Description describes the template.
	Description string

	// Files is a map of relative paths to file contents.
	Files map[string]string
}

// Available templates.
var templates = map[string]*Template{
	"minimal": minimalTemplate(),
	"page":    pageTemplate(),
	"s3":      s3Template(),
}

var funcs = template.FuncMap{
	"json": func(v any) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	},
}

// Get returns a template by name.
func Get(name string) (*Template, error) {
	tmpl, ok := templates[name]
	if !ok {
		return nil, errors.New("E145").
			WithDetail("Template '" + name + "' not found").
			WithSuggestion("Available templates: " + strings.Join(List(), ", "))
	}
	return tmpl, nil
}

// List returns all available template names, sorted.
func List() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Paths returns the template's relative file paths, sorted.
func (t *Template) Paths() []string {
	paths := make([]string, 0, len(t.Files))
	for p := range t.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Create generates the template's files under dir and returns the paths it
// wrote. Existing files are left alone unless cfg.Overwrite is set.
func (t *Template) Create(dir string, cfg Config) ([]string, error) {
	cfg = cfg.withDefaults()

	var written []string
	for _, relPath := range t.Paths() {
		fullPath := filepath.Join(dir, relPath)
		if _, err := os.Stat(fullPath); err == nil && !cfg.Overwrite {
			continue
		}

		tmpl, err := template.New(relPath).Funcs(funcs).Parse(t.Files[relPath])
		if err != nil {
			return written, errors.Newf(errors.CategoryCLI, "invalid template %s: %v", relPath, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, cfg); err != nil {
			return written, errors.Newf(errors.CategoryCLI, "template execute error %s: %v", relPath, err)
		}

		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return written, err
		}
		if err := os.WriteFile(fullPath, buf.Bytes(), 0644); err != nil {
			return written, err
		}
		written = append(written, fullPath)
	}
	return written, nil
}

const projectJSON = `{
  "name": {{json .ProjectName}},
  "server": {
    "port": {{.Port}}
  },
  "settings": {
    "file": "settings.json"
  },
  "dev": {
    "reload": true
  }
}
`

// minimalTemplate returns the minimal template.
func minimalTemplate() *Template {
	return &Template{
		Name:        "minimal",
		Description: "animate.json and an empty settings.json",
		Files: map[string]string{
			"animate.json":  projectJSON,
			"settings.json": "{}\n",
		},
	}
}

// pageTemplate returns the minimal template plus an example page.
func pageTemplate() *Template {
	return &Template{
		Name:        "page",
		Description: "Project with an example page for animate apply",
		Files: map[string]string{
			"animate.json": projectJSON,
			"settings.json": `{
  "duration": 600,
  "once": true
}
`,
			"index.html": `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.ProjectName}}</title>
</head>
<body>
<header class="hero">
<h1>{{.ProjectName}}</h1>
<p>{{.Description}}</p>
</header>
<main>
<section class="card"><h2>One</h2></section>
<section class="card"><h2>Two</h2></section>
<section class="card"><h2>Three</h2></section>
<ul class="steps">
<li>First</li>
<li>Second</li>
<li>Third</li>
</ul>
</main>
</body>
</html>
`,
			"README.md": `# {{.ProjectName}}

{{.Description}}

` + "```" + `bash
# Animate the cards and stagger the list
animate apply -s .card --animation fade-up -s ".steps li" --delay-by-delta 3 index.html -o dist/index.html

# Preview the demo page with live settings reload
animate serve
` + "```" + `

Global defaults live in settings.json. Only values that differ from the
library defaults need to be listed.
`,
		},
	}
}

// s3Template returns a project whose settings come from S3.
func s3Template() *Template {
	return &Template{
		Name:        "s3",
		Description: "Settings read from an S3 object",
		Files: map[string]string{
			"animate.json": `{
  "name": {{json .ProjectName}},
  "server": {
    "port": {{.Port}}
  },
  "settings": {
    "s3": {
      "bucket": {{json .Bucket}},
      "key": {{json .Key}},
      "region": {{json .Region}}
    }
  },
  "dev": {
    "reload": true,
    "pollInterval": "10s"
  }
}
`,
			"settings.json": "{}\n",
			"README.md": `# {{.ProjectName}}

Upload settings.json to s3://{{.Bucket}}/{{.Key}}. A running
'animate serve' polls the object and pushes changes to open pages.

` + "```" + `bash
aws s3 cp settings.json s3://{{.Bucket}}/{{.Key}}
` + "```" + `
`,
		},
	}
}
