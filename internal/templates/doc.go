// Package templates provides the project scaffolds written by animate init.
//
// # Available Templates
//
//   - minimal: animate.json and an empty settings.json
//   - page: adds an example index.html to run animate apply against
//   - s3: settings read from an S3 object, plus the document to upload
//
// # Usage
//
//	tmpl, err := templates.Get("page")
//	if err != nil {
//	    return err
//	}
//	written, err := tmpl.Create(dir, templates.Config{ProjectName: "site"})
//
// # Template Variables
//
//	{{.ProjectName}}  - Name of the project
//	{{.Description}}  - Project description
//	{{.Port}}         - Port for animate serve
//	{{.Bucket}}       - S3 bucket (s3 template)
//	{{.Key}}          - S3 object key (s3 template)
//	{{.Region}}       - S3 region (s3 template)
//
// The json function quotes a value for use inside a JSON file.
package templates
