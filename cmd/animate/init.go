package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/animate/internal/config"
	"github.com/vango-dev/animate/internal/errors"
	"github.com/vango-dev/animate/internal/templates"
)

func initCmd() *cobra.Command {
	var (
		force    bool
		template string
		tcfg     templates.Config
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a project from a template",
		Long: `Create animate.json and settings.json in dir (default: the current
directory) from a template. Templates: ` + strings.Join(templates.List(), ", ") + `.

An existing project is kept unless --force is given.`,
		Example: `  animate init
  animate init site --template page
  animate init site --template s3 --bucket my-assets`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			tmpl, err := templates.Get(template)
			if err != nil {
				return err
			}
			if template == "s3" && tcfg.Bucket == "" {
				return errors.New("E160").
					WithDetail("the s3 template needs --bucket")
			}
			if config.Exists(dir) && !force {
				return errors.New("E120").
					WithDetail(filepath.Join(dir, config.ConfigFileName) + " already exists").
					WithSuggestion("Pass --force to overwrite it")
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}

			if tcfg.ProjectName == "" {
				if abs, err := filepath.Abs(dir); err == nil {
					tcfg.ProjectName = filepath.Base(abs)
				}
			}
			tcfg.Overwrite = force
			written, err := tmpl.Create(dir, tcfg)
			if err != nil {
				return err
			}

			cfg, err := config.Load(dir)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, path := range written {
				success(out, "created %s", path)
			}
			if template == "page" {
				info(out, "run 'animate apply -s .card %s' to animate the example page", filepath.Join(dir, "index.html"))
			}
			info(out, "edit the settings and run 'animate serve'")
			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&force, "force", "f", false, "Overwrite existing files")
	f.StringVarP(&template, "template", "t", "minimal", "Project template")
	f.StringVar(&tcfg.ProjectName, "name", "", "Project name (default: directory name)")
	f.StringVar(&tcfg.Description, "description", "", "Project description")
	f.IntVar(&tcfg.Port, "port", config.DefaultPort, "Port for animate serve")
	f.StringVar(&tcfg.Bucket, "bucket", "", "S3 bucket holding the settings (s3 template)")
	f.StringVar(&tcfg.Key, "key", "", "S3 object key (s3 template)")
	f.StringVar(&tcfg.Region, "region", "", "S3 region (s3 template)")
	return cmd
}
