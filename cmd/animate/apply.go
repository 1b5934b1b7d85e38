package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/net/html"

	"github.com/vango-dev/animate/internal/errors"
	"github.com/vango-dev/animate/pkg/animate"
	"github.com/vango-dev/animate/pkg/htmlapply"
	"github.com/vango-dev/animate/pkg/render"
	"github.com/vango-dev/animate/pkg/settings"
	"github.com/vango-dev/animate/pkg/vdom"
)

func applyCmd(flags *globalFlags) *cobra.Command {
	var (
		selectors    []string
		animation    string
		delayByDelta int
		delayStep    int
		output       string
		tree         bool
	)
	values := make(map[string]*string)

	cmd := &cobra.Command{
		Use:   "apply [file]",
		Short: "Animate the elements of an HTML document matching selectors",
		Long: `Read an HTML document (a file or stdin), add animation attributes to
every element matching --selector, and inject the library assets and the
settings element when anything matched.

Matches of one selector are staggered: with --delay-by-delta=N match i
gets a delay of (i mod N) * --delay-step milliseconds.

Examples:
  animate apply index.html -s '.card' --animation=fade-up --delay-by-delta=3
  cat page.html | animate apply -s 'section > h2' --once -o out.html
  animate apply index.html -s li --tree`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(selectors) == 0 {
				return errors.New("E160").
					WithField("selector", "").
					WithSuggestion("Pass at least one --selector")
			}
			store, err := loadStore(cmd.Context(), flags)
			if err != nil {
				return err
			}

			var src io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				src = f
			}

			overrides := changedOptions(cmd, values)
			rules := make([]htmlapply.Rule, 0, len(selectors))
			for _, sel := range selectors {
				rules = append(rules, htmlapply.Rule{
					Selector: sel,
					Batch: animate.BatchOptions{
						Animation:    animation,
						DelayByDelta: delayByDelta,
						DelayStep:    delayStep,
						Overrides:    overrides,
					},
				})
			}

			var out bytes.Buffer
			res, err := htmlapply.Transform(&out, src, store, render.DefaultLibraries(), rules...)
			if err != nil {
				return err
			}

			if tree {
				doc, err := html.Parse(&out)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), vdom.Dump(htmlapply.ToVNode(doc)))
			} else if err := writeOutput(cmd, output, out.Bytes()); err != nil {
				return err
			}

			report := cmd.ErrOrStderr()
			for _, sel := range selectors {
				info(report, "%-24s %d", sel, res.Matched[sel])
			}
			if res.Total() == 0 {
				warn(report, "no element matched; document left unchanged")
			} else if output != "" {
				success(report, "animated %d elements into %s", res.Total(), output)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&selectors, "selector", "s", nil, "CSS selector of elements to animate (repeatable)")
	cmd.Flags().StringVar(&animation, "animation", "", "Animation for every match (default: global)")
	cmd.Flags().IntVar(&delayByDelta, "delay-by-delta", 0, "Number of stagger buckets")
	cmd.Flags().IntVar(&delayStep, "delay-step", animate.DefaultDelayStep, "Stagger step in milliseconds")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the document to a file instead of stdout")
	cmd.Flags().BoolVar(&tree, "tree", false, "Print the resulting element tree instead of HTML")

	// --animation is a batch flag here.
	registerOptionFlags(cmd, values, settings.KeyAnimation)
	return cmd
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}
