package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vango-dev/animate/internal/errors"
	"github.com/vango-dev/animate/pkg/animate"
	"github.com/vango-dev/animate/pkg/settings"
)

// vocabularies lists the printable vocabularies in display order.
var vocabularies = []struct {
	name    string
	options func() []animate.Option
}{
	{"animations", animate.Animations},
	{"placements", animate.Placements},
	{"easings", animate.Easings},
	{"disable", disableOptions},
}

func disableOptions() []animate.Option {
	var out []animate.Option
	for _, o := range settings.DisableOptions() {
		out = append(out, animate.Option{Value: o.Value, Label: o.Label})
	}
	return out
}

func vocabCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:       "vocab [animations|placements|easings|disable]",
		Short:     "List the accepted option values",
		ValidArgs: []string{"animations", "placements", "easings", "disable"},
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := make(map[string][]animate.Option)
			var names []string
			for _, v := range vocabularies {
				if len(args) == 1 && args[0] != v.name {
					continue
				}
				out[v.name] = v.options()
				names = append(names, v.name)
			}
			if len(names) == 0 {
				return errors.New("E160").
					WithField("vocabulary", args[0]).
					WithSuggestion("Use one of animations, placements, easings, disable")
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for i, name := range names {
				if i > 0 {
					fmt.Fprintln(tw)
				}
				fmt.Fprintf(tw, "%s (%d)\n", name, len(out[name]))
				for _, o := range out[name] {
					value := o.Value
					if value == "" {
						value = `""`
					}
					fmt.Fprintf(tw, "  %s\t%s\n", value, o.Label)
				}
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}
