package main

import (
	"encoding/json"
	"fmt"
	"html"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/animate/pkg/animate"
	"github.com/vango-dev/animate/pkg/settings"
)

// optionFlags maps descriptor option keys to flag names.
var optionFlags = map[string]string{
	settings.KeyAnimation:       "animation",
	settings.KeyOffset:          "offset",
	settings.KeyDelay:           "delay",
	settings.KeyDuration:        "duration",
	settings.KeyEasing:          "easing",
	settings.KeyOnce:            "once",
	settings.KeyMirror:          "mirror",
	"anchor":                    "anchor",
	settings.KeyAnchorPlacement: "placement",
}

// registerOptionFlags adds one flag per descriptor option except skip.
// Values are kept as strings and coerced by the descriptor.
func registerOptionFlags(cmd *cobra.Command, values map[string]*string, skip ...string) {
	for _, key := range animate.OptionKeys() {
		if slices.Contains(skip, key) {
			continue
		}
		name := optionFlags[key]
		v := new(string)
		values[key] = v
		cmd.Flags().StringVar(v, name, "", fmt.Sprintf("Descriptor %s option", key))
	}
	cmd.Flags().Lookup("once").NoOptDefVal = "true"
	cmd.Flags().Lookup("mirror").NoOptDefVal = "true"
}

// changedOptions returns the options whose flags were set.
func changedOptions(cmd *cobra.Command, values map[string]*string) map[string]any {
	options := make(map[string]any)
	for key, v := range values {
		if cmd.Flags().Changed(optionFlags[key]) {
			options[key] = *v
		}
	}
	return options
}

func attrsCmd(flags *globalFlags) *cobra.Command {
	values := make(map[string]*string)
	var asHTML bool

	cmd := &cobra.Command{
		Use:   "attrs",
		Short: "Print the animation attributes for a set of options",
		Long: `Print the class and data attributes an element gets for the given
options. Options equal to the current global value are omitted, except
data-aos which is always present.

Examples:
  animate attrs --animation=fade-up --delay=200
  animate attrs --once --html
  animate attrs --settings=settings.json --duration=400`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(cmd.Context(), flags)
			if err != nil {
				return err
			}
			d, err := animate.New(store, changedOptions(cmd, values))
			if err != nil {
				return err
			}
			set := d.Attributes()
			if asHTML {
				fmt.Fprintln(cmd.OutOrStdout(), formatHTMLAttrs(set))
				return nil
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(set)
		},
	}

	registerOptionFlags(cmd, values)
	cmd.Flags().BoolVar(&asHTML, "html", false, "Print attributes as HTML instead of JSON")
	return cmd
}

// formatHTMLAttrs renders set as an HTML attribute list in emission order.
func formatHTMLAttrs(set animate.AttributeSet) string {
	parts := make([]string, 0, set.Len()+1)
	if classes := set.Classes(); len(classes) > 0 {
		parts = append(parts, fmt.Sprintf(`class="%s"`, html.EscapeString(strings.Join(classes, " "))))
	}
	for _, key := range set.Keys() {
		v, _ := set.Get(key)
		parts = append(parts, fmt.Sprintf(`%s="%s"`, key, html.EscapeString(v)))
	}
	return strings.Join(parts, " ")
}
