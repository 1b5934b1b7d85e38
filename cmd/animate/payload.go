package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/vango-dev/animate/pkg/animate"
	"github.com/vango-dev/animate/pkg/settings"
)

func payloadCmd(flags *globalFlags) *cobra.Command {
	var (
		wrap bool
		diff bool
	)

	cmd := &cobra.Command{
		Use:   "payload",
		Short: "Print the client bootstrap payload",
		Long: `Print the global settings that differ from the library defaults,
without the animation. This is what the page hands to AOS.init.

With --wrap the payload is nested as the page settings element holds it:
{"neoAnimate": {"defaults": {...}}}.

With --diff the full non-default settings are printed, animation
included, in the settings file format.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(cmd.Context(), flags)
			if err != nil {
				return err
			}
			if diff {
				return settings.Encode(cmd.OutOrStdout(), store)
			}

			var v any = animate.Payload(store)
			if wrap {
				v = animate.PageAttachments(store).Settings
				if v == nil {
					v = map[string]any{}
				}
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(v)
		},
	}

	cmd.Flags().BoolVar(&wrap, "wrap", false, "Nest the payload under neoAnimate.defaults")
	cmd.Flags().BoolVar(&diff, "diff", false, "Print every non-default setting")
	return cmd
}
