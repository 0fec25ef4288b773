package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/mediashelf/mediaapi"
)

func newHealthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the media API is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.client.Health(cmd.Context())
			if err != nil {
				return err
			}

			p := a.printer(cmd)
			if p.format != formatTable {
				return p.value(doc)
			}

			var resp mediaapi.GenericResponse
			if err := mediaapi.Decode(doc, &resp); err != nil {
				return err
			}
			p.success("%s is up (%s)", a.client.BaseURL(), orDash(resp.Message))
			return nil
		},
	}
}
