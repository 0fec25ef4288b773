package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newGenerateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <count>",
		Short: "Ask the backend to generate random media",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("invalid count %q: must be a positive integer", args[0])
			}

			doc, err := a.client.GenerateRandomMedia(cmd.Context(), n)
			if err != nil {
				return err
			}

			a.logger.Debug().Int("count", n).Msg("Generated random media")
			return a.printer(cmd).document(doc)
		},
	}
}
