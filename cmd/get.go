package cmd

import (
	"github.com/spf13/cobra"
)

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id> [id...]",
		Short: "Show one or more media items by ID",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.printer(cmd)

			if len(args) == 1 {
				doc, err := a.client.GetMediaByID(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return p.document(doc)
			}

			result := a.catalog.GetMany(cmd.Context(), args)
			for _, res := range result.Results {
				if res.Err != nil {
					continue
				}
				if err := p.document(res.Doc); err != nil {
					return err
				}
			}
			return result.Err()
		},
	}
}
