package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newDeleteCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <id> [id...]",
		Aliases: []string{"rm"},
		Short:   "Delete media items",
		Long: `Delete one or more media items. Deletions run concurrently and a failed
deletion does not stop the others.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				confirmed, err := confirm(cmd, fmt.Sprintf("Delete %d media %s?", len(args), plural(len(args), "item", "items")))
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			result := a.catalog.DeleteMany(cmd.Context(), args)

			p := a.printer(cmd)
			if p.format == formatTable {
				for _, res := range result.Results {
					if res.Err == nil {
						p.success("Deleted %s", res.ID)
					}
				}
			} else if err := p.value(deleteSummary(result.Succeeded(), len(result.Failed()))); err != nil {
				return err
			}

			return result.Err()
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	return cmd
}

func deleteSummary(deleted, failed int) map[string]int {
	return map[string]int{"deleted": deleted, "failed": failed}
}

// confirm asks a yes/no question on the command's input
func confirm(cmd *cobra.Command, question string) (bool, error) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", question)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return false, fmt.Errorf("failed to read input: %w", err)
		}
		// EOF
		fmt.Fprintln(cmd.OutOrStdout())
		return false, nil
	}

	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
