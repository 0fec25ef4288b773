package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/mediashelf/content"
)

func newAboutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "about [section]",
		Short: "Explain how the catalog client and backend work",
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return sectionKeys(), cobra.ShellCompDirectiveNoFileComp
		},
		// static content, no config or client needed
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			sections := content.Sections()
			if len(args) == 1 {
				section, ok := content.Lookup(args[0])
				if !ok {
					return fmt.Errorf("unknown section %q (available: %s)", args[0], strings.Join(sectionKeys(), ", "))
				}
				sections = []content.Section{section}
			}
			return newPrinter(cmd.OutOrStdout(), a.outputFormat(cmd)).sections(sections)
		},
	}
}

func sectionKeys() []string {
	var keys []string
	for _, s := range content.Sections() {
		keys = append(keys, s.Key)
	}
	return keys
}
