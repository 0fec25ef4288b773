package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/s0up4200/mediashelf/mediaapi"
)

type updateOptions struct {
	title       string
	description string
	genres      []string
	rating      float64
	status      string
}

func newUpdateCmd(a *app) *cobra.Command {
	opts := &updateOptions{}

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a media item",
		Long: `Change fields of a media item. Only the flags that are given are sent.`,
		Example: `  mediashelf update 64f1c2 --status watched --rating 4`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			update, err := opts.update(cmd)
			if err != nil {
				return err
			}

			doc, err := a.client.UpdateMedia(cmd.Context(), args[0], update)
			if err != nil {
				return err
			}

			p := a.printer(cmd)
			if p.format == formatTable {
				p.success("Media %s updated", args[0])
			}
			return p.document(doc)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.title, "title", "", "new title")
	flags.StringVar(&opts.description, "description", "", "new description")
	flags.StringArrayVar(&opts.genres, "genre", nil, "replace genres (repeatable)")
	flags.Float64Var(&opts.rating, "rating", 0, "new rating between 0 and 5")
	flags.StringVar(&opts.status, "status", "", "new status")

	return cmd
}

func (o *updateOptions) update(cmd *cobra.Command) (*mediaapi.MediaUpdate, error) {
	flags := cmd.Flags()
	update := &mediaapi.MediaUpdate{}

	if flags.Changed("title") {
		update.Title = &o.title
	}
	if flags.Changed("description") {
		update.Description = &o.description
	}
	if flags.Changed("genre") {
		update.Genres = o.genres
	}
	if flags.Changed("rating") {
		update.Rating = &o.rating
	}
	if flags.Changed("status") {
		status, err := mediaapi.ParseMediaStatus(o.status)
		if err != nil {
			return nil, err
		}
		update.Status = &status
	}

	if update.IsEmpty() {
		return nil, errors.New("nothing to update: pass at least one field flag")
	}
	if err := update.Validate(); err != nil {
		return nil, err
	}
	return update, nil
}
