package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/s0up4200/mediashelf/mediaapi"
)

type createOptions struct {
	title       string
	description string
	genres      []string
	rating      float64
	status      string
	mediaType   string
	fromFile    string
}

func newCreateCmd(a *app) *cobra.Command {
	opts := &createOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a media item to the catalog",
		Long: `Add a media item to the catalog.

The item is validated locally before it is sent. With --from-file the JSON
document is sent as is, use "-" to read it from stdin.`,
		Example: `  mediashelf create --title Alien --type movie --status watched --rating 4.5 --genre Horror --genre Sci-Fi
  mediashelf create --from-file item.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var payload any
			if opts.fromFile != "" {
				doc, err := readPayload(cmd, opts.fromFile)
				if err != nil {
					return err
				}
				payload = doc
			} else {
				media, err := opts.media()
				if err != nil {
					return err
				}
				payload = media
			}

			doc, err := a.client.CreateMedia(cmd.Context(), payload)
			if err != nil {
				return err
			}

			p := a.printer(cmd)
			if p.format == formatTable {
				p.success("Media created")
			}
			return p.document(doc)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.title, "title", "", "title")
	flags.StringVar(&opts.description, "description", "", "description")
	flags.StringArrayVar(&opts.genres, "genre", nil, "genre (repeatable)")
	flags.Float64Var(&opts.rating, "rating", 0, "rating between 0 and 5")
	flags.StringVar(&opts.status, "status", "", "status: watching, watched, dropped, on-hold or plan-to-watch")
	flags.StringVar(&opts.mediaType, "type", "", "type: movie or show")
	flags.StringVar(&opts.fromFile, "from-file", "", "read the JSON payload from a file")
	cmd.MarkFlagsMutuallyExclusive("from-file", "title")

	return cmd
}

func (o *createOptions) media() (*mediaapi.Media, error) {
	media := &mediaapi.Media{
		Title:       o.title,
		Description: o.description,
		Genres:      o.genres,
		Rating:      o.rating,
	}
	if media.Genres == nil {
		media.Genres = []string{}
	}

	if o.status != "" {
		status, err := mediaapi.ParseMediaStatus(o.status)
		if err != nil {
			return nil, err
		}
		media.Status = status
	}
	if o.mediaType != "" {
		mediaType, err := mediaapi.ParseMediaType(o.mediaType)
		if err != nil {
			return nil, err
		}
		media.Type = mediaType
	}

	if err := media.Validate(); err != nil {
		return nil, err
	}
	return media, nil
}

// readPayload reads a JSON document from path, or stdin when path is "-"
func readPayload(cmd *cobra.Command, path string) (any, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse payload: %w", err)
	}
	return doc, nil
}
