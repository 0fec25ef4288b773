package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/s0up4200/mediashelf/catalog"
	"github.com/s0up4200/mediashelf/mediaapi"
)

type listOptions struct {
	genre  string
	sort   string
	order  string
	page   int
	limit  int
	params []string

	where     string
	sortLocal string
	desc      bool
	max       int
}

func newListCmd(a *app) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List media from the catalog",
		Long: `List media from the catalog.

Server-side parameters (--genre, --sort, --order, --page, --limit, --param)
are sent as query string options. --where, --sort-local and --max refine the
returned page locally.

Filter expressions can reference Title, Description, Genres, Rating, Status
and Type, plus the helpers hasGenre, isMovie, contains, startsWith, endsWith,
lower and upper.`,
		Example: `  mediashelf list --genre Drama --sort rating --order desc
  mediashelf list --where 'Rating >= 4 && isMovie()'
  mediashelf list --param year=1999 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := opts.query(cmd.Flags())
			if err != nil {
				return err
			}

			page, err := a.catalog.Load(cmd.Context(), query)
			if err != nil {
				return err
			}

			media, err := page.Typed()
			if err != nil {
				return err
			}

			media, err = a.catalog.Refine(media, catalog.RefineOptions{
				Where:  opts.where,
				SortBy: opts.sortLocal,
				Desc:   opts.desc,
				Limit:  opts.max,
			})
			if err != nil {
				return err
			}

			return a.printer(cmd).media(media)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.genre, "genre", "", "only return media of this genre")
	flags.StringVar(&opts.sort, "sort", "", "server-side sort field")
	flags.StringVar(&opts.order, "order", "", "server-side sort order (asc or desc)")
	flags.IntVar(&opts.page, "page", 0, "page number")
	flags.IntVar(&opts.limit, "limit", 0, "page size")
	flags.StringArrayVar(&opts.params, "param", nil, "extra query parameter as key=value (repeatable)")
	flags.StringVar(&opts.where, "where", "", "filter expression evaluated on the returned page")
	flags.StringVar(&opts.sortLocal, "sort-local", "", "sort the returned page by "+strings.Join(catalog.SortFields(), ", "))
	flags.BoolVar(&opts.desc, "desc", false, "reverse --sort-local")
	flags.IntVar(&opts.max, "max", 0, "show at most N items after refining")

	return cmd
}

// query builds the query options. Flags left unset are added as absent
// values so they never reach the query string.
func (o *listOptions) query(flags *pflag.FlagSet) (*mediaapi.QueryOptions, error) {
	set := func(name string, value any) any {
		if !flags.Changed(name) {
			return nil
		}
		return value
	}

	query := mediaapi.NewQueryOptions().
		Add(mediaapi.QueryGenre, set("genre", o.genre)).
		Add(mediaapi.QuerySort, set("sort", o.sort)).
		Add(mediaapi.QueryOrder, set("order", o.order)).
		Add(mediaapi.QueryPage, set("page", o.page)).
		Add(mediaapi.QueryLimit, set("limit", o.limit))

	for _, param := range o.params {
		key, value, ok := strings.Cut(param, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --param %q: expected key=value", param)
		}
		if !validParamKey(key) {
			return nil, fmt.Errorf("invalid --param key %q: only letters, digits and -._~ are allowed", key)
		}
		query.Add(key, value)
	}

	return query, nil
}

// validParamKey reports whether key needs no escaping in a query string.
// Keys are sent verbatim.
func validParamKey(key string) bool {
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '.', r == '_', r == '~':
		default:
			return false
		}
	}
	return true
}
