package cmd

import (
	"fmt"
	"runtime"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const repositorySlug = "s0up4200/mediashelf"

type versionInfo struct {
	Version   string `json:"version" yaml:"version"`
	BuildTime string `json:"build_time" yaml:"build_time"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			format := a.outputFormat(cmd)
			info := versionInfo{
				Version:   version,
				BuildTime: buildTime,
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}
			if format != formatTable {
				return newPrinter(cmd.OutOrStdout(), format).value(info)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "mediashelf %s\n", info.Version)
			fmt.Fprintf(w, "  build time: %s\n", info.BuildTime)
			fmt.Fprintf(w, "  go:         %s\n", info.GoVersion)
			fmt.Fprintf(w, "  platform:   %s\n", info.Platform)
			return nil
		},
	}
}

func newSelfUpdateCmd(a *app) *cobra.Command {
	var checkOnly bool

	cmd := &cobra.Command{
		Use:   "update-self",
		Short: "Update mediashelf to the latest release",
		Args:  cobra.NoArgs,
		// only logging is needed, the media API is not contacted
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.logger = setupLogger(loggingFromFlags(a), cmd.ErrOrStderr())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			current, err := semver.ParseTolerant(version)
			if err != nil {
				return fmt.Errorf("cannot update a development build (version %q)", version)
			}

			latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repositorySlug))
			if err != nil {
				return fmt.Errorf("failed to detect latest release: %w", err)
			}
			if !found {
				return fmt.Errorf("no release found for %s/%s", runtime.GOOS, runtime.GOARCH)
			}

			if latest.LessOrEqual(current.String()) {
				fmt.Fprintf(out, "mediashelf %s is up to date\n", current)
				return nil
			}

			if checkOnly {
				fmt.Fprintf(out, "mediashelf %s is available (current %s)\n", latest.Version(), current)
				return nil
			}

			exe, err := selfupdate.ExecutablePath()
			if err != nil {
				return fmt.Errorf("failed to locate executable: %w", err)
			}

			a.logger.Info().
				Str("from", current.String()).
				Str("to", latest.Version()).
				Str("asset", latest.AssetName).
				Msg("Updating mediashelf")

			if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
				return fmt.Errorf("failed to update binary: %w", err)
			}

			fmt.Fprintf(out, "Updated mediashelf to %s\n", latest.Version())
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkOnly, "check", false, "only report whether an update is available")

	return cmd
}
