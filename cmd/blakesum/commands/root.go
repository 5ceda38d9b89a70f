package commands

import (
	"github.com/spf13/cobra"

	"blakesum/internal/app"
	"blakesum/internal/buildinfo"
)

var (
	algorithmBits int
	checkMode     bool
	saltSpec      string
)

func Execute() error {
	root := &cobra.Command{
		Use:   "blakesum [flags] [file ...]",
		Short: "Compute or verify salted BLAKE checksums",
		Long: `blakesum prints a BLAKE checksum line for every file argument, or for
standard input when no files are given ("-" also names standard input).
With -c, each argument is read as a saved checksum manifest instead and
every file it names is re-hashed and reported as OK or FAILED.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		Version:      buildinfo.Get().String(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(args)
			if err != nil {
				return err
			}
			a, err := app.New(cfg, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return a.Run()
		},
	}

	root.Flags().IntVarP(&algorithmBits, "algorithm", "a", 256, "digest size in bits (224, 256, 384 or 512)")
	root.Flags().BoolVarP(&checkMode, "check", "c", false, "read checksum manifests and verify the files they name")
	root.Flags().StringVarP(&saltSpec, "salt", "s", "0,0,0,0", "salt as four comma-separated non-negative integers")
	root.Flags().BoolP("version", "v", false, "print version and exit")
	root.SetVersionTemplate("blakesum {{.Version}}\n")

	return root.Execute()
}

// buildConfig validates the flags into the run configuration.
func buildConfig(args []string) (app.Config, error) {
	salt, err := app.ParseSalt(saltSpec)
	if err != nil {
		return app.Config{}, err
	}
	mode := app.ModePrint
	if checkMode {
		mode = app.ModeCheck
	}
	return app.Config{Mode: mode, Bits: algorithmBits, Salt: salt, Paths: args}, nil
}
