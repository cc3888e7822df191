package main

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/egandro/dereplicator-adapter/pkg/adapter"
	"github.com/egandro/dereplicator-adapter/pkg/config"
	"github.com/egandro/dereplicator-adapter/pkg/executor"
)

const longDescription = `Dereplication of peptidic natural products (e.g. NRPs or RiPPs) through
database search of tandem mass spectra.

Dereplicator (a part of NPDtools) must be installed. The adapter runs

    <executable> <in> -o <tmpdir> --db-path <database>

in a temporary directory and copies significant_matches.tsv to --out.
Settings are taken from the command line only; a param file is not supported.

Reference:
  Mohimani H, Gurevich A, et al. Dereplication of peptidic natural products
  through database search of mass spectra. Nature Chemical Biology 2017;
  13: 30-37. doi:10.1038/nchembio.2219`

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts adapter.Options
	var configFile string
	var logLevel string
	var logFile string
	var quiet bool

	cmd := &cobra.Command{
		Use:           "dereplicator-adapter",
		Short:         "Run Dereplicator on a spectra file and collect its significant matches",
		Long:          longDescription,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load(configFile)
			applyConfig(cmd, cfg, &opts, &logLevel, &logFile)

			log, closeLog, err := setupLogger(logLevel, logFile, opts.Debug, stderr)
			if err != nil {
				return err
			}
			defer closeLog()

			a := adapter.New(&executor.DefaultExecutor{}, afero.NewOsFs(), log)
			a.TempDir = cfg.TempDir
			if !quiet {
				a.Progress = newProgress(stderr, " Running Dereplicator...")
			}

			res, err := a.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if logFile != "" {
				// The status line went to the log file.
				fmt.Fprintf(stdout, "Results are in %s\n", res.Output)
			}
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &flagError{err: err}
	})

	cmd.PersistentFlags().StringVar(&configFile, "config", config.ConstantConfigFilename, "Path to config file")
	cmd.PersistentFlags().StringVar(&opts.Executable, "executable", config.DefaultExecutable,
		"Python wrapper for Dereplicator. May be skipped if the wrapper is on PATH and executable")

	cmd.Flags().StringVar(&opts.In, "in", "", "Input spectra file (mzXML, MGF, mzML, mzdata)")
	cmd.Flags().StringVar(&opts.Database, "database", "",
		"Molecular database directory containing chemical structures in MOL format and a library.info description file")
	cmd.Flags().StringVar(&opts.Out, "out", "", "Output file (csv, tsv, txt), identification results will be saved here")
	cmd.Flags().BoolVar(&opts.Debug, "debug", config.DefaultDebug, "Show Dereplicator output and debug logging")
	cmd.Flags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "Log level (debug, info, notice, warn, error)")
	cmd.Flags().StringVar(&logFile, "log-file", config.DefaultLogFile, "Path to log file (default stderr)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Disable progress spinner")
	return cmd
}

// applyConfig fills every option the user did not set on the command line from cfg.
func applyConfig(cmd *cobra.Command, cfg *config.Config, opts *adapter.Options, logLevel, logFile *string) {
	flags := cmd.Flags()
	if !flags.Changed("executable") {
		opts.Executable = cfg.Executable
	}
	if !flags.Changed("debug") {
		opts.Debug = cfg.Debug
	}
	if !flags.Changed("log-level") {
		*logLevel = cfg.LogLevel
	}
	if !flags.Changed("log-file") {
		*logFile = cfg.LogFile
	}
}
