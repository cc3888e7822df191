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

func newCheckCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Resolve the Dereplicator executable and print its canonical path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, _ := cmd.Flags().GetString("config")
			executable, _ := cmd.Flags().GetString("executable")
			if !cmd.Flags().Changed("executable") {
				executable = config.Load(configFile).Executable
			}

			a := adapter.New(&executor.DefaultExecutor{}, afero.NewOsFs(), nil)
			path, err := a.ResolveExecutable(executable)
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, path)
			return nil
		},
	}
}
