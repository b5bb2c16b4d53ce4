package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crsettings/settingsrouter"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve PATH...",
	Short: "Resolve paths to routes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(cmd)
		if err != nil {
			return err
		}
		r, err := settingsrouter.New(opts...)
		if err != nil {
			return err
		}
		defer r.Close()

		out := cmd.OutOrStdout()
		missing := 0
		for _, p := range args {
			route := r.RouteForPath(p)
			if route == nil {
				fmt.Fprintf(out, "%s -> (no route)\n", p)
				missing++
				continue
			}
			fmt.Fprintf(out, "%s -> %s %s\n", p, route.Name(), route.AbsolutePath())
		}

		if missing > 0 {
			return fmt.Errorf("%d of %d paths did not resolve", missing, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
