package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crsettings/settingsrouter"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the route tree",
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
		for _, route := range r.Routes().All() {
			fmt.Fprintf(out, "%s%-*s %s%s\n",
				strings.Repeat("  ", chainLen(route)),
				32-2*chainLen(route), route.Name(), route.Path(), describe(route))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
}

// chainLen counts ancestors, which differs from Depth for routes under depth-0 groups.
func chainLen(r *settingsrouter.Route) int {
	n := 0
	for p := r.Parent(); p != nil; p = p.Parent() {
		n++
	}
	return n
}

func describe(r *settingsrouter.Route) string {
	var tags []string
	if r.Section() != "" {
		tags = append(tags, "section="+r.Section())
	}
	if r.IsSubpage() {
		tags = append(tags, "subpage")
	}
	if r.IsNavigableDialog() {
		tags = append(tags, "dialog")
	}
	if r.IsGroup() {
		tags = append(tags, "forward="+r.Forward().Name())
	}
	if len(tags) == 0 {
		return ""
	}
	return " [" + strings.Join(tags, " ") + "]"
}
