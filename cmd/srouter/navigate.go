package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/crsettings/settingsrouter"
)

var navigateCmd = &cobra.Command{
	Use:   "navigate ROUTE...",
	Short: "Navigate through routes by name or path, then optionally go back",
	Long: `navigate starts at the root route, navigates to each ROUTE in order and then
goes back --back times, printing the resulting state and history.
A ROUTE starting with "/" is a path, anything else is a route name.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNavigate,
}

func init() {
	navigateCmd.Flags().Int("back", 0, "number of back navigations after the last route")
	navigateCmd.Flags().StringArray("query", nil, "query parameter for the last route, as key=value (repeatable)")
	navigateCmd.Flags().Bool("remove-search", false, "drop the search parameter on the last navigation")
	navigateCmd.Flags().Duration("timeout", 5*time.Second, "how long to wait for each back navigation")
	rootCmd.AddCommand(navigateCmd)
}

func runNavigate(cmd *cobra.Command, args []string) error {

	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	h := settingsrouter.NewMemoryHistory("/")
	r, err := settingsrouter.New(append(opts, settingsrouter.WithHistory(h))...)
	if err != nil {
		return err
	}
	defer r.Close()

	queryFlags, _ := cmd.Flags().GetStringArray("query")
	var query settingsrouter.QueryParams
	for _, kv := range queryFlags {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("bad --query %q, want key=value", kv)
		}
		query = query.Add(k, v)
	}
	removeSearch, _ := cmd.Flags().GetBool("remove-search")

	for i, arg := range args {
		route := r.Route(arg)
		if strings.HasPrefix(arg, "/") {
			route = r.RouteForPath(arg)
		}
		if route == nil {
			return fmt.Errorf("%w: %s", settingsrouter.ErrNoRoute, arg)
		}

		var q settingsrouter.QueryParams
		var navOpts []settingsrouter.NavigatorOpt
		if i == len(args)-1 {
			q = query
			if removeSearch {
				navOpts = append(navOpts, settingsrouter.NavRemoveSearch)
			}
		}
		if err := r.NavigateTo(route, q, navOpts...); err != nil {
			return err
		}
	}

	back, _ := cmd.Flags().GetInt("back")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	for i := 0; i < back; i++ {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		route, err := r.NavigateToPreviousRoute().Wait(ctx)
		cancel()
		if err != nil {
			return fmt.Errorf("back navigation %d: %w", i+1, err)
		}
		logger.Debug("went back", zap.Stringer("route", route))
	}

	out := cmd.OutOrStdout()
	cur := r.CurrentRoute()
	fmt.Fprintf(out, "route:    %s\n", cur.Name())
	fmt.Fprintf(out, "url:      %s\n", cur.AbsolutePath())
	fmt.Fprintf(out, "query:    %s\n", r.QueryParameters().Encode())
	fmt.Fprintf(out, "popstate: %t\n", r.LastRouteChangeWasPopstate())
	fmt.Fprintln(out, "history:")
	for i, e := range h.Entries() {
		marker := " "
		if i == h.Index() {
			marker = "*"
		}
		fmt.Fprintf(out, "  %s %d %s\n", marker, i, e.Location)
	}

	return nil
}
