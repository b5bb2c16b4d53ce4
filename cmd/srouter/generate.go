package main

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/crsettings/settingsrouter/rgen"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate Go source for a TOML route table",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringP("out", "o", "", "output Go file (default "+rgen.DefaultOutFileName+" next to the table)")
	generateCmd.Flags().StringP("package", "p", "", "package name (default: output directory name)")
	generateCmd.Flags().String("var", "", "name of the generated Table variable (default routeTable)")
	generateCmd.Flags().BoolP("watch", "w", false, "regenerate whenever the table file changes")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {

	tableFile, _ := cmd.Flags().GetString("table")
	if tableFile == "" {
		return fmt.Errorf("--table is required")
	}
	out, _ := cmd.Flags().GetString("out")
	pkg, _ := cmd.Flags().GetString("package")
	varName, _ := cmd.Flags().GetString("var")
	watch, _ := cmd.Flags().GetBool("watch")

	g := rgen.New().
		SetTableFile(tableFile).
		SetOutFile(out).
		SetPackageName(pkg).
		SetVarName(varName)

	if err := g.Generate(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", g.OutFile())

	if !watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return watchTable(ctx, tableFile, func() {
		if err := g.Generate(); err != nil {
			logger.Warn("regenerating routes failed", zap.String("table", tableFile), zap.Error(err))
			return
		}
		logger.Info("regenerated routes", zap.String("out", g.OutFile()))
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", g.OutFile())
	})
}

// watchTable calls regen after tableFile changes, until ctx is done.
// Events are debounced since editors often write a file in several steps.
func watchTable(ctx context.Context, tableFile string, regen func()) error {

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	// watch the directory so editors that replace the file are still seen
	if err := fw.Add(filepath.Dir(tableFile)); err != nil {
		return err
	}

	want, err := filepath.Abs(tableFile)
	if err != nil {
		return err
	}

	const debounce = 100 * time.Millisecond
	var pending time.Time
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || name != want {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.Now()
			}

		case <-ticker.C:
			if !pending.IsZero() && time.Since(pending) >= debounce {
				pending = time.Time{}
				regen()
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", zap.Error(err))
		}
	}
}
