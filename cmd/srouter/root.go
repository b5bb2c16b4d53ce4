package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/crsettings/settingsrouter"
	"github.com/crsettings/settingsrouter/internal/config"
)

var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:           "srouter",
	Short:         "Inspect and exercise settings route tables",
	Long:          "srouter prints, resolves and navigates settings route tables, and generates Go code for them.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		zc := zap.NewProductionConfig()
		if verbose || viper.GetBool("verbose") {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .srouter.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("table", "", "TOML route table (default: built-in settings table)")
	rootCmd.PersistentFlags().StringToString("visibility", nil, "page visibility overrides, e.g. appearance=false")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".srouter")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	_ = viper.BindPFlag("table_file", rootCmd.PersistentFlags().Lookup("table"))

	viper.SetEnvPrefix("SROUTER")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// loadOptions turns config and flags into Router options.
func loadOptions(cmd *cobra.Command) ([]settingsrouter.Option, error) {

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	table := settingsrouter.DefaultTable()
	origin := cfg.Origin
	if cfg.TableFile != "" {
		tf, err := settingsrouter.LoadTable(cfg.TableFile)
		if err != nil {
			return nil, err
		}
		table = tf.Table()
		if tf.Origin != "" {
			origin = tf.Origin
		}
	}

	pv := settingsrouter.PageVisibility(cfg.VisibilityFor(pageNames(table)))
	overrides, _ := cmd.Flags().GetStringToString("visibility")
	for k, v := range overrides {
		if pv == nil {
			pv = make(settingsrouter.PageVisibility)
		}
		visible, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("bad --visibility value for %q: %w", k, err)
		}
		pv[k] = visible
	}

	logger.Debug("loaded route table",
		zap.String("table_file", cfg.TableFile),
		zap.Int("routes", len(table)),
		zap.Any("page_visibility", pv))

	return []settingsrouter.Option{
		settingsrouter.WithTable(table),
		settingsrouter.WithOrigin(origin),
		settingsrouter.WithPageVisibility(pv),
		settingsrouter.WithLogger(logger),
	}, nil
}

func pageNames(t settingsrouter.Table) []string {
	var ret []string
	for _, spec := range t {
		if spec.Page != "" {
			ret = append(ret, spec.Page)
		}
	}
	return ret
}
