package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/renzora/atlaskit/atlas/pack"
	"github.com/renzora/atlaskit/atlas/store"
)

var (
	// Global flags
	cfgFile string
	verbose bool
	quiet   bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "atlasctl",
	Short: "Pack, migrate and compact tileset atlases",
	Long: `atlasctl manages the sprite-sheet atlases of a game project: saving
newly staged artwork into tile slots, moving placed graphics between
atlases, and deleting graphics while compacting the remaining slots so
tile indices stay contiguous.

Project layout is read from atlaskit.yaml (or --config), with the atlas
directory, object index path and staging directory all overridable by
flags or ATLASKIT_* environment variables.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		initLogging()
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "Config file (default atlaskit.yaml in the working directory)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	pf.BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	pf.BoolVar(&jsonOut, "json", false, "Output in JSON format")

	pf.String("atlas-dir", "tilesets", "Directory holding the atlas PNGs")
	pf.String("index", "objects.json", "Path of the object index file")
	pf.String("staging-dir", "staging", "Directory watched for staged artwork")
	pf.String("log-file", "", "Write logs to this file (rotated) instead of stderr")
	pf.Int("cache-mb", 64, "Decoded raster cache size in MiB (0 disables)")
	pf.Bool("strict", false, "Fail saves on malformed items instead of skipping them")
	for _, key := range []string{"atlas-dir", "index", "staging-dir", "log-file", "cache-mb", "strict"} {
		_ = viper.BindPFlag(key, pf.Lookup(key))
	}
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("atlaskit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}
	viper.SetEnvPrefix("atlaskit")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil // config file is optional unless named explicitly
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func initLogging() {
	switch {
	case quiet:
		logrus.SetLevel(logrus.ErrorLevel)
	case verbose:
		logrus.SetLevel(logrus.DebugLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
	if path := viper.GetString("log-file"); path != "" {
		logrus.SetOutput(&lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // MiB
			MaxBackups: 3,
		})
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

// newEngine wires the stores configured for the current project. The
// returned release func closes the raster cache.
func newEngine() (*pack.Engine, func()) {
	idx := store.NewFileIndexStore(viper.GetString("index"))
	var rasters store.RasterStore = store.NewFileRasterStore(viper.GetString("atlas-dir"))
	release := func() {}
	if mb := viper.GetInt64("cache-mb"); mb > 0 {
		cached, err := store.NewCachedRasterStore(rasters, mb<<20)
		if err == nil {
			rasters = cached
			release = cached.Close
		} else {
			logrus.WithError(err).Warn("raster cache disabled")
		}
	}
	engine := pack.New(idx, rasters, pack.Config{
		Strict: viper.GetBool("strict"),
		Logger: logrus.StandardLogger(),
	})
	return engine, release
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
