package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/ecoring/config"
)

var (
	// Global flags
	configPath string
	debugLog   bool
	mute       bool

	cfg       *config.Config
	logger    *zap.Logger
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "ecoring",
	Short: "Eco habit puzzles for the terminal",
	Long: `ecoring collects two small environmental games.

constellation: link twelve stars across the ring with habit categories.
Neighboring stars may not be linked and every pair links only once.

sorting: drop each piece of trash into the right bin and unlock ocean memories.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if mute {
			cfg.Audio.Enabled = false
		}

		logger, logCloser, err = setupLogging(debugLog, cfg.Log.Dir)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		if logCloser != nil {
			_ = logCloser.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Config file")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "Write debug logs under the log dir")
	rootCmd.PersistentFlags().BoolVar(&mute, "mute", false, "Start with sound off")

	rootCmd.AddCommand(constellationCmd)
	rootCmd.AddCommand(sortingCmd)
	rootCmd.AddCommand(historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
