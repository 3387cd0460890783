package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"ftlview/internal/config"
	"ftlview/internal/log"
	"ftlview/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	configPath string
	dataSource string
	imageRoot  string
	themeName  string
	noSixel    bool
)

var rootCmd = &cobra.Command{
	Use:     "ftlview",
	Short:   "Browse FTL Multiverse sectors, their stores and events",
	Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	Args:    cobra.NoArgs,
	RunE:    runViewer,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default ./"+config.DefaultFile+")")
	flags.StringVar(&dataSource, "data", "", "path or URL of full-data.json")
	flags.StringVar(&imageRoot, "images", "", "directory containing the img/ tree")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "colour theme (telix, hull)")
	rootCmd.Flags().BoolVar(&noSixel, "no-sixel", false, "disable sprite previews")

	rootCmd.AddCommand(graphCmd, listCmd, findCmd)
}

// loadConfig reads the config file and applies command line overrides
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if dataSource != "" {
		cfg.DataSource = dataSource
	}
	if imageRoot != "" {
		cfg.ImageRoot = imageRoot
	}
	if themeName != "" {
		cfg.Theme = themeName
	}
	if noSixel {
		cfg.Sixel = false
	}
	return cfg, nil
}

func runViewer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Configure debug logging to file for main application
	if err := log.SetFileOutput(cfg.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not configure debug logging to file: %v\n", err)
	}
	defer log.Close()

	// Set up global panic handler
	defer func() {
		if r := recover(); r != nil {
			log.Error("GLOBAL PANIC recovered", "error", r, "stack", string(debug.Stack()))
			fmt.Fprintf(os.Stderr, "Application crashed. See %s for details.\n", cfg.LogFile)
			os.Exit(1)
		}
	}()

	// Set up signal handlers to catch crashes
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGSEGV, syscall.SIGABRT, syscall.SIGTERM)
	go func() {
		sig := <-signalChan
		log.Error("SIGNAL RECEIVED", "signal", sig.String(), "stack", string(debug.Stack()))
		fmt.Fprintf(os.Stderr, "Application received signal %s. See %s for details.\n", sig.String(), cfg.LogFile)
		os.Exit(1)
	}()

	// Deadlock detector: log every 30 seconds that we're alive
	go func() {
		for {
			time.Sleep(30 * time.Second)
			log.Debug("HEARTBEAT: Application is alive")
		}
	}()

	// Check if we have a proper TTY
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Println("FTL Multiverse Sectors Viewer")
		fmt.Println("This application requires a terminal/TTY to run properly.")
		fmt.Println("Use 'ftlview list' or 'ftlview graph' for non-interactive output.")
		os.Exit(1)
	}

	log.Info("starting viewer", "version", version, "data", cfg.DataSource, "images", cfg.ImageRoot, "sixel", cfg.Sixel)
	app := tui.NewApplication(cfg)
	app.SetVersionInfo(version, commit, date)
	if err := app.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
