package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"picren/internal/config"
	"picren/internal/errors"
	"picren/internal/log"
	"picren/internal/plugin"
	"picren/internal/store"
	"picren/internal/tui/styles"
	"picren/internal/watch"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
	logJSON bool
	cfg     *config.Config
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfgFile, debug, logJSON, cfg = "", false, false, nil

	rootCmd := &cobra.Command{
		Use:   "picren [directory]",
		Short: "Browse a directory of images and rename them in place",
		Long: `picren lists the images of a directory in name order. Press F2 on an
image to rename it; the cursor follows the image to its new place.

Without a subcommand the terminal browser is started.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowser(directoryArg(args))
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/picren/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "write log lines as JSON")

	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewGUICmd())
	rootCmd.AddCommand(NewListCmd())
	rootCmd.AddCommand(NewRenameCmd())

	return rootCmd
}

func loadConfig(cmd *cobra.Command) {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadConfigFile(cfgFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		if errors.IsInvalidConfig(err) {
			cmd.PrintErrf("Warning: %v\n", err)
		} else {
			cmd.PrintErrf("Warning: could not read config: %v\n", err)
		}
		cmd.PrintErrln("Using default settings.")
		cfg = config.New()
	}

	log.Configure(logOptions(log.WithOutput(cmd.ErrOrStderr()))...)
	log.SetDebug(debug || cfg.Debug || envDebug())
	styles.Use(cfg.ThemeColors())
}

// logOptions adds the format chosen on the command line to opts.
func logOptions(opts ...log.Option) []log.Option {
	if logJSON {
		opts = append(opts, log.WithJSON())
	}
	return opts
}

// envDebug reads PICREN_DEBUG. Any non-empty value other than a false
// boolean enables debug logging.
func envDebug() bool {
	v := strings.TrimSpace(os.Getenv("PICREN_DEBUG"))
	if v == "" {
		return false
	}
	enabled, err := strconv.ParseBool(v)
	return err != nil || enabled
}

// directoryArg picks the directory argument or the configured default.
func directoryArg(args []string) string {
	dir := cfg.Directories.Default
	if len(args) > 0 {
		dir = args[0]
	}
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
		}
	}
	return dir
}

func openStore(dir string) (*store.Store, error) {
	s, err := store.New(store.Options{
		Patterns:      cfg.Images.Patterns,
		DetectContent: cfg.Images.DetectContent,
		ShowHidden:    cfg.Images.ShowHidden,
		Collation:     cfg.Sort.Collation,
	})
	if err != nil {
		return nil, err
	}
	if err := s.Load(dir); err != nil {
		return nil, err
	}
	log.LogWithFields(log.F("directory", s.Dir()), log.F("images", s.Length())).Debug("store loaded")
	return s, nil
}

func renamerOptions() []plugin.Option {
	return []plugin.Option{
		plugin.WithAccelerator(cfg.Rename.Accelerator),
		plugin.WithForbiddenChars(cfg.Rename.ForbiddenChars),
	}
}

// startWatcher watches dir when enabled. A watcher that cannot start is
// logged and skipped; the viewers still work without it.
func startWatcher(dir string) *watch.Watcher {
	if !cfg.Watch.Enabled {
		return nil
	}
	w, err := watch.New()
	if err != nil {
		log.Warnf("Directory watching disabled: %v", err)
		return nil
	}
	if err := w.AddDirectory(dir); err != nil {
		log.Warnf("Directory watching disabled: %v", err)
		w.Stop()
		return nil
	}
	if err := w.Start(); err != nil {
		log.Warnf("Directory watching disabled: %v", err)
		return nil
	}
	return w
}
