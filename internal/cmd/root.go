// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	configcmd "github.com/mcbunkus/tmpl/internal/cmd/config"
	"github.com/mcbunkus/tmpl/internal/cmdtypes"
	"github.com/mcbunkus/tmpl/internal/config"
	"github.com/mcbunkus/tmpl/internal/editor"
	"github.com/mcbunkus/tmpl/internal/output"
	"github.com/mcbunkus/tmpl/internal/prompt"
	"github.com/mcbunkus/tmpl/internal/specs"
)

// rootFlags holds the persistent flags shared by every command.
type rootFlags struct {
	config     string
	storeDir   string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for the tmpl CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&cmdtypes.GlobalConfig{})
}

// newRootCmd builds the command tree around cfg. Fields already set on cfg
// are kept by initializeGlobals.
func newRootCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "tmpl",
		Short: "Generate files from stored template specs",
		Long: `tmpl keeps a directory of spec files. Each spec holds default variables
and a list of templates; "tmpl gen" renders them into the current directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, cfg, flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: TMPL_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&flags.storeDir, "store-dir", "", "Spec store directory (env: TMPL_STORE_DIR)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(
		NewLsCmd(cfg),
		NewNewCmd(cfg),
		NewGenCmd(cfg),
		NewEditCmd(cfg),
		NewRmCmd(cfg),
		NewCpCmd(cfg),
		NewVetCmd(cfg),
		configcmd.NewConfigCmd(cfg),
		NewVersionCmd(cfg),
	)

	return rootCmd
}

// initializeGlobals sets up logging, resolves configuration and opens the
// spec store.
func initializeGlobals(c *cobra.Command, cfg *cmdtypes.GlobalConfig, flags *rootFlags) error {
	// Early setup so config loading can log at debug level.
	output.SetupLogging(output.LogConfig{Verbose: flags.verbose})

	configPath := config.ResolveConfigPath(config.ResolveConfigPathOptions{
		FlagValue: flags.config,
	})

	loaded, err := config.NewLoader().Load(configPath.Value)
	if err != nil {
		// Commands still work with defaults; config vet reports the details.
		output.Warn("ignoring config file", "path", configPath.Value, "error", err)
		loaded = &config.Config{}
	}

	resolved := config.ResolveAll(config.ResolveAllOptions{
		ConfigFlag:   flags.config,
		StoreDirFlag: flags.storeDir,
		Config:       loaded,
	})

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: flags.verbose}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	config.LogResolvedValues(resolved.Values())

	cfg.Config = loaded
	cfg.Resolved = resolved
	cfg.ConfigPath = resolved.ConfigPath.Value
	cfg.Verbose = flags.verbose

	if cfg.Engine == "" {
		cfg.Engine = resolved.Engine.Value
	}
	if cfg.Store == nil {
		storeDir := resolved.StoreDir.Value
		if err := config.EnsureStoreDir(storeDir); err != nil {
			return err
		}
		store, err := specs.NewStore(storeDir)
		if err != nil {
			return err
		}
		output.Debug("opened spec store", "dir", storeDir)
		cfg.Store = store
	}
	if cfg.Prompter == nil {
		cfg.Prompter = prompt.New(c.InOrStdin(), c.OutOrStdout())
	}
	if cfg.Editor == nil {
		cfg.Editor = editor.New(resolved.Editor.Value)
	}

	return nil
}
