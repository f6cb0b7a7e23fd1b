package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"coursecat/internal/config"
)

// ConfigInitOptions holds flags for the config init command.
type ConfigInitOptions struct {
	*RootOptions
	Force bool
}

// NewConfigCommand creates the config command and its subcommands.
func NewConfigCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	cmd.AddCommand(newConfigInitCommand(rootOpts))
	cmd.AddCommand(newConfigShowCommand(rootOpts))

	return cmd
}

func newConfigInitCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConfigInitOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Long: `Write a config file with the default settings.

--api-url and --locale are stored in the new file when given.
An existing file is only replaced with --force.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Force, "force", false, "overwrite an existing config file")

	return cmd
}

func runConfigInit(opts *ConfigInitOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	svc := config.NewConfigService(opts.ConfigPath)
	path := svc.Path()

	_, err := os.Stat(path)
	switch {
	case err == nil && !opts.Force:
		msg := fmt.Sprintf("config file %s already exists (use --force to overwrite)", path)
		_ = formatter.Error(ErrCodeGeneric, msg, nil)
		return NewExitError(ExitCommandError, msg)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to inspect config file", err)
	}

	cfg := config.DefaultConfig()
	if opts.APIURL != "" {
		cfg.API.BaseURL = opts.APIURL
	}
	if opts.Locale != "" {
		cfg.UI.Locale = opts.Locale
	}

	if err := svc.Save(cfg); err != nil {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to write config", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(map[string]string{"path": path})
	}
	return formatter.Success("Wrote " + path)
}

func newConfigShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show",
		Short:         "Print the effective configuration",
		Long:          "Print the configuration after the file, the environment and the flags are applied.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(rootOpts, cmd)
			if err != nil {
				return err
			}

			if s.formatter.Format == "json" {
				return s.formatter.Success(s.cfg)
			}

			data, err := toml.Marshal(s.cfg)
			if err != nil {
				return WrapExitError(ExitFailure, "failed to encode config", err)
			}
			s.formatter.VerboseLog("Config file: %s", s.configSvc.Path())
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
