// Package cmd implements the teaset command line interface.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/evertile/teaset/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "teaset",
	Short: "Interactive gallery of the teaset terminal widgets",
	Long: `Teaset is a library of reusable terminal UI widgets built on Bubble Tea:
select boxes, tab panels, collapsible sections, input boxes, and
scrollable containers.

Running teaset without arguments opens the widget gallery.`,
	SilenceUsage: true,
	RunE:         runGallery,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/teaset/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/teaset")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("TEASET")
	// Replace dots with underscores for nested keys in env vars
	// e.g., TEASET_TUI_THEME for tui.theme
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
