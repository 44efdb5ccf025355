package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evertile/teaset/internal/config"
	"github.com/evertile/teaset/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes",
	Long: `List built-in themes and any custom themes discovered in the themes
directory (default: ~/.config/teaset/themes).

Custom themes are YAML files defining the eight palette colors; use
--export to print a built-in palette as a starting point.`,
	RunE: runThemes,
}

var themesExport string

func init() {
	rootCmd.AddCommand(themesCmd)
	themesCmd.Flags().StringVar(&themesExport, "export", "", "print the named theme as YAML")
}

func runThemes(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	if cfg.Paths.ThemesDir != "" {
		theme.SetDirFunc(func() string { return cfg.Paths.ThemesDir })
	}

	_, errs := theme.Discover()
	for _, err := range errs {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	if themesExport != "" {
		return exportTheme(themesExport)
	}

	fmt.Println("Built-in themes:")
	for _, name := range theme.Builtin() {
		fmt.Printf("  %s\n", name)
	}

	custom := theme.CustomNames()
	if len(custom) == 0 {
		fmt.Printf("\nNo custom themes in %s\n", theme.Dir())
		return nil
	}

	fmt.Println("\nCustom themes:")
	for _, name := range custom {
		fmt.Printf("  %s\n", name)
	}
	return nil
}

func exportTheme(name string) error {
	if !theme.Valid(name) {
		return fmt.Errorf("unknown theme %q, run 'teaset themes' to list available themes", name)
	}

	data, err := theme.Export(name)
	if err != nil {
		return fmt.Errorf("failed to export theme: %w", err)
	}

	fmt.Print(string(data))
	return nil
}
