package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var slangCmd = &cobra.Command{
	Use:   "slang",
	Short: "Manage the custom slang dictionary",
	Long: `Custom slang entries extend or override the built-in dictionary used
by 'radar normalize' and 'radar analyze --normalise'. They live in a TOML
file under a [slang] table, ~/.radar/slang.toml unless
'radar settings slang-file' points elsewhere. Cyrillic keys must be
quoted:

  [slang]
  "кэш" = "наличные"

Running servers pick up edits to the file without a restart.`,
}

var slangListCmd = &cobra.Command{
	Use:   "list",
	Short: "List custom slang entries",
	Args:  cobra.NoArgs,
	RunE:  runSlangList,
}

var slangAddCmd = &cobra.Command{
	Use:   "add <slang> <canonical>",
	Short: "Add or replace a custom slang entry",
	Args:  cobra.ExactArgs(2),
	RunE:  runSlangAdd,
}

func init() {
	slangCmd.AddCommand(slangListCmd)
	slangCmd.AddCommand(slangAddCmd)
	rootCmd.AddCommand(slangCmd)
}

func runSlangList(cmd *cobra.Command, _ []string) error {
	if slangStore == nil {
		return errors.New("slang dictionary not configured")
	}

	entries, err := slangStore.Load()
	if err != nil {
		return fmt.Errorf("failed to load slang: %w", err)
	}

	cmd.Printf("Dictionary: %s\n", slangStore.Path())
	if len(entries) == 0 {
		cmd.Println("No custom slang.")
		return nil
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		cmd.Printf("  %s → %s\n", k, entries[k])
	}
	return nil
}

func runSlangAdd(cmd *cobra.Command, args []string) error {
	if slangStore == nil || textNormaliser == nil {
		return errors.New("slang dictionary not configured")
	}

	// The live normaliser rejects entries that would loop before
	// anything is written.
	if err := textNormaliser.AddCustomSlang(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to add slang: %w", err)
	}
	if err := slangStore.Add(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to save slang: %w", err)
	}

	cmd.Printf("Added: %s → %s\n", args[0], args[1])
	return nil
}
