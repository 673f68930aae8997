package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:     "normalize [text...]",
	Aliases: []string{"normalise"},
	Short:   "Replace slang and drop filler words",
	Long: `Rewrite informal Russian and Kazakh text into its plain form.
Slang is replaced with its canonical word and filler words are removed.
With no arguments the text is read from standard input.`,
	RunE: runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	if textNormaliser == nil {
		return errors.New("text normaliser not configured")
	}

	text, err := textArg(cmd, args)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), textNormaliser.Normalise(text))
	return nil
}

// textArg joins args, or reads all of stdin when there are none.
func textArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
