package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/radar/internal/core/domain"
)

var entitiesJSON bool

var entitiesCmd = &cobra.Command{
	Use:   "entities [text...]",
	Short: "Find money amounts and cities in text",
	Long: `List the money amounts (e.g. "5 млн", "200 тысяч") and Kazakhstan
cities mentioned in the text. With no arguments the text is read from
standard input.`,
	RunE: runEntities,
}

func init() {
	entitiesCmd.Flags().BoolVar(&entitiesJSON, "json", false, "output entities as JSON")
	rootCmd.AddCommand(entitiesCmd)
}

func runEntities(cmd *cobra.Command, args []string) error {
	if textNormaliser == nil {
		return errors.New("text normaliser not configured")
	}

	text, err := textArg(cmd, args)
	if err != nil {
		return err
	}
	found := textNormaliser.ExtractEntities(text)

	out := cmd.OutOrStdout()
	if entitiesJSON {
		data, err := json.MarshalIndent(found, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal entities: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if len(found) == 0 {
		fmt.Fprintln(out, "No entities found.")
		return nil
	}
	for _, c := range []domain.EntityCategory{domain.EntityAmounts, domain.EntityCities} {
		if values := found.Get(c); len(values) > 0 {
			fmt.Fprintf(out, "%s: %s\n", c, strings.Join(values, ", "))
		}
	}
	return nil
}
