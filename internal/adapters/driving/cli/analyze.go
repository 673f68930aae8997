package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/radar/internal/adapters/driven/answers"
	"github.com/custodia-labs/radar/internal/core/analysis"
	"github.com/custodia-labs/radar/internal/core/domain"
	"github.com/custodia-labs/radar/internal/logger"
)

var (
	analyzeFile      string
	analyzeFormat    string
	analyzeSet       []string
	analyzeNormalise bool
	analyzeAI        bool
	analyzeJSON      bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <domain>",
	Short: "Score a situation and print a verdict",
	Long: `Score questionnaire answers for one domain and print the verdict.

Domains:
  debt    - recovering a debt
  market  - entering a new market
  hiring  - hiring a candidate (low/medium/high risk)
  import  - importing goods
  idea    - validating a business idea

Answers are read from --file (YAML, JSON or TOML), from standard input
when it is piped (YAML by default, see --format), and from --set flags,
which override the others. On a terminal with no answers given, radar
asks for each field in turn.

Examples:
  radar analyze debt --set amount=6000000 --set date="2 года"
  radar analyze hiring --file candidate.yaml --normalise
  echo '{"idea_description":"кофейня"}' | radar analyze idea --format json --json`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: domainNames(),
	RunE:      runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "answers file (.yaml, .yml, .json, .toml)")
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", answers.FormatYAML, "format of answers on stdin (yaml, json, toml)")
	analyzeCmd.Flags().StringArrayVarP(&analyzeSet, "set", "s", nil, "answer as key=value (repeatable)")
	analyzeCmd.Flags().BoolVarP(&analyzeNormalise, "normalise", "n", false, "normalise slang in every answer first")
	analyzeCmd.Flags().BoolVar(&analyzeAI, "ai", false, "ask the configured LLM first")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output the verdict as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

// verdictJSON is the --json shape of a verdict.
type verdictJSON struct {
	Domain         string   `json:"domain"`
	Zone           string   `json:"zone"`
	Headline       string   `json:"headline"`
	Signals        []string `json:"signals"`
	Recommendation string   `json:"recommendation,omitempty"`
	Origin         string   `json:"origin"`
	Rendered       string   `json:"rendered"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}

	d, ok := domain.ParseDomain(args[0])
	if !ok {
		return fmt.Errorf("%w: %q (want one of %s)",
			domain.ErrUnsupportedDomain, args[0], strings.Join(domainNames(), ", "))
	}

	set, err := collectAnswers(cmd, d)
	if err != nil {
		return err
	}

	if analyzeNormalise {
		if textNormaliser == nil {
			return errors.New("text normaliser not configured")
		}
		set = set.Map(textNormaliser.Normalise)
	}

	var verdict domain.Verdict
	if analyzeAI {
		if !analysisService.AIEnabled() {
			logger.Warn("no LLM configured, using rules. Run 'radar settings llm' to set one up.")
		}
		verdict, err = analysisService.Analyze(cmd.Context(), d, set)
	} else {
		verdict, err = analysisService.RuleBased(d, set)
	}
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	logger.Debug("%s verdict: %s (%s, %d signals)", d, verdict.Zone, verdict.Origin, len(verdict.Signals))

	if analyzeJSON {
		return outputVerdictJSON(cmd, verdict)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderVerdict(verdict, colourEnabled(out)))
	return nil
}

// collectAnswers merges the file or stdin answers with --set overrides.
func collectAnswers(cmd *cobra.Command, d domain.Domain) (domain.AnswerSet, error) {
	set := domain.AnswerSet{}

	switch {
	case analyzeFile != "":
		loaded, err := answerLoader.LoadFile(analyzeFile)
		if err != nil {
			return nil, err
		}
		set = loaded
	case len(analyzeSet) == 0:
		in := cmd.InOrStdin()
		if isTerminal(in) {
			return askAnswers(cmd, d, bufio.NewReader(in))
		}
		loaded, err := answerLoader.Decode(in, analyzeFormat)
		if err != nil {
			return nil, fmt.Errorf("read answers from stdin: %w", err)
		}
		set = loaded
	}

	for _, kv := range analyzeSet {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: --set %q, want key=value", domain.ErrInvalidInput, kv)
		}
		set[key] = value
	}
	return set, nil
}

// askAnswers prompts for every field the domain reads. Empty lines are
// left out of the answer set.
func askAnswers(cmd *cobra.Command, d domain.Domain, reader *bufio.Reader) (domain.AnswerSet, error) {
	a, err := analysis.NewRegistry().Get(d)
	if err != nil {
		return nil, err
	}

	cmd.Println(d.Description())
	cmd.Println()
	set := domain.AnswerSet{}
	for _, field := range a.Profile().Fields() {
		cmd.Printf("  %s: ", field)
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if v := strings.TrimSpace(line); v != "" {
			set[field] = v
		}
		if errors.Is(err, io.EOF) {
			break
		}
	}
	cmd.Println()
	return set, nil
}

func outputVerdictJSON(cmd *cobra.Command, v domain.Verdict) error {
	data, err := json.MarshalIndent(verdictJSON{
		Domain:         v.Domain.String(),
		Zone:           v.Zone.String(),
		Headline:       v.Headline,
		Signals:        v.SignalStrings(),
		Recommendation: v.Recommendation,
		Origin:         string(v.Origin),
		Rendered:       analysis.Render(v),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal verdict: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func domainNames() []string {
	all := domain.AllDomains()
	out := make([]string, len(all))
	for i, d := range all {
		out[i] = d.String()
	}
	return out
}
