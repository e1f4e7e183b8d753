package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/HinataHamura/ai-reality-engine/internal/pipeline"
	"github.com/HinataHamura/ai-reality-engine/internal/util"
)

var (
	checkLanguage string
	checkTimeout  time.Duration
	checkProvider string
	checkModel    string
	checkOutJSON  string
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <text>",
	Short: "Fact-check a single text and print the report",
	Long: `Check runs the full pipeline once over the given text:
- Extract factual claims via the configured LLM
- Retrieve web evidence per claim (primary provider with one fallback)
- Judge each claim against its evidence (SUPPORT/CONTRADICT/NEUTRAL)
- Aggregate into an overall label, truth score and confidence

Example:
  reality-engine check "The Eiffel Tower is in Berlin."
  reality-engine check "Water boils at 100C at sea level." --json report.json`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkLanguage, "language", "en", "response language")
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 4*time.Minute, "overall check timeout")
	checkCmd.Flags().StringVar(&checkProvider, "llm-provider", "", "LLM provider (openai, anthropic, ollama)")
	checkCmd.Flags().StringVar(&checkModel, "llm-model", "", "LLM model name")
	checkCmd.Flags().StringVar(&checkOutJSON, "json", "", "also write the report to this path")
}

func runCheck(cmd *cobra.Command, args []string) error {
	text := args[0]

	cfg, err := applyLLMFlags(checkProvider, checkModel)
	if err != nil {
		return err
	}

	logger, err := util.NewLogger(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	p, err := pipeline.New(cfg, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	report, err := p.CheckText(ctx, text, checkLanguage)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	fmt.Println(string(out))

	if checkOutJSON != "" {
		if err := os.WriteFile(checkOutJSON, out, 0644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", checkOutJSON)
		}
	}

	return nil
}
