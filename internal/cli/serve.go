package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/HinataHamura/ai-reality-engine/internal/pipeline"
	"github.com/HinataHamura/ai-reality-engine/internal/server"
	"github.com/HinataHamura/ai-reality-engine/internal/util"
)

var (
	serveAddr     string
	serveProvider string
	serveModel    string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the fact-checking HTTP service",
	Long: `Serve exposes the pipeline over HTTP:

  POST /verify   {"text": "...", "language": "en"}  -> full report JSON
  GET  /health   liveness check
  GET  /         HTML banner

Example:
  reality-engine serve --addr :8000
  reality-engine serve --llm-provider ollama --llm-model llama3.1`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default :8000)")
	serveCmd.Flags().StringVar(&serveProvider, "llm-provider", "", "LLM provider (openai, anthropic, ollama)")
	serveCmd.Flags().StringVar(&serveModel, "llm-model", "", "LLM model name")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := applyLLMFlags(serveProvider, serveModel)
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.New(p, cfg.Server, logger).Run(ctx)
}
