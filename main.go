package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"inheritance-engine/internal/config"
	"inheritance-engine/internal/engine"
	"inheritance-engine/internal/handler"
	"inheritance-engine/internal/intake"
	"inheritance-engine/internal/logging"
	"inheritance-engine/internal/model"
	"inheritance-engine/internal/presenter"
)

var (
	cfg    config.Config
	logger *zap.Logger

	requestFile string
	asJSON      bool
)

var rootCmd = &cobra.Command{
	Use:           "inheritance-engine",
	Short:         "Distribute an estate among heirs by fixed shares and residue",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}
		logger, err = logging.New(cfg.LogLevel)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve POST /calculate over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate the distribution for a request file (YAML or JSON)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if requestFile == "" {
			return errors.New("--file is required")
		}
		req, err := intake.LoadFile(requestFile)
		if err != nil {
			return err
		}
		return report(cmd.OutOrStdout(), req)
	},
}

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Answer questions about the estate interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		q := intake.NewQuestionnaire(cmd.InOrStdin(), cmd.OutOrStdout(), logger)
		req, err := q.Run(cmd.Context())
		if err != nil {
			return err
		}
		return report(cmd.OutOrStdout(), req)
	},
}

func init() {
	calcCmd.Flags().StringVarP(&requestFile, "file", "f", "", "request file (.yaml, .yml or .json)")
	for _, c := range []*cobra.Command{calcCmd, askCmd} {
		c.Flags().BoolVar(&asJSON, "json", false, "print the full JSON response")
	}
	rootCmd.AddCommand(serveCmd, calcCmd, askCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func serve(ctx context.Context) error {
	server := &fasthttp.Server{
		Handler:            handler.New(logger).Handle,
		Name:               "inheritance-engine",
		ReadTimeout:        cfg.ReadTimeout,
		WriteTimeout:       cfg.WriteTimeout,
		MaxRequestBodySize: cfg.MaxBodySize,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("inheritance engine starting", zap.String("addr", cfg.Addr()))
		errc <- server.ListenAndServe(cfg.Addr())
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down")
		return server.Shutdown()
	}
}

func report(w io.Writer, req model.EstateRequest) error {
	resp := engine.Process(req)
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	result := resp.CalculationResult
	if resp.CalculationMetadata.CalculationOutcome == model.OutcomeFailure {
		for _, m := range result.Messages {
			fmt.Fprintf(w, "%s %s: %s\n", m.Level, m.Code, m.Message)
		}
		return errors.New("invalid estate request")
	}
	for _, m := range result.Messages {
		fmt.Fprintf(w, "%s: %s\n", m.Level, m.Message)
	}
	_, err := io.WriteString(w, presenter.NewText(language.English).Render(req, result.Distribution))
	return err
}
