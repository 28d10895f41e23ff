package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yanqian/depression-screener/internal/domain/screening"
	"github.com/yanqian/depression-screener/internal/infra/artifact"
	apperrors "github.com/yanqian/depression-screener/pkg/errors"
	"github.com/yanqian/depression-screener/pkg/logger"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var rootCmd = &cobra.Command{
	Use:           "screener",
	Short:         "Student depression risk screener",
	Long:          "Serves the student depression questionnaire and scores answers with a trained classifier.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if p, _ := cmd.Flags().GetString("config"); p != "" {
			return os.Setenv("CONFIG_PATH", p)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Score one set of answers and print the assessment as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("answers")
		return runPredict(cmd, path)
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the model artifact",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cmd.OutOrStdout().Write(artifact.Schema())
		return err
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "screener", version)
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to the YAML config file (overrides CONFIG_PATH)")
	predictCmd.Flags().String("answers", "-", "JSON file with survey answers, or - for stdin")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(versionCmd)
}

func runServe(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := initializeApp(ctx)
	if err != nil {
		return startupError(err)
	}
	if err := app.Run(ctx); err != nil {
		return fmt.Errorf("application stopped with error: %w", err)
	}
	return nil
}

func runPredict(cmd *cobra.Command, path string) error {
	answers, err := readAnswers(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	log := logger.NewWithWriter(cmd.ErrOrStderr(), os.Getenv("LOG_LEVEL"))
	svc, err := initializeService(cmd.Context(), log)
	if err != nil {
		return startupError(err)
	}

	assessment, err := svc.Assess(cmd.Context(), answers)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(assessment)
}

func readAnswers(stdin io.Reader, path string) (screening.SurveyResponse, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return screening.SurveyResponse{}, fmt.Errorf("read answers: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return screening.SurveyResponse{}, fmt.Errorf("parse answers: %w", err)
	}
	// Every question must be answered; nothing falls back to the form defaults.
	for _, q := range screening.Questions() {
		raw, ok := fields[q.Key]
		if !ok || string(raw) == "null" {
			return screening.SurveyResponse{}, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("answers: %s is required", q.Key), nil)
		}
	}

	var answers screening.SurveyResponse
	if err := json.Unmarshal(data, &answers); err != nil {
		return screening.SurveyResponse{}, fmt.Errorf("parse answers: %w", err)
	}
	return answers, nil
}
