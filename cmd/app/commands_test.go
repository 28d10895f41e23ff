package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/depression-screener/internal/domain/screening"
	"github.com/yanqian/depression-screener/internal/infra/artifact"
	apperrors "github.com/yanqian/depression-screener/pkg/errors"
)

const completeAnswers = `{"age":25,"gender":"Male","degree":"B.Tech","academicPressure":4,"studySatisfaction":1,"financialStress":4,"familyHistory":"Yes","suicidalThoughts":"Yes","sleepDuration":"Less than 5 hours","dietaryHabits":"Unhealthy","workStudyHours":6}`

func TestReadAnswers_Complete(t *testing.T) {
	answers, err := readAnswers(strings.NewReader(completeAnswers), "-")
	require.NoError(t, err)
	require.Equal(t, 25, answers.Age)
	require.Equal(t, screening.Yes, answers.SuicidalThoughts)
	require.Equal(t, 6, answers.WorkStudyHours)
}

func TestReadAnswers_RejectsMissingFields(t *testing.T) {
	_, err := readAnswers(strings.NewReader(`{}`), "-")
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
	require.ErrorContains(t, err, "age is required")

	_, err = readAnswers(strings.NewReader(`{"age":30,"suicidalThoughts":"No"}`), "-")
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
	require.ErrorContains(t, err, "gender is required")

	partial := strings.Replace(completeAnswers, `"familyHistory":"Yes",`, `"familyHistory":null,`, 1)
	_, err = readAnswers(strings.NewReader(partial), "-")
	require.ErrorContains(t, err, "familyHistory is required")
}

func TestPredictCommand_EmptyInputIsRejected(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("MODEL_PATH", filepath.Join("..", "..", "models", "tuned_random_forest_model.json"))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(`{}`))
	rootCmd.SetArgs([]string{"predict", "--answers", "-"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
	require.Empty(t, out.String())
}

func TestReadAnswers_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.json")
	body := strings.Replace(completeAnswers, `"degree":"B.Tech"`, `"degree":"PhD"`, 1)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	answers, err := readAnswers(strings.NewReader(""), path)
	require.NoError(t, err)
	require.Equal(t, "PhD", answers.Degree)
}

func TestReadAnswers_BadJSON(t *testing.T) {
	_, err := readAnswers(strings.NewReader(`{"age":`), "-")
	require.ErrorContains(t, err, "parse answers")
}

func TestStartupError_ModelMissing(t *testing.T) {
	src := artifact.FileSource{Path: filepath.Join(t.TempDir(), "tuned_random_forest_model.json")}
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	_, err := provideModel(ctx, src, discardLogger())
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeModelNotFound))

	msg := startupError(err).Error()
	require.Contains(t, msg, "Fatal Error: Model file '"+src.Path+"' not found.")
	require.Contains(t, msg, "Please ensure the model file is in the same directory as this script.")
}

func TestStartupError_Other(t *testing.T) {
	err := startupError(errors.New("boom"))
	require.EqualError(t, err, "failed to wire application: boom")
}

func TestSchemaAndVersionCommands(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetArgs([]string{"schema"})
	require.NoError(t, rootCmd.Execute())
	require.Contains(t, out.String(), "screening-model/v1")

	out.Reset()
	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.Execute())
	require.Equal(t, "screener (devel)\n", out.String())
}

func TestPredictCommand_UsesConfiguredModel(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("MODEL_SOURCE", "file")
	t.Setenv("MODEL_PATH", filepath.Join("..", "..", "models", "tuned_random_forest_model.json"))
	t.Setenv("PREDICTION_DELAY", "0s")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(completeAnswers))
	rootCmd.SetArgs([]string{"predict", "--answers", "-"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	var got screening.Assessment
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Equal(t, screening.LabelHighRisk, got.Prediction.Label)
	require.Len(t, got.Factors, 6)
	require.NotEmpty(t, got.ID)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
