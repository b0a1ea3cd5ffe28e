package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/traworker/internal/domain"
	"github.com/alexanderramin/traworker/internal/importer"
	"github.com/alexanderramin/traworker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluationService_Evaluate(t *testing.T) {
	obs := &recordingObserver{}
	svc := NewEvaluationService(2, obs)

	result, err := svc.Evaluate(context.Background(), testutil.NewTestScenario(), testutil.NewTestTable())
	require.NoError(t, err)
	assert.Equal(t, testutil.ExampleKey, result.Key)
	assert.Equal(t, domain.Number(0.25), result.RCRs.LongTermInhalation)

	event := obs.last(t)
	assert.Equal(t, "evaluate-scenario", event.Name)
	assert.True(t, event.Success)
	assert.Equal(t, testutil.ExampleKey, event.Fields["key"])
	assert.Equal(t, "PROC7", event.Fields["proc"])
	assert.Equal(t, false, event.Fields["acceptable"])
	assert.Equal(t, 0, event.Fields["not_applicable"])
	assert.Equal(t, 0, event.Fields["invalid_input"])
}

func TestEvaluationService_CountsSentinels(t *testing.T) {
	obs := &recordingObserver{}
	svc := NewEvaluationService(2, obs)

	// No row for the key: inhalation is invalid input and the ratios that
	// depend on it are not applicable.
	sc := testutil.NewTestScenario(testutil.WithProcess("PROC1"))
	result, err := svc.Evaluate(context.Background(), sc, testutil.NewTestTable())
	require.NoError(t, err)
	assert.False(t, result.RowFound)

	event := obs.last(t)
	assert.Equal(t, false, event.Fields["row_found"])
	assert.Positive(t, event.Fields["invalid_input"].(int)+event.Fields["not_applicable"].(int))
}

func TestEvaluationService_InvalidScenario(t *testing.T) {
	obs := &recordingObserver{}
	svc := NewEvaluationService(2, obs)

	sc := testutil.NewTestScenario(testutil.WithVentilation("windy"))
	_, err := svc.Evaluate(context.Background(), sc, testutil.NewTestTable())
	require.ErrorIs(t, err, domain.ErrInvalidCategory)

	event := obs.last(t)
	assert.False(t, event.Success)
	assert.NotContains(t, event.Fields, "key")
}

func TestEvaluationService_CancelledContext(t *testing.T) {
	svc := NewEvaluationService(2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Evaluate(ctx, testutil.NewTestScenario(), testutil.NewTestTable())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEvaluationService_EvaluateFileValidation(t *testing.T) {
	svc := NewEvaluationService(2)

	sf := importer.ExampleScenario()
	sf.SubstanceName = ""
	sf.Proc = "PROC99"

	_, err := svc.EvaluateFile(context.Background(), sf, testutil.NewTestTable())
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Errs, 2)
	assert.Contains(t, err.Error(), "scenario validation failed (2 errors):")
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestEvaluationService_EvaluatePaths(t *testing.T) {
	svc := NewEvaluationService(2)
	dir := t.TempDir()

	var paths []string
	for _, format := range []importer.Format{importer.FormatJSON, importer.FormatYAML, importer.FormatTOML} {
		data, err := importer.EncodeScenario(importer.ExampleScenario(), format)
		require.NoError(t, err)
		path := filepath.Join(dir, "ethanol."+string(format))
		require.NoError(t, os.WriteFile(path, data, 0o644))
		paths = append(paths, path)
	}

	results, err := svc.EvaluatePaths(context.Background(), paths, testutil.NewTestTable())
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.Equal(t, results[0].RCRs, r.RCRs)
		assert.Equal(t, domain.Number(1), r.RCRs.ShortTermInhalation)
	}
}

func TestEvaluationService_EvaluatePathsNamesFailingFile(t *testing.T) {
	svc := NewEvaluationService(2)
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("substance_name: x\nproc: PROC7\n"), 0o644))

	_, err := svc.EvaluatePaths(context.Background(), []string{path}, testutil.NewTestTable())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.yaml")
}

func TestLogUseCaseObserver(t *testing.T) {
	var buf bytes.Buffer
	svc := NewEvaluationService(2, NewLogUseCaseObserver(&buf))

	_, err := svc.Evaluate(context.Background(), testutil.NewTestScenario(), testutil.NewTestTable())
	require.NoError(t, err)

	line := buf.String()
	assert.Contains(t, line, "use_case=evaluate-scenario")
	assert.Contains(t, line, "success=true")
	assert.Contains(t, line, "key=\"PROC7liquidnovery lowind\"")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("acceptable=")), bytes.Index(buf.Bytes(), []byte("key=")))
}

func TestNewLogUseCaseObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}
