package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alexanderramin/traworker/internal/domain"
	"github.com/alexanderramin/traworker/internal/repository"
	"github.com/alexanderramin/traworker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) last(t *testing.T) UseCaseEvent {
	t.Helper()
	o.mu.Lock()
	defer o.mu.Unlock()
	require.NotEmpty(t, o.events)
	return o.events[len(o.events)-1]
}

func writeLookupCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lookup.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func setupTableService(t *testing.T, observers ...UseCaseObserver) (TableService, repository.ReferenceRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	refs := repository.NewSQLiteReferenceRepo(database)
	return NewTableService(refs, testutil.NewTestUoW(database), observers...), refs
}

func TestTableService_ImportAndLoad(t *testing.T) {
	obs := &recordingObserver{}
	svc, _ := setupTableService(t, obs)
	ctx := context.Background()

	result, err := svc.Import(ctx, writeLookupCSV(t, testutil.LookupCSV), "")
	require.NoError(t, err)
	assert.Equal(t, 3, result.Import.RowCount)
	assert.Equal(t, "lookup.csv", result.Import.Source)
	assert.Empty(t, result.Import.Sheet)
	assert.Empty(t, result.Duplicates)

	event := obs.last(t)
	assert.Equal(t, "import-table", event.Name)
	assert.True(t, event.Success)
	assert.Equal(t, 3, event.Fields["rows"])

	table, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())

	row, ok := table.Lookup(testutil.ExampleKey)
	require.True(t, ok)
	assert.Equal(t, domain.Number(2.5), row.Inhalation)
	assert.Equal(t, domain.NotApplicable(), row.LEVDermal)
}

func TestTableService_ImportDropsDuplicates(t *testing.T) {
	svc, refs := setupTableService(t)
	ctx := context.Background()

	csv := testutil.LookupCSV + "proc1 liquid no low ind,9,9,9,1,\n"
	result, err := svc.Import(ctx, writeLookupCSV(t, csv), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"proc1 liquid no low ind"}, result.Duplicates)
	assert.Equal(t, 1, result.Import.Duplicates)

	row, err := refs.GetRow(ctx, "PROC1liquidnolowind")
	require.NoError(t, err)
	assert.Equal(t, domain.Number(1), row.Inhalation)
}

func TestTableService_ImportFailureKeepsPreviousTable(t *testing.T) {
	obs := &recordingObserver{}
	svc, _ := setupTableService(t, obs)
	ctx := context.Background()

	_, err := svc.Import(ctx, writeLookupCSV(t, testutil.LookupCSV), "")
	require.NoError(t, err)

	bad := "descriptor/look-up term inhalation,init exp inhalation\nPROC1liquidnolowind,1\n"
	_, err = svc.Import(ctx, writeLookupCSV(t, bad), "")
	require.Error(t, err)
	assert.False(t, obs.last(t).Success)

	table, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())
}

func TestTableService_ImportRollsBackOnWriteFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	refs := repository.NewSQLiteReferenceRepo(database)
	ctx := context.Background()

	good := NewTableService(refs, testutil.NewTestUoW(database))
	_, err := good.Import(ctx, writeLookupCSV(t, testutil.LookupCSV), "")
	require.NoError(t, err)

	// exec 1 clears, exec 2 records the import, exec 4 writes the second row.
	injected := errors.New("disk full")
	failing := NewTableService(refs, &testutil.FailOnNthExecUoW{DB: database, FailOn: 4, Err: injected})
	single := "descriptor/look-up term inhalation,init exp inhalation,init exp dermal,init exp local dermal,reduction factor lev inhal,reduction factor LEV dermal\n" +
		"PROC2liquidnolowind,1,1,1,1,1\n" +
		"PROC3liquidnolowind,1,1,1,1,1\n"
	_, err = failing.Import(ctx, writeLookupCSV(t, single), "")
	require.ErrorIs(t, err, injected)

	rows, err := refs.ListRows(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	imports, err := refs.ListImports(ctx)
	require.NoError(t, err)
	assert.Len(t, imports, 1)
}

func TestTableService_LoadWithoutImport(t *testing.T) {
	svc, _ := setupTableService(t)
	_, err := svc.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoTable)
}

func TestTableService_Info(t *testing.T) {
	svc, _ := setupTableService(t)
	ctx := context.Background()

	info, err := svc.Info(ctx)
	require.NoError(t, err)
	assert.Nil(t, info.Latest)
	assert.Zero(t, info.Rows)

	_, err = svc.Import(ctx, writeLookupCSV(t, testutil.LookupCSV), "")
	require.NoError(t, err)

	info, err = svc.Info(ctx)
	require.NoError(t, err)
	require.NotNil(t, info.Latest)
	assert.Equal(t, 3, info.Rows)
	assert.Len(t, info.Imports, 1)
}

func TestTableService_Lookup(t *testing.T) {
	svc, _ := setupTableService(t)
	ctx := context.Background()
	_, err := svc.Import(ctx, writeLookupCSV(t, testutil.LookupCSV), "")
	require.NoError(t, err)

	row, err := svc.Lookup(ctx, "PROC7 liquid yes very low ind")
	require.NoError(t, err)
	assert.Equal(t, domain.Number(0.1), row.LEVInhalation)

	_, err = svc.Lookup(ctx, "PROC26")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTableService_ResolveOrder(t *testing.T) {
	svc, _ := setupTableService(t)
	ctx := context.Background()

	configured := writeLookupCSV(t, testutil.LookupCSV)
	explicit := writeLookupCSV(t, "descriptor/look-up term inhalation,init exp inhalation,init exp dermal,init exp local dermal,reduction factor lev inhal,reduction factor LEV dermal\n"+
		"PROC2liquidnolowind,1,1,1,1,1\n")

	_, err := svc.Resolve(ctx, ResolveRequest{})
	assert.ErrorIs(t, err, ErrNoTable)

	table, err := svc.Resolve(ctx, ResolveRequest{ConfigPath: configured})
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())

	table, err = svc.Resolve(ctx, ResolveRequest{Path: explicit, ConfigPath: configured})
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())

	_, err = svc.Import(ctx, writeLookupCSV(t, testutil.LookupCSV+"PROC9liquidnolowind,1,1,1,1,1\n"), "")
	require.NoError(t, err)
	table, err = svc.Resolve(ctx, ResolveRequest{ConfigPath: explicit})
	require.NoError(t, err)
	assert.Equal(t, 4, table.Len())
}
