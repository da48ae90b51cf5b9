package query_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pthm/pgupsert/internal/testutil"
	"github.com/pthm/pgupsert/pkg/query"
	"github.com/pthm/pgupsert/pkg/schema"
	"github.com/pthm/pgupsert/pkg/sqldsl"
	"github.com/pthm/pgupsert/pkg/upsert"
)

type recordingReporter struct {
	mu   sync.Mutex
	runs []query.Execution
}

func (r *recordingReporter) ReportExecution(_ context.Context, e query.Execution) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, e)
}

func TestExecutor(t *testing.T) {
	ctx := context.Background()
	db := testutil.SQLite(t)
	core, logs := observer.New(zapcore.DebugLevel)
	reporter := &recordingReporter{}
	exec := query.NewExecutor(db, query.WithLogger(zap.New(core)), query.WithReporter(reporter))

	stmt := query.Insert(users, query.One[testutil.UsersTable](sean).OnConflict(byID, upsert.DoNothing(users))).
		WithDialect(query.SQLite)

	n, err := exec.Execute(ctx, stmt)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = exec.Execute(ctx, stmt)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	_, err = exec.Execute(ctx, query.Insert(users, query.One[testutil.UsersTable](testutil.NewUser{ID: 5, Name: sean.Name})).
		WithDialect(query.SQLite))
	require.Error(t, err)
	assert.True(t, query.IsUniqueViolation(err), "driver error must not be wrapped: %v", err)

	n, err = exec.Execute(ctx, query.Update(users).
		Set(testutil.UsersHits.Set(sqldsl.Int(7))).
		WithDialect(query.SQLite))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = exec.Execute(ctx, query.Insert(users, query.None[testutil.UsersTable]()))
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	require.Len(t, reporter.runs, 4)
	assert.Equal(t, query.Execution{Kind: "insert", Table: "users", Conflict: "nothing", Rows: 1, Affected: 1},
		withoutTiming(reporter.runs[0]))
	assert.Equal(t, int64(0), reporter.runs[1].Affected)
	assert.Error(t, reporter.runs[2].Err)
	assert.Empty(t, reporter.runs[2].Conflict)
	assert.Equal(t, "update", reporter.runs[3].Kind)

	assert.Equal(t, 3, logs.FilterMessage("statement executed").Len())
	assert.Equal(t, 1, logs.FilterMessage("statement failed").Len())
	assert.Equal(t, 1, logs.FilterMessage("skipping insert without rows").Len())
}

func withoutTiming(e query.Execution) query.Execution {
	e.Duration = 0
	return e
}

func TestExecutor_QueryReports(t *testing.T) {
	ctx := context.Background()
	db := testutil.SQLite(t)
	core, logs := observer.New(zapcore.DebugLevel)
	reporter := &recordingReporter{}
	exec := query.NewExecutor(db, query.WithLogger(zap.New(core)), query.WithReporter(reporter))

	rows, err := exec.Query(ctx, query.Insert(users, query.Many[testutil.UsersTable](sean, tess).OnConflictDoNothing()).
		WithDialect(query.SQLite).
		Returning(testutil.UsersID))
	require.NoError(t, err)
	require.NoError(t, rows.Close())

	missing := schema.Named("missing")
	_, err = exec.Query(ctx, query.Insert(missing, query.Row[schema.Named]{schema.NewColumn(missing, "id").Value(1)}).
		WithDialect(query.SQLite).
		Returning(schema.NewColumn(missing, "id")))
	require.Error(t, err)

	require.Len(t, reporter.runs, 2)
	assert.Equal(t, query.Execution{Kind: "insert", Table: "users", Conflict: "nothing", Rows: 2, Query: true},
		withoutTiming(reporter.runs[0]))
	assert.Equal(t, "missing", reporter.runs[1].Table)
	assert.True(t, reporter.runs[1].Query)
	assert.Error(t, reporter.runs[1].Err)
	assert.Zero(t, reporter.runs[1].Affected)

	assert.Equal(t, 1, logs.FilterMessage("query started").Len())
	assert.Equal(t, 1, logs.FilterMessage("query failed").Len())
}
