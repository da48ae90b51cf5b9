package query

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
)

// Execution describes one statement run through an Executor.
type Execution struct {
	Kind     string // "insert" or "update"
	Table    string
	Conflict string // conflict action: "", "nothing" or "update"
	Rows     int    // rows proposed for insertion
	Affected int64 // always 0 when Query is set
	Duration time.Duration
	Err      error

	// Query is set for statements run through Executor.Query, whose
	// affected rows are only known once the result is read.
	Query bool
}

// Reporter receives an Execution after every statement.
type Reporter interface {
	ReportExecution(ctx context.Context, e Execution)
}

// Option configures an Executor.
type Option func(*Executor)

// WithLogger sets the logger. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Executor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithReporter sets the metrics reporter.
func WithReporter(r Reporter) Option {
	return func(e *Executor) { e.reporter = r }
}

// Executor runs statements against a database, logging and reporting each
// one. It is safe for concurrent use if db is.
type Executor struct {
	db       Execer
	logger   *zap.Logger
	reporter Reporter
}

// NewExecutor returns an Executor for db.
func NewExecutor(db Execer, opts ...Option) *Executor {
	e := &Executor{db: db, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// describer is implemented by the statements of this package.
type describer interface {
	describe() Execution
}

// Execute runs stmt and returns the rows affected. Errors are returned
// exactly as rendering or the driver produced them.
func (e *Executor) Execute(ctx context.Context, stmt Statement) (int64, error) {
	var info Execution
	if d, ok := stmt.(describer); ok {
		info = d.describe()
	}
	if info.Kind == "insert" && info.Rows == 0 {
		e.logger.Debug("skipping insert without rows", zap.String("table", info.Table))
		return 0, nil
	}

	query, args, err := stmt.SQL()
	if err != nil {
		return 0, err
	}

	start := time.Now()
	n, err := exec(ctx, e.db, query, args)
	info.Affected = n
	info.Duration = time.Since(start)
	info.Err = err

	if err != nil {
		e.logger.Warn("statement failed",
			zap.String("kind", info.Kind),
			zap.String("table", info.Table),
			zap.String("sql", query),
			zap.String("sqlstate", SQLState(err)),
			zap.Error(err),
		)
	} else {
		e.logger.Debug("statement executed",
			zap.String("kind", info.Kind),
			zap.String("table", info.Table),
			zap.String("conflict", info.Conflict),
			zap.String("sql", query),
			zap.Int("args", len(args)),
			zap.Int("rows", info.Rows),
			zap.Int64("affected", n),
			zap.Duration("elapsed", info.Duration),
		)
	}
	if e.reporter != nil {
		e.reporter.ReportExecution(ctx, info)
	}
	return n, err
}

// Query runs stmt and returns its result rows, typically from RETURNING.
// The caller must close them. The execution is reported with Query set
// and Affected left at 0.
func (e *Executor) Query(ctx context.Context, stmt Statement) (*sql.Rows, error) {
	var info Execution
	if d, ok := stmt.(describer); ok {
		info = d.describe()
	}
	info.Query = true

	query, args, err := stmt.SQL()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	rows, err := e.db.QueryContext(ctx, query, args...)
	info.Duration = time.Since(start)
	info.Err = err

	if err != nil {
		e.logger.Warn("query failed",
			zap.String("kind", info.Kind),
			zap.String("table", info.Table),
			zap.String("sql", query),
			zap.String("sqlstate", SQLState(err)),
			zap.Error(err),
		)
	} else {
		e.logger.Debug("query started",
			zap.String("kind", info.Kind),
			zap.String("table", info.Table),
			zap.String("sql", query),
			zap.Int("args", len(args)),
		)
	}
	if e.reporter != nil {
		e.reporter.ReportExecution(ctx, info)
	}
	return rows, err
}

func (s InsertStatement[T, R]) describe() Execution {
	info := Execution{
		Kind:  "insert",
		Table: s.table.TableName(),
		Rows:  len(s.rows.InsertRows()),
	}
	if src, ok := any(s.rows).(conflictSource[T]); ok {
		info.Conflict = src.OnConflictClause().Action().Kind().String()
	}
	return info
}

func (u UpdateStatement[T]) describe() Execution {
	return Execution{Kind: "update", Table: u.table.TableName()}
}
