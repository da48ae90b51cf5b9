package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"sigs.k8s.io/yaml"

	"github.com/pthm/pgupsert/internal/cli"
	"github.com/pthm/pgupsert/pkg/metrics"
	"github.com/pthm/pgupsert/pkg/query"
)

var (
	execDB      string
	execDriver  string
	execDryRun  bool
	execMetrics bool
)

var execCmd = &cobra.Command{
	Use:   "exec [plan]",
	Short: "Run a plan against a database",
	Long: `Run the INSERT statement a plan produces and print the number of rows
inserted or updated. Rows skipped by DO NOTHING are not counted. Plans with a
returning list print the returned rows instead.`,
	Example: `  # Run against PostgreSQL
  pgupsert exec plans/users.yaml --db postgres://localhost/app

  # Run against a SQLite file
  pgupsert exec plans/users.yaml --driver sqlite3 --db app.db

  # Print the statement without running it
  pgupsert exec plans/users.yaml --dry-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// The driver decides the default dialect.
		cfg.Database.Driver = resolveString(execDriver, cfg.Database.Driver)

		stmt, p, err := loadStatement(args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if resolveBool(execDryRun, cfg.Exec.DryRun) {
			sql, _, err := stmt.SQL()
			if err != nil {
				return cli.PlanParseError("rendering statement", err)
			}
			fmt.Fprintln(out, sql+";")
			return nil
		}

		dsn, err := resolveDSN(execDB)
		if err != nil {
			return err
		}
		return runExec(cmd.Context(), out, cfg.Database.Driver, dsn, stmt, len(p.Returning) > 0)
	},
}

func init() {
	f := execCmd.Flags()
	f.StringVar(&execDB, "db", "", "database URL (or SQLite file)")
	f.StringVar(&execDriver, "driver", "", "database/sql driver: pgx, postgres or sqlite3")
	f.BoolVar(&execDryRun, "dry-run", false, "print the statement without running it")
	f.BoolVar(&execMetrics, "metrics", false, "print Prometheus metrics to stderr after running")
}

// resolveDSN gets the database DSN from flag or config.
func resolveDSN(flagDSN string) (string, error) {
	if flagDSN != "" {
		return flagDSN, nil
	}

	dsn, err := cfg.DSN()
	if err != nil {
		return "", cli.ConfigError("database configuration", err)
	}
	return dsn, nil
}

func runExec(ctx context.Context, out io.Writer, driver, dsn string, stmt query.Statement, returning bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return cli.DBConnectError("connecting to database", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.PingContext(ctx); err != nil {
		return cli.DBConnectError("connecting to database", err)
	}

	reg := prometheus.NewRegistry()
	reporter, err := metrics.NewPrometheus(reg)
	if err != nil {
		return cli.GeneralError("registering metrics", err)
	}
	exec := query.NewExecutor(db,
		query.WithLogger(logger.With(zap.String("driver", driver))),
		query.WithReporter(reporter),
	)
	if execMetrics {
		defer func() { _ = writeMetrics(os.Stderr, reg) }()
	}

	if returning {
		return runReturning(ctx, out, exec, stmt)
	}

	n, err := exec.Execute(ctx, stmt)
	if err != nil {
		if query.IsUniqueViolation(err) {
			return cli.StatementError("unique constraint violated (not covered by the conflict target)", err)
		}
		return cli.StatementError("executing statement", err)
	}
	fmt.Fprintf(out, "%d row(s) affected\n", n)
	return nil
}

func runReturning(ctx context.Context, out io.Writer, exec *query.Executor, stmt query.Statement) error {
	rows, err := exec.Query(ctx, stmt)
	if err != nil {
		return cli.StatementError("executing statement", err)
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return cli.StatementError("reading result", err)
	}

	var result []map[string]any
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return cli.StatementError("reading result", err)
		}
		row := make(map[string]any, len(cols))
		for i, c := range cols {
			if b, ok := values[i].([]byte); ok {
				values[i] = string(b)
			}
			row[c] = values[i]
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return cli.StatementError("reading result", err)
	}

	b, err := yaml.Marshal(result)
	if err != nil {
		return err
	}
	fmt.Fprint(out, string(b))
	return nil
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
