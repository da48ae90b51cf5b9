package main

import (
	"github.com/pthm/pgupsert/internal/cli"
	"github.com/pthm/pgupsert/internal/plan"
	"github.com/pthm/pgupsert/pkg/query"
)

// loadStatement resolves the plan path and dialect and builds the statement.
func loadStatement(args []string) (query.Statement, *plan.Plan, error) {
	var argPath string
	if len(args) > 0 {
		argPath = args[0]
	}
	path := resolveString(argPath, cfg.Plan)
	if path == "" {
		return nil, nil, cli.ConfigError("a plan file is required (pass it as an argument or set plan in config)", nil)
	}

	d, err := query.ParseDialect(resolveString(dialect, cfg.DialectName()))
	if err != nil {
		return nil, nil, cli.ConfigError("dialect", err)
	}

	p, err := plan.Load(path)
	if err != nil {
		return nil, nil, cli.PlanParseError("loading plan", err)
	}
	stmt, err := p.Build(d)
	if err != nil {
		return nil, nil, cli.PlanParseError("building statement", err)
	}
	return stmt, p, nil
}
