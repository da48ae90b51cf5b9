package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/pthm/pgupsert/internal/cli"
)

var renderArgs bool

var renderCmd = &cobra.Command{
	Use:   "render [plan]",
	Short: "Print the SQL for a plan",
	Long:  `Print the INSERT statement a plan produces without connecting to a database.`,
	Example: `  # Render a plan for PostgreSQL
  pgupsert render plans/users.yaml

  # Render for SQLite and show bind arguments
  pgupsert render plans/users.yaml --dialect sqlite --args`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stmt, _, err := loadStatement(args)
		if err != nil {
			return err
		}

		sql, binds, err := stmt.SQL()
		if err != nil {
			return cli.PlanParseError("rendering statement", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, sql+";")
		if renderArgs {
			b, err := yaml.Marshal(binds)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "-- args:")
			fmt.Fprint(out, string(b))
		}
		return nil
	},
}

func init() {
	renderCmd.Flags().BoolVar(&renderArgs, "args", false, "also print bind arguments")
}
