// Command pgupsert renders and runs INSERT ... ON CONFLICT statements
// described by YAML plan files.
//
// Usage:
//
//	pgupsert render plans/users.yaml
//	pgupsert exec plans/users.yaml --db postgres://localhost/app
//	pgupsert config show
//
// Configuration is read from pgupsert.yaml (found by walking up from the
// working directory to the repository root) and PGUPSERT_* environment
// variables.
package main

func main() {
	Execute()
}
