package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	cause := errors.New("connection refused")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "plain", err: cause, want: ExitGeneral},
		{name: "config", err: ConfigError("bad config", cause), want: ExitConfig},
		{name: "plan", err: PlanParseError("bad plan", cause), want: ExitPlanParse},
		{name: "connect", err: DBConnectError("connect", cause), want: ExitDBConnect},
		{name: "statement", err: StatementError("insert", cause), want: ExitStatement},
		{name: "wrapped", err: fmt.Errorf("run: %w", DBConnectError("connect", cause)), want: ExitDBConnect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestExitError(t *testing.T) {
	cause := errors.New("no such host")
	err := DBConnectError("connecting to database", cause)

	assert.Equal(t, "connecting to database: no such host", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "plain", GeneralError("plain", nil).Error())

	var buf bytes.Buffer
	PrintError(&buf, err)
	assert.Equal(t, "Error: connecting to database: no such host\n", buf.String())
}
