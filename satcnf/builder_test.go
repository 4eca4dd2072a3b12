package satcnf_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthodraw/satcnf"
)

func TestAddClauseRejectsEmpty(t *testing.T) {
	cnf := satcnf.New()
	err := cnf.AddClause()
	require.True(t, errors.Is(err, satcnf.ErrEmptyClause))
}

func TestWriteDIMACSFormat(t *testing.T) {
	cnf := satcnf.New()
	cnf.Comment("edge(1,2)")
	require.NoError(t, cnf.AddClause(1, 2, -3))
	require.NoError(t, cnf.AddClause(-1))

	require.Equal(t, 3, cnf.NumVars())
	require.Equal(t, 2, cnf.NumClauses())

	var buf bytes.Buffer
	require.NoError(t, cnf.WriteDIMACS(&buf))

	out := buf.String()
	require.Contains(t, out, "c edge(1,2)\n")
	require.Contains(t, out, "p cnf 3 2\n")
	require.Contains(t, out, "1 2 -3 0\n")
	require.Contains(t, out, "-1 0\n")
}
