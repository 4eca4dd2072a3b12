package satcnf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthodraw/satcnf"
)

// fakeSolver writes a tiny shell script standing in for the real SAT
// solver binary (out of scope for this module; only its subprocess
// contract is). It receives (cnfPath, modelPath, "-certified",
// "-certified-output=proofPath") and writes to whichever output file
// body tells it to.
func fakeSolver(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "fake-solver.sh")
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestRunParsesSatisfiableModel(t *testing.T) {
	solver := fakeSolver(t, `echo "1 -2 3 0" > "$2"`)

	cnf := satcnf.New()
	require.NoError(t, cnf.AddClause(1, 2))

	out, err := satcnf.Run(solver, cnf)
	require.NoError(t, err)
	require.True(t, out.Satisfiable)
	require.Equal(t, true, out.Model[1])
	require.Equal(t, false, out.Model[2])
	require.Equal(t, true, out.Model[3])
}

func TestRunParsesUnsatProof(t *testing.T) {
	solver := fakeSolver(t, `
echo "UNSAT" > "$2"
proof=$(echo "$@" | sed -n 's/.*-certified-output=\([^ ]*\).*/\1/p')
printf '1 -2 0\nd 1 0\n3 0\n' > "$proof"
`)

	cnf := satcnf.New()
	require.NoError(t, cnf.AddClause(1, 2))

	out, err := satcnf.Run(solver, cnf)
	require.NoError(t, err)
	require.False(t, out.Satisfiable)
	require.Len(t, out.Proof, 3)
	require.Equal(t, []int{1, -2}, out.Proof[0].Literals)
	require.False(t, out.Proof[0].Deletion)
	require.True(t, out.Proof[1].Deletion)
	require.Equal(t, []int{3}, out.Proof[2].Literals)
}

func TestRunMissingOutputIsHardFailure(t *testing.T) {
	solver := fakeSolver(t, `exit 0`)

	cnf := satcnf.New()
	require.NoError(t, cnf.AddClause(1))

	_, err := satcnf.Run(solver, cnf)
	require.ErrorIs(t, err, satcnf.ErrSolverOutputMissing)
}
