package satcnf

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrSolverOutputMissing indicates the model file the solver was supposed
// to produce does not exist after it exits. Treated as a hard failure:
// the solver's exit code alone is not trusted, only its output file is.
var ErrSolverOutputMissing = errors.New("satcnf: solver produced no output file")

// ProofLine is one line of a DRAT refutation proof: a sequence of signed
// literals terminated by an implicit 0, plus whether it's a deletion
// ('d'-prefixed) line.
type ProofLine struct {
	Deletion bool
	Literals []int
}

// Outcome is the result of one solver invocation: either a satisfying
// assignment (Satisfiable == true, Model populated) or a DRAT proof
// (Satisfiable == false, Proof populated).
type Outcome struct {
	Satisfiable bool
	Model       map[int]bool
	Proof       []ProofLine
}

// Run invokes solverPath as a subprocess over cnf's DIMACS encoding,
// following the certified-UNSAT contract: the solver is given the CNF
// input file, a model output path, and a DRAT proof output path via
// "-certified -certified-output=<path>", with stdout/stderr discarded. Run
// blocks until the subprocess exits, then reads back the model file.
//
// The subprocess's own exit code is not inspected: some certified solvers
// return non-zero on UNSAT. The solver always writes the model file; its
// first line is the literal "UNSAT" on an unsatisfiable instance, or the
// whitespace-separated assignment otherwise. Run branches on that first
// line, not on which file happens to be non-empty, and reads the proof
// file only in the UNSAT case.
func Run(solverPath string, cnf *CNF) (*Outcome, error) {
	dir, err := os.MkdirTemp("", "satcnf-*")
	if err != nil {
		return nil, fmt.Errorf("satcnf: Run: %w", err)
	}
	defer os.RemoveAll(dir)

	cnfPath := filepath.Join(dir, "input.cnf")
	modelPath := filepath.Join(dir, "model.out")
	proofPath := filepath.Join(dir, "proof.drat")

	f, err := os.Create(cnfPath)
	if err != nil {
		return nil, fmt.Errorf("satcnf: Run: %w", err)
	}
	if err := cnf.WriteDIMACS(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("satcnf: Run: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("satcnf: Run: %w", err)
	}

	cmd := exec.Command(solverPath, cnfPath, modelPath, "-certified", "-certified-output="+proofPath)
	cmd.Stdout = nil
	cmd.Stderr = nil
	_ = cmd.Run() // exit code deliberately ignored; see doc comment

	if _, err := os.Stat(modelPath); err != nil {
		return nil, ErrSolverOutputMissing
	}
	unsat, err := firstLineIsUnsat(modelPath)
	if err != nil {
		return nil, fmt.Errorf("satcnf: Run: %w", err)
	}
	if unsat {
		lines, err := parseProof(proofPath)
		if err != nil {
			return nil, fmt.Errorf("satcnf: Run: %w", err)
		}
		return &Outcome{Satisfiable: false, Proof: lines}, nil
	}
	model, err := parseModel(modelPath)
	if err != nil {
		return nil, fmt.Errorf("satcnf: Run: %w", err)
	}
	return &Outcome{Satisfiable: true, Model: model}, nil
}

// firstLineIsUnsat reports whether path's first line is the literal
// "UNSAT", the solver's marker for an unsatisfiable instance.
func firstLineIsUnsat(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	if !sc.Scan() {
		return false, sc.Err()
	}
	return strings.TrimSpace(sc.Text()) == "UNSAT", nil
}

func parseModel(path string) (map[int]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	model := make(map[int]bool)
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		lit, err := strconv.Atoi(sc.Text())
		if err != nil {
			continue // tolerate stray non-numeric tokens some solvers emit
		}
		if lit == 0 {
			continue
		}
		v := lit
		if v < 0 {
			v = -v
		}
		model[v] = lit > 0
	}
	return model, sc.Err()
}

func parseProof(path string) ([]ProofLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []ProofLine
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}
		var pl ProofLine
		fields := strings.Fields(raw)
		if fields[0] == "d" {
			pl.Deletion = true
			fields = fields[1:]
		}
		for _, tok := range fields {
			lit, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("satcnf: parseProof: %w", err)
			}
			if lit == 0 {
				break
			}
			pl.Literals = append(pl.Literals, lit)
		}
		lines = append(lines, pl)
	}
	return lines, sc.Err()
}
