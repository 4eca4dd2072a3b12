package satcnf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrEmptyClause indicates a clause with no literals was appended; an
// empty clause is unsatisfiable by definition and always indicates a
// programming error in the caller's encoding.
var ErrEmptyClause = errors.New("satcnf: empty clause")

// CNF accumulates clauses (each a non-empty list of signed DIMACS
// literals) and comment lines, tracking the highest variable id seen so
// the header can be written without a second pass.
type CNF struct {
	clauses  [][]int
	comments []string
	maxVar   int
}

// New returns an empty CNF builder.
func New() *CNF {
	return &CNF{}
}

// AddClause appends one clause. Literals are signed variable ids (never
// 0); a positive literal asserts the variable true, negative asserts
// false. Returns ErrEmptyClause if lits is empty.
func (c *CNF) AddClause(lits ...int) error {
	if len(lits) == 0 {
		return ErrEmptyClause
	}
	cl := make([]int, len(lits))
	for i, lit := range lits {
		cl[i] = lit
		v := lit
		if v < 0 {
			v = -v
		}
		if v > c.maxVar {
			c.maxVar = v
		}
	}
	copy(cl, lits)
	c.clauses = append(c.clauses, cl)
	return nil
}

// Comment records a DIMACS comment row ('c ...'), emitted verbatim ahead
// of the clause block.
func (c *CNF) Comment(text string) {
	c.comments = append(c.comments, text)
}

// NumVars returns the highest variable id referenced by any clause.
func (c *CNF) NumVars() int {
	return c.maxVar
}

// NumClauses returns the number of clauses accumulated so far.
func (c *CNF) NumClauses() int {
	return len(c.clauses)
}

// WriteDIMACS serialises the accumulated clauses as a DIMACS CNF file:
// comment rows, then the "p cnf N M" header, then one clause per line
// terminated by a literal 0.
func (c *CNF) WriteDIMACS(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, line := range c.comments {
		if _, err := fmt.Fprintf(bw, "c %s\n", line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", c.maxVar, len(c.clauses)); err != nil {
		return err
	}
	for _, cl := range c.clauses {
		for _, lit := range cl {
			if _, err := fmt.Fprintf(bw, "%d ", lit); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw, "0"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
