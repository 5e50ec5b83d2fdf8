package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxLineBytes bounds one input line; dense rows of large graphs are long.
const maxLineBytes = 16 << 20

// row is one parsed line before range checks that need n.
type row struct {
	line      int
	neighbors []int
	tokens    []string
}

// Parse reads the adjacency-list format from r and returns the zero-based
// neighbor array. Neighbor order within a row is preserved.
//
// Steps:
//  1. Tokenize each non-blank line; reject non-integers, labels below 1,
//     repeated labels and self-listing immediately.
//  2. Take n as the largest label; every label in 1..n must have a line.
//     This is checked against the row count before anything is sized by n.
//  3. Reject neighbors outside 1..n, reporting the line they appeared on.
//
// Complexity: O(total tokens).
func Parse(r io.Reader) ([][]int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	rows := make(map[int]row)
	n, lineNo := 0, 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		label, err := atoi(lineNo, fields[0])
		if err != nil {
			return nil, err
		}
		if label < 1 {
			return nil, &ParseError{Line: lineNo, Token: fields[0], Err: ErrLabelRange}
		}
		if prev, dup := rows[label]; dup {
			return nil, &ParseError{Line: lineNo, Token: fields[0], Err: fmt.Errorf("%w (first on line %d)", ErrDuplicateVertex, prev.line)}
		}

		rec := row{line: lineNo, neighbors: make([]int, 0, len(fields)-1), tokens: fields[1:]}
		for _, tok := range fields[1:] {
			nb, err := atoi(lineNo, tok)
			if err != nil {
				return nil, err
			}
			if nb < 1 {
				return nil, &ParseError{Line: lineNo, Token: tok, Err: ErrNeighborRange}
			}
			if nb == label {
				return nil, &ParseError{Line: lineNo, Token: tok, Err: ErrSelfAdjacency}
			}
			rec.neighbors = append(rec.neighbors, nb)
		}
		rows[label] = rec
		n = max(n, label)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}
	if n == 0 {
		return nil, ErrEmptyInput
	}
	// labels are unique, so 1..n is covered exactly when there are n rows;
	// otherwise some label up to len(rows)+1 is absent
	if n != len(rows) {
		for label := 1; ; label++ {
			if _, ok := rows[label]; !ok {
				return nil, &ParseError{Token: strconv.Itoa(label), Err: ErrMissingVertex}
			}
		}
	}

	out := make([][]int, n)
	for label := 1; label <= n; label++ {
		rec := rows[label]
		zero := make([]int, len(rec.neighbors))
		for i, nb := range rec.neighbors {
			if nb > n {
				return nil, &ParseError{Line: rec.line, Token: rec.tokens[i], Err: ErrNeighborRange}
			}
			zero[i] = nb - 1
		}
		out[label-1] = zero
	}

	return out, nil
}

// atoi parses one decimal token.
func atoi(line int, tok string) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &ParseError{Line: line, Token: tok, Err: ErrBadToken}
	}
	return v, nil
}

// Load opens path and parses it.
func Load(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	nb, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}

	return nb, nil
}

// Write renders nb in the adjacency-list format, one line per vertex in
// index order, converting to 1-based labels.
func Write(w io.Writer, nb [][]int) error {
	// bufio.Writer latches the first write error and returns it from Flush
	bw := bufio.NewWriter(w)
	for i, adj := range nb {
		bw.WriteString(strconv.Itoa(i + 1))
		for _, j := range adj {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(j + 1))
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	return nil
}
