// Package instance reads and writes TSP instances and solutions in the plain
// text exchange format.
//
// Instance file:
//
//	n
//	w(0,0) w(0,1) ... w(0,n-1)
//	...
//	w(n-1,0) ... w(n-1,n-1)
//
// Solution file ({base}_{method}.out next to the instance): the tour as
// 1-based vertex indices on one line, the cost on the next. Integral costs
// are written without a decimal point.
package instance

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/tspsolve/tsp"
)

// maxLine bounds a single matrix row; 16 MiB fits rows of ~1M short tokens.
const maxLine = 16 << 20

// Parse reads an instance. Blank lines after the matrix are ignored; anything
// else that deviates from the format is an ErrParse naming the line. The
// matrix is then validated by tsp.NewDistances (square, finite, non-negative,
// symmetric).
func Parse(r io.Reader) (*tsp.Distances, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var (
		line int
		n    int
		err  error
	)
	next := func() (string, bool) {
		for sc.Scan() {
			line++
			if s := strings.TrimSpace(sc.Text()); s != "" {
				return s, true
			}
		}
		return "", false
	}

	head, ok := next()
	if !ok {
		if err = sc.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return nil, fmt.Errorf("%w: empty input", ErrParse)
	}
	if n, err = strconv.Atoi(head); err != nil || n <= 0 {
		return nil, fmt.Errorf("%w: line %d: vertex count %q", ErrParse, line, head)
	}

	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		text, ok := next()
		if !ok {
			if err = sc.Err(); err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrParse, line, err)
			}
			return nil, fmt.Errorf("%w: expected %d rows, found %d", ErrParse, n, i)
		}
		fields := strings.Fields(text)
		if len(fields) != n {
			return nil, fmt.Errorf("%w: line %d: row %d has %d entries, want %d", ErrParse, line, i+1, len(fields), n)
		}
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if rows[i][j], err = strconv.ParseFloat(fields[j], 64); err != nil {
				return nil, fmt.Errorf("%w: line %d: column %d: %q is not a number", ErrParse, line, j+1, fields[j])
			}
		}
	}
	if extra, ok := next(); ok {
		return nil, fmt.Errorf("%w: line %d: unexpected trailing data %q", ErrParse, line, extra)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return tsp.FromRows(rows)
}

// Load opens path and parses it.
func Load(path string) (*tsp.Distances, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// Write renders d in the instance format with precision decimals per weight
// (negative precision selects the shortest exact representation).
func Write(w io.Writer, d *tsp.Distances, precision int) error {
	if d == nil {
		return tsp.ErrNilDistances
	}
	var (
		m  = d.Matrix()
		n  = m.Rows()
		bw = bufio.NewWriter(w)
	)
	fmt.Fprintf(bw, "%d\n", n)

	var (
		i, j int
		buf  []byte
	)
	for i = 0; i < n; i++ {
		buf = buf[:0]
		for j = 0; j < n; j++ {
			if j > 0 {
				buf = append(buf, ' ')
			}
			x, _ := m.At(i, j)
			buf = strconv.AppendFloat(buf, x, 'f', precision, 64)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// FormatCost renders a cost the way solution files show it: integral values
// without a decimal point, others in their shortest form.
func FormatCost(cost float64) string {
	if cost == float64(int64(cost)) {
		return strconv.FormatInt(int64(cost), 10)
	}

	return strconv.FormatFloat(cost, 'f', -1, 64)
}

// WriteSolution writes tour (0-based) as 1-based indices followed by the cost.
func WriteSolution(w io.Writer, tour []int, cost float64) error {
	if len(tour) == 0 {
		return ErrNoTour
	}
	var sb strings.Builder
	for i, v := range tour {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v + 1))
	}
	sb.WriteByte('\n')
	sb.WriteString(FormatCost(cost))
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())

	return err
}

// SolutionPath returns {dir}/{base}_{method}.out for an instance path, where
// base is the file name without its extension.
func SolutionPath(input, method string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))

	return filepath.Join(filepath.Dir(input), base+"_"+method+".out")
}

// SaveSolution writes res next to the instance file and returns the path.
func SaveSolution(input, method string, res tsp.Result) (string, error) {
	if res.Tour == nil {
		return "", ErrNoTour
	}
	path := SolutionPath(input, method)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err = WriteSolution(f, res.Tour, res.Cost); err != nil {
		_ = f.Close()
		return "", err
	}

	return path, f.Close()
}
