package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/sparsemat/matrix"
)

var log = logging.Logger("loader")

const (
	headerSep  = "="
	tupleOpen  = "("
	tupleClose = ")"
	tupleSep   = ","
	tupleArity = 3

	// maxLineBytes bounds a single line; longer lines fail with ErrFormat.
	maxLineBytes = 1 << 20
)

// Result is the validated (rows, cols, entries) triple produced by Parse.
// Entries never holds a zero value.
type Result struct {
	Rows, Cols int
	Entries    map[matrix.Index]int
}

// Matrix builds a SparseMatrix from r.
func (r *Result) Matrix(opts ...matrix.Option) (*matrix.SparseMatrix, error) {
	m, err := matrix.FromEntries(r.Rows, r.Cols, r.Entries, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	return m, nil
}

// formatErrorf wraps ErrFormat with the 1-based line number.
func formatErrorf(line int, format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", line, fmt.Sprintf(format, args...), ErrFormat)
}

// Parse reads the whole input and returns its dimensions and non-zero entries.
// Nothing partial is returned on failure.
func Parse(r io.Reader) (*Result, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	res := &Result{Entries: make(map[matrix.Index]int)}
	var (
		line int
		err  error
	)

	for _, dst := range []*int{&res.Rows, &res.Cols} {
		line++
		if !sc.Scan() {
			return nil, formatErrorf(line, "missing header")
		}
		if *dst, err = parseHeader(sc.Text()); err != nil {
			return nil, formatErrorf(line, "%v", err)
		}
	}
	if res.Rows < 0 || res.Cols < 0 {
		return nil, formatErrorf(line, "negative dimensions %dx%d", res.Rows, res.Cols)
	}

	var e matrix.Entry
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if e, err = parseTuple(text); err != nil {
			return nil, formatErrorf(line, "%v", err)
		}
		if e.Value != 0 {
			res.Entries[e.Index()] = e.Value
		}
	}
	if err = sc.Err(); err != nil {
		return nil, formatErrorf(line+1, "read: %v", err)
	}

	log.Debugw("parsed matrix", "rows", res.Rows, "cols", res.Cols, "nnz", len(res.Entries), "lines", line)

	return res, nil
}

// parseHeader returns the integer after the first '=' of a header line.
func parseHeader(text string) (int, error) {
	_, value, ok := strings.Cut(text, headerSep)
	if !ok {
		return 0, fmt.Errorf("header %q has no %q", text, headerSep)
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("header %q: %v", text, err)
	}

	return n, nil
}

// parseTuple parses "(row, col, value)". text is already trimmed.
func parseTuple(text string) (matrix.Entry, error) {
	if !strings.HasPrefix(text, tupleOpen) || !strings.HasSuffix(text, tupleClose) {
		return matrix.Entry{}, fmt.Errorf("%q is not parenthesized", text)
	}
	fields := strings.Split(strings.Trim(text, tupleOpen+tupleClose), tupleSep)
	if len(fields) != tupleArity {
		return matrix.Entry{}, fmt.Errorf("%q has %d fields, want %d", text, len(fields), tupleArity)
	}

	var nums [tupleArity]int
	var err error
	for i, f := range fields {
		if nums[i], err = strconv.Atoi(strings.TrimSpace(f)); err != nil {
			return matrix.Entry{}, fmt.Errorf("%q: %v", text, err)
		}
	}

	return matrix.Entry{Row: nums[0], Col: nums[1], Value: nums[2]}, nil
}

// LoadFile opens path, parses it and builds a SparseMatrix with opts.
// Errors wrap ErrFileNotFound or ErrFormat.
func LoadFile(path string, opts ...matrix.Option) (*matrix.SparseMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		log.Debugw("open failed", "path", path, "err", err)
		return nil, fmt.Errorf("%s: %w: %w", path, ErrFileNotFound, err)
	}
	defer f.Close()

	res, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return res.Matrix(opts...)
}
