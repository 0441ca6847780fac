// Command sparsemat loads two sparse matrices from text files, applies
// add, subtract or multiply, and prints the canonical result.
//
// Usage:
//
//	sparsemat -op add -a a.txt -b b.txt
//	sparsemat            # prompts for the operation and both paths
//
// Logging goes to stderr through go-log; raise it with -log-level debug or
// GOLOG_LOG_LEVEL=debug.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/sparsemat/loader"
	"github.com/katalvlaran/sparsemat/matrix"
)

var log = logging.Logger("sparsemat")

// User-facing messages, one per error kind.
const (
	msgFormat   = "Input file has wrong format"
	msgNotFound = "The specified file was not found."
	msgBadOp    = "Invalid operation selected."
)

var errInvalidOp = errors.New("sparsemat: invalid operation")

type binaryOp func(a, b *matrix.SparseMatrix) (*matrix.SparseMatrix, error)

// operation pairs a kernel with the message shown when operand shapes do not fit.
type operation struct {
	apply    binaryOp
	mismatch string
}

var operations = map[string]operation{
	"add":      {matrix.Add, "Matrix dimensions must be the same for addition."},
	"subtract": {matrix.Sub, "Matrix dimensions must be the same for subtraction."},
	"multiply": {matrix.Mul, "Matrix dimensions do not allow multiplication."},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process exit, for tests.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sparsemat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	op := fs.String("op", "", "operation: add, subtract or multiply")
	pathA := fs.String("a", "", "path to the first matrix file")
	pathB := fs.String("b", "", "path to the second matrix file")
	rowIndex := fs.Bool("row-index", false, "multiply by indexing the right operand by row")
	logLevel := fs.String("log-level", "", "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *logLevel != "" {
		if err := logging.SetLogLevel("*", *logLevel); err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
	}

	in := bufio.NewReader(stdin)
	for _, p := range []struct {
		dst    *string
		prompt string
	}{
		{op, "Select operation (add, subtract, multiply): "},
		{pathA, "Enter the path to the first matrix file: "},
		{pathB, "Enter the path to the second matrix file: "},
	} {
		if *p.dst != "" {
			continue
		}
		fmt.Fprint(stdout, p.prompt)
		*p.dst = readLine(in)
	}

	var opts []matrix.Option
	if *rowIndex {
		opts = append(opts, matrix.WithMulStrategy(matrix.MulRowIndex))
	}

	name := strings.ToLower(strings.TrimSpace(*op))
	res, err := execute(name, *pathA, *pathB, opts...)
	if err != nil {
		log.Debugw("operation failed", "op", name, "err", err)
		fmt.Fprintln(stdout, describe(name, err))
		return 1
	}

	fmt.Fprintln(stdout, "Result:")
	fmt.Fprintln(stdout, res)

	return 0
}

// execute loads both operands and applies op. Both files are loaded before
// the operation name is checked, so file errors take precedence.
func execute(op, pathA, pathB string, opts ...matrix.Option) (*matrix.SparseMatrix, error) {
	a, err := loader.LoadFile(pathA, opts...)
	if err != nil {
		return nil, err
	}
	b, err := loader.LoadFile(pathB, opts...)
	if err != nil {
		return nil, err
	}

	o, ok := operations[op]
	if !ok {
		return nil, fmt.Errorf("%q: %w", op, errInvalidOp)
	}
	log.Infow("applying", "op", op, "a", fmt.Sprintf("%dx%d", a.Rows(), a.Cols()), "b", fmt.Sprintf("%dx%d", b.Rows(), b.Cols()))

	return o.apply(a, b)
}

// describe maps an error raised while running op to the message shown to the user.
func describe(op string, err error) string {
	switch {
	case errors.Is(err, matrix.ErrDimensionMismatch):
		if o, ok := operations[op]; ok {
			return o.mismatch
		}
		return err.Error()
	case errors.Is(err, loader.ErrFileNotFound):
		return msgNotFound
	case errors.Is(err, loader.ErrFormat):
		return msgFormat
	case errors.Is(err, errInvalidOp):
		return msgBadOp
	default:
		return err.Error()
	}
}

// readLine returns the next input line without surrounding space.
// EOF yields whatever was read, possibly "".
func readLine(r *bufio.Reader) string {
	s, _ := r.ReadString('\n')
	return strings.TrimSpace(s)
}
