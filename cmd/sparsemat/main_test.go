package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemat/matrix"
)

const (
	fileA = "rows=2\ncols=2\n(0,0,1)\n(0,1,2)\n(1,0,3)\n(1,1,4)\n"
	fileB = "rows=2\ncols=2\n(0,0,5)\n(1,1,6)\n"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRun_Flags(t *testing.T) {
	a := writeFile(t, "a.txt", fileA)
	b := writeFile(t, "b.txt", fileB)

	for _, tc := range []struct {
		args []string
		want string
	}{
		{[]string{"-op", "add"}, "SparseMatrix(2, 2): (0, 0, 6), (0, 1, 2), (1, 0, 3), (1, 1, 10)"},
		{[]string{"-op", "subtract"}, "SparseMatrix(2, 2): (0, 0, -4), (0, 1, 2), (1, 0, 3), (1, 1, -2)"},
		{[]string{"-op", "multiply"}, "SparseMatrix(2, 2): (0, 0, 5), (0, 1, 12), (1, 0, 15), (1, 1, 24)"},
		{[]string{"-op", "MULTIPLY", "-row-index"}, "SparseMatrix(2, 2): (0, 0, 5), (0, 1, 12), (1, 0, 15), (1, 1, 24)"},
	} {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			var out, errOut bytes.Buffer
			code := run(append(tc.args, "-a", a, "-b", b), strings.NewReader(""), &out, &errOut)
			require.Equal(t, 0, code, errOut.String())
			require.Equal(t, "Result:\n"+tc.want+"\n", out.String())
		})
	}
}

func TestRun_Prompts(t *testing.T) {
	a := writeFile(t, "a.txt", fileA)
	b := writeFile(t, "b.txt", fileB)

	var out, errOut bytes.Buffer
	in := strings.NewReader(" Add \n" + a + "\n" + b + "\n")
	code := run(nil, in, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())

	got := out.String()
	require.Contains(t, got, "Select operation (add, subtract, multiply): ")
	require.Contains(t, got, "Enter the path to the first matrix file: ")
	require.Contains(t, got, "Enter the path to the second matrix file: ")
	require.True(t, strings.HasSuffix(got, "Result:\nSparseMatrix(2, 2): (0, 0, 6), (0, 1, 2), (1, 0, 3), (1, 1, 10)\n"), got)
}

func TestRun_Errors(t *testing.T) {
	a := writeFile(t, "a.txt", fileA)
	wide := writeFile(t, "wide.txt", "rows=2\ncols=3\n(0,2,1)\n")
	bad := writeFile(t, "bad.txt", "rows=2\ncols=2\n(1,2)\n")
	missing := filepath.Join(t.TempDir(), "nope.txt")

	for _, tc := range []struct {
		name string
		args []string
		want string
	}{
		{"format", []string{"-op", "add", "-a", a, "-b", bad}, msgFormat},
		{"not found", []string{"-op", "add", "-a", missing, "-b", a}, msgNotFound},
		{"invalid op", []string{"-op", "divide", "-a", a, "-b", a}, msgBadOp},
		{"add mismatch", []string{"-op", "add", "-a", a, "-b", wide}, "Matrix dimensions must be the same for addition."},
		{"subtract mismatch", []string{"-op", "subtract", "-a", wide, "-b", a}, "Matrix dimensions must be the same for subtraction."},
		{"mul mismatch", []string{"-op", "multiply", "-a", wide, "-b", a}, "Matrix dimensions do not allow multiplication."},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			code := run(tc.args, strings.NewReader(""), &out, &errOut)
			require.Equal(t, 1, code)
			require.Equal(t, tc.want+"\n", out.String())
		})
	}
}

func TestRun_BadFlags(t *testing.T) {
	var out, errOut bytes.Buffer
	require.Equal(t, 2, run([]string{"-nope"}, strings.NewReader(""), &out, &errOut))
	require.Equal(t, 2, run([]string{"-log-level", "loud", "-op", "add"}, strings.NewReader(""), &out, &errOut))
}

func TestDescribe_MismatchWithoutKnownOp(t *testing.T) {
	err := fmt.Errorf("Mul: %w", matrix.ErrDimensionMismatch)
	require.Equal(t, "Matrix dimensions do not allow multiplication.", describe("multiply", err))
	require.Equal(t, err.Error(), describe("", err))
}
