package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/sparsemat/matrix"
)

// ExampleSparseMatrix_Add adds [[1,2],[3,4]] and [[5,0],[0,6]].
func ExampleSparseMatrix_Add() {
	a, _ := matrix.FromEntries(2, 2, map[matrix.Index]int{
		{Row: 0, Col: 0}: 1, {Row: 0, Col: 1}: 2,
		{Row: 1, Col: 0}: 3, {Row: 1, Col: 1}: 4,
	})
	b, _ := matrix.New(2, 2)
	_ = b.Set(0, 0, 5)
	_ = b.Set(1, 1, 6)

	sum, err := a.Add(b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(sum)

	// Output:
	// SparseMatrix(2, 2): (0, 0, 6), (0, 1, 2), (1, 0, 3), (1, 1, 10)
}

// ExampleSparseMatrix_Mul shows the product and a rejected shape.
func ExampleSparseMatrix_Mul() {
	a, _ := matrix.FromEntries(2, 2, map[matrix.Index]int{
		{Row: 0, Col: 0}: 1, {Row: 0, Col: 1}: 2,
		{Row: 1, Col: 0}: 3, {Row: 1, Col: 1}: 4,
	}, matrix.WithMulStrategy(matrix.MulRowIndex))
	b, _ := matrix.FromEntries(2, 2, map[matrix.Index]int{{Row: 0, Col: 0}: 5, {Row: 1, Col: 1}: 6})

	p, _ := a.Mul(b)
	fmt.Println(p)

	c, _ := matrix.New(3, 3)
	_, err := a.Mul(c)
	fmt.Println(err != nil)

	// Output:
	// SparseMatrix(2, 2): (0, 0, 5), (0, 1, 12), (1, 0, 15), (1, 1, 24)
	// true
}

// ExampleSparseMatrix_Set shows that writing zero deletes the entry.
func ExampleSparseMatrix_Set() {
	m, _ := matrix.New(2, 2)
	_ = m.Set(1, 0, 7)
	fmt.Println(m.Nnz(), m.At(1, 0))
	_ = m.Set(1, 0, 0)
	fmt.Println(m.Nnz(), m.At(1, 0))

	// Output:
	// 1 7
	// 0 0
}
