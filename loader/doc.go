// Package loader reads sparse matrices from the line-oriented text format
//
//	rows=<integer>
//	cols=<integer>
//	(<row>, <col>, <value>)
//	...
//
// and hands them to the matrix package.
//
// The first two lines are headers: the integer after the first '=' is taken
// (the key name itself is not checked). Blank lines after the headers are
// ignored. Every other line must be a parenthesized triple of integers.
// Zero values are dropped. Any violation fails the whole load with ErrFormat;
// a file that cannot be opened fails with ErrFileNotFound.
package loader
