package internal

import (
	"iter"
)

// Rows splits a slice into consecutive rows of width elements, yielding the
// row index and the row. At most limit rows are yielded; a limit below zero
// yields every row. The final row may be shorter than width.
func Rows[T any](items []T, width int, limit int) iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		if width <= 0 {
			return
		}
		for row := 0; row*width < len(items); row++ {
			if limit >= 0 && row >= limit {
				return
			}
			end := min((row+1)*width, len(items))
			if !yield(row, items[row*width:end]) {
				return // Stop if the consumer stops
			}
		}
	}
}
