// Package demo provides the demonstrations, one per lesson. Each
// demonstration is self-contained: it runs one parallel pattern to
// completion, writes formatted diagnostic output to an io.Writer, and
// returns.
//
// The process-parallel demonstrations run on the cluster runtime, the
// loop-parallel ones on the team runtime. All shared console output is
// serialized through an explicit critical section.
package demo

import (
	"fmt"
	"io"
)

// masterRank is the coordinating rank of the process-parallel
// demonstrations.
const masterRank = 0

// Rule widths follow the lesson layouts.
const (
	narrowRule = 50
	wideRule   = 60
	matrixRule = 80
)

// workerName returns the name a worker rank introduces itself with.
func workerName(rank int) string {
	switch rank {
	case 1:
		return "John"
	case 2:
		return "Mary"
	case 3:
		return "Susan"
	default:
		return "unnamed process"
	}
}

// constantVector returns a vector of the given size with every element set
// to value.
func constantVector(size, value int) []int {
	v := make([]int, size)
	for i := range v {
		v[i] = value
	}
	return v
}

// writeInts writes the values separated by single spaces, each preceded by
// one space.
func writeInts(w io.Writer, values []int) {
	for _, v := range values {
		fmt.Fprintf(w, " %d", v)
	}
}
