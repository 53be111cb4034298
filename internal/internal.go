package internal

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
)

// CheckRange panics unless 0 <= low <= high.
func CheckRange(low, high int) {
	if (low < 0) || (high < low) {
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	}
}

// StaticSpan returns the contiguous subrange of [low, high) assigned to a
// given worker when the range is pre-partitioned into workers near-equal
// parts. The begin and end points are computed as size*worker/workers, so
// the subranges differ in size by at most one and cover the range exactly.
func StaticSpan(low, high, worker, workers int) (begin, end int) {
	CheckRange(low, high)
	if (workers <= 0) || (worker < 0) || (worker >= workers) {
		panic(fmt.Sprintf("invalid worker: %v of %v", worker, workers))
	}
	size := high - low
	begin = low + size*worker/workers
	end = low + size*(worker+1)/workers
	return
}

// EffectiveChunk determines the chunk size for a scheduled loop. If chunk is
// 0, the default chunk size of 1 is used. EffectiveChunk panics if chunk is
// negative.
func EffectiveChunk(chunk int) int {
	switch {
	case chunk > 0:
		return chunk
	case chunk == 0:
		return 1
	default:
		panic(fmt.Sprintf("invalid chunk size: %v", chunk))
	}
}

type runtimeError struct{ error }

func (runtimeError) RuntimeError() {}

// WrapPanic adds stack trace information to a recovered panic.
func WrapPanic(p interface{}) interface{} {
	if p != nil {
		s := fmt.Sprintf("%v\n%s\nrethrown at", p, debug.Stack())
		if _, isError := p.(error); isError {
			r := errors.New(s)
			if _, isRuntimeError := p.(runtime.Error); isRuntimeError {
				return runtimeError{r}
			}
			return r
		}
		return s
	}
	return nil
}
