package parlab

type (
	// A WorkerFunc is a function invoked once per worker of a team, with
	// 0 <= worker < team size.
	WorkerFunc func(worker int)

	// An IterFunc is a function invoked once per loop iteration, carrying the
	// worker that executes the iteration and the iteration index.
	IterFunc func(worker, i int)
)
