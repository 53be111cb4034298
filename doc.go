// Package parlab provides small runtimes and demonstrations for two
// parallel-programming models: message passing between cooperating ranks, and
// shared-memory loop-level parallelism with a fixed team of workers.
//
// Parlab provides the following subpackages:
//
// parlab/cluster provides the process-parallel runtime: a launcher that runs
// a program on a fixed set of ranks, with fire-and-forget sends, blocking
// receives with source and tag matching, barriers, and a collective abort.
//
// parlab/team provides the thread-team runtime: a fixed set of workers, a
// parallel loop with static and dynamic scheduling policies and configurable
// chunk sizes, and an explicit critical-section abstraction for shared
// console output.
//
// parlab/demo provides the demonstrations themselves, one per lesson, each
// writing formatted output to an io.Writer and running to completion in one
// pass.
//
// parlab/report provides fixed-width console tables and run-timing
// summaries.
//
// parlab/config provides the yaml configuration that carries all worker and
// rank counts, vector and matrix sizes, and scheduling parameters.
//
// The runtimes have been influenced by the loop schedules of OpenMP and the
// point-to-point messaging of MPI, expressed with goroutines and stdlib
// synchronization.
package parlab
