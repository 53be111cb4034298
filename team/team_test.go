package team_test

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/parlab/parlab"
	"github.com/parlab/parlab/team"
)

var schedules = []team.Schedule{
	{Policy: team.Static},
	{Policy: team.Static, Chunk: 1},
	{Policy: team.Static, Chunk: 2},
	{Policy: team.Static, Chunk: 5},
	{Policy: team.Dynamic},
	{Policy: team.Dynamic, Chunk: 2},
	{Policy: team.Dynamic, Chunk: 7},
}

func TestRegionOncePerWorker(t *testing.T) {
	for _, workers := range []int{1, 2, 4, 10} {
		counts := make([]int32, workers)
		team.New(workers).Region(func(worker int) {
			atomic.AddInt32(&counts[worker], 1)
		})
		for worker, n := range counts {
			if n != 1 {
				t.Errorf("workers=%d: worker %d ran %d times", workers, worker, n)
			}
		}
	}
}

func TestRegionPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("panic in worker not rethrown")
		}
	}()
	team.New(4).Region(func(worker int) {
		if worker == 2 {
			panic("worker failure")
		}
	})
}

func TestRegionPanicSingleWorker(t *testing.T) {
	defer func() {
		p := recover()
		if p == nil {
			t.Error("panic in single worker not rethrown")
		} else if s, ok := p.(string); !ok || !strings.Contains(s, "worker failure") {
			t.Errorf("panic rethrown without wrapped context: %v", p)
		}
	}()
	team.New(1).Region(func(worker int) {
		panic("worker failure")
	})
}

func TestBodyFuncTypes(t *testing.T) {
	// Region and For accept the shared function types by name.
	var ran int32
	var regionBody parlab.WorkerFunc = func(worker int) {
		atomic.AddInt32(&ran, 1)
	}
	team.New(3).Region(regionBody)
	if ran != 3 {
		t.Errorf("region body ran %d times, want 3", ran)
	}

	ran = 0
	var loopBody parlab.IterFunc = func(worker, i int) {
		atomic.AddInt32(&ran, 1)
	}
	team.New(3).For(0, 12, team.Schedule{Policy: team.Dynamic}, loopBody)
	if ran != 12 {
		t.Errorf("loop body ran %d times, want 12", ran)
	}
}

func TestNewInvalid(t *testing.T) {
	for _, workers := range []int{0, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%d) did not panic", workers)
				}
			}()
			team.New(workers)
		}()
	}
}

func TestForCoversRangeOnce(t *testing.T) {
	for _, workers := range []int{1, 3, 4, 16} {
		tm := team.New(workers)
		for _, s := range schedules {
			for _, size := range []int{0, 1, 12, 100} {
				counts := make([]int32, size)
				tm.For(0, size, s, func(worker, i int) {
					atomic.AddInt32(&counts[i], 1)
				})
				for i, n := range counts {
					if n != 1 {
						t.Errorf("workers=%d %v/%d: index %d ran %d times",
							workers, s.Policy, s.Chunk, i, n)
					}
				}
			}
		}
	}
}

func TestForLowOffset(t *testing.T) {
	tm := team.New(4)
	for _, s := range schedules {
		var sum int64
		tm.For(5, 17, s, func(worker, i int) {
			atomic.AddInt64(&sum, int64(i))
		})
		if want := int64((5 + 16) * 12 / 2); sum != want {
			t.Errorf("%v/%d: sum = %d, want %d", s.Policy, s.Chunk, sum, want)
		}
	}
}

func TestStaticDefaultContiguous(t *testing.T) {
	const size = 13
	const workers = 4
	owner := make([]int32, size)
	team.New(workers).For(0, size, team.Schedule{Policy: team.Static},
		func(worker, i int) {
			atomic.StoreInt32(&owner[i], int32(worker))
		})
	// Each worker owns one contiguous span and spans appear in worker order.
	for i := 1; i < size; i++ {
		if owner[i] < owner[i-1] {
			t.Fatalf("owners not monotone: %v", owner)
		}
		if owner[i] > owner[i-1]+1 {
			t.Fatalf("owner gap at %d: %v", i, owner)
		}
	}
}

func TestStaticChunkRoundRobin(t *testing.T) {
	const size = 12
	const workers = 4
	const chunk = 2
	owner := make([]int32, size)
	team.New(workers).For(0, size, team.Schedule{Policy: team.Static, Chunk: chunk},
		func(worker, i int) {
			atomic.StoreInt32(&owner[i], int32(worker))
		})
	for i := 0; i < size; i++ {
		if want := int32((i / chunk) % workers); owner[i] != want {
			t.Errorf("index %d owned by worker %d, want %d", i, owner[i], want)
		}
	}
}

func TestForInvalidRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("For with high < low did not panic")
		}
	}()
	team.New(2).For(3, 1, team.Schedule{}, func(worker, i int) {})
}

func TestVectorAddAgreesAcrossSchedules(t *testing.T) {
	const size = 1000
	v1 := make([]int, size)
	v2 := make([]int, size)
	want := make([]int, size)
	for i := range v1 {
		v1[i] = i
		v2[i] = 2 * i
		want[i] = v1[i] + v2[i]
	}
	for _, workers := range []int{1, 4, 8} {
		tm := team.New(workers)
		for _, s := range schedules {
			got := make([]int, size)
			tm.For(0, size, s, func(worker, i int) {
				got[i] = v1[i] + v2[i]
			})
			for i := range got {
				if got[i] != want[i] {
					t.Fatalf("workers=%d %v/%d: element %d = %d, want %d",
						workers, s.Policy, s.Chunk, i, got[i], want[i])
				}
			}
		}
	}
}

func TestCritical(t *testing.T) {
	var crit team.Critical
	var inside int32
	team.New(8).Region(func(worker int) {
		for n := 0; n < 100; n++ {
			crit.Do(func() {
				if atomic.AddInt32(&inside, 1) != 1 {
					t.Error("two workers inside the critical section")
				}
				atomic.AddInt32(&inside, -1)
			})
		}
	})
}

func ExampleTeam_For() {
	v1 := []int{10, 10, 10, 10}
	v2 := []int{20, 20, 20, 20}
	sum := make([]int, 4)
	team.New(2).For(0, 4, team.Schedule{Policy: team.Dynamic},
		func(worker, i int) {
			sum[i] = v1[i] + v2[i]
		})
	fmt.Println(sum)
	// Output:
	// [30 30 30 30]
}

func ExamplePolicy_String() {
	fmt.Println(team.Static, team.Dynamic)
	// Output:
	// static dynamic
}
