package demo

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/parlab/parlab/team"
)

// TeamHello runs the thread-team hello-world demonstration: a team of the
// given size in which every worker prints one greeting inside a critical
// section.
func TeamHello(w io.Writer, threads int) error {
	if threads < 1 {
		return fmt.Errorf("number of threads must be positive, got %d", threads)
	}
	var crit team.Critical
	team.New(threads).Region(func(worker int) {
		crit.Do(func() {
			fmt.Fprintf(w, "Thread %d: Hello world\n", worker)
		})
	})
	return nil
}

// TeamHelloPrompt runs the interactive hello-world demonstration: the team
// size is read from r, re-prompting on invalid or non-positive input, until
// a valid count arrives. Reaching the end of the input is an error.
func TeamHelloPrompt(r io.Reader, w io.Writer) error {
	threads, err := promptThreads(bufio.NewScanner(r), w)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	return TeamHello(w, threads)
}

func promptThreads(in *bufio.Scanner, w io.Writer) (int, error) {
	for {
		fmt.Fprint(w, "Enter number of threads: ")
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return 0, fmt.Errorf("read thread count: %w", err)
			}
			return 0, fmt.Errorf("read thread count: unexpected end of input")
		}
		threads, err := strconv.Atoi(strings.TrimSpace(in.Text()))
		if err != nil || threads <= 0 {
			fmt.Fprintln(w, "* * * Invalid input. Please enter a positive integer * * *")
			continue
		}
		return threads, nil
	}
}
