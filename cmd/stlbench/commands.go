// File: cmd/stlbench/commands.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/DmitriyVTitov/size"
	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/momentics/hioload-stl/adapters"
	"github.com/momentics/hioload-stl/facade"
	"github.com/momentics/hioload-stl/vector"
)

// growthReport summarises a push-back run.
type growthReport struct {
	Steps         []int
	Reallocations int
	Relocations   int
	Footprint     int
	Elapsed       time.Duration
}

func runGrowth(v *vector.Vector[int64], n int) growthReport {
	var r growthReport
	start := time.Now()
	for i := 0; i < n; i++ {
		before := v.Capacity()
		v.PushBack(int64(i))
		if v.Capacity() != before {
			r.Steps = append(r.Steps, v.Capacity())
		}
	}
	r.Elapsed = time.Since(start)
	r.Reallocations = v.Reallocations()
	r.Relocations = v.Relocations()
	r.Footprint = size.Of(v.Data())
	return r
}

func addGrowthCommand(app *kingpin.Application, g *globalFlags) {
	var n int
	var showSteps bool
	cmd := app.Command("growth", "Append elements one by one and report capacity steps")
	cmd.Flag("n", "Number of elements").Default("1000000").IntVar(&n)
	cmd.Flag("steps", "Print every capacity step").BoolVar(&showSteps)

	cmd.Action(func(_ *kingpin.ParseContext) error {
		tk, err := g.toolkit()
		if err != nil {
			return err
		}
		defer tk.Close()
		v := facade.NewVector[int64](tk)
		r := runGrowth(v, n)
		level.Debug(tk.Logger()).Log("msg", "growth finished", "n", n, "elapsed", r.Elapsed)

		fmt.Printf("elements:      %s\n", humanize.Comma(int64(v.Size())))
		fmt.Printf("capacity:      %s\n", humanize.Comma(int64(v.Capacity())))
		fmt.Printf("reallocations: %d\n", r.Reallocations)
		fmt.Printf("relocations:   %s (%.2f per element)\n", humanize.Comma(int64(r.Relocations)), float64(r.Relocations)/float64(max(n, 1)))
		fmt.Printf("live data:     %s\n", humanize.Bytes(uint64(r.Footprint)))
		fmt.Printf("elapsed:       %s\n", r.Elapsed)
		if showSteps {
			fmt.Printf("steps:         %v\n", r.Steps)
		}
		if g.metrics {
			printStats(tk)
		}
		v.Release()
		return nil
	})
}

func addChurnCommand(app *kingpin.Application, g *globalFlags) {
	var ops, seed int
	cmd := app.Command("churn", "Random inserts and erasures at arbitrary positions")
	cmd.Flag("ops", "Number of operations").Default("100000").IntVar(&ops)
	cmd.Flag("seed", "Random seed").Default("1").IntVar(&seed)

	cmd.Action(func(_ *kingpin.ParseContext) error {
		tk, err := g.toolkit()
		if err != nil {
			return err
		}
		defer tk.Close()
		rng := rand.New(rand.NewSource(int64(seed)))
		v := facade.NewVector[int64](tk)
		start := time.Now()
		inserts, erases := 0, 0
		for i := 0; i < ops; i++ {
			if v.Empty() || rng.Intn(3) > 0 {
				pos := v.Begin().Add(rng.Intn(v.Size() + 1))
				v.Insert(pos, rng.Int63())
				inserts++
				continue
			}
			v.Erase(v.Begin().Add(rng.Intn(v.Size())))
			erases++
		}
		fmt.Printf("inserts:       %s\n", humanize.Comma(int64(inserts)))
		fmt.Printf("erases:        %s\n", humanize.Comma(int64(erases)))
		fmt.Printf("final size:    %s (capacity %s)\n", humanize.Comma(int64(v.Size())), humanize.Comma(int64(v.Capacity())))
		fmt.Printf("reallocations: %d\n", v.Reallocations())
		fmt.Printf("elapsed:       %s\n", time.Since(start))
		if g.metrics {
			printStats(tk)
		}
		v.Release()
		return nil
	})
}

// newBenchQueue builds the queue under test on a list or on a ring buffer.
func newBenchQueue(tk *facade.Toolkit, backing string) (*adapters.Queue[int], error) {
	switch backing {
	case "list":
		return facade.NewQueue[int](tk), nil
	case "ring":
		return adapters.NewQueueOn[int](adapters.NewRingSequence[int]()), nil
	}
	return nil, errors.Errorf("unknown queue backing %q", backing)
}

// drain pushes 0..n-1 into q and s, then pops both empty. It returns the
// number of elements that came out of q in push order.
func drain(q *adapters.Queue[int], s *adapters.Stack[int], n int) int {
	for i := 0; i < n; i++ {
		q.Push(i)
		s.Push(i)
	}
	inOrder := 0
	for want := 0; !q.Empty(); want++ {
		if v, err := q.Front(); err == nil && v == want {
			inOrder++
		}
		q.Pop()
		s.Pop()
	}
	return inOrder
}

func addQueueCommand(app *kingpin.Application, g *globalFlags) {
	var (
		n       int
		backing string
	)
	cmd := app.Command("queue", "Push then drain a queue and a stack")
	cmd.Flag("n", "Number of elements").Default("100000").IntVar(&n)
	cmd.Flag("backing", "Queue container (list or ring)").Default("list").EnumVar(&backing, "list", "ring")

	cmd.Action(func(_ *kingpin.ParseContext) error {
		tk, err := g.toolkit()
		if err != nil {
			return err
		}
		defer tk.Close()
		q, err := newBenchQueue(tk, backing)
		if err != nil {
			return err
		}
		s := facade.NewStack[int](tk)
		start := time.Now()
		inOrder := drain(q, s, n)
		fmt.Printf("backing:       %s\n", backing)
		fmt.Printf("pushed/popped: %s each (%s in FIFO order)\n", humanize.Comma(int64(n)), humanize.Comma(int64(inOrder)))
		fmt.Printf("elapsed:       %s\n", time.Since(start))
		if g.metrics {
			printStats(tk)
		}
		return nil
	})
}
