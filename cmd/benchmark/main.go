package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/hookparty/hooks"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	cc    = []int{1, 10, 100, 1_000}
	dd    = []int{1, 10, 100}
	iters = 100
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")

	benchmarkFlush(true)
	benchmarkMemoChain(true)
}

func addOne(v int) int {
	return v + 1
}

func benchmarkFlush(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Batch Flush")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, c := range cc {
		for _, d := range dd {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			var rc *hooks.RenderContext
			rc = hooks.CreateRenderContext(func(in *hooks.Instance) {
				if _, err := rc.Render(in); err != nil {
					log.Panic(err)
				}
			}, nil)

			dispatchers := make([]*hooks.StateDispatcher[int], c)
			for i := 0; i < c; i++ {
				i := i
				comp := rc.Component(fmt.Sprintf("bench-%d", i), func(in *hooks.Instance) error {
					v, set := hooks.UseState(in, 0)
					dispatchers[i] = set
					hooks.UseMemo1(in, v, addOne)
					return nil
				})
				if _, err := rc.Render(comp); err != nil {
					log.Panic(err)
				}
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				rc.Batch(func() {
					for j := 0; j < d; j++ {
						dispatchers[j%c].Update(addOne)
					}
				})
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("flush: %d * %d", c, d),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkMemoChain(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Memo Chain")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	hh := []int{1, 10, 100, 1_000}
	for _, h := range hh {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		var rc *hooks.RenderContext
		rc = hooks.CreateRenderContext(func(in *hooks.Instance) {
			if _, err := rc.Render(in); err != nil {
				log.Panic(err)
			}
		}, nil)

		var set *hooks.StateDispatcher[int]
		comp := rc.Component("chain", func(in *hooks.Instance) error {
			v, d := hooks.UseState(in, 0)
			set = d
			for j := 0; j < h; j++ {
				v = hooks.UseMemo1(in, v, addOne)
			}
			return nil
		})
		if _, err := rc.Render(comp); err != nil {
			log.Panic(err)
		}

		for i := 0; i < iters; i++ {
			start := time.Now()
			set.Update(addOne)
			tach.AddTime(time.Since(start))
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("chain: depth %d", h),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}
