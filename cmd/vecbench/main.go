// Command vecbench times element-wise float32 addition kernels over
// aligned buffers.
//
// Usage:
//
//	vecbench [flags] <number of items in table>
//
// It allocates three 32-byte-aligned buffers, fills the inputs from
// the element index (a[i] = i, b[i] = 2i), times exactly one kernel
// invocation, and prints the elapsed seconds and the first four
// result values.
//
// Examples:
//
//	vecbench 10000000
//	vecbench -kernel scalar 10000000
//	vecbench -kernel vek -repeat 10 10000000
//	vecbench -list
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-bench/bench"
	"github.com/cwbudde/algo-bench/internal/cpu"
	"github.com/cwbudde/algo-bench/vecadd"
)

func main() {
	kernel := flag.String("kernel", "vector", "kernel variant to run (scalar, vector, vek)")
	repeat := flag.Int("repeat", 1, "number of timed runs")
	verify := flag.Bool("verify", false, "check the covered result prefix against a float64 reference")
	list := flag.Bool("list", false, "list available kernel variants")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vecbench [flags] <number of items in table>\n\n")
		fmt.Fprintf(os.Stderr, "Times element-wise float32 addition over aligned buffers.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  vecbench 10000000\n")
		fmt.Fprintf(os.Stderr, "  vecbench -kernel scalar -verify 10000000\n")
		fmt.Fprintf(os.Stderr, "  vecbench -kernel vek -repeat 10 10000000\n")
	}
	flag.Parse()

	if *list {
		printVariants()
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	n, err := strconv.Atoi(flag.Arg(0))
	if err != nil || n < 0 {
		fmt.Fprintf(os.Stderr, "error: element count must be a non-negative integer, got %q\n", flag.Arg(0))
		os.Exit(1)
	}

	v, ok := vecadd.Lookup(*kernel)
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown kernel %q (try -list)\n", *kernel)
		os.Exit(1)
	}

	fmt.Printf("Using a table of %d floats\n", n)

	res, err := bench.Run(v, n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Execution time using %s kernel: %f seconds\n", v.Name, res.Elapsed)
	printHead(res)

	if res.Covered < res.N {
		fmt.Printf("note: %s kernel covers %d of %d elements (tail left unwritten)\n",
			v.Name, res.Covered, res.N)
	}

	if *verify {
		if err := bench.Verify(res); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Verified %d elements against float64 reference\n", res.Covered)
	}

	if *repeat > 1 {
		stats, err := bench.Repeat(v, n, *repeat)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Over %d runs: mean %f s, min %f s, max %f s\n",
			stats.Runs, stats.Mean, stats.Min, stats.Max)
	}
}

// printHead prints the first four result values, matching the
// verification output of the original C programs. Only covered
// elements are shown.
func printHead(res *bench.Result) {
	head := res.Covered
	if head > 4 {
		head = 4
	}
	for i := 0; i < head; i++ {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%f", res.Output[i])
	}
	if head > 0 {
		fmt.Println()
	}
}

func printVariants() {
	f := cpu.DetectFeatures()
	fmt.Printf("arch %s, SSE2 %v, NEON %v\n", f.Architecture, f.HasSSE2, f.HasNEON)
	fmt.Printf("vek backend: %s\n\n", vecadd.LibraryInfo())

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCOVERAGE")
	for _, v := range vecadd.Variants() {
		coverage := "full"
		if v.Coverage(vecadd.Lanes+1) != vecadd.Lanes+1 {
			coverage = fmt.Sprintf("%d-lane prefix", vecadd.Lanes)
		}
		fmt.Fprintf(w, "%s\t%s\n", v.Name, coverage)
	}
	w.Flush()
}
