// Command grafo loads an edge list from stdin into a fixed-capacity graph and
// answers one structural query about it.
//
//	printf '0 1\n1 2\n2 0\n' | grafo --size 3 cycle 0
//	grafo --mode directed gen cycle 5 | grafo --mode directed euler
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

// exitUsage is returned for flag and argument errors.
const exitUsage = 2

type cli struct {
	Size    int    `help:"Graph capacity (number of indices)" default:"1000" env:"GRAFO_SIZE"`
	Mode    string `help:"Directionality: directed, ->, symmetric or <->" default:"symmetric" env:"GRAFO_MODE"`
	Strict  bool   `help:"Reject unknown --mode values instead of falling back to symmetric"`
	Sparse  bool   `help:"Store edges in per-row maps instead of a dense table"`
	Index   bool   `help:"Treat node arguments and input rows as indices instead of labels"`
	Verbose bool   `help:"Log at debug level" short:"v"`

	Degree    degreeCmd    `cmd:"" help:"Print the degree of NODE"`
	Neighbors neighborsCmd `cmd:"" help:"Print the neighbors of NODE"`
	HasEdge   hasEdgeCmd   `cmd:"" help:"Report whether the edge A B is present"`
	Cheapest  cheapestCmd  `cmd:"" help:"Print the cheapest neighbor of NODE"`
	Cycle     cycleCmd     `cmd:"" help:"Run the cycle check from START"`
	Fleury    fleuryCmd    `cmd:"" help:"Run the simplified Fleury feasibility check from START"`
	Euler     eulerCmd     `cmd:"" help:"Run the Eulerian circuit feasibility check"`
	Dump      dumpCmd      `cmd:"" help:"Print the weight table"`
	Gen       genCmd       `cmd:"" help:"Generate a graph and print it as an edge list"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run parses args, executes the selected command and returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var params cli
	exited := -1
	parser, err := kong.New(&params,
		kong.Name("grafo"),
		kong.Description("Query a weighted adjacency-matrix graph read from stdin."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exited = code }),
	)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	kctx, err := parser.Parse(args)
	if exited >= 0 {
		// --help already wrote its output.
		return exited
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	level := slog.LevelInfo
	if params.Verbose {
		level = slog.LevelDebug
	}
	a := &app{
		cli:    params,
		in:     stdin,
		out:    stdout,
		logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
	}
	if err := kctx.Run(a); err != nil {
		a.logger.Error("command failed", "command", kctx.Command(), "error", err)
		return 1
	}

	return 0
}
