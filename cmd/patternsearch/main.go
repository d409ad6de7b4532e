// Command patternsearch searches corpora for a pattern and benchmarks the
// substring search algorithms against each other.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'patternsearch'
func tracer() tracing.Trace {
	return tracing.Select("patternsearch")
}

func main() {
	// an interrupt stops a benchmark between measurements
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
