package main

import (
	"fmt"
	"strings"

	engine "github.com/42atomys/go-pattern-search"
	"github.com/42atomys/go-pattern-search/internal/bench"
	"github.com/42atomys/go-pattern-search/internal/corpus"
	"github.com/42atomys/go-pattern-search/internal/report"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "patternsearch",
		Short:         "Exact substring search with Naive, KMP, Boyer-Moore and Rabin-Karp",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newBenchCmd(), newFindCmd())
	return root
}

// parseAlgorithms turns a list of names into algorithms; an empty list means all.
func parseAlgorithms(names []string) ([]engine.Algorithm, error) {
	if len(names) == 0 {
		return engine.Algorithms(), nil
	}
	algorithms := make([]engine.Algorithm, 0, len(names))
	for _, name := range names {
		a, err := engine.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		algorithms = append(algorithms, a)
	}
	return algorithms, nil
}

func newBenchCmd() *cobra.Command {
	var (
		present     string
		absent      string
		repetitions int
		names       []string
	)
	cmd := &cobra.Command{
		Use:   "bench FILE...",
		Short: "Time every algorithm on each corpus for a present and an absent pattern",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algorithms, err := parseAlgorithms(names)
			if err != nil {
				return err
			}
			corpora, err := corpus.Load(args...)
			if err != nil {
				return err
			}
			cases := bench.Cases(corpora, []byte(present), []byte(absent))
			tracer().Infof("benchmarking %d cases x %d algorithms, %d repetitions each",
				len(cases), len(algorithms), repetitions)
			results, err := bench.Run(cmd.Context(), cases, algorithms, repetitions)
			if err != nil {
				return err
			}
			return report.Write(cmd.OutOrStdout(), results)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&present, "present", "", "pattern known to occur in the corpora")
	flags.StringVar(&absent, "absent", "", "pattern known not to occur in the corpora")
	flags.IntVarP(&repetitions, "repetitions", "n", bench.DefaultRepetitions, "searches per measurement")
	flags.StringSliceVarP(&names, "algorithms", "a", nil, "algorithms to run (default all)")
	_ = cmd.MarkFlagRequired("present")
	_ = cmd.MarkFlagRequired("absent")
	return cmd
}

func newFindCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "find PATTERN FILE",
		Short: "Print the position of the first occurrence of PATTERN in FILE",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := engine.ParseAlgorithm(name)
			if err != nil {
				return err
			}
			pattern, path := args[0], args[1]
			text, err := corpus.ReadAll(path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			index := engine.QuickSearch(a, text, []byte(pattern))
			if index == engine.NotFound {
				fmt.Fprintf(out, "%s: %q not found\n", path, pattern)
				return nil
			}
			pos := engine.Locate(text, index)
			fmt.Fprintf(out, "%s:%s: offset %d\n", path, pos, pos.Offset)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "algorithm", "a", engine.KMP.String(),
		"one of "+strings.Join(algorithmNames(), ", "))
	return cmd
}

func algorithmNames() []string {
	all := engine.Algorithms()
	names := make([]string, len(all))
	for i, a := range all {
		names[i] = a.String()
	}
	return names
}
