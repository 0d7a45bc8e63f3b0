// Command reginfer infers a compact regular expression from example strings.
//
// Without inputs it runs over a fixed list of sample words:
//
//	reginfer
//	reginfer -input 2024-01-15 -input 1999-12-31
//	reginfer -check -explain apple banana X99!!
//	reginfer -pattern '^(?=[a-z])\w+$' apple X99!!
//	reginfer -output fruit.go -name Fruit -package fruit apple banana
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/KromDaniel/reginfer/pkg/reginfer"
)

var defaultInputs = []string{"apple", "apricot", "banana", "blueberry", "cherry", "X99!!"}

type arrayFlags []string

func (a *arrayFlags) String() string {
	return strings.Join(*a, ", ")
}

func (a *arrayFlags) Set(value string) error {
	*a = append(*a, value)
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("reginfer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var inputs arrayFlags
	fs.Var(&inputs, "input", "Example string (repeatable)")
	verbose := fs.Bool("v", false, "Log inference decisions to stderr")
	check := fs.Bool("check", false, "Match every input against the merged pattern")
	explain := fs.Bool("explain", false, "Print the runs of every per-string pattern")
	userPattern := fs.String("pattern", "", "Match every input against this pattern (lookaround and backreferences allowed)")
	output := fs.String("output", "", "Write Go code exposing the merged pattern to this file")
	name := fs.String("name", "Inferred", "Identifier prefix for generated code")
	pkg := fs.String("package", "main", "Package name for generated code")
	testFile := fs.Bool("test-file", false, "Also generate a _test.go file for the examples")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	inputs = append(inputs, fs.Args()...)
	if len(inputs) == 0 {
		inputs = defaultInputs
	}

	logger := reginfer.NewLogger(*verbose)
	logger.SetOutput(stderr)

	var result *reginfer.Result
	if *output != "" {
		var err error
		result, err = reginfer.Generate(reginfer.GenerateOptions{
			Examples:         inputs,
			Name:             *name,
			OutputFile:       *output,
			Package:          *pkg,
			GenerateTestFile: *testFile,
			Logger:           logger,
		})
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	} else {
		result = reginfer.Infer(inputs, reginfer.WithLogger(logger))
	}

	for i, s := range result.Examples {
		fmt.Fprintf(stdout, "%-10s -> %s\n", s, result.Patterns[i])
	}
	fmt.Fprintf(stdout, "\nMerged Pattern:\n %s\n", result.Merged)

	if *explain {
		explained, err := result.Explain()
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, "\nRuns:")
		for _, e := range explained {
			parts := make([]string, len(e.Runs))
			for i, r := range e.Runs {
				parts[i] = fmt.Sprintf("%s x%d", r.Base, r.Count)
			}
			fmt.Fprintf(stdout, " %-10s : %s\n", e.Example, strings.Join(parts, ", "))
		}
	}

	if *check {
		re, err := result.Compile()
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		printMatches(stdout, "Check", re, result.CheckAgainst(re))
	}

	if *userPattern != "" {
		re, err := reginfer.Compile(*userPattern)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		printMatches(stdout, "Pattern "+re.String(), re, result.CheckAgainst(re))
	}

	if *output != "" {
		if *testFile {
			matches, err := result.Check()
			if err != nil {
				fmt.Fprintf(stderr, "Error: %v\n", err)
				return 1
			}
			for _, m := range matches {
				if !m.Matched {
					fmt.Fprintf(stderr, "Warning: generated test will fail: %q does not match %s\n", m.Example, result.Merged)
				}
			}
		}
		fmt.Fprintf(stdout, "\nGenerated %s\n", *output)
	}

	return 0
}

func printMatches(w io.Writer, title string, re *reginfer.Regexp, matches []reginfer.Match) {
	fmt.Fprintf(w, "\n%s (%s):\n", title, re.Engine())
	for _, m := range matches {
		status := "ok"
		if !m.Matched {
			status = "no match"
		}
		fmt.Fprintf(w, " %-10s : %s\n", m.Example, status)
	}
}
