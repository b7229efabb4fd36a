package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/wbrown/wordcount"
	"github.com/wbrown/wordcount/input"
)

const (
	countMode     = "count"
	frequencyMode = "frequency"
)

// modeFlag stores its fixed value into the shared mode cell whenever
// its flag appears, so the mode flag given last on the command line
// wins.
type modeFlag struct {
	mode  *string
	value string
}

func (m modeFlag) String() string {
	if m.mode == nil {
		return ""
	}
	return *m.mode
}

func (m modeFlag) Set(string) error {
	*m.mode = m.value
	return nil
}

func (m modeFlag) IsBoolFlag() bool {
	return true
}

// run processes the given paths (or stdin when there are none) in the
// given mode and writes the report to stdout. Inputs that fail to
// open are reported to stderr and skipped. Returns the process exit
// code.
func run(mode string, args []string, stdin io.Reader,
	stdout, stderr io.Writer, verbose bool) int {
	table := wordcount.NewTable()
	tokenizer := wordcount.NewTokenizer()
	totalWords := 0

	// All inputs fold into one accumulator; counts are global
	// across files, not per-file.
	process := func(r io.Reader) error {
		if mode == frequencyMode {
			return tokenizer.CollectWords(table, r)
		}
		totalWords += wordcount.CountWords(r)
		return nil
	}

	var bytesRead uint64
	filesRead := 0
	if len(args) == 0 {
		if err := process(stdin); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	} else {
		paths, err := input.Expand(args)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		for _, path := range paths {
			source, openErr := input.Open(path)
			if openErr != nil {
				fmt.Fprintln(stderr, openErr)
				continue
			}
			processErr := process(source)
			bytesRead += uint64(source.Size())
			filesRead++
			source.Close()
			if processErr != nil {
				fmt.Fprintln(stderr, processErr)
				return 1
			}
		}
	}

	if verbose {
		fmt.Fprintf(stderr, "read %s across %d files\n",
			humanize.Bytes(bytesRead), filesRead)
	}

	if mode == frequencyMode {
		table.Sort(wordcount.ByCountThenWord)
		fmt.Fprintln(stdout, "The frequencies of each word are: ")
		table.ForEach(func(word string, count int) {
			fmt.Fprintf(stdout, "%s %d\n", word, count)
		})
	} else {
		fmt.Fprintf(stdout,
			"The total number of words is: %d\n", totalWords)
	}
	return 0
}

func main() {
	mode := countMode
	flag.Var(modeFlag{&mode, countMode}, "count",
		"count the total number of words in the files, or "+
			"stdin if no file is given (default)")
	flag.Var(modeFlag{&mode, frequencyMode}, "frequency",
		"count the frequency of each word in the files, or "+
			"stdin if no file is given")
	verbose := flag.Bool("verbose", false,
		"report files and bytes read to stderr")
	flag.Parse()

	os.Exit(run(mode, flag.Args(), os.Stdin, os.Stdout, os.Stderr,
		*verbose))
}
