package cmd

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Johniel/locate/bsearch"
)

type locateOptions struct {
	file    string
	numeric bool
	strict  bool
	check   bool
}

// line is one non-blank input element and the line it came from.
type line struct {
	no   int
	text string
}

func newLocateCmd() *cobra.Command {
	var opts locateOptions

	cmd := &cobra.Command{
		Use:   "locate TARGET",
		Short: "Print the index of TARGET in sorted input",
		Long: `Read sorted elements, one per line, from --file or stdin and print the
index of TARGET among them, or "not found".

Blank lines are skipped and indexes count elements, not lines. When TARGET
occurs more than once the first occurrence is reported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocate(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read input from file instead of stdin")
	cmd.Flags().BoolVarP(&opts.numeric, "numeric", "n", false, "Compare elements as numbers")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Exit with an error when TARGET is not found")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Verify the input is sorted before searching")

	return cmd
}

func runLocate(cmd *cobra.Command, target string, opts locateOptions) error {
	in := cmd.InOrStdin()
	if opts.file != "" {
		f, err := os.Open(opts.file)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	lines, err := readLines(in)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	var idx bsearch.Index
	if opts.numeric {
		idx, err = locateNumeric(lines, target, opts.check)
	} else {
		idx, err = locateIn(lines, strings.TrimSpace(target), func(s string) (string, error) { return s, nil }, opts.check)
	}
	if err != nil {
		return err
	}

	attrs := []any{
		slog.Int("elements", len(lines)),
		slog.Bool("numeric", opts.numeric),
		slog.String("result", idx.String()),
	}
	if pos, ok := idx.Get(); ok {
		attrs = append(attrs, slog.Int("line", lines[pos].no))
	}
	slog.Debug("locate finished", attrs...)

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), idx); err != nil {
		return err
	}
	if opts.strict {
		if err := idx.Err(); err != nil {
			return fmt.Errorf("%q: %w", target, err)
		}
	}
	return nil
}

func locateNumeric(lines []line, target string, check bool) (bsearch.Index, error) {
	t, err := strconv.ParseFloat(strings.TrimSpace(target), 64)
	if err != nil {
		return bsearch.Index{}, fmt.Errorf("invalid numeric target %q: %w", target, err)
	}
	return locateIn(lines, t, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	}, check)
}

func locateIn[E cmp.Ordered](lines []line, target E, parse func(string) (E, error), check bool) (bsearch.Index, error) {
	vals := make([]E, len(lines))
	for i, l := range lines {
		v, err := parse(l.text)
		if err != nil {
			return bsearch.Index{}, fmt.Errorf("line %d: %w", l.no, err)
		}
		vals[i] = v
	}

	if check {
		for i := 1; i < len(vals); i++ {
			if cmp.Less(vals[i], vals[i-1]) {
				return bsearch.Index{}, fmt.Errorf("input not sorted: line %d sorts before line %d", lines[i].no, lines[i-1].no)
			}
		}
	}

	return bsearch.Locate(vals, target), nil
}

func readLines(r io.Reader) ([]line, error) {
	var lines []line
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for no := 1; sc.Scan(); no++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		lines = append(lines, line{no: no, text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
