package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vecgrep/vecgrep"
)

var (
	flags = []flag{
		{"ignore-case", "i", false, "ignore case distinctions"},
		{"invert-match", "v", false, "select non-matching lines"},
		{"field-separator", "F", "", "split selected lines into fields on SEP (default: whitespace)"},
		{"sub", "s", "", "replace matches with REPLACEMENT instead of selecting lines"},
		{"global", "g", false, "with --sub, replace every match instead of only the first"},
		{"backend", "", "auto", "execution backend: auto, cpu, or gpu"},
	}
)

type flag struct {
	name  string
	short string
	val   interface{}
	use   string
}

func setFlags(flagset *pflag.FlagSet) {
	for _, f := range flags {
		switch val := f.val.(type) {
		case bool:
			flagset.BoolP(f.name, f.short, val, f.use)
		case string:
			flagset.StringP(f.name, f.short, val, f.use)
		}
	}
}

func main() {
	cmd := &cobra.Command{}
	cmd.SetUsageTemplate(usage)
	cmd.SetHelpTemplate(help)

	setFlags(cmd.Flags())

	var exitCode int

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(os.Args) == 1 {
			return cmd.Usage()
		}

		flagset := cmd.Flags()

		if len(args) == 0 {
			return fmt.Errorf("vecgrep: missing PATTERN")
		}
		pattern := args[0]
		files := args[1:]

		ignoreCase, _ := flagset.GetBool("ignore-case")
		invertMatch, _ := flagset.GetBool("invert-match")
		fieldSep, _ := flagset.GetString("field-separator")
		replacement, _ := flagset.GetString("sub")
		global, _ := flagset.GetBool("global")
		backendName, _ := flagset.GetString("backend")

		backend, err := parseBackend(backendName)
		if err != nil {
			return err
		}

		opts := vecgrep.Options{Backend: backend}
		opts.Pattern = []byte(pattern)
		opts.CaseInsensitive = ignoreCase
		opts.InvertMatch = invertMatch
		if flagset.Changed("field-separator") {
			opts.SplitFields = true
			opts.FieldSeparator = []byte(fieldSep)
		}
		opts.GlobalSubstitution = global

		var inputs []io.Reader
		for _, filename := range files {
			if filename == "-" {
				inputs = append(inputs, os.Stdin)
				continue
			}
			file, openErr := os.Open(filename)
			if openErr != nil {
				fmt.Fprintf(os.Stderr, "vecgrep: %s: %v\n", filename, openErr)
				exitCode = 2
				continue
			}
			defer file.Close()
			inputs = append(inputs, file)
		}
		var input io.Reader = os.Stdin
		if len(inputs) > 0 {
			input = io.MultiReader(inputs...)
		}

		data, err := io.ReadAll(input)
		if err != nil {
			return err
		}

		if flagset.Changed("sub") {
			out, _, err := vecgrep.Substitute(data, opts, []byte(replacement))
			if err != nil {
				return err
			}
			os.Stdout.Write(out)
			return nil
		}

		matches, fields, err := vecgrep.Search(data, opts)
		if err != nil {
			return err
		}
		writeMatches(os.Stdout, data, matches, fields, opts.SplitFields, opts.FieldSeparator)
		return nil
	}

	if err := cmd.Execute(); err != nil {
		exitCode = 2
	}
	os.Exit(exitCode)
}

func parseBackend(name string) (vecgrep.Backend, error) {
	switch name {
	case "", "auto":
		return vecgrep.Auto, nil
	case "cpu":
		return vecgrep.CPU, nil
	case "gpu":
		return vecgrep.GPU, nil
	default:
		return vecgrep.Auto, fmt.Errorf("vecgrep: unknown backend %q (want auto, cpu, or gpu)", name)
	}
}

// writeMatches prints one line per selected MatchRecord; when field splitting
// was requested, each is followed by one tab-indented "N: text" line per
// field.
func writeMatches(w io.Writer, data []byte, matches []vecgrep.MatchRecord, fields []vecgrep.FieldRecord, splitFields bool, sep []byte) {
	fieldsByLine := make(map[uint32][]vecgrep.FieldRecord)
	if splitFields {
		for _, f := range fields {
			fieldsByLine[f.LineIdx] = append(fieldsByLine[f.LineIdx], f)
		}
	}
	for i, m := range matches {
		line := data[m.LineStart:m.LineEnd]
		fmt.Fprintf(w, "%s\n", line)
		for _, f := range fieldsByLine[uint32(i)] {
			fmt.Fprintf(w, "\t"+strconv.Itoa(int(f.FieldIdx))+": %s\n", data[m.LineStart+f.StartOffset:m.LineStart+f.EndOffset])
		}
	}
}

const usage = `Usage: vecgrep [OPTION]... PATTERN [FILE]...
Try 'vecgrep --help' for more information.
`

const help = `Usage: vecgrep [OPTION]... PATTERN [FILE]...
Select or rewrite lines matching PATTERN in each FILE.

  -i, --ignore-case            ignore case distinctions
  -v, --invert-match            select non-matching lines
  -F, --field-separator=SEP     split selected lines on SEP (default: whitespace)
  -s, --sub=REPLACEMENT         replace matches with REPLACEMENT
  -g, --global                  with --sub, replace every match, not just the first
      --backend=BACKEND         auto, cpu, or gpu (default: auto)

When FILE is '-' or omitted, read standard input.
Exit status is 0 whether or not any line is selected, 2 on error.
`
