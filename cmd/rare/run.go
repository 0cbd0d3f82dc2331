// Package main implements rare, a grep-like line filter over the rare
// regular expression engine: read stdin line by line, print the lines
// (or matched spans) that match a pattern to stdout.
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/nguyenhuy0905/rare"
	"github.com/projectdiscovery/gologger"
)

// options mirrors the cobra flags registered in main.go, kept separate
// from the cobra.Command so run can be exercised directly in tests
// without going through flag parsing.
type options struct {
	lineNumber   bool // -n
	onlyMatching bool // -o
	useColor     bool // -c
	verbose      bool // -v
}

// run scans every line of in, writing to out the lines (or, in
// onlyMatching mode, the matched substrings) that match pattern. It
// returns the number of lines that matched and the first error
// encountered compiling the pattern or reading input.
//
// A prefilter is consulted before the full simulator whenever the
// engine built one for pattern; a line the prefilter rejects is never
// handed to the NFA simulator at all.
func run(pattern string, opts options, in io.Reader, out io.Writer) (matchCount int, err error) {
	engine, err := rare.Compile(pattern)
	if err != nil {
		return 0, err
	}

	if opts.verbose {
		gologger.Verbose().Msgf("compiled pattern %q", pattern)
		if pf := engine.Prefilter(); pf != nil {
			gologger.Verbose().Msgf("literal prefilter active for %q", pattern)
		}
	}

	highlighter := color.New(color.FgRed, color.Bold)

	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if pf := engine.Prefilter(); pf != nil && !pf.MayMatch(line) {
			continue
		}

		spans := engine.FindAllIndex(line)
		if len(spans) == 0 {
			continue
		}
		matchCount++

		writeMatch(out, line, spans, lineNo, opts, highlighter)
	}

	if scanErr := scanner.Err(); scanErr != nil {
		return matchCount, fmt.Errorf("reading input: %w", scanErr)
	}
	return matchCount, nil
}

// writeMatch renders one matching line according to opts: only the
// matched spans when onlyMatching is set, otherwise the whole line with
// the spans optionally highlighted; either form optionally prefixed with
// its 1-based line number.
func writeMatch(out io.Writer, line string, spans [][2]int, lineNo int, opts options, highlighter *color.Color) {
	prefix := ""
	if opts.lineNumber {
		prefix = fmt.Sprintf("%d:", lineNo)
	}

	if opts.onlyMatching {
		runes := []rune(line)
		for _, span := range spans {
			text := string(runes[span[0]:span[1]])
			if opts.useColor {
				text = highlighter.Sprint(text)
			}
			fmt.Fprintf(out, "%s%s\n", prefix, text)
		}
		return
	}

	if !opts.useColor {
		fmt.Fprintf(out, "%s%s\n", prefix, line)
		return
	}

	fmt.Fprintf(out, "%s%s\n", prefix, highlightSpans(line, spans, highlighter))
}

// highlightSpans returns line with every rune range in spans wrapped by
// highlighter, leaving the rest of the line untouched.
func highlightSpans(line string, spans [][2]int, highlighter *color.Color) string {
	runes := []rune(line)
	var b strings.Builder
	cursor := 0
	for _, span := range spans {
		b.WriteString(string(runes[cursor:span[0]]))
		b.WriteString(highlighter.Sprint(string(runes[span[0]:span[1]])))
		cursor = span[1]
	}
	b.WriteString(string(runes[cursor:]))
	return b.String()
}
