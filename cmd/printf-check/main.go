// Command printf-check drives the renderer against reference output.
// It renders one-off format strings and diffs vector corpora against
// either pinned expectations or the platform formatter.
//
// Usage:
//
//	printf-check render <format> [arg ...]
//	printf-check diff <vectors.yaml>
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"

	"github.com/awatry/printf"
)

// CLI defines the command-line interface for printf-check.
var CLI struct {
	BufSize int `name:"buf-size" default:"1024" help:"Output buffer capacity in bytes"`

	Render RenderCmd `cmd:"" help:"Render one format string with arguments"`
	Diff   DiffCmd   `cmd:"" help:"Diff a YAML vector corpus against reference output"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("printf-check"),
		kong.Description("Differential harness for the bounded printf renderer"),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run())
}

// RenderCmd renders a single format string. Arguments are parsed as
// signed integer, unsigned integer, float, then string, in that order.
type RenderCmd struct {
	Format string   `arg:"" help:"C-style format string"`
	Args   []string `arg:"" optional:"" help:"Arguments for the directives"`
}

func (c *RenderCmd) Run() error {
	vals := make([]any, len(c.Args))
	for i, raw := range c.Args {
		vals[i] = parseArg(raw)
	}
	buf := make([]byte, CLI.BufSize)
	n, err := printf.Format(buf, c.Format, vals...)
	if err != nil {
		return err
	}
	fmt.Println(string(buf[:n]))
	return nil
}

func parseArg(raw string) any {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	if u, err := strconv.ParseUint(raw, 10, 64); err == nil {
		return u
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

// DiffCmd runs every vector in a corpus through the renderer and
// compares the output with the vector's pinned expectation, or with the
// platform formatter when none is pinned.
type DiffCmd struct {
	Vectors string `arg:"" type:"path" help:"YAML vector corpus"`
}

type vectorFile struct {
	Vectors []vector `yaml:"vectors"`
}

type vector struct {
	Format string  `yaml:"format"`
	Args   []any   `yaml:"args"`
	Expect *string `yaml:"expect"`
}

type result struct {
	format string
	got    string
	want   string
	ok     bool
}

func (c *DiffCmd) Run() error {
	data, err := os.ReadFile(c.Vectors)
	if err != nil {
		return err
	}
	var vf vectorFile
	if err := yaml.Unmarshal(data, &vf); err != nil {
		return fmt.Errorf("decode %s: %w", c.Vectors, err)
	}

	buf := make([]byte, CLI.BufSize)
	results := make([]result, 0, len(vf.Vectors))
	failures := 0
	for _, v := range vf.Vectors {
		var got string
		if n, err := printf.Format(buf, v.Format, v.Args...); err != nil {
			got = fmt.Sprintf("error: %v", err)
		} else {
			got = string(buf[:n])
		}
		var want string
		if v.Expect != nil {
			want = *v.Expect
		} else {
			want = fmt.Sprintf(v.Format, v.Args...)
		}
		ok := got == want
		if !ok {
			failures++
		}
		results = append(results, result{format: v.Format, got: got, want: want, ok: ok})
	}

	printReport(results)
	if failures > 0 {
		return fmt.Errorf("%d of %d vector(s) differ", failures, len(vf.Vectors))
	}
	fmt.Printf("%d vector(s) ok\n", len(vf.Vectors))
	return nil
}

// printReport writes an aligned three-column report. Column widths use
// display width so wide characters in vector output stay lined up.
func printReport(results []result) {
	headers := [3]string{"FORMAT", "GOT", "WANT"}
	widths := [3]int{
		runewidth.StringWidth(headers[0]),
		runewidth.StringWidth(headers[1]),
		runewidth.StringWidth(headers[2]),
	}
	for _, r := range results {
		for i, cell := range [3]string{r.format, r.got, r.want} {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	printRow := func(status string, cells [3]string) {
		fmt.Printf("%s", status)
		for i, cell := range cells {
			fmt.Printf("  %s", runewidth.FillRight(cell, widths[i]))
		}
		fmt.Println()
	}
	printRow("    ", headers)
	for _, r := range results {
		status := "ok  "
		if !r.ok {
			status = "FAIL"
		}
		printRow(status, [3]string{r.format, r.got, r.want})
	}
}
