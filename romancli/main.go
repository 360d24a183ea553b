package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/spf13/pflag"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/unicode/runenames"

	wasmfonts "github.com/annieversary/harfbuzz-wasm-fonts"
	"github.com/annieversary/harfbuzz-wasm-fonts/sfntfont"
)

// tracer traces with key 'wasmfonts.shape'
func tracer() tracing.Trace {
	return tracing.Select("wasmfonts.shape")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":       "go",
		"trace.wasmfonts.shape": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Println("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := pflag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := pflag.StringP("font", "f", "", "TTF/OTF font file to load (default: embedded Go Regular)")
	text := pflag.StringP("text", "t", "", "Shape a single line of text and exit")
	pflag.Parse()

	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}

	font, err := loadFont(*fontname)
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}

	if *text != "" {
		printShaped(font, *text)
		return
	}

	pterm.Info.Println("Welcome to the Roman numerals shaper")
	pterm.Info.Println("Type a line of text; numbers become Roman numerals. Quit with <ctrl>D")
	repl, err := readline.New("roman > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		printShaped(font, line)
	}
	pterm.Info.Println("Good bye!")
}

// loadFont opens a font file, or falls back to the embedded Go Regular face.
func loadFont(fontname string) (*sfntfont.Font, error) {
	if fontname == "" {
		tracer().Infof("no font given, using embedded Go Regular")
		return sfntfont.Parse(goregular.TTF)
	}
	font, err := sfntfont.Load(fontname)
	if err != nil {
		return nil, err
	}
	tracer().Infof("loaded font %s (%d units/em)", fontname, font.UnitsPerEm())
	return font, nil
}

// printShaped shapes one line and dumps the resulting glyph records.
func printShaped(font *sfntfont.Font, line string) {
	for i, r := range []rune(line) {
		tracer().Debugf("input %2d: %#06x %s", i, r, runenames.Name(r))
	}
	glyphs := wasmfonts.ShapeText(font, line)
	table := pterm.TableData{
		{"#", "glyph", "cluster", "x_advance", "y_offset"},
	}
	for i, g := range glyphs {
		table = append(table, []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%d", g.Codepoint),
			fmt.Sprintf("%d", g.Cluster),
			fmt.Sprintf("%d", g.XAdvance),
			fmt.Sprintf("%d", g.YOffset),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(table).Render(); err != nil {
		tracer().Errorf(err.Error())
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
