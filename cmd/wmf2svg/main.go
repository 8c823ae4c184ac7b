// Command wmf2svg converts a WMF (Windows Metafile) file to SVG.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/undisker/libxmf2svg"
)

func main() {
	namespace := flag.String("namespace", "", "XML namespace prefix for emitted elements")
	verbose := flag.Bool("verbose", false, "trace each record to stderr")
	noDelim := flag.Bool("no-delimiter", false, "omit the XML prologue and <svg> wrapper")
	width := flag.Float64("width", 0, "requested output width in pixels (0: derive from the file)")
	height := flag.Float64("height", 0, "requested output height in pixels (0: derive from the file)")
	flag.Parse()

	if flag.NArg() < 2 {
		fmt.Printf("Usage: %s [options] input.wmf output.svg\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	inputFile := flag.Arg(0)
	outputFile := flag.Arg(1)

	contents, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
		os.Exit(1)
	}

	opts := wmf2svg.DefaultOptions
	opts.NamespacePrefix = *namespace
	opts.Verbose = *verbose
	opts.SVGDelimiter = !*noDelim
	opts.ImgWidth = *width
	opts.ImgHeight = *height
	if opts.Verbose {
		opts.TraceWriter = os.Stderr
	}

	out, err := wmf2svg.Convert(contents, &opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting %s: %v\n", inputFile, err)
		os.Exit(1)
	}

	if err := os.WriteFile(outputFile, out, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully converted %s to %s\n", inputFile, outputFile)
}
