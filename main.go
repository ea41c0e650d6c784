// Command xtree reads an X source file, parses it, lays the AST out on a
// tidy-tree lattice, and writes both a textual dump and a PNG diagram.
package main

import (
	"flag"
	"fmt"
	"os"

	"xtreelang/pkg/pipeline"
)

func main() {
	outPath := flag.String("out", "", "output PNG path (default: input path with .png appended)")
	dumpOnly := flag.Bool("dump-only", false, "print the AST dump and skip rendering")
	preview := flag.Bool("preview", false, "open a live preview window after saving the PNG")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: xtree [-out path] [-dump-only] [-preview] <source-file>")
		os.Exit(2)
	}
	inPath := flag.Arg(0)

	result, err := pipeline.Run(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", inPath, err)
		os.Exit(1)
	}

	result.DumpAST(os.Stdout)

	if *dumpOnly {
		return
	}

	output := *outPath
	if output == "" {
		output = pipeline.DefaultOutputPath(inPath)
	}
	if err := result.SavePNG(output); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write PNG %q: %v\n", output, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", output)

	if *preview {
		runPreview(result)
	}
}
