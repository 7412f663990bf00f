package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"go.uber.org/multierr"

	ctxlog "oss.terrastruct.com/planar/lib/log"
	"oss.terrastruct.com/planar/lib/version"
	"oss.terrastruct.com/planar/lib/xmain"
	"oss.terrastruct.com/planar/planarlib"
)

var formats = []string{"text", "json"}

func main() {
	xmain.Main(run)
}

func run(ctx context.Context, ms *xmain.State) (err error) {
	formatFlag, err := ms.Opts.Enum("PLANAR_FORMAT", "format", "f", "text", formats, "output format")
	if err != nil {
		return err
	}
	classifyFlag, err := ms.Opts.Bool("PLANAR_CLASSIFY", "classify", "c", false, "pick the most specific type for shapes that do not name one")
	if err != nil {
		return err
	}
	precisionFlag, err := ms.Opts.Int64("PLANAR_PRECISION", "precision", "p", 4, "decimals printed in the text format")
	if err != nil {
		return err
	}
	debugFlag, err := ms.Opts.Bool("DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		return err
	}
	versionFlag, err := ms.Opts.Bool("", "version", "v", false, "get the version")
	if err != nil {
		return err
	}

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if !errors.Is(err, pflag.ErrHelp) && err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}
	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}

	if *versionFlag {
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	}

	args := ms.Opts.Flags.Args()
	if len(args) == 0 {
		help(ms)
		return nil
	} else if len(args) > 2 {
		return xmain.UsageErrorf("too many arguments passed")
	}
	if *precisionFlag < 0 {
		return xmain.UsageErrorf("precision must not be negative, got %d", *precisionFlag)
	}

	if *debugFlag {
		ms.Env.Setenv("DEBUG", "1")
		ctx = ctxlog.Stderr(ctx, true)
	} else {
		ctx = xmain.DiscardSlog(ctx)
	}

	inputPath := args[0]
	outputPath := "-"
	if len(args) == 2 {
		outputPath = args[1]
	}

	input, err := ms.ReadPath(inputPath)
	if err != nil {
		return err
	}

	r, compileErr := planarlib.Compile(ctx, input, &planarlib.CompileOptions{
		Classify: *classifyFlag,
	})
	if r == nil {
		return compileErr
	}

	out, err := render(r, *formatFlag, int(*precisionFlag))
	if err != nil {
		return err
	}
	err = ms.WritePath(outputPath, out)
	if err != nil {
		return err
	}

	if compileErr != nil {
		n := len(multierr.Errors(compileErr))
		return xmain.ExitErrorf(1, "%d of %d shapes could not be created: %v", n, len(r.Shapes), compileErr)
	}
	if outputPath != "-" {
		ms.Log.Success.Printf("successfully measured %s to %s", inputPath, outputPath)
	}
	return nil
}

func render(r *planarlib.Report, format string, precision int) ([]byte, error) {
	if format == "json" {
		return r.JSON()
	}
	b := &bytes.Buffer{}
	err := r.WriteText(b, precision)
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
