package main

import (
	"fmt"

	"oss.terrastruct.com/planar/lib/xmain"
)

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `Usage:
  %s [--format=text] [--classify] shapes.json [report]

%[1]s measures the points, lines and shapes of shapes.json and writes a report.
Use - to have %[1]s read from stdin or write to stdout. The report goes to stdout by default.

Flags:
%s
`, ms.Name, ms.Opts.Help())
}
