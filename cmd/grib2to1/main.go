// Command grib2to1 converts a GRIB edition-2 file to GRIB edition 1.
//
// Usage:
//
//	grib2to1 input.grib2 output.grib
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/mmp/regrib"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] GRIB2_file GRIB1_file\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	defer glog.Flush()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	in, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening input file: %v\n", err)
		os.Exit(1)
	}
	defer in.Close()

	out, err := os.Create(flag.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening output file: %v\n", err)
		os.Exit(1)
	}

	n, err := regrib.Transcode2To1(in, out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		out.Close()
		os.Exit(1)
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "error writing output file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Number of GRIB1 grids written to output: %d\n", n)
}
