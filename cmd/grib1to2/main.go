// Command grib1to2 converts a GRIB edition-1 file to GRIB edition 2.
//
// Usage:
//
//	grib1to2 input.grib output.grib2
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
		fmt.Fprintf(os.Stderr, "usage: %s [flags] GRIB1_file GRIB2_file\n", os.Args[0])
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

	n, err := regrib.Transcode1To2(in, out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		out.Close()
		os.Exit(1)
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "error writing output file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Number of GRIB2 messages written to output: %d\n", n)
}
