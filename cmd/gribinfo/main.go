// Command gribinfo examines GRIB files of either edition and prints a
// summary of their contents.
//
// Usage:
//
//	gribinfo [-edition N] [-stats] file.grib
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/golang/glog"
	"github.com/mmp/regrib"
	"github.com/mmp/regrib/tables"
	"github.com/pkg/errors"
)

var (
	editionFlag = flag.Int("edition", 0, "GRIB edition of the input (1 or 2; 0 = sniff)")
	statsFlag   = flag.Bool("stats", false, "show min/max/mean statistics for each field")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <grib-file>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Examine GRIB files of either edition.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	defer glog.Flush()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	edition := *editionFlag
	if edition == 0 {
		if edition, err = sniffEdition(f); err != nil {
			return err
		}
	}

	next := nextFunc(f, edition)
	num := 0
	for {
		msg, err := next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrapf(err, "message %d", num+1)
		}
		num++
		fmt.Printf("Message %d: %s", num, msg.Describe())
		fmt.Printf("  reference time: %s; status: %s\n",
			tables.GetTimeSignificanceName(int(msg.RefTime.Significance)),
			tables.GetProductionStatusName(int(msg.RefTime.ProductionStatus)))
		if *statsFlag {
			for i, fld := range msg.Fields {
				min, max, mean, present := fieldStats(fld.Values)
				fmt.Printf("  field %d: %d/%d points, min %g, max %g, mean %g\n",
					i+1, present, len(fld.Values), min, max, mean)
			}
		}
	}
	fmt.Printf("%d message(s)\n", num)
	return nil
}

// sniffEdition peeks at the first message's edition octet.
func sniffEdition(f *os.File) (int, error) {
	head := make([]byte, 8)
	if _, err := io.ReadFull(f, head); err != nil {
		return 0, errors.Wrap(err, "reading GRIB header")
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	if head[7] == 2 {
		return 2, nil
	}
	return 1, nil
}

func nextFunc(r io.Reader, edition int) func() (*regrib.Message, error) {
	if edition == 2 {
		dec := regrib.NewDecoder2(r)
		return func() (*regrib.Message, error) { return dec.Next() }
	}
	dec := regrib.NewDecoder1(r)
	return func() (*regrib.Message, error) { return dec.Next() }
}

func fieldStats(values []float64) (min, max, mean float64, present int) {
	min, max = math.Inf(1), math.Inf(-1)
	sum := 0.0
	for _, v := range values {
		if v == regrib.MissingValue {
			continue
		}
		present++
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if present > 0 {
		mean = sum / float64(present)
	}
	return
}
