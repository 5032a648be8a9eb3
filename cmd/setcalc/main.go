/*
Command setcalc evaluates set-algebra operations on nested sets.

Usage:

    setcalc [--file FILE] [--tree] [--max-depth N] OP [SET ...]

Sets are given in brace notation, either as arguments or, with --file, one per
line. Operations:

    canon      print every set in canonical form
    size       print the number of elements of every set
    depth      print the nesting depth of every set
    union      union of all sets
    intersect  intersection of all sets
    diff       first set minus all others
    subset     true if the first set is a subset of the second
    equal      true if both sets are equal
    powerset   power set of a single set

Example:

    setcalc union '{1, 2}' '{"a", {}}'
    {1, 2, "a", {}}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	arg "github.com/alexflint/go-arg"
	"github.com/npillmayer/nset"
	"github.com/npillmayer/nset/setdbg"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
)

// tracer traces with key 'nset.setcalc'.
func tracer() tracing.Trace {
	return tracing.Select("nset.setcalc")
}

type options struct {
	Op       string   `arg:"positional,required" help:"canon, size, depth, union, intersect, diff, subset, equal or powerset"`
	Sets     []string `arg:"positional" help:"sets in brace notation"`
	File     string   `arg:"-f,--file" help:"read sets from file, one per line"`
	Tree     bool     `arg:"-t,--tree" help:"print the structure of resulting sets"`
	MaxDepth int      `arg:"--max-depth" help:"reject sets nested deeper than this (0 = no limit)"`
}

func (options) Description() string {
	return "setcalc evaluates set-algebra operations on nested sets."
}

func main() {
	var opts options
	arg.MustParse(&opts)
	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "setcalc: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options, out io.Writer) error {
	sets, err := loadSets(opts)
	if err != nil {
		return err
	}
	tracer().Debugf("%s on %d sets", opts.Op, len(sets))
	lines, results, err := evaluate(opts.Op, sets)
	if err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
	if opts.Tree {
		for _, s := range results {
			fmt.Fprintln(out, setdbg.Tree(s))
		}
	}
	return nil
}

func loadSets(opts options) ([]*nset.Set, error) {
	var parseOpts []nset.Option
	if opts.MaxDepth > 0 {
		parseOpts = append(parseOpts, nset.MaxDepth(opts.MaxDepth))
	}
	var sets []*nset.Set
	for i, text := range opts.Sets {
		s, err := nset.Parse(text, parseOpts...)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i+1)
		}
		sets = append(sets, s)
	}
	if opts.File == "" {
		return sets, nil
	}
	f, err := os.Open(opts.File)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read sets")
	}
	defer f.Close()
	dec := nset.NewDecoder(f, parseOpts...)
	for {
		s, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "file %s", opts.File)
		}
		sets = append(sets, s)
	}
	return sets, nil
}

// evaluate applies op to sets. It returns the lines to print and the sets the
// lines were rendered from.
func evaluate(op string, sets []*nset.Set) ([]string, []*nset.Set, error) {
	switch op {
	case "canon", "size", "depth":
		if len(sets) == 0 {
			return nil, nil, errors.Errorf("%s needs at least one set", op)
		}
		lines := make([]string, len(sets))
		for i, s := range sets {
			switch op {
			case "canon":
				lines[i] = s.String()
			case "size":
				lines[i] = strconv.Itoa(s.Size())
			case "depth":
				lines[i] = strconv.Itoa(s.Depth())
			}
		}
		return lines, sets, nil
	case "union", "intersect", "diff":
		if len(sets) == 0 {
			return nil, nil, errors.Errorf("%s needs at least one set", op)
		}
		result := sets[0].Copy()
		for _, s := range sets[1:] {
			switch op {
			case "union":
				result.UnionWith(s)
			case "intersect":
				result.IntersectWith(s)
			case "diff":
				result.DifferenceWith(s)
			}
		}
		return []string{result.String()}, []*nset.Set{result}, nil
	case "subset", "equal":
		if len(sets) != 2 {
			return nil, nil, errors.Errorf("%s needs exactly two sets, have %d", op, len(sets))
		}
		var b bool
		if op == "subset" {
			b = sets[0].SubsetOf(sets[1])
		} else {
			b = sets[0].Equals(sets[1])
		}
		return []string{strconv.FormatBool(b)}, nil, nil
	case "powerset":
		if len(sets) != 1 {
			return nil, nil, errors.Errorf("powerset needs exactly one set, have %d", len(sets))
		}
		p := sets[0].PowerSet()
		return []string{p.String()}, []*nset.Set{p}, nil
	}
	return nil, nil, errors.Errorf("unknown operation %q", op)
}
