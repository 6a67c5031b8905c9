// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/someonegg/panelmatch"
	"github.com/someonegg/panelmatch/pricing"
)

var searchCmd = &cli.Command{
	Name:    "search",
	Usage:   "Find the best panel of every supplier for a size",
	Aliases: []string{"s"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "catalog",
			Required: true,
			Usage:    "specify the input suppliers.json",
		},
		&cli.StringFlag{
			Name:  "pricing",
			Usage: "specify the input pricing.json (defaults fill the gaps)",
		},
		&cli.IntFlag{
			Name:     "length",
			Required: true,
			Usage:    "specify the required length (mm)",
		},
		&cli.IntFlag{
			Name:     "width",
			Required: true,
			Usage:    "specify the required width (mm)",
		},
		&cli.StringSliceFlag{
			Name:  "wood",
			Usage: "restrict to wood species (repeatable)",
		},
		&cli.StringSliceFlag{
			Name:  "shield",
			Usage: "restrict to shield types (repeatable)",
		},
		&cli.StringSliceFlag{
			Name:  "grade",
			Usage: "restrict to grades (repeatable)",
		},
		&cli.IntSliceFlag{
			Name:  "thickness",
			Usage: "restrict to thicknesses in mm (repeatable)",
		},
		&cli.BoolFlag{
			Name:  "smaller",
			Usage: "also consider panels smaller than required",
		},
		&cli.IntFlag{
			Name:  "parallel",
			Value: 1,
			Usage: "number of suppliers searched concurrently",
		},
		&cli.StringFlag{
			Name:  "out",
			Usage: "specify the output results.json (default stdout)",
		},
	},
	Action: func(ctx *cli.Context) error {
		q := panelmatch.Query{
			Length:         ctx.Int("length"),
			Width:          ctx.Int("width"),
			Woods:          ctx.StringSlice("wood"),
			ShieldTypes:    ctx.StringSlice("shield"),
			Grades:         ctx.StringSlice("grade"),
			Thicknesses:    ctx.IntSlice("thickness"),
			IncludeSmaller: ctx.Bool("smaller"),
		}
		if err := q.Validate(); err != nil {
			return err
		}
		if ctx.Int("parallel") < 1 {
			return errors.New("invalid parallel")
		}
		return doSearch(q, ctx.String("catalog"), ctx.String("pricing"), ctx.String("out"), ctx.Int("parallel"))
	},
}

func doSearch(q panelmatch.Query, catalogFile, pricingFile, outFile string, parallel int) error {
	suppliers, err := loadSuppliers(catalogFile)
	if err != nil {
		return fmt.Errorf("load catalog file failed: %w", err)
	}

	prices, err := loadPricing(pricingFile)
	if err != nil {
		return fmt.Errorf("load pricing file failed: %w", err)
	}

	engine := panelmatch.NewEngine(panelmatch.Options{Parallelism: parallel})
	results, err := engine.Search(q, suppliers, prices)
	if err != nil {
		return err
	}

	if outFile == "" {
		return writeResults(os.Stdout, results)
	}
	f, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("write results file failed: %w", err)
	}
	if err := writeResults(f, results); err != nil {
		f.Close()
		return fmt.Errorf("write results file failed: %w", err)
	}
	return f.Close()
}

func loadSuppliers(file string) ([]panelmatch.Supplier, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var suppliers []panelmatch.Supplier

	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

// loadPricing returns the defaults for an empty file name.
func loadPricing(file string) (pricing.Config, error) {
	if file == "" {
		return pricing.Default(), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return pricing.Config{}, err
	}

	var cfg pricing.Config

	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&cfg); err != nil {
		return pricing.Config{}, err
	}
	return pricing.Merge(&cfg), nil
}

func writeResults(w io.Writer, results []panelmatch.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "   ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(results)
}
