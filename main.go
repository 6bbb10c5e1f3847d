package main

/* William Pettersson (william.pettersson@gmail.com)
*
* Copyright (c) 2016, William Pettersson. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

import (
	"github.com/timtadh/getopt"
)

import (
	"github.com/WPettersson/sortcensus/cmd"
	"github.com/WPettersson/sortcensus/config"
	"github.com/WPettersson/sortcensus/modes/pachner"
	"github.com/WPettersson/sortcensus/modes/partition"
	"github.com/WPettersson/sortcensus/pool"
	"github.com/WPettersson/sortcensus/tri"
)

func init() {
	cmd.UsageMessage = "sortcensus (-p|-i) <level> <indir> <outdir>"
	cmd.ExtendedMessage = `
sortcensus - sort 3-manifold census files by Pachner graphs and invariants

$ sortcensus (-p|-i) <level> <indir> <outdir>

    -h, --help                view this message
    -p, --pachner             build <level> levels of each Pachner graph
    -i, --invariants          add <level> invariants to each profile
    -w, --workers=<int>       number of parallel file jobs (default 3,
                              -1 for one per cpu)

<indir> must be a directory containing .sigs files; each one is
processed as an independent job. <outdir> is created if missing.

Each .sigs file is line oriented:

    # orbl;Z;
    dabcd dabce
    eabcde
    #q dabcd eabcde

An initial "# ..." line is the profile: the invariants common to every
triangulation in the file, semicolon terminated, in the order
orientability (orbl or nor), homology, then the Turaev-Viro ladder
TV(3,true); TV(3,false); TV(4,true); TV(5,true); TV(5,false);
TV(6,true); and so on. Every other line is a space-separated list of
signatures known to be connected by Pachner moves. An optional "#q"
line is the queue of signatures not yet analysed; entries naming
signatures absent from the file are ignored. A file may hold several
profiles, each with its own components and queue.
`
}

func main() {
	os.Exit(run())
}

func run() int {
	args, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"hpiw:",
		[]string{
			"help",
			"pachner",
			"invariants",
			"workers=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	doPachner := false
	doPartition := false
	workers := 0
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-p", "--pachner":
			doPachner = true
		case "-i", "--invariants":
			doPartition = true
		case "-w", "--workers":
			workers = cmd.ParseInt(oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}

	if doPachner == doPartition {
		fmt.Fprintln(os.Stderr, "You must supply exactly one of -p or -i")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	if len(args) != 3 {
		fmt.Fprintln(os.Stderr, "You must supply <level> <indir> <outdir>")
		fmt.Fprintf(os.Stderr, "You gave: %v\n", args)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	level := cmd.ParseInt(args[0])
	if level < 0 {
		fmt.Fprintln(os.Stderr, "<level> must be non-negative")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	lib, err := tri.Default()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	conf := &config.Config{
		Input:       args[1],
		Output:      cmd.CreateDir(args[2]),
		Level:       level,
		Parallelism: workers,
		Tri:         lib,
	}

	entries, err := os.ReadDir(conf.Input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Could not open %v as input directory.\n", conf.Input)
		return 1
	}

	p := pool.New(conf.Workers())
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".sigs") {
			continue
		}
		iname := conf.InputFile(name)
		var task pool.Task
		if doPachner {
			oname := conf.OutputFile(name)
			task = func() error {
				return pachner.Run(conf, iname, oname)
			}
		} else {
			oprefix := conf.OutputFile(strings.TrimSuffix(filepath.Base(name), ".sigs") + "_")
			task = func() error {
				return partition.Run(conf, iname, oprefix)
			}
		}
		if err := p.Enqueue(task); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
	}
	p.Close()
	return 0
}
