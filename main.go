package main

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
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
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/sgfilter/cmd"
	"github.com/timtadh/sgfilter/config"
	"github.com/timtadh/sgfilter/features"
)

func init() {
	cmd.UsageMessage = "sgfilter --help"
	cmd.ExtendedMessage = `
sgfilter - filter graph databases by small frequent subgraphs

$ sgfilter [Global Options] <mode> [Mode Options] <args>

Note: You must supply [Global Options] then <mode> [Mode Options] and finally
      the mode arguments. Changes in ordering are not supported.

Note: Corpus paths may be a regular file, a gzipped file (extension '.gz') or
      a directory of such files. Matrix and feature files are JSON and are
      gzipped when their name ends in '.gz'.

Global Options
    -h, --help                view this message
    --modes                   show the available modes
    --reporters               show the available reporters
    -o, --output=<path>       directory for reporter output (optional)
    -c, --cache=<path>        path to cache directory (optional)
                              NB: will overwrite contents of dir
    --parallelism=<int>       workers to use (default 1, -1 for one per cpu)
    --config=<path>           a toml config file. flags given after it
                              override its settings
    --skip-log=<level>        don't output the given log level.

Developer Options
    --cpu-profile=<path>      write a cpu-profile to this location

    heap-profile Reporter

        $ sgfilter ... candidates ... chain ... heap-profile [options]

        -p, profile=<path>    heap-profiles are written to <path>.<n>
        -e, every=<int>       profile every n queries reported (default 1)
        -a, after=<int>       start after n queries reported (default 0)

Corpus Format
    Each graph starts at a header line beginning with one of the configured
    header markers (default "t #" and "#"). Inside a graph:

        v <id> [label]
        e <u> <v> [label]

    Labels are ignored. Edges are undirected. Other lines are ignored.

Modes
    select      <pattern-corpus> <features.json>
                rank the 2-edge and 3-edge patterns of the corpus by rarity
                and write the selected feature set
    vectors     <corpus> <matrix.json>
                write the feature vector of every graph
    identify    <db-corpus> <pattern-corpus> <db-matrix.json>
                select features from <pattern-corpus>, write them to
                <db-matrix.json>.features.json and write the vectors of
                <db-corpus>
    candidates  <db-matrix.json> <query-matrix.json> [<reporter> ...]
                list the database graphs whose vectors dominate each query

    select and identify Options
        --top-k=<int>         features taken from the top of each pool
                              (default 12)
        --band-start=<int>    first rank of the band taken from each pool
                              (default 27)
        --band-width=<int>    width of the band (default 13)
        --total=<int>         number of graphs used in the rarity score
                              (default: size of the pattern corpus)

    vectors Options
        -f, --features=<path> build vectors against this feature set. Without
                              it features are selected from <corpus>.

Reporters
    chain                     chain several reporters together (end the chain
                              with endchain)
    log                       log the size of each candidate list
    file                      write the candidate lists to a file in the
                              output dir
    count                     write the number of queries and candidates

    log Options
        -l, level=<string>    log level the logger should use
        -p, prefix=<string>   a prefix to put before the log line

    file Options
        -n, name=<name>       file name (default candidates.txt)

        The file has one block per query, numbered from 1:

            q # <query>
            c # <graph> <graph> ...

    count Options
        -n, name=<name>       file name (default count)

    Examples

        $ sgfilter --parallelism=-1 identify db.txt patterns.txt db.json.gz
        $ sgfilter vectors -f db.json.gz.features.json queries.txt q.json.gz
        $ sgfilter -o /tmp/out candidates db.json.gz q.json.gz \
            chain log file -n answers.txt count endchain
`
}

func selectionOpts(conf *config.Config, opt, arg string) bool {
	switch opt {
	case "--top-k":
		conf.Selection.TopK = cmd.ParseInt(arg)
	case "--band-start":
		conf.Selection.BandStart = cmd.ParseInt(arg)
	case "--band-width":
		conf.Selection.BandWidth = cmd.ParseInt(arg)
	case "--total":
		conf.Total = cmd.ParseInt(arg)
	default:
		return false
	}
	return true
}

var selectionLong = []string{"top-k=", "band-start=", "band-width=", "total="}

func selectMode(argv []string, conf *config.Config) error {
	args, optargs, err := getopt.GetOpt(
		argv,
		"h",
		append([]string{"help"}, selectionLong...),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	for _, oa := range optargs {
		switch {
		case oa.Opt() == "-h" || oa.Opt() == "--help":
			cmd.Usage(0)
		case selectionOpts(conf, oa.Opt(), oa.Arg()):
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "select takes <pattern-corpus> <features.json>\n")
		fmt.Fprintf(os.Stderr, "You gave: %v\n", args)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	corpus := cmd.AssertFileOrDirExists(args[0])
	out := cmd.AssertFile(args[1])
	_, err = cmd.SelectFeatures(context.Background(), conf, corpus, out)
	return err
}

func vectorsMode(argv []string, conf *config.Config) error {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hf:",
		[]string{
			"help",
			"features=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	featuresPath := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-f", "--features":
			featuresPath = cmd.AssertFileOrDirExists(oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "vectors takes <corpus> <matrix.json>\n")
		fmt.Fprintf(os.Stderr, "You gave: %v\n", args)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	corpus := cmd.AssertFileOrDirExists(args[0])
	out := cmd.AssertFile(args[1])
	ctx := context.Background()
	var fs *features.FeatureSet
	if featuresPath != "" {
		fs, err = features.LoadFeatureSet(featuresPath)
	} else {
		fs, err = cmd.SelectFeatures(ctx, conf, corpus, cmd.FeaturesPath(out))
	}
	if err != nil {
		return err
	}
	_, err = cmd.Vectors(ctx, conf, fs, corpus, out)
	return err
}

func identifyMode(argv []string, conf *config.Config) error {
	args, optargs, err := getopt.GetOpt(
		argv,
		"h",
		append([]string{"help"}, selectionLong...),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	for _, oa := range optargs {
		switch {
		case oa.Opt() == "-h" || oa.Opt() == "--help":
			cmd.Usage(0)
		case selectionOpts(conf, oa.Opt(), oa.Arg()):
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}
	if len(args) != 3 {
		fmt.Fprintf(os.Stderr, "identify takes <db-corpus> <pattern-corpus> <db-matrix.json>\n")
		fmt.Fprintf(os.Stderr, "You gave: %v\n", args)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	db := cmd.AssertFileOrDirExists(args[0])
	patterns := cmd.AssertFileOrDirExists(args[1])
	out := cmd.AssertFile(args[2])
	_, err = cmd.Identify(context.Background(), conf, db, patterns, out)
	return err
}

func candidatesMode(argv []string, conf *config.Config) error {
	args, optargs, err := getopt.GetOpt(
		argv,
		"h",
		[]string{
			"help",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}
	if len(args) < 2 {
		fmt.Fprintf(os.Stderr, "candidates takes <db-matrix.json> <query-matrix.json>\n")
		fmt.Fprintf(os.Stderr, "You gave: %v\n", args)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	db := cmd.AssertFileOrDirExists(args[0])
	queries := cmd.AssertFileOrDirExists(args[1])
	rptr := cmd.ParseReporters(args[2:], conf)
	return cmd.Candidates(context.Background(), conf, db, queries, rptr)
}

func main() {
	os.Exit(run())
}

func run() int {
	modes := map[string]cmd.Mode{
		"select":     selectMode,
		"vectors":    vectorsMode,
		"identify":   identifyMode,
		"candidates": candidatesMode,
	}

	args, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"ho:c:",
		[]string{
			"help",
			"output=", "cache=",
			"modes", "reporters",
			"parallelism=",
			"config=",
			"skip-log=",
			"cpu-profile=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "could not process your arguments (perhaps you forgot a mode?) try:")
		fmt.Fprintf(os.Stderr, "$ %v candidates %v\n", os.Args[0], strings.Join(os.Args[1:], " "))
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	conf := config.Default()
	cpuProfile := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-o", "--output":
			conf.Output = cmd.AssertDir(oa.Arg())
		case "-c", "--cache":
			conf.Cache = cmd.EmptyDir(oa.Arg())
		case "--parallelism":
			conf.Parallelism = cmd.ParseInt(oa.Arg())
		case "--config":
			err := config.LoadToml(cmd.AssertFileOrDirExists(oa.Arg()), conf)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				cmd.Usage(cmd.ErrorCodes["badfile"])
			}
		case "--modes":
			fmt.Fprintln(os.Stderr, "Modes:")
			for k := range modes {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--reporters":
			fmt.Fprintln(os.Stderr, "Reporters:")
			for k := range cmd.Reporters {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--skip-log":
			level := oa.Arg()
			errors.Logf("INFO", "not logging level %v", level)
			errors.SkipLogging[level] = true
		case "--cpu-profile":
			cpuProfile = cmd.AssertFile(oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}

	if cpuProfile != "" {
		errors.Logf("DEBUG", "starting cpu profile: %v", cpuProfile)
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			errors.Logf("DEBUG", "closing cpu profile")
			pprof.StopCPUProfile()
			err := f.Close()
			errors.Logf("DEBUG", "closed cpu profile, err: %v", err)
		}()
	}

	return cmd.Main(args, conf, modes)
}
