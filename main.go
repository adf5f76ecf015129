package main

import (
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/filesift/filesift/pkg/fsutils"
	"github.com/filesift/filesift/pkg/profiling"
	"github.com/filesift/filesift/pkg/scanner"
	"github.com/filesift/filesift/pkg/sift"
)

var defaultExcludeNames = strings.Join(scanner.DefaultExclusions().Names(), ",")

var (
	fullScan   = flag.Bool("full", false, "scan subdirectories recursively")
	exclude    = flag.String("exclude", "", "comma-separated directory names to skip instead of the defaults: "+defaultExcludeNames)
	cpuProfile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memProfile = flag.String("memprofile", "", "write memory profile to `file`")
	pprofAddr  = flag.String("pprof", "", "start pprof http server on `address` (e.g. localhost:6060)")
)

var httpListenAndServe = http.ListenAndServe
var osExit = os.Exit
var pprofStopCPUProfile = pprof.StopCPUProfile

func main() {
	osExit(run())
}

var runSession = sift.Main

func run() int {
	flag.Parse()

	if flag.NArg() < 1 {
		printUsage()
		return 0
	}

	if *pprofAddr != "" {
		go func() {
			err := httpListenAndServe(*pprofAddr, nil)
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "pprof server error: %v\n", err)
			}
		}()
	}

	defer func() {
		if r := recover(); r != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Recovered from panic: %v\n", r)
			pprofStopCPUProfile()
			osExit(1)
		}
	}()

	if *cpuProfile != "" {
		stopCPUProfiling := profiling.DoCPUProfiling(*cpuProfile)
		defer stopCPUProfiling()
	}

	if *memProfile != "" {
		stopMemProfiling := profiling.DoMemProfiling(*memProfile)
		defer stopMemProfiling()
	}

	return runSession(sift.Config{
		Root:     fsutils.ExpandHome(flag.Arg(0)),
		FullScan: *fullScan,
		Exclude:  splitExcludes(*exclude),
	})
}

func printUsage() {
	_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [flags] DIRECTORY\n\n", os.Args[0])
	_, _ = fmt.Fprintln(os.Stderr, "Scans DIRECTORY, groups files by extension and opens an interactive")
	_, _ = fmt.Fprintln(os.Stderr, "menu to browse, view and delete them.")
	_, _ = fmt.Fprintln(os.Stderr, "")
	flag.PrintDefaults()
}

func splitExcludes(arg string) []string {
	if arg == "" {
		return nil
	}
	var names []string
	for _, name := range strings.Split(arg, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
