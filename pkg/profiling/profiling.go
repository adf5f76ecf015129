package profiling

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// DoCPUProfiling starts CPU profiling into filePath and returns the stop
// function the caller must defer.
func DoCPUProfiling(filePath string) func() {
	f, err := os.Create(filePath)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "could not create CPU profile: %v\n", err)
		return func() {}
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "could not start CPU profile: %v\n", err)
		_ = f.Close()
		return func() {}
	}
	return func() {
		pprof.StopCPUProfile()
		_ = f.Close()
	}
}

// DoMemProfiling returns a function that writes a heap profile to filePath,
// to be deferred until the end of the run.
func DoMemProfiling(filePath string) func() {
	return func() {
		f, err := os.Create(filePath)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "could not create memory profile: %v\n", err)
			return
		}
		defer func() {
			_ = f.Close()
		}()
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "could not write memory profile: %v\n", err)
		}
	}
}
