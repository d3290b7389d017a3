// Package profilers sets up profiling for the batch programs (cmd/sweep).
//
// If linked, it will install the profiler flags: --prof (HTTP pprof port), --cpu_profile and
// --mem_profile (output files).
package profilers

import (
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagProfiler   = flag.Int("prof", -1, "If set, serves the pprof HTTP profiler at the given port.")
	flagCPUProfile = flag.String("cpu_profile", "", "Write cpu profile to `file`.")
	flagMemProfile = flag.String("mem_profile", "", "Write heap profile to `file` when the program finishes.")
)

// Setup starts the HTTP and the CPU profilers, if they were configured with the flags.
// The returned stop function finishes the CPU profile and writes the heap profile: it should be
// deferred and called before the program exits.
func Setup() (stop func() error, err error) {
	if *flagProfiler >= 0 {
		startHTTPProfiler(*flagProfiler)
	}
	var cpuFile *os.File
	if *flagCPUProfile != "" {
		if cpuFile, err = os.Create(*flagCPUProfile); err != nil {
			return nil, errors.Wrapf(err, "could not create CPU profile %q", *flagCPUProfile)
		}
		if err = pprof.StartCPUProfile(cpuFile); err != nil {
			_ = cpuFile.Close()
			return nil, errors.Wrap(err, "could not start CPU profile")
		}
	}
	stop = func() error {
		if cpuFile != nil {
			pprof.StopCPUProfile()
			if err := cpuFile.Close(); err != nil {
				return errors.Wrapf(err, "failed to close CPU profile %q", *flagCPUProfile)
			}
			klog.Infof("CPU profile written to %q", *flagCPUProfile)
		}
		if *flagMemProfile != "" {
			return writeHeapProfile(*flagMemProfile)
		}
		return nil
	}
	return stop, nil
}

func writeHeapProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create memory profile %q", path)
	}
	defer func() { _ = f.Close() }()
	runtime.GC() // Get up-to-date statistics.
	if err = pprof.WriteHeapProfile(f); err != nil {
		return errors.Wrapf(err, "could not write memory profile %q", path)
	}
	klog.Infof("Heap profile written to %q", path)
	return nil
}

// startHTTPProfiler serves net/http/pprof on localhost:port while the program runs.
func startHTTPProfiler(port int) {
	addr := fmt.Sprintf("localhost:%d", port)
	fmt.Printf("Starting profiler on %s/debug/pprof\n", addr)
	fmt.Printf("- You can access it with: $ go tool pprof %s/debug/pprof/heap\n", addr)
	go func() {
		if err := http.ListenAndServe(addr, nil); err != nil {
			klog.Errorf("Profiler on %s stopped: %v", addr, err)
		}
	}()
}
