package puzzle

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/cespare/cp"
	"github.com/cespare/wait"
	"github.com/felixge/fgprof"
)

// Main is the entry point shared by the advent programs. It parses the
// command line, runs the requested day (or every day with -all), and
// exits non-zero on failure.
func Main(year int, set *Set) {
	log.SetFlags(0)
	var (
		inputPath  = flag.String("input", "", "Input file (default: NN.txt in the configured inputs dir; - for stdin)")
		verbose    = flag.Bool("v", false, "Print trace output to stderr")
		all        = flag.Bool("all", false, "Run every registered day")
		jobs       = flag.Int("j", runtime.GOMAXPROCS(0), "Number of days to run concurrently with -all")
		check      = flag.Bool("check", false, "Compare results against the answers recorded in the config")
		stats      = flag.Bool("stats", false, "Print elapsed time, CPU time, and max RSS when done")
		profile    = flag.String("profile", "", "Write a wall-clock profile to this file")
		save       = flag.Bool("save", false, "Copy the -input file into the configured inputs dir")
		configPath = flag.String("config", DefaultConfigPath(), "Config file")
	)
	flag.Usage = func() {
		w := flag.CommandLine.Output()
		fmt.Fprintf(w, "usage: %s [flags] day\n", filepath.Base(os.Args[0]))
		fmt.Fprintln(w, "where day is one of:")
		for _, name := range set.Names() {
			fmt.Fprintln(w, name)
		}
		fmt.Fprintln(w, "flags:")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	r := &runner{
		year:    year,
		set:     set,
		cfg:     cfg,
		out:     os.Stdout,
		verbose: *verbose,
		check:   *check,
	}

	if err := checkArgs(*all, *save, flag.NArg()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	var stopProfile func()
	if *profile != "" {
		f, err := os.Create(*profile)
		if err != nil {
			log.Fatal(err)
		}
		stop := fgprof.Start(f, fgprof.FormatPprof)
		stopProfile = func() {
			if err := stop(); err != nil {
				log.Println("Error writing profile:", err)
			}
			f.Close()
		}
	}

	start := time.Now()
	if *all {
		err = r.runAll(*jobs)
	} else {
		day := flag.Arg(0)
		if *save {
			err = r.saveInput(day, *inputPath)
		}
		if err == nil {
			err = r.runOne(day, *inputPath)
		}
	}
	if stopProfile != nil {
		stopProfile()
	}
	if *stats {
		fmt.Fprintln(os.Stderr, Measure(start))
	}
	if err != nil {
		log.Fatal(err)
	}
}

// checkArgs rejects flag and argument combinations that Main cannot run.
func checkArgs(all, save bool, nargs int) error {
	switch {
	case all && save:
		return errors.New("-save cannot be combined with -all")
	case all && nargs != 0:
		return errors.New("-all takes no day argument")
	case !all && nargs != 1:
		return errors.New("exactly one day is required")
	}
	return nil
}

type runner struct {
	year    int
	set     *Set
	cfg     *Config
	out     io.Writer
	verbose bool
	check   bool
}

func (r *runner) solve(day, path string) (Result, error) {
	fn, ok := r.set.Lookup(day)
	if !ok {
		return Result{}, fmt.Errorf("unknown day %q", day)
	}
	if path == "" {
		path = r.cfg.InputPath(r.year, day)
	}
	in, err := ReadInput(path)
	if err != nil {
		return Result{}, err
	}
	if r.verbose {
		in.SetTrace(os.Stderr, fmt.Sprintf("[%d/%s] ", r.year, day))
	}
	res, err := fn(in)
	if err != nil {
		return Result{}, fmt.Errorf("day %s: %s", day, err)
	}
	return res, nil
}

func (r *runner) runOne(day, path string) error {
	res, err := r.solve(day, path)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, res)
	if r.check {
		return r.cfg.Check(r.year, day, res)
	}
	return nil
}

var errNoInput = errors.New("no input")

// runAll solves every day that has an input file, jobs at a time, and
// prints the results in day order.
func (r *runner) runAll(jobs int) error {
	if jobs < 1 {
		jobs = 1
	}
	names := r.set.Names()
	results := make([]Result, len(names))
	errs := make([]error, len(names))
	work := make(chan int)

	var wg wait.Group
	for range jobs {
		wg.Go(func(quit <-chan struct{}) error {
			for i := range work {
				path := r.cfg.InputPath(r.year, names[i])
				if _, err := os.Stat(path); err != nil {
					errs[i] = errNoInput
					continue
				}
				res, err := r.solve(names[i], path)
				if err != nil {
					return err
				}
				results[i] = res
			}
			return nil
		})
	}
	wg.Go(func(quit <-chan struct{}) error {
		defer close(work)
		for i := range names {
			select {
			case work <- i:
			case <-quit:
				return nil
			}
		}
		return nil
	})
	if err := wg.Wait(); err != nil {
		return err
	}

	var mismatches int
	for i, name := range names {
		if errs[i] == errNoInput {
			if r.verbose {
				log.Printf("day %s: skipped (no input)", name)
			}
			continue
		}
		fmt.Fprintf(r.out, "day %s:\n%s\n", name, results[i])
		if r.check {
			if err := r.cfg.Check(r.year, name, results[i]); err != nil {
				log.Println(err)
				mismatches++
			}
		}
	}
	if mismatches > 0 {
		return fmt.Errorf("%d days did not match the recorded answers", mismatches)
	}
	return nil
}

func (r *runner) saveInput(day, src string) error {
	if src == "" || src == "-" {
		return errors.New("-save requires an -input file")
	}
	if _, ok := r.set.Lookup(day); !ok {
		return fmt.Errorf("unknown day %q", day)
	}
	dst := r.cfg.InputPath(r.year, day)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	if err := cp.CopyFile(dst, src); err != nil {
		return fmt.Errorf("error saving input: %s", err)
	}
	return nil
}
