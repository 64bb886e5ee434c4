package main

import (
	"FileCompare/internal/compare"
	"FileCompare/internal/lane"
	"FileCompare/internal/metrics"
	"FileCompare/internal/progress"
	"FileCompare/internal/report"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const exitUsage = 2

// stderrIsTerminal gates the progress bar; tests replace it.
var stderrIsTerminal = isTerminal

type options struct {
	silent     bool
	bufferSize int
	progress   bool
	stats      bool
	verbose    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	exitCode := -1

	cmd := &cobra.Command{
		Use:           "simdcmp [flags] file1 file2",
		Short:         "Compare two files byte by byte using vectorized lanes",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			exitCode = compareFiles(args[0], args[1], opts, stdout, stderr)
		},
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.BoolVarP(&opts.silent, "silent", "s", false, "suppress all output, report the outcome through the exit status only")
	flags.IntVarP(&opts.bufferSize, "buffer-size", "b", compare.DefaultBufferSize, "chunk size in bytes, rounded up to the lane width")
	flags.BoolVar(&opts.progress, "progress", false, "show a progress bar on stderr when it is a terminal")
	flags.BoolVar(&opts.stats, "stats", false, "print comparison metrics to stderr")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log lane strategy and CPU features")

	if err := cmd.Execute(); err != nil {
		report.Printer{Out: stdout, Err: stderr}.Error(err)
		cmd.SetOut(stderr)
		_ = cmd.Usage()
		return exitUsage
	}
	if exitCode < 0 {
		// --help
		return 0
	}
	return exitCode
}

func compareFiles(pathA, pathB string, opts options, stdout, stderr io.Writer) int {
	printer := report.Printer{Out: stdout, Err: stderr, Silent: opts.silent}

	if opts.verbose && !opts.silent {
		logger := log.New(stderr, "simdcmp: ", 0)
		logger.Printf("lane strategy %s, width %d, cpu features %s", lane.Strategy(), lane.Width, lane.Features())
		logger.Printf("buffer size %d", compare.ChunkSize(opts.bufferSize))
	}

	if pathA == pathB {
		res := compare.Result{Kind: compare.Identical}
		printer.Result(pathA, pathB, res)
		return res.ExitCode()
	}

	stats := &metrics.Stats{}
	copts := compare.Options{BufferSize: opts.bufferSize, OnChunk: stats.AddChunk}

	var bar *progress.Bar
	if opts.progress && !opts.silent && stderrIsTerminal(stderr) {
		if total, ok := overlap(pathA, pathB); ok {
			bar = progress.New(stderr, total, func() (chunks, offset int64) {
				snap := stats.Snapshot()
				return snap.Chunks, snap.BytesCompared
			})
			copts.OnChunk = func(n int64) {
				stats.AddChunk(n)
				bar.AddBytes(n)
			}
		}
	}

	stats.Start()
	res, err := compare.Files(pathA, pathB, copts)
	if bar != nil {
		bar.Close()
	}
	stats.Stop()

	if opts.stats && !opts.silent {
		metrics.Print(stderr, stats, lane.Strategy())
	}

	if err != nil {
		printer.Error(err)
		return 1
	}
	printer.Result(pathA, pathB, res)
	return res.ExitCode()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// overlap returns the number of bytes both files share, the most the
// comparison can consume.
func overlap(pathA, pathB string) (int64, bool) {
	sa, err := os.Stat(pathA)
	if err != nil {
		return 0, false
	}
	sb, err := os.Stat(pathB)
	if err != nil {
		return 0, false
	}
	return min(sa.Size(), sb.Size()), true
}
