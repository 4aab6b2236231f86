// Command num2english prints numbers in English words.
//
// Numbers are taken from the arguments or, when there are none, one per
// line from standard input:
//
//	num2english 60.212 -- -7
//	echo 0.056 | num2english
//
// With -t, each input is treated as free text and every number found in it
// is spelled out in place:
//
//	echo "I paid 12.50 for 3 books" | num2english -t
//
// Conversion failures are logged to stderr and make the command exit 1.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trvswgnr/num2english"
	"github.com/trvswgnr/num2english/internal/textnum"
)

// version is set at build time via -ldflags; defaults to dev.
var version = "dev"

const (
	exitOK      = 0
	exitFailed  = 1
	exitUsage   = 2
	maxLineSize = 1 << 20 // 1 MB
)

type options struct {
	verbose     int
	showInput   bool
	textMode    bool
	showVersion bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options

	fs := flag.NewFlagSet("num2english", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.CountVarP(&opts.verbose, "verbose", "v", "increase verbosity; repeat for more detail")
	fs.BoolVarP(&opts.showInput, "show-input", "i", false, "prefix each result with its input and a tab")
	fs.BoolVarP(&opts.textMode, "text", "t", false, "spell out every number inside free text")
	fs.BoolVar(&opts.showVersion, "version", false, "print version and exit")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: num2english [options] [number ...]\n\n")
		fmt.Fprintf(stderr, "Reads numbers from stdin when none are given.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if opts.showVersion {
		fmt.Fprintln(stdout, version)
		return exitOK
	}

	logger := newLogger(stderr, opts.verbose)
	defer func() { _ = logger.Sync() }()

	logger.Debug("starting",
		zap.String("version", version),
		zap.Int("args", fs.NArg()),
		zap.Bool("text", opts.textMode),
	)

	out := bufio.NewWriter(stdout)
	defer func() { _ = out.Flush() }()

	c := &converter{opts: opts, out: out, logger: logger}

	if fs.NArg() > 0 {
		for _, arg := range fs.Args() {
			c.convert(arg)
		}
	} else {
		scanner := bufio.NewScanner(stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" && !opts.textMode {
				continue
			}
			c.convert(line)
		}
		if err := scanner.Err(); err != nil {
			logger.Error("reading stdin", zap.Error(err))
			return exitFailed
		}
	}

	logger.Debug("done", zap.Int("converted", c.converted), zap.Int("failed", c.failed))
	if c.failed > 0 {
		return exitFailed
	}
	return exitOK
}

// converter writes one result line per input.
type converter struct {
	opts      options
	out       io.Writer
	logger    *zap.Logger
	converted int
	failed    int
}

func (c *converter) convert(input string) {
	var (
		result string
		err    error
	)

	if c.opts.textMode {
		var n int
		result, n = textnum.Rewrite(input)
		c.logger.Debug("rewrote text", zap.Int("numbers", n))
	} else {
		result, err = num2english.FromString(input)
	}

	if err != nil {
		c.failed++
		c.logger.Error("conversion failed", zap.String("input", input), zap.Error(err))
		return
	}
	c.converted++

	if c.opts.showInput {
		fmt.Fprintf(c.out, "%s\t%s\n", input, result)
		return
	}
	fmt.Fprintln(c.out, result)
}

// newLogger returns a console logger on w. Only warnings and errors are
// shown unless verbose is positive.
func newLogger(w io.Writer, verbose int) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose > 0 {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}
