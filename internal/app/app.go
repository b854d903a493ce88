// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"fastakit/internal/appcore"
	"fastakit/internal/cli"
	"fastakit/internal/cliutil"
	"fastakit/internal/config"
	"fastakit/internal/fasta"
	"fastakit/internal/logging"
	"fastakit/internal/output"
	"fastakit/internal/server"
	"fastakit/internal/version"
	"fastakit/internal/visitors"
	"fastakit/internal/writers"
)

// Run executes one fastakit invocation and returns the process exit code.
func Run(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	opts, err := cli.ParseArgs(argv, outw, stderr)
	if errors.Is(err, cli.ErrHelp) {
		return flush(outw, stderr, 0)
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 2
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 2
	}
	opts.Apply(cfg)

	logger, err := logging.New(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 2
	}
	ctx := log.WithContext(parent, logger)

	switch opts.Command {
	case cli.CmdVersion:
		_, _ = fmt.Fprintf(outw, "fastakit version %s\n", version.Version)
		return flush(outw, stderr, 0)
	case cli.CmdServe:
		return serve(ctx, logger, cfg)
	case cli.CmdParse, cli.CmdSplit:
	default:
		_, _ = fmt.Fprintf(stderr, "error: unknown command %q\n", opts.Command)
		return 2
	}

	parseOpts, err := cfg.ParseOptions()
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		return 2
	}
	files, err := cliutil.Inputs(opts.Files)
	if err != nil {
		logger.Error("invalid input", "err", err)
		return 2
	}
	fastaFmt := output.FASTAFormat{LineEnding: cfg.LineEnding, Wrap: cfg.Wrap}
	coreOpts := appcore.Options{
		Files:        files,
		Parse:        parseOpts,
		Quiet:        cfg.Quiet,
		RequireValid: cfg.RequireValid,
	}

	if opts.Command == cli.CmdSplit {
		coreOpts.Parse.Type = fasta.Protein
		coreOpts.Parse.Keep = ""
		wf := appcore.NewRecordWriterFactory(output.FormatFASTA, fastaFmt, false, false)
		return appcore.Run(ctx, stdout, stderr, coreOpts, visitors.Split{Size: opts.Size}.Visit, wf)
	}

	if !slices.Contains(writers.Formats(), cfg.Format) {
		logger.Error("invalid output format", "format", cfg.Format, "want", writers.Formats())
		return 2
	}
	wf := appcore.NewRecordWriterFactory(cfg.Format, fastaFmt, true, cfg.IncludeInvalid)
	return appcore.Run(ctx, stdout, stderr, coreOpts, visitors.PassThrough{}.Visit, wf)
}

func serve(ctx context.Context, logger *log.Logger, cfg *config.Config) int {
	parseOpts, err := cfg.ParseOptions()
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		return 2
	}
	srv := server.NewServer(cfg.Listen, parseOpts, cfg.MaxBodyBytes, logger)
	if err := srv.Start(ctx); err != nil {
		logger.Error("server stopped", "err", err)
		return 3
	}
	return 0
}

func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
