// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"fastakit/internal/config"
	"fastakit/internal/version"
)

// Subcommand names.
const (
	CmdParse   = "parse"
	CmdSplit   = "split"
	CmdServe   = "serve"
	CmdVersion = "version"
)

// ErrHelp is returned when help was printed and nothing else should run.
var ErrHelp = errors.New("help requested")

// Options holds the selected subcommand with its flags and arguments.
type Options struct {
	Command string

	// Persistent
	ConfigPath string
	LogLevel   string
	LogFormat  string

	// parse / split
	Type          string
	Keep          string
	Format        string
	Wrap          int
	CRLF          bool
	Invalid       bool
	RequireValid  bool
	CarryComments bool
	Quiet         bool
	Size          int
	Files         []string

	// serve
	Listen string

	changed map[string]bool
}

// Changed reports whether the named flag was given on the command line.
func (o Options) Changed(name string) bool { return o.changed[name] }

// ParseArgs builds the command tree and parses argv. Help and usage text go
// to stdout; nothing is printed for errors, which the caller reports.
func ParseArgs(argv []string, stdout, stderr io.Writer) (Options, error) {
	opt := Options{changed: map[string]bool{}}
	def := config.Default()

	record := func(name string) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			opt.Command = name
			opt.Files = args
			cmd.Flags().Visit(func(f *pflag.Flag) { opt.changed[f.Name] = true })
			return nil
		}
	}

	root := &cobra.Command{
		Use:   "fastakit",
		Short: "FASTA parsing toolkit",
		Long: fmt.Sprintf(`fastakit: FASTA parser with comment tracking and alphabet filtering

License: MIT
Version: %s`, version.Version),
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	if argv == nil {
		argv = []string{}
	}
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVar(&opt.ConfigPath, "config", "", "config file (default $XDG_CONFIG_HOME/fastakit/config.yaml)")
	pf.StringVar(&opt.LogLevel, "log-level", def.LogLevel, "log level: debug | info | warn | error")
	pf.StringVar(&opt.LogFormat, "log-format", def.LogFormat, "log format: text | json | logfmt")

	parse := &cobra.Command{
		Use:   "parse [files...]",
		Short: "Parse FASTA input and write records",
		Example: `  fastakit parse proteins.fa
  zcat db.fa.gz | fastakit parse --format jsonl -
  fastakit parse --type dna --keep '-' --format tsv 'data/*.fa'`,
		RunE: record(CmdParse),
	}
	f := parse.Flags()
	f.StringVar(&opt.Type, "type", def.SequenceType, "sequence type: protein | dna | rna | other")
	f.StringVar(&opt.Keep, "keep", def.Keep, "extra characters to keep in sequences")
	f.StringVar(&opt.Format, "format", def.Format, "output format: fasta | json | jsonl | tsv")
	f.IntVar(&opt.Wrap, "wrap", def.Wrap, "wrap FASTA sequence lines at N columns (0 = no wrapping)")
	f.BoolVar(&opt.CRLF, "crlf", false, "terminate FASTA lines with CRLF")
	f.BoolVar(&opt.Invalid, "invalid", def.IncludeInvalid, "also write invalid records (fasta, jsonl, tsv)")
	f.BoolVar(&opt.RequireValid, "require-valid", def.RequireValid, "exit 1 when no valid record was found")
	f.BoolVar(&opt.CarryComments, "carry-comments", def.CarryComments, "attach comments that follow a sequence to the next record")
	f.BoolVar(&opt.Quiet, "quiet", def.Quiet, "suppress warnings about invalid records")

	split := &cobra.Command{
		Use:     "split --size N [files...]",
		Short:   "Split protein records into near-equal parts",
		Example: `  fastakit split --size 500 proteome.fa`,
		RunE:    record(CmdSplit),
	}
	f = split.Flags()
	f.IntVar(&opt.Size, "size", 0, "target part length in residues (required)")
	f.IntVar(&opt.Wrap, "wrap", def.Wrap, "wrap FASTA sequence lines at N columns (0 = no wrapping)")
	f.BoolVar(&opt.CRLF, "crlf", false, "terminate FASTA lines with CRLF")
	f.BoolVar(&opt.CarryComments, "carry-comments", def.CarryComments, "attach comments that follow a sequence to the next record")
	f.BoolVar(&opt.Quiet, "quiet", def.Quiet, "suppress warnings about invalid records")
	_ = split.MarkFlagRequired("size")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP parse service",
		Args:  cobra.NoArgs,
		RunE:  record(CmdServe),
	}
	f = serve.Flags()
	f.StringVar(&opt.Listen, "listen", def.Listen, "listen address")
	f.StringVar(&opt.Type, "type", def.SequenceType, "default sequence type for requests")
	f.StringVar(&opt.Keep, "keep", def.Keep, "default extra characters to keep")
	f.BoolVar(&opt.CarryComments, "carry-comments", def.CarryComments, "default comment carry-over")

	ver := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE:  record(CmdVersion),
	}

	root.AddCommand(parse, split, serve, ver)

	if err := root.Execute(); err != nil {
		return opt, err
	}
	if opt.Command == "" {
		return opt, ErrHelp
	}
	if opt.Command == CmdSplit && opt.Size <= 0 {
		return opt, fmt.Errorf("--size must be > 0, got %d", opt.Size)
	}
	if opt.Wrap < 0 {
		return opt, fmt.Errorf("--wrap must be >= 0, got %d", opt.Wrap)
	}
	return opt, nil
}

// Apply overrides cfg with every flag that was set explicitly.
func (o Options) Apply(cfg *config.Config) {
	if o.Changed("log-level") {
		cfg.LogLevel = o.LogLevel
	}
	if o.Changed("log-format") {
		cfg.LogFormat = o.LogFormat
	}
	if o.Changed("type") {
		cfg.SequenceType = o.Type
	}
	if o.Changed("keep") {
		cfg.Keep = o.Keep
	}
	if o.Changed("format") {
		cfg.Format = o.Format
	}
	if o.Changed("wrap") {
		cfg.Wrap = o.Wrap
	}
	if o.Changed("crlf") {
		if o.CRLF {
			cfg.LineEnding = "\r\n"
		} else {
			cfg.LineEnding = "\n"
		}
	}
	if o.Changed("invalid") {
		cfg.IncludeInvalid = o.Invalid
	}
	if o.Changed("require-valid") {
		cfg.RequireValid = o.RequireValid
	}
	if o.Changed("carry-comments") {
		cfg.CarryComments = o.CarryComments
	}
	if o.Changed("quiet") {
		cfg.Quiet = o.Quiet
	}
	if o.Changed("listen") {
		cfg.Listen = o.Listen
	}
}
