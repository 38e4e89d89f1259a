package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// Option structs for subcommands that have flags
type ParseOptions struct {
	Format  string
	JSON    bool
	NoColor bool
}

type ImportOptions struct {
	Format string
	To     string
}

type StatOptions struct {
	Format string
}

type QueryOptions struct {
	DB      string
	NoColor bool
}

// enumFlag implements flag.Value for restricted strings
type enumFlag struct {
	allowed []string
	value   *string
}

func (e *enumFlag) String() string {
	if e.value == nil {
		return ""
	}
	return *e.value
}

func (e *enumFlag) Set(value string) error {
	for _, a := range e.allowed {
		if a == value {
			*e.value = value
			return nil
		}
	}
	return fmt.Errorf("allowed values are %s", strings.Join(e.allowed, ", "))
}

func formatFlag(fs *flag.FlagSet, value *string) {
	*value = "2012"
	fs.Var(&enumFlag{allowed: []string{"2009", "2012", "united"}, value: value}, "format", "Corpus format: 2009, 2012 or united")
	fs.Var(&enumFlag{allowed: []string{"2009", "2012", "united"}, value: value}, "f", "alias for -format")
}

func setupUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s <command> [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nCommands:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  parse    Parse an SRL corpus file or directory and print it\n")
		_, _ = fmt.Fprintf(fs.Output(), "  import   Parse a corpus and store it in a repository\n")
		_, _ = fmt.Fprintf(fs.Output(), "  stat     Print statistics of a corpus\n")
		_, _ = fmt.Fprintf(fs.Output(), "  query    Search an imported corpus interactively\n")
		_, _ = fmt.Fprintf(fs.Output(), "  version  Print version information\n")
		_, _ = fmt.Fprintf(fs.Output(), "  help     Show this help or the help of a command\n")
	}
}

func parseMainArgs(args []string, ui UI) (string, []string, error) {
	fs := flag.NewFlagSet("srlgrob", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	setupUsage(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return "", nil, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return "", nil, err
	}

	if fs.NArg() == 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return "", nil, errors.New("no command provided")
	}

	cmd := fs.Arg(0)
	cmdArgs := fs.Args()[1:]
	return cmd, cmdArgs, nil
}

func parseParseArgs(args []string, ui UI) (ParseOptions, string, error) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ParseOptions
	formatFlag(fs, &opts.Format)
	fs.BoolVar(&opts.JSON, "json", false, "Write sentences as JSON instead of text")
	fs.BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s parse [options] <path>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Parse an SRL corpus file, or every corpus file under a directory,\n")
		_, _ = fmt.Fprintf(fs.Output(), "  and print the sentences with predicates and argument spans.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, "", err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, "", err
	}

	if fs.NArg() != 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", errors.New("parse command requires exactly one path argument")
	}

	return opts, fs.Arg(0), nil
}

func parseImportArgs(args []string, ui UI) (ImportOptions, string, error) {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ImportOptions
	formatFlag(fs, &opts.Format)
	fs.StringVar(&opts.To, "to", os.Getenv("SRLGROB_DB_PATH"), "Target repository: SQLite file or existing directory")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s import [options] <path>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Parse an SRL corpus and store the sentences in a repository.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, "", err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, "", err
	}

	if fs.NArg() != 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", errors.New("import command requires exactly one path argument")
	}

	if opts.To == "" {
		return opts, "", errors.New("target must be specified via -to or SRLGROB_DB_PATH")
	}

	return opts, fs.Arg(0), nil
}

func parseStatArgs(args []string, ui UI) (StatOptions, string, error) {
	fs := flag.NewFlagSet("stat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts StatOptions
	formatFlag(fs, &opts.Format)

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s stat [options] <path>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Print sentence, token, predicate and role statistics of a corpus.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, "", err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, "", err
	}

	if fs.NArg() != 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", errors.New("stat command requires exactly one path argument")
	}

	return opts, fs.Arg(0), nil
}

func parseQueryArgs(args []string, ui UI) (QueryOptions, error) {
	fs := flag.NewFlagSet("query", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts QueryOptions
	fs.StringVar(&opts.DB, "db", os.Getenv("SRLGROB_DB_PATH"), "Repository: SQLite file or directory")
	fs.BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s query [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Search an imported corpus interactively by lemma or predicate sense.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, err
	}

	if opts.DB == "" {
		return opts, errors.New("repository must be specified via -db or SRLGROB_DB_PATH")
	}

	return opts, nil
}
