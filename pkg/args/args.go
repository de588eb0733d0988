// Package args resolves the driver's command line into a source path and
// a compile stage.
package args

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"cfront/pkg/compiler"
)

const hint = "Use -h or --help flag for more information."

var (
	ErrHelp              = errors.New("help is not implemented yet")
	ErrUnknownArgument   = errors.New("unknown argument")
	ErrNoSource          = errors.New("no source file is specified")
	ErrConflictingStages = errors.New("only one of the '--lex', '--parse', '--code-gen' or '-S' flags should be passed")
)

// accepted lists the only flag spellings Parse lets through to the
// FlagSet. The flag package alone would also take "-lex", "--S",
// "--lex=false" and "--".
var accepted = map[string]bool{
	"--lex":      true,
	"--parse":    true,
	"--code-gen": true,
	"-S":         true,
	"--help":     true,
	"-h":         true,
}

// Parse reads the arguments that follow the program name. Flags and the
// *.c path may appear in any order; if several paths are given the last
// one wins.
func Parse(args []string) (string, compiler.Stage, error) {
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") && !accepted[arg] {
			return "", compiler.StageAll, fmt.Errorf("%w: '%s'. %s", ErrUnknownArgument, arg, hint)
		}
	}

	fs := flag.NewFlagSet("cfront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	lex := fs.Bool("lex", false, "stop after lexing and print the tokens")
	parse := fs.Bool("parse", false, "stop after parsing")
	codeGen := fs.Bool("code-gen", false, "stop after assembly generation")
	emitAsm := fs.Bool("S", false, "emit an assembly file and stop")

	var srcPath string
	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return "", compiler.StageAll, ErrHelp
			}
			return "", compiler.StageAll, fmt.Errorf("%w: %s. %s", ErrUnknownArgument, unknownName(err), hint)
		}
		rest = fs.Args()
		if len(rest) == 0 {
			break
		}
		arg := rest[0]
		rest = rest[1:]
		if !strings.HasSuffix(arg, ".c") {
			return "", compiler.StageAll, fmt.Errorf("%w: '%s'. %s", ErrUnknownArgument, arg, hint)
		}
		srcPath = arg
	}

	if srcPath == "" {
		return "", compiler.StageAll, fmt.Errorf("%w. %s", ErrNoSource, hint)
	}

	stage := compiler.StageAll
	selected := 0
	for _, f := range []struct {
		set   bool
		stage compiler.Stage
	}{
		{*lex, compiler.StageLex},
		{*parse, compiler.StageParse},
		{*codeGen, compiler.StageCodeGen},
		{*emitAsm, compiler.StageEmitAssembly},
	} {
		if f.set {
			stage = f.stage
			selected++
		}
	}
	if selected > 1 {
		return "", compiler.StageAll, fmt.Errorf("%w. %s", ErrConflictingStages, hint)
	}
	return srcPath, stage, nil
}

// unknownName pulls the offending flag out of the flag package's error
// ("flag provided but not defined: -x") so it can be quoted back.
func unknownName(err error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		return "'" + msg[i+2:] + "'"
	}
	return msg
}
