package args

import (
	"errors"
	"strings"
	"testing"

	"cfront/pkg/compiler"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		path  string
		stage compiler.Stage
	}{
		{"No Flag", []string{"file.c"}, "file.c", compiler.StageAll},
		{"Lex", []string{"--lex", "file.c"}, "file.c", compiler.StageLex},
		{"Parse", []string{"--parse", "file.c"}, "file.c", compiler.StageParse},
		{"Code Gen", []string{"--code-gen", "file.c"}, "file.c", compiler.StageCodeGen},
		{"Emit Assembly", []string{"-S", "file.c"}, "file.c", compiler.StageEmitAssembly},
		{"Flag After Path", []string{"dir/file.c", "--lex"}, "dir/file.c", compiler.StageLex},
		{"Last Path Wins", []string{"a.c", "--lex", "b.c"}, "b.c", compiler.StageLex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, stage, err := Parse(tt.args)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.args, err)
			}
			if path != tt.path || stage != tt.stage {
				t.Errorf("Parse(%q) = (%q, %s), want (%q, %s)", tt.args, path, stage, tt.path, tt.stage)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		mention string
	}{
		{"No File", nil, ErrNoSource, "No source file"},
		{"No File With Flag", []string{"--lex"}, ErrNoSource, "no source file"},
		{"Unknown Flag", []string{"file.c", "--unknown"}, ErrUnknownArgument, "unknown"},
		{"Unknown Positional", []string{"file.txt"}, ErrUnknownArgument, "'file.txt'"},
		{"Multiple Flags", []string{"--lex", "--parse", "file.c"}, ErrConflictingStages, "--lex"},
		{"Multiple Flags With S", []string{"-S", "--code-gen", "file.c"}, ErrConflictingStages, "-S"},
		{"Single Dash Long Flag", []string{"-lex", "file.c"}, ErrUnknownArgument, "'-lex'"},
		{"Double Dash S", []string{"--S", "file.c"}, ErrUnknownArgument, "'--S'"},
		{"Flag With Value", []string{"--lex=false", "--parse", "file.c"}, ErrUnknownArgument, "'--lex=false'"},
		{"Terminator", []string{"--", "file.c"}, ErrUnknownArgument, "'--'"},
		{"Single Dash Help", []string{"-help"}, ErrUnknownArgument, "'-help'"},
		{"Bare Dash", []string{"-", "file.c"}, ErrUnknownArgument, "'-'"},
		{"Help", []string{"--help"}, ErrHelp, "not implemented"},
		{"Short Help", []string{"file.c", "-h"}, ErrHelp, "not implemented"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(tt.args)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Parse(%q) error = %v, want %v", tt.args, err, tt.wantErr)
			}
			if !strings.Contains(strings.ToLower(err.Error()), strings.ToLower(tt.mention)) {
				t.Errorf("error %q should mention %q", err.Error(), tt.mention)
			}
		})
	}
}
