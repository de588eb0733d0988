package compiler

import "fmt"

// Stage selects how far the driver runs the pipeline.
type Stage int

const (
	StageAll Stage = iota // preprocess, compile, assemble and link
	StageLex
	StageParse
	StageCodeGen
	StageEmitAssembly
)

var stageNames = [...]string{
	StageAll:          "All",
	StageLex:          "Lex",
	StageParse:        "Parse",
	StageCodeGen:      "CodeGen",
	StageEmitAssembly: "EmitAssembly",
}

func (s Stage) String() string {
	if int(s) >= 0 && int(s) < len(stageNames) {
		return stageNames[s]
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}
