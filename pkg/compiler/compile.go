package compiler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"cfront/pkg/utils"
)

var (
	// ErrStageNotImplemented is returned for stages past the tokenizer.
	ErrStageNotImplemented = errors.New("compile stage not implemented")
	ErrNoPreprocessor      = errors.New("no preprocessor configured")
)

// Preprocessor turns a C source file into a preprocessed translation unit
// on disk and returns its path.
type Preprocessor interface {
	Preprocess(ctx context.Context, srcPath string) (string, error)
}

// Options configures Run. Preprocessor is required; the writers fall
// back to the process's stdout and stderr.
type Options struct {
	Preprocessor Preprocessor
	Out          io.Writer // token listing for StageLex; nil means os.Stdout
	Errs         io.Writer // intermediate-file warnings; nil means os.Stderr
}

// Run drives one translation unit through the pipeline up to stage. The
// preprocessed file is removed once read, whatever the tokenizer says.
func Run(ctx context.Context, srcPath string, stage Stage, opts Options) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	errs := opts.Errs
	if errs == nil {
		errs = os.Stderr
	}

	if opts.Preprocessor == nil {
		return ErrNoPreprocessor
	}

	unitPath, err := opts.Preprocessor.Preprocess(ctx, srcPath)
	if err != nil {
		return err
	}

	src, err := utils.ReadFile(unitPath)
	if rmErr := utils.DeleteFile(unitPath); rmErr != nil {
		fmt.Fprintf(errs, "warning: could not remove %s: %v\n", unitPath, rmErr)
	}
	if err != nil {
		return fmt.Errorf("failed to read preprocessed file %s: %w", unitPath, err)
	}

	tokens, err := Tokenize(src)
	if err != nil {
		return fmt.Errorf("%s: %w", srcPath, err)
	}

	if stage == StageLex {
		for _, tok := range tokens {
			fmt.Fprintln(out, tok)
		}
		return nil
	}

	return fmt.Errorf("%w: %s", ErrStageNotImplemented, stage)
}
