package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"

	"cfront/pkg/args"
	"cfront/pkg/cc"
	"cfront/pkg/compiler"
	"cfront/pkg/utils"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("cfront: ")

	srcPath, stage, err := args.Parse(os.Args[1:])
	if err != nil {
		log.Print(err)
		os.Exit(2)
	}

	fullPath, _, err := utils.GetPathInfo(srcPath)
	if err != nil {
		log.Fatalf("failed to resolve %q: %v", srcPath, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = compiler.Run(ctx, fullPath, stage, compiler.Options{Preprocessor: cc.New()})
	stop()
	os.Exit(exitCode(err))
}

// exitCode maps a pipeline error to the process status. A failed
// preprocessor run keeps its own status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ppErr *cc.ExitError
	if errors.As(err, &ppErr) {
		fmt.Fprintln(os.Stderr, "preprocess error:", err)
		if ppErr.Code > 0 {
			return ppErr.Code
		}
		return 1
	}
	var lexErr *compiler.Error
	if errors.As(err, &lexErr) {
		fmt.Fprintln(os.Stderr, "lex error:", err)
		return 1
	}
	fmt.Fprintln(os.Stderr, "error:", err)
	return 1
}
