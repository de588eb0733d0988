package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"cfront/pkg/compiler"
	"cfront/pkg/utils"
)

const testSource = `int main(void) {
    return 42;
}
`

// tokdump lexes a file as-is, without running the preprocessor, and
// reports every bad lexeme instead of stopping at the first one.
func main() {
	log.SetFlags(0)

	src := testSource
	name := "<builtin>"
	if len(os.Args) > 1 {
		fullPath, _, err := utils.GetPathInfo(os.Args[1])
		if err != nil {
			log.Fatalf("failed to resolve %q: %v", os.Args[1], err)
		}
		src, err = utils.ReadFile(fullPath)
		if err != nil {
			log.Fatalf("read error: %v", err)
		}
		name = os.Args[1]
	}

	if n := dump(os.Stdout, os.Stderr, name, src); n > 0 {
		os.Exit(1)
	}
}

// dump writes the token listing to out and one line per lexical error to
// errOut, and returns the number of errors.
func dump(out, errOut io.Writer, name, src string) int {
	tokens, errs := compiler.TokenizeAll(src)

	fmt.Fprintf(out, "Tokens (%d)\n", len(tokens))
	for _, tok := range tokens {
		fmt.Fprintln(out, " ", tok)
	}

	for _, e := range errs {
		fmt.Fprintf(errOut, "%s: %s\n", location(name, e.Pos), e)
	}
	return errs.Len()
}

// location renders "name:line:col", or just name when pos is unset.
func location(name string, pos compiler.Pos) string {
	if !pos.IsValid() {
		return name
	}
	return fmt.Sprintf("%s:%s", name, pos)
}
