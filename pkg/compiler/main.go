// Package compiler provides the front end of a small C compiler: a
// tokenizer that turns preprocessed C source into position-tagged tokens,
// and the driver that feeds it.
//
// Pipeline: C source → Preprocess (cc) → Tokenize → token listing
package compiler
