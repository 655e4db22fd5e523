// Package token provides the Pod scanner.
//
// A [Tokenizer] is a pull-based iterator over the lexemes of a Pod document:
// each call to [Tokenizer.Next] yields one [Token] with its literal payload
// already decoded (quoted strings unescaped, numbers converted, embedded
// scripts split into language and text) and its first/last source position.
// The end of input is reported as a [TEOF] token.
//
// [Tokenize] drains a tokenizer into a slice, which is convenient for tests
// and for tools such as the language server that want all tokens at once.
//
// Scanner failures (unterminated strings or embeds, illegal characters,
// numbers out of range) are returned as [*TokenizeErr] values carrying the
// offending position.
package token
