// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

// An fstring is a string slice paired with scanning primitives for
// walking it one run of characters at a time. The word-machine
// assembler only needs the comment-stripping and token-splitting uses
// below; the column/multi-file bookkeeping the original type carried
// for its expression parser is dropped along with the rest of that
// parser.
type fstring struct {
	str string
}

func newFstring(str string) fstring {
	return fstring{str}
}

func (l fstring) consume(n int) fstring {
	return fstring{l.str[n:]}
}

func (l fstring) trunc(n int) fstring {
	return fstring{l.str[:n]}
}

func (l fstring) isEmpty() bool {
	return len(l.str) == 0
}

func (l fstring) scanWhile(fn func(c byte) bool) int {
	i := 0
	for ; i < len(l.str) && fn(l.str[i]); i++ {
	}
	return i
}

func (l fstring) consumeWhile(fn func(c byte) bool) (consumed, remain fstring) {
	i := l.scanWhile(fn)
	return l.trunc(i), l.consume(i)
}

// stripTrailingComment drops everything from the first unquoted ';'
// onward, skipping over double-quoted string literals, and trims any
// trailing whitespace left before the comment.
func (l fstring) stripTrailingComment() fstring {
	lastNonWS := 0
	for i := 0; i < len(l.str); i++ {
		if comment(l.str[i]) {
			break
		}
		if stringQuote(l.str[i]) {
			q := l.str[i]
			i++
			for ; i < len(l.str) && l.str[i] != q; i++ {
			}
			lastNonWS = i
			if i == len(l.str) {
				break
			}
		}
		if !whitespace(l.str[i]) {
			lastNonWS = i + 1
		}
	}
	return l.trunc(lastNonWS)
}

//
// character helper functions
//

func whitespace(c byte) bool {
	return c == ' ' || c == '\t'
}

func comment(c byte) bool {
	return c == ';'
}

func stringQuote(c byte) bool {
	return c == '"'
}
