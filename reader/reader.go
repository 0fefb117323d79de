//-----------------------------------------------------------------------------
// Copyright (c) 2024-present the Lithp contributors
//
// This file is part of lithp.
//
// lithp is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and
// obligations under this license.
//
// SPDX-License-Identifier: EUPL-1.2
//-----------------------------------------------------------------------------

// Package reader turns source text into lithp.Value trees, per the grammar
// of §6. Grounded on sxreader.Reader's rune-keyed macro-dispatch design (a
// map[rune]readFunc consulted on the lookahead character) rather than a
// PEG-generator dependency, since no such dependency appears anywhere in
// the example pack.
package reader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/lithp-lang/lithp"
)

// readFn parses one construct given its already-consumed lookahead rune.
type readFn func(*Reader, rune) (lithp.Value, error)

// Reader consumes runes from a stream and parses them into Values.
type Reader struct {
	rr     io.RuneReader
	name   string
	buf    []rune
	err    error
	macros map[rune]readFn
}

// MakeReader creates a Reader over r. name is used in parse-error messages
// (typically a file path, or "<stdin>"/"<string>").
func MakeReader(r io.Reader, name string) *Reader {
	rd := &Reader{
		rr:   bufio.NewReader(r),
		name: name,
	}
	rd.macros = map[rune]readFn{
		'\'': readString,
		';':  readComment,
		'(':  readSeq(')', lithp.KindSExpr),
		'{':  readSeq('}', lithp.KindQExpr),
		')':  unexpectedDelimiter,
		'}':  unexpectedDelimiter,
	}
	return rd
}

// errSkip signals a construct (e.g. a comment) that produces no Value;
// Read retries until a real Value or end-of-input is found.
var errSkip = errors.New("skip")

func (rd *Reader) nextRune() (rune, error) {
	if rd.err != nil {
		return 0, rd.err
	}
	if len(rd.buf) > 0 {
		ch := rd.buf[0]
		rd.buf = rd.buf[1:]
		return ch, nil
	}
	ch, _, err := rd.rr.ReadRune()
	if err != nil {
		rd.err = err
		return 0, err
	}
	return ch, nil
}

func (rd *Reader) unread(ch rune) {
	rd.buf = append([]rune{ch}, rd.buf...)
}

func isSymbolRune(ch rune) bool {
	switch {
	case unicode.IsLetter(ch), unicode.IsDigit(ch):
		return true
	}
	return strings.ContainsRune("_+-*/\\=<>!:,&", ch)
}

func isSpace(ch rune) bool { return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' }

// Read parses and returns one Value. It returns io.EOF once the input is
// exhausted.
func (rd *Reader) Read() (lithp.Value, error) {
	for {
		v, err := rd.readValue()
		if err == nil {
			return v, nil
		}
		if errors.Is(err, errSkip) {
			continue
		}
		return nil, err
	}
}

// ReadAll reads every top-level form until end of input.
func (rd *Reader) ReadAll() ([]lithp.Value, error) {
	var out []lithp.Value
	for {
		v, err := rd.Read()
		if err != nil {
			if err == io.EOF {
				return out, nil
			}
			return out, err
		}
		out = append(out, v)
	}
}

func (rd *Reader) skipSpace() (rune, error) {
	for {
		ch, err := rd.nextRune()
		if err != nil {
			return 0, err
		}
		if !isSpace(ch) {
			return ch, nil
		}
	}
}

func (rd *Reader) readValue() (lithp.Value, error) {
	ch, err := rd.skipSpace()
	if err != nil {
		return nil, err
	}

	if isDigit(ch) {
		return rd.readNumber(ch)
	}
	if ch == '-' {
		ch2, err2 := rd.nextRune()
		if err2 == nil {
			rd.unread(ch2)
			if isDigit(ch2) {
				return rd.readNumber(ch)
			}
		}
	}

	if m, found := rd.macros[ch]; found {
		return m(rd, ch)
	}
	return rd.readSymbol(ch)
}

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

func (rd *Reader) readToken(first rune) string {
	var sb strings.Builder
	sb.WriteRune(first)
	for {
		ch, err := rd.nextRune()
		if err != nil {
			break
		}
		if _, isDelim := rd.macros[ch]; isDelim || isSpace(ch) {
			rd.unread(ch)
			break
		}
		sb.WriteRune(ch)
	}
	return sb.String()
}

func (rd *Reader) readNumber(first rune) (lithp.Value, error) {
	tok := rd.readToken(first)
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return lithp.MakeError("Invalid number"), nil
	}
	return lithp.MakeNumber(n), nil
}

func (rd *Reader) readSymbol(first rune) (lithp.Value, error) {
	if !isSymbolRune(first) {
		return nil, fmt.Errorf("%s: unexpected character %q", rd.name, first)
	}
	return lithp.MakeSymbol(rd.readToken(first)), nil
}

func readString(rd *Reader, _ rune) (lithp.Value, error) {
	var sb strings.Builder
	for {
		ch, err := rd.nextRune()
		if err != nil {
			return nil, fmt.Errorf("%s: unterminated string", rd.name)
		}
		if ch == '\'' {
			return lithp.MakeStr(sb.String()), nil
		}
		if ch == '\\' {
			esc, err2 := rd.nextRune()
			if err2 != nil {
				return nil, fmt.Errorf("%s: unterminated string", rd.name)
			}
			switch esc {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '\\':
				sb.WriteByte('\\')
			case '\'':
				sb.WriteByte('\'')
			default:
				sb.WriteRune(esc)
			}
			continue
		}
		sb.WriteRune(ch)
	}
}

func readComment(rd *Reader, _ rune) (lithp.Value, error) {
	for {
		ch, err := rd.nextRune()
		if err != nil || ch == '\n' {
			return nil, errSkip
		}
	}
}

func readSeq(close rune, kind lithp.Kind) readFn {
	return func(rd *Reader, _ rune) (lithp.Value, error) {
		var children []lithp.Value
		for {
			ch, err := rd.skipSpace()
			if err != nil {
				return nil, fmt.Errorf("%s: unterminated list, expected %q", rd.name, close)
			}
			if ch == close {
				break
			}
			rd.unread(ch)
			v, err := rd.readValue()
			if err != nil {
				if errors.Is(err, errSkip) {
					continue
				}
				return nil, err
			}
			children = append(children, v)
		}
		if kind == lithp.KindQExpr {
			return lithp.MakeQExpr(children...), nil
		}
		return lithp.MakeSExpr(children...), nil
	}
}

func unexpectedDelimiter(rd *Reader, ch rune) (lithp.Value, error) {
	return nil, fmt.Errorf("%s: unexpected %q", rd.name, ch)
}
