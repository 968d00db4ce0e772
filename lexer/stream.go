package lexer

import (
	"bytes"
	"io"
	"unicode/utf8"
)

// runeStream reads runes with one rune of lookahead and collects matched
// runes into a lexeme buffer.
type runeStream struct {
	isEof      bool
	next       rune
	nextSize   int
	hasNext    bool
	start, end int // as bytes index
	reader     io.RuneReader
	writer     bytes.Buffer
}

func newRuneStream(reader io.RuneReader) *runeStream {
	return &runeStream{reader: reader}
}

func (rs *runeStream) OutputString() string {
	return rs.writer.String()
}

func (rs *runeStream) ResetOutput() {
	rs.writer.Reset()
	rs.start = rs.end
}

// Span returns the byte offsets of the current lexeme.
func (rs *runeStream) Span() (int, int) {
	return rs.start, rs.end
}

func (rs *runeStream) lookahead() (r rune, err error) {
	if rs.isEof {
		return utf8.RuneError, io.EOF
	}
	if rs.hasNext {
		return rs.next, nil
	}
	var sz int
	r, sz, err = rs.reader.ReadRune()
	if err == io.EOF {
		tracer().Debugf("EOF for infix input")
		rs.isEof = true
		return utf8.RuneError, io.EOF
	} else if err != nil {
		return 0, err
	}
	rs.next, rs.nextSize, rs.hasNext = r, sz, true
	return
}

// match moves the lookahead rune into the lexeme buffer.
func (rs *runeStream) match(r rune) {
	if !rs.hasNext {
		panic("match without lookahead")
	}
	rs.writer.WriteRune(r)
	rs.end += rs.nextSize
	rs.hasNext = false
}

// skip drops the lookahead rune. Must not be called in the middle of a lexeme.
func (rs *runeStream) skip() {
	if !rs.hasNext {
		panic("skip without lookahead")
	}
	rs.end += rs.nextSize
	rs.start = rs.end
	rs.hasNext = false
}
