package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/arloliu/hype/types"
)

// ParseError reports malformed input at a 1-based line and column.
//
// ParseError unwraps to types.ErrMalformedInput.
type ParseError struct {
	Line   int
	Column int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at line %d, column %d: %s", types.ErrMalformedInput, e.Line, e.Column, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return types.ErrMalformedInput
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokColon
	tokComma
)

func (k tokenKind) String() string {
	switch k {
	case tokNumber:
		return "number"
	case tokColon:
		return "':'"
	case tokComma:
		return "','"
	default:
		return "end of input"
	}
}

type token struct {
	kind   tokenKind
	value  uint64
	line   int
	column int
}

// Reader parses the textual hypergraph format from an io.Reader.
//
// Records are parsed lazily, one per Next call, so arbitrarily large inputs
// are streamed without being held in memory.
type Reader struct {
	r      *bufio.Reader
	closer io.Closer

	line, column         int
	prevLine, prevColumn int

	peeked  *token
	records int
	err     error
}

var _ types.ElementSource = (*Reader)(nil)

// NewReader creates a Reader over r.
//
// Parameters:
//   - r: Input in the textual hypergraph format
//
// Returns:
//   - *Reader: Parser positioned at the first record
//
// Example:
//
//	src := source.NewReader(strings.NewReader("1:10,11 2:10 3"))
//	n, err := s.Consume(ctx, src, 0.05)
func NewReader(r io.Reader) *Reader {
	return &Reader{
		r:      bufio.NewReader(r),
		line:   1,
		column: 1,
	}
}

// OpenFile opens path and returns a Reader over its contents.
//
// The caller must Close the reader.
//
// Returns:
//   - *Reader: Parser over the file
//   - error: types.ErrInputUnavailable wrapping the open error
func OpenFile(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrInputUnavailable, err)
	}

	rd := NewReader(f)
	rd.closer = f

	return rd, nil
}

// Close closes the underlying file when the reader came from OpenFile.
func (rd *Reader) Close() error {
	if rd.closer == nil {
		return nil
	}
	err := rd.closer.Close()
	rd.closer = nil

	return err
}

// Records returns the number of records parsed so far.
func (rd *Reader) Records() int {
	return rd.records
}

// Next parses and returns the next record.
//
// Returns:
//   - types.Element: Next record; Edges is nil for a bare node id
//   - error: io.EOF at the end of input, *ParseError for malformed input,
//     types.ErrInputUnavailable for read failures, ctx.Err() if the context is done
//
// Once Next has returned an error other than a context error, every later
// call returns the same error.
func (rd *Reader) Next(ctx context.Context) (types.Element, error) {
	if err := ctx.Err(); err != nil {
		return types.Element{}, err
	}
	if rd.err != nil {
		return types.Element{}, rd.err
	}

	elem, err := rd.parseRecord()
	if err != nil {
		rd.err = err
		return types.Element{}, err
	}
	rd.records++

	return elem, nil
}

func (rd *Reader) parseRecord() (types.Element, error) {
	tok, err := rd.next()
	if err != nil {
		return types.Element{}, err
	}

	switch tok.kind {
	case tokEOF:
		return types.Element{}, io.EOF
	case tokNumber:
	default:
		return types.Element{}, unexpected(tok, "node id")
	}

	elem := types.Element{Node: tok.value}

	sep, err := rd.peek()
	if err != nil {
		return types.Element{}, err
	}
	if sep.kind != tokColon {
		// bare node id
		return elem, nil
	}
	rd.peeked = nil

	for {
		edge, err := rd.next()
		if err != nil {
			return types.Element{}, err
		}
		if edge.kind != tokNumber {
			return types.Element{}, unexpected(edge, "edge id")
		}
		elem.Edges = append(elem.Edges, edge.value)

		sep, err := rd.peek()
		if err != nil {
			return types.Element{}, err
		}
		if sep.kind != tokComma {
			return elem, nil
		}
		rd.peeked = nil
	}
}

func unexpected(tok token, want string) *ParseError {
	return &ParseError{
		Line:   tok.line,
		Column: tok.column,
		Msg:    fmt.Sprintf("expected %s, found %s", want, tok.kind),
	}
}

func (rd *Reader) peek() (token, error) {
	if rd.peeked != nil {
		return *rd.peeked, nil
	}

	tok, err := rd.scan()
	if err != nil {
		return token{}, err
	}
	rd.peeked = &tok

	return tok, nil
}

func (rd *Reader) next() (token, error) {
	if rd.peeked != nil {
		tok := *rd.peeked
		rd.peeked = nil

		return tok, nil
	}

	return rd.scan()
}

func (rd *Reader) scan() (token, error) {
	var c rune
	for {
		r, err := rd.readRune()
		if errors.Is(err, io.EOF) {
			return token{kind: tokEOF, line: rd.line, column: rd.column}, nil
		}
		if err != nil {
			return token{}, err
		}
		if !unicode.IsSpace(r) {
			c = r
			break
		}
	}

	tok := token{line: rd.prevLine, column: rd.prevColumn}

	switch {
	case c == ':':
		tok.kind = tokColon
	case c == ',':
		tok.kind = tokComma
	case c >= '0' && c <= '9':
		tok.kind = tokNumber
		value, err := rd.scanNumber(c, tok)
		if err != nil {
			return token{}, err
		}
		tok.value = value
	default:
		return token{}, &ParseError{
			Line:   tok.line,
			Column: tok.column,
			Msg:    fmt.Sprintf("unexpected character %q", c),
		}
	}

	return tok, nil
}

func (rd *Reader) scanNumber(first rune, at token) (uint64, error) {
	var sb strings.Builder
	sb.WriteRune(first)

	for {
		r, err := rd.readRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, err
		}
		if r < '0' || r > '9' {
			rd.unreadRune()
			break
		}
		sb.WriteRune(r)
	}

	value, err := strconv.ParseUint(sb.String(), 10, 64)
	if err != nil {
		return 0, &ParseError{
			Line:   at.line,
			Column: at.column,
			Msg:    fmt.Sprintf("id %s does not fit in 64 bits", sb.String()),
		}
	}

	return value, nil
}

func (rd *Reader) readRune() (rune, error) {
	r, _, err := rd.r.ReadRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.EOF
		}

		return 0, fmt.Errorf("%w: %w", types.ErrInputUnavailable, err)
	}

	rd.prevLine, rd.prevColumn = rd.line, rd.column
	if r == '\n' {
		rd.line++
		rd.column = 1
	} else {
		rd.column++
	}

	return r, nil
}

func (rd *Reader) unreadRune() {
	if err := rd.r.UnreadRune(); err == nil {
		rd.line, rd.column = rd.prevLine, rd.prevColumn
	}
}
