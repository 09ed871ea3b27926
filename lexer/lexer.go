package lexer

import (
	"bufio"
	"bytes"
	"io"
)

type lexState func(*Lexer) lexState

const eof = rune(-1)

var (
	isOpenExpr  = isTokenType(TokenOpenExpr)
	isCloseExpr = isTokenType(TokenCloseExpr)

	isWhitespace = isTokenType(tokenWhitespace)
	isQuote      = isTokenType(tokenQuote)
)

// New initializes a Lexer object
func New(r io.Reader) *Lexer {
	return &Lexer{
		in:     bufio.NewReader(r),
		tokens: make(chan Token),
		done:   make(chan struct{}),
		buf:    []rune{},
	}
}

// Lexer represents a lexical analyzer
type Lexer struct {
	in *bufio.Reader

	tokens chan Token

	done    chan struct{}
	lastErr error

	buf []rune

	start  int
	offset int
	lines  int
}

// Tokens returns a channel that is going to receive tokens as soon as they are
// detected.
func (lx *Lexer) Tokens() chan Token {
	return lx.tokens
}

func (lx *Lexer) stop() {
	for {
		select {
		case <-lx.tokens:
			// drain channel
		default:
			lx.done <- struct{}{}
			close(lx.tokens)
			return
		}
	}
}

// Scan starts scanning the reader for tokens.
func (lx *Lexer) Scan() error {
	for state := lexDefaultState; state != nil; {
		select {
		case <-lx.done:
			return nil
		default:
			state = state(lx)
		}
	}

	if lx.lastErr == nil {
		lx.emit(TokenEOF)
	}

	close(lx.tokens)

	return lx.lastErr
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tokens <- Token{
		tt:   tt,
		text: string(lx.buf),

		col:  lx.start + 1,
		line: lx.lines + 1,
	}

	lx.start = lx.offset
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) peek() rune {
	r, _, err := lx.in.ReadRune()
	if err != nil {
		return eof
	}
	_ = lx.in.UnreadRune()
	return r
}

func (lx *Lexer) advance() rune {
	r, _, err := lx.in.ReadRune()
	if err != nil {
		return eof
	}

	if r == '\n' {
		lx.lines++
		lx.offset = 0
	} else {
		lx.offset++
	}
	return r
}

func (lx *Lexer) next() rune {
	r := lx.advance()
	if r != eof {
		lx.buf = append(lx.buf, r)
	}
	return r
}

// skip advances past a rune without buffering it; used for discarded
// whitespace and for the quotes that delimit words.
func (lx *Lexer) skip() {
	lx.advance()
	if len(lx.buf) == 0 {
		lx.start = lx.offset
	}
}

func lexDefaultState(lx *Lexer) lexState {
	r := lx.peek()

	switch {

	case r == eof:
		return nil

	case isOpenExpr(r):
		lx.next()
		return lexEmit(TokenOpenExpr)
	case isCloseExpr(r):
		lx.next()
		return lexEmit(TokenCloseExpr)

	case isWhitespace(r):
		lx.skip()
		return lexDefaultState

	case isQuote(r):
		lx.skip()
		return lexQuotedWord

	default:
		return lexBareWord

	}
}

// lexQuotedWord accumulates runes verbatim until the closing quote, which is
// not part of the word. An unterminated quote consumes to the end of the
// input and still yields the accumulated word.
func lexQuotedWord(lx *Lexer) lexState {
	for {
		r := lx.peek()
		if r == eof {
			break
		}
		if isQuote(r) {
			lx.skip()
			break
		}
		lx.next()
	}
	return lexEmit(TokenWord)
}

// lexBareWord accumulates runes until whitespace or a marker.
func lexBareWord(lx *Lexer) lexState {
	for {
		r := lx.peek()
		if r == eof || isWhitespace(r) || isOpenExpr(r) || isCloseExpr(r) {
			break
		}
		lx.next()
	}
	return lexEmit(TokenWord)
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

// Tokenize takes an array of bytes and returns all the tokens within it. The
// terminating EOF token is not part of the result.
func Tokenize(in []byte) ([]Token, error) {
	tokens := []Token{}
	done := make(chan struct{})

	lx := New(bytes.NewReader(in))

	go func() {
		for tok := range lx.tokens {
			if tok.Is(TokenEOF) {
				continue
			}
			tokens = append(tokens, tok)
		}
		done <- struct{}{}
	}()

	if err := lx.Scan(); err != nil {
		return nil, err
	}

	<-done
	return tokens, nil
}
