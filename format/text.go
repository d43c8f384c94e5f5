package format

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dhamidi/c1t/c1/parser"
)

type TextEncoder struct {
	w      io.Writer
	tokens []parser.Token
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(tokens []parser.Token) error {
	e.tokens = tokens
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	for _, tok := range e.tokens {
		fmt.Fprintf(&buf, "%d:%d\t%s\t%q\n",
			tok.Span.Start.Line, tok.Span.Start.Column, tok.Kind, tok.Literal)
	}
	return buf.Bytes(), nil
}
