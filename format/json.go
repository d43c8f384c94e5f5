package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/c1t/c1/parser"
)

type JSONEncoder struct {
	w      io.Writer
	tokens []parser.Token
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(tokens []parser.Token) error {
	e.tokens = tokens
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.buildTokenData(), "", "  ")
}

type jsonToken struct {
	Kind    string `json:"kind"`
	Literal string `json:"literal"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

func (e *JSONEncoder) buildTokenData() []jsonToken {
	result := make([]jsonToken, len(e.tokens))
	for i, tok := range e.tokens {
		result[i] = jsonToken{
			Kind:    tok.Kind.String(),
			Literal: tok.Literal,
			Line:    tok.Span.Start.Line,
			Column:  tok.Span.Start.Column,
		}
	}
	return result
}
