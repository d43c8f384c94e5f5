package format

import (
	"encoding"

	"github.com/dhamidi/c1t/c1/parser"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(tokens []parser.Token) error
}
