package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dhamidi/c1t/c1/parser"
)

func TestTextEncoder(t *testing.T) {
	tokens := parser.Tokenize("x = 42;", "test.c1")

	var buf bytes.Buffer
	if err := NewTextEncoder(&buf).Encode(tokens); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "1:1\tIdentifier\t\"x\"") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[2], "IntConst") {
		t.Errorf("line 2 = %q", lines[2])
	}
}

func TestJSONEncoder(t *testing.T) {
	tokens := parser.Tokenize("foo()", "test.c1")

	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(tokens); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var decoded []struct {
		Kind    string `json:"kind"`
		Literal string `json:"literal"`
		Line    int    `json:"line"`
		Column  int    `json:"column"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(decoded) != 3 {
		t.Fatalf("got %d tokens, want 3", len(decoded))
	}
	if decoded[0].Kind != "Identifier" || decoded[0].Literal != "foo" {
		t.Errorf("token 0 = %+v", decoded[0])
	}
	if decoded[1].Kind != "(" || decoded[1].Column != 4 {
		t.Errorf("token 1 = %+v", decoded[1])
	}
}
