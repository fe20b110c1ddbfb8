package lsp

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/parc/lexer"
)

func TestAnalyzeClean(t *testing.T) {
	diags := analyze("1 + 2 * 3", "")
	if diags == nil {
		t.Fatal("analyze returned nil, want empty list")
	}
	if len(diags) != 0 {
		t.Errorf("len(diags) = %d, want 0", len(diags))
	}
}

func TestAnalyzeLexError(t *testing.T) {
	diags := analyze("@ $", "")
	if len(diags) != 2 {
		t.Fatalf("len(diags) = %d, want 2", len(diags))
	}

	d := diags[0]
	if d.Message != `unexpected input "@"` {
		t.Errorf("Message = %q", d.Message)
	}
	if d.Range.Start.Line != 0 || d.Range.Start.Character != 0 || d.Range.End.Character != 1 {
		t.Errorf("Range = %+v", d.Range)
	}
	if d.Severity == nil || *d.Severity != protocol.DiagnosticSeverityError {
		t.Error("Severity is not Error")
	}
	if d.Source == nil || *d.Source != serverName {
		t.Error("Source is not set")
	}
}

func TestAnalyzeParseError(t *testing.T) {
	diags := analyze("1 + * 3", "")
	if len(diags) != 1 {
		t.Fatalf("len(diags) = %d, want 1", len(diags))
	}

	d := diags[0]
	if d.Message != `unexpected STAR "*"` {
		t.Errorf("Message = %q", d.Message)
	}
	want := protocol.Range{
		Start: protocol.Position{Line: 0, Character: 4},
		End:   protocol.Position{Line: 0, Character: 5},
	}
	if d.Range != want {
		t.Errorf("Range = %+v, want %+v", d.Range, want)
	}
}

func TestAnalyzeEndOfInput(t *testing.T) {
	diags := analyze("1 +", "")
	if len(diags) != 1 {
		t.Fatalf("len(diags) = %d, want 1", len(diags))
	}

	d := diags[0]
	if d.Message != "unexpected end of input" {
		t.Errorf("Message = %q", d.Message)
	}
	pos := protocol.Position{Line: 0, Character: 3}
	if d.Range.Start != pos || d.Range.End != pos {
		t.Errorf("Range = %+v, want zero-width at %+v", d.Range, pos)
	}
}

func TestPosition(t *testing.T) {
	tests := []struct {
		name string
		in   lexer.Position
		want protocol.Position
	}{
		{"origin", lexer.Position{Line: 1, Column: 1}, protocol.Position{Line: 0, Character: 0}},
		{"later", lexer.Position{Line: 3, Column: 7}, protocol.Position{Line: 2, Character: 6}},
		{"zero value clamps", lexer.Position{}, protocol.Position{Line: 0, Character: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := position(tt.in); got != tt.want {
				t.Errorf("position(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEndRange(t *testing.T) {
	tests := []struct {
		text string
		want protocol.Position
	}{
		{"", protocol.Position{Line: 0, Character: 0}},
		{"ab", protocol.Position{Line: 0, Character: 2}},
		{"a\nbc", protocol.Position{Line: 1, Character: 2}},
	}
	for _, tt := range tests {
		got := endRange(tt.text)
		if got.Start != tt.want || got.End != tt.want {
			t.Errorf("endRange(%q) = %+v, want %+v", tt.text, got, tt.want)
		}
	}
}

func TestURIToPath(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"file:///tmp/expr.calc", "/tmp/expr.calc"},
		{"untitled:Untitled-1", "untitled:Untitled-1"},
	}
	for _, tt := range tests {
		if got := uriToPath(tt.uri); got != tt.want {
			t.Errorf("uriToPath(%q) = %q, want %q", tt.uri, got, tt.want)
		}
	}
}
