package lsp

import (
	"errors"
	"fmt"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/parc"
	"github.com/dhamidi/parc/calc"
	"github.com/dhamidi/parc/lexer"
)

// analyze lexes and parses text and converts every problem into a
// diagnostic. Unlexable input is reported token by token; the grammar only
// runs once the input lexes cleanly, so its single error never duplicates a
// lexer one.
func analyze(text, file string) []protocol.Diagnostic {
	diags := []protocol.Diagnostic{}

	toks := lexer.New(calc.LexerConfig()).Tokens([]byte(text), file)
	for _, tok := range toks {
		if tok.Type == lexer.KindError {
			diags = append(diags, diagnostic(spanRange(tok.Span), fmt.Sprintf("unexpected input %q", tok.Literal)))
		}
	}
	if len(diags) > 0 {
		return diags
	}

	if _, err := calc.ParseFile(text, file); err != nil {
		diags = append(diags, parseDiagnostic(text, err))
	}
	return diags
}

// parseDiagnostic places a parse error in the document: at the offending
// token when one is known, at the end of the text when the input ran out,
// at the origin otherwise. The position prefix is trimmed from the message
// because the range already carries it.
func parseDiagnostic(text string, err error) protocol.Diagnostic {
	var perr *parc.ParseError
	if !errors.As(err, &perr) {
		return diagnostic(protocol.Range{}, err.Error())
	}

	if lt, ok := perr.Token.(lexer.Token); ok {
		msg := strings.TrimPrefix(perr.Msg, lt.Span.Start.String()+": ")
		return diagnostic(spanRange(lt.Span), msg)
	}
	if perr.Token != nil && perr.Token.Kind() == parc.KindEnd {
		return diagnostic(endRange(text), perr.Msg)
	}
	return diagnostic(protocol.Range{}, perr.Msg)
}

func diagnostic(rng protocol.Range, msg string) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	source := serverName
	return protocol.Diagnostic{
		Range:    rng,
		Severity: &severity,
		Source:   &source,
		Message:  msg,
	}
}

func spanRange(sp lexer.Span) protocol.Range {
	return protocol.Range{
		Start: position(sp.Start),
		End:   position(sp.End),
	}
}

// position converts the lexer's 1-based positions to the protocol's
// 0-based ones.
func position(p lexer.Position) protocol.Position {
	line, col := p.Line-1, p.Column-1
	if line < 0 {
		line = 0
	}
	if col < 0 {
		col = 0
	}
	return protocol.Position{
		Line:      protocol.UInteger(line),
		Character: protocol.UInteger(col),
	}
}

// endRange is the zero-width range just past the last byte of text.
func endRange(text string) protocol.Range {
	line, col := 0, 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	pos := protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(col)}
	return protocol.Range{Start: pos, End: pos}
}
