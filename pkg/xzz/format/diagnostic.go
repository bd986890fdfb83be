package format

import (
	"bytes"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/OpenTraceLab/OpenTraceXZZ/pkg/xzz/board"
)

// The diagnostic block is free text in one of two layouts:
//
//	Layout A:  \n=<voltage>=<part>(<pin>)   repeated, led by 0x0A
//	Layout B:  \r\n<net>=<value>            repeated, default
//
// Records are split out of the buffer first and each record is run through a
// small participle grammar, so one malformed record terminates the table
// without failing the load.

// diagLexer tokenizes a single diagnostic record.
var diagLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Eq", Pattern: `=`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Value", Pattern: `[^=()\r\n]+`},
})

// diagRecordA is one Layout A record: =<voltage>=<part>(<pin>)
type diagRecordA struct {
	Voltage string `parser:"Eq @Value"`
	Part    string `parser:"Eq @Value"`
	Pin     string `parser:"LParen @Value RParen"`
}

// diagRecordB is one Layout B record: <net>=<value>
type diagRecordB struct {
	Net   string `parser:"@Value"`
	Value string `parser:"Eq @Value"`
}

var (
	diagParserA = participle.MustBuild[diagRecordA](participle.Lexer(diagLexer))
	diagParserB = participle.MustBuild[diagRecordB](participle.Lexer(diagLexer))
)

// markerSkip is the distance from the end of the diagnostic marker to the
// layout discriminator byte.
const markerSkip = 7

// parseDiagnostics locates the trailing diagnostic section in the decrypted
// file and decodes it into a reading table. Absence of the section is not an
// error; the table is simply left empty.
func parseDiagnostics(data []byte) board.DiagnosticTable {
	table := make(board.DiagnosticTable)

	idx := bytes.Index(data, diagnosticMarker)
	if idx < 0 {
		return table
	}

	pos := idx + len(diagnosticMarker) + markerSkip
	if pos >= len(data) {
		return table
	}

	if data[pos] == '\n' {
		parseDiagnosticsA(string(data[pos:]), table)
	} else {
		parseDiagnosticsB(string(data[pos:]), table)
	}
	return table
}

// parseDiagnosticsA decodes "\n=<voltage>=<part>(<pin>)" records into a
// (part, pin) -> voltage map, stopping at the first malformed record.
func parseDiagnosticsA(body string, table board.DiagnosticTable) {
	for _, line := range strings.Split(body, "\n") {
		if line == "" {
			continue
		}
		rec, err := diagParserA.ParseString("", line)
		if err != nil {
			return
		}
		table.Set(rec.Part, rec.Pin, rec.Voltage)
	}
}

// parseDiagnosticsB decodes "\r\n<net>=<value>" records into a
// (net, voltage) -> value map, stopping at a double \r\n or the first
// malformed record. Some files carry two stray leading bytes before the
// first separator; those are skipped.
func parseDiagnosticsB(body string, table board.DiagnosticTable) {
	if len(body) >= 2 && !strings.HasPrefix(body, "\r\n") {
		body = body[2:]
	}
	body = strings.TrimPrefix(body, "\r\n")

	for _, line := range strings.Split(body, "\r\n") {
		if line == "" {
			return // Double \r\n ends the table
		}
		rec, err := diagParserB.ParseString("", line)
		if err != nil {
			return
		}
		table.Set(rec.Net, board.DiagnosticKey, rec.Value)
	}
}
