// File path: internal/copybook/parser.go
package copybook

import (
	"regexp"
	"strconv"
	"strings"
)

// declRe captures level, name, and the optional PIC clause of a copybook
// declaration. Lines that do not match are dropped without error.
var declRe = regexp.MustCompile(`(?i)^\s*(\d{2})\s+([A-Z0-9\-]+)(?:\s+(?:PIC|PICTURE)\s+([^\s.]+))?`)

// Field is one terminal (PIC-bearing) declaration flattened out of the
// copybook hierarchy. Group declarations never materialize as Fields; they
// only contribute Parent names.
type Field struct {
	Level   int    `json:"level"`
	Name    string `json:"name"`
	Pic     string `json:"pic,omitempty"`
	SQLType string `json:"sql_type"`
	Length  int    `json:"length,omitempty"`
	Parent  string `json:"parent,omitempty"`
}

type lineKind int

const (
	skipLine lineKind = iota
	groupLine
	fieldLine
)

type declaration struct {
	kind  lineKind
	level int
	name  string
	pic   string
}

// classifyLine decides whether a single line is a comment/blank/garbage
// (skip), a group declaration, or a PIC-bearing field declaration.
func classifyLine(line string) declaration {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "*") {
		return declaration{kind: skipLine}
	}
	match := declRe.FindStringSubmatch(line)
	if match == nil {
		return declaration{kind: skipLine}
	}
	level, err := strconv.Atoi(match[1])
	if err != nil {
		return declaration{kind: skipLine}
	}
	decl := declaration{level: level, name: match[2], pic: match[3]}
	if decl.pic == "" {
		decl.kind = groupLine
	} else {
		decl.kind = fieldLine
	}
	return decl
}

type groupEntry struct {
	level int
	name  string
}

// Parser reconstructs the implicit record tree from level numbers in a
// single pass. Each instance carries per-parse state only; use one Parser
// per invocation when parsing concurrently.
type Parser struct {
	fields []Field
	stack  []groupEntry
}

func NewParser() *Parser {
	return &Parser{}
}

// Parse scans the copybook text line by line and returns the flattened
// field list in declaration order. Parsing is best-effort: malformed lines
// are skipped and unrecognized PIC clauses degrade to VARCHAR(255), so
// Parse never fails.
func (p *Parser) Parse(content string) []Field {
	p.fields = nil
	p.stack = p.stack[:0]
	for _, line := range strings.Split(content, "\n") {
		decl := classifyLine(line)
		if decl.kind == skipLine {
			continue
		}
		p.popTo(decl.level)
		switch decl.kind {
		case groupLine:
			p.stack = append(p.stack, groupEntry{level: decl.level, name: decl.name})
		case fieldLine:
			parent := ""
			if len(p.stack) > 0 {
				parent = p.stack[len(p.stack)-1].name
			}
			sqlType, length := interpretPic(decl.pic)
			p.fields = append(p.fields, Field{
				Level:   decl.level,
				Name:    decl.name,
				Pic:     decl.pic,
				SQLType: sqlType,
				Length:  length,
				Parent:  parent,
			})
		}
	}
	return p.fields
}

// popTo closes every open group at or below the incoming level. Stack
// entries are strictly increasing in level from bottom to top.
func (p *Parser) popTo(level int) {
	for len(p.stack) > 0 && p.stack[len(p.stack)-1].level >= level {
		p.stack = p.stack[:len(p.stack)-1]
	}
}
