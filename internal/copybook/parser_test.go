// File path: internal/copybook/parser_test.go
package copybook

import (
	"strings"
	"testing"
)

const customerCopybook = `      * CUSTOMER RECORD
       01  CUSTOMER-RECORD.
           05  CUSTOMER-ID       PIC 9(10).
           05  CUSTOMER-NAME.
               10  FIRST-NAME    PIC X(30).
               10  LAST-NAME     PIC X(30).
           05  ACCOUNT-BALANCE   PIC S9(13)V99.
`

func TestParseCustomerRecord(t *testing.T) {
	fields := NewParser().Parse(customerCopybook)
	if len(fields) != 4 {
		t.Fatalf("expected 4 fields, got %d", len(fields))
	}

	id := fields[0]
	if id.Name != "CUSTOMER-ID" || id.Level != 5 {
		t.Fatalf("unexpected first field: %+v", id)
	}
	if id.Parent != "CUSTOMER-RECORD" {
		t.Fatalf("expected CUSTOMER-ID parent CUSTOMER-RECORD, got %q", id.Parent)
	}
	if id.SQLType != "BIGINT" || id.Length != 10 {
		t.Fatalf("expected BIGINT/10 for CUSTOMER-ID, got %s/%d", id.SQLType, id.Length)
	}

	for _, name := range []string{"FIRST-NAME", "LAST-NAME"} {
		field := findField(t, fields, name)
		if field.Parent != "CUSTOMER-NAME" {
			t.Fatalf("expected %s parent CUSTOMER-NAME, got %q", name, field.Parent)
		}
		if field.SQLType != "VARCHAR(30)" || field.Length != 30 {
			t.Fatalf("expected VARCHAR(30)/30 for %s, got %s/%d", name, field.SQLType, field.Length)
		}
	}

	balance := findField(t, fields, "ACCOUNT-BALANCE")
	if balance.Parent != "CUSTOMER-RECORD" {
		t.Fatalf("expected ACCOUNT-BALANCE parent CUSTOMER-RECORD, got %q", balance.Parent)
	}
	if balance.SQLType != "DECIMAL(15,2)" || balance.Length != 15 {
		t.Fatalf("expected DECIMAL(15,2)/15 for ACCOUNT-BALANCE, got %s/%d", balance.SQLType, balance.Length)
	}
}

func TestParseSkipsCommentsAndGarbage(t *testing.T) {
	src := strings.Join([]string{
		"* leading comment",
		"",
		"   ",
		"this line matches nothing",
		"01  REC.",
		"    05  FIELD-A  PIC X(5).",
	}, "\n")
	fields := NewParser().Parse(src)
	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}
	if fields[0].Name != "FIELD-A" || fields[0].Parent != "REC" {
		t.Fatalf("unexpected field: %+v", fields[0])
	}
}

func TestParseTopLevelFieldHasNoParent(t *testing.T) {
	fields := NewParser().Parse("01  STANDALONE PIC X(8).")
	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}
	if fields[0].Parent != "" {
		t.Fatalf("expected absent parent, got %q", fields[0].Parent)
	}
}

func TestParseSiblingsShareParent(t *testing.T) {
	src := strings.Join([]string{
		"01  REC.",
		"    05  A  PIC 9(3).",
		"    05  B  PIC 9(3).",
		"    05  C  PIC 9(3).",
	}, "\n")
	fields := NewParser().Parse(src)
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(fields))
	}
	for _, f := range fields {
		if f.Parent != "REC" {
			t.Fatalf("expected parent REC for %s, got %q", f.Name, f.Parent)
		}
	}
}

func TestParseNestedGroupClosesOnLevelDrop(t *testing.T) {
	src := strings.Join([]string{
		"01  REC.",
		"    05  INNER.",
		"        10  DEEP  PIC X(1).",
		"    05  AFTER  PIC X(1).",
	}, "\n")
	fields := NewParser().Parse(src)
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0].Parent != "INNER" {
		t.Fatalf("expected DEEP parent INNER, got %q", fields[0].Parent)
	}
	if fields[1].Parent != "REC" {
		t.Fatalf("expected AFTER parent REC, got %q", fields[1].Parent)
	}
}

func TestParseFieldNeverBecomesParent(t *testing.T) {
	// A PIC-bearing declaration is terminal even when a deeper level
	// follows it.
	src := strings.Join([]string{
		"01  REC.",
		"    05  LEAF  PIC X(2).",
		"        10  UNDER  PIC X(2).",
	}, "\n")
	fields := NewParser().Parse(src)
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[1].Parent != "REC" {
		t.Fatalf("expected UNDER parent REC, got %q", fields[1].Parent)
	}
}

func TestParseLowercaseInput(t *testing.T) {
	fields := NewParser().Parse("05  cust-id  pic 9(5).")
	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}
	if fields[0].SQLType != "INTEGER" || fields[0].Length != 5 {
		t.Fatalf("unexpected type for lowercase pic: %s/%d", fields[0].SQLType, fields[0].Length)
	}
}

func TestParseEmptyInput(t *testing.T) {
	if fields := NewParser().Parse(""); len(fields) != 0 {
		t.Fatalf("expected no fields, got %d", len(fields))
	}
}

func TestParserReuseResetsState(t *testing.T) {
	p := NewParser()
	p.Parse(customerCopybook)
	fields := p.Parse("01  ONLY  PIC X(1).")
	if len(fields) != 1 {
		t.Fatalf("expected 1 field after reuse, got %d", len(fields))
	}
	if fields[0].Parent != "" {
		t.Fatalf("expected stale group stack cleared, got parent %q", fields[0].Parent)
	}
}

func findField(t *testing.T, fields []Field, name string) Field {
	t.Helper()
	for _, f := range fields {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("field %s not found", name)
	return Field{}
}
