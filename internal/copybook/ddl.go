// File path: internal/copybook/ddl.go
package copybook

import (
	"fmt"
	"strings"
)

// Namespace is the fixed landing schema all generated tables live in.
const Namespace = "bronze"

// GenerateDDL renders the ordered field list into a single CREATE TABLE
// statement. Column identifiers are the field names lower-cased with
// hyphens replaced by underscores; groups contribute no column. The table
// name is trusted caller input and is not escaped. An empty field list
// yields a statement with an empty column body.
func GenerateDDL(fields []Field, tableName string) string {
	cols := make([]string, 0, len(fields))
	for _, f := range fields {
		cols = append(cols, "    "+ColumnName(f.Name)+" "+f.SQLType)
	}
	return fmt.Sprintf("CREATE TABLE %s.%s (\n%s\n);", Namespace, tableName, strings.Join(cols, ",\n"))
}

// ColumnName normalizes a copybook field name into a SQL column
// identifier. Already-normalized identifiers map to themselves.
func ColumnName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "-", "_")
}
