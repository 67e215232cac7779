// File path: internal/copybook/pic.go
package copybook

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Matching is substring-based on the upper-cased clause, so sign markers
// and COMP suffixes neither parse nor block a match. The decimal matcher
// must run before the integer one: a decimal clause also contains 9(n).
var (
	// Scale digits appear either counted, 9(P)V9(S), or as a literal
	// run of nines, 9(P)V99.
	decimalParenRe = regexp.MustCompile(`9\((\d+)\)V9\((\d+)\)`)
	decimalRunRe   = regexp.MustCompile(`9\((\d+)\)V(9+)`)
	integerRe      = regexp.MustCompile(`9\((\d+)\)`)
	charRe         = regexp.MustCompile(`[XA]\((\d+)\)`)
)

const (
	fallbackType   = "VARCHAR(255)"
	fallbackLength = 255

	// Unsigned digit counts beyond 9 can overflow a 32-bit integer.
	bigintDigits = 9
)

type picMatcher func(clause string) (sqlType string, length int, ok bool)

var picMatchers = []picMatcher{matchDecimal, matchInteger, matchCharacter}

// interpretPic maps a PIC clause to an SQL type and total digit/character
// length. Unrecognized clauses fall back to VARCHAR(255); the interpreter
// never fails.
func interpretPic(clause string) (string, int) {
	normalized := strings.ToUpper(strings.TrimSpace(clause))
	for _, match := range picMatchers {
		if sqlType, length, ok := match(normalized); ok {
			return sqlType, length
		}
	}
	return fallbackType, fallbackLength
}

func matchDecimal(clause string) (string, int, bool) {
	if m := decimalParenRe.FindStringSubmatch(clause); m != nil {
		return decimalType(mustAtoi(m[1]), mustAtoi(m[2]))
	}
	if m := decimalRunRe.FindStringSubmatch(clause); m != nil {
		return decimalType(mustAtoi(m[1]), len(m[2]))
	}
	return "", 0, false
}

func decimalType(precision, scale int) (string, int, bool) {
	total := precision + scale
	return fmt.Sprintf("DECIMAL(%d,%d)", total, scale), total, true
}

func matchInteger(clause string) (string, int, bool) {
	m := integerRe.FindStringSubmatch(clause)
	if m == nil {
		return "", 0, false
	}
	length := mustAtoi(m[1])
	if length > bigintDigits {
		return "BIGINT", length, true
	}
	return "INTEGER", length, true
}

func matchCharacter(clause string) (string, int, bool) {
	m := charRe.FindStringSubmatch(clause)
	if m == nil {
		return "", 0, false
	}
	length := mustAtoi(m[1])
	return fmt.Sprintf("VARCHAR(%d)", length), length, true
}

func mustAtoi(digits string) int {
	value, _ := strconv.Atoi(digits)
	return value
}
