// Package catalog turns published sheet text into service records and derives
// the brand → model → option cascade from them. Everything here is pure.
package catalog

import (
	"strings"
	"unicode"

	"storefront/internal/models"
)

// recordFields is the minimum number of tokens a data row needs.
const recordFields = 4

// Result is the outcome of parsing one sheet.
type Result struct {
	Records []models.ServiceRecord
	// Skipped counts non-blank data rows dropped for having too few fields.
	Skipped int
}

// ParseRecords parses sheet text and returns only the records.
func ParseRecords(text string) []models.ServiceRecord {
	return Parse(text).Records
}

// Parse never fails: the first line is the header, blank lines are ignored and
// rows with fewer than four fields are dropped and counted.
func Parse(text string) Result {
	text = strings.TrimPrefix(text, "\ufeff")

	var res Result
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if i == 0 || strings.TrimSpace(line) == "" {
			continue
		}
		fields := Tokenize(line)
		if len(fields) < recordFields {
			res.Skipped++
			continue
		}
		res.Records = append(res.Records, models.ServiceRecord{
			Brand:  cleanField(fields[0]),
			Model:  cleanField(fields[1]),
			Option: cleanField(fields[2]),
			Price:  cleanField(fields[3]),
		})
	}
	return res
}

// Tokenize splits one line into comma separated fields. A field is either
// 'single quoted', "double quoted" or bare; bare fields cannot hold commas.
// Whitespace around a field is dropped and a trailing empty field is not
// emitted.
func Tokenize(line string) []string {
	var fields []string
	pos := 0
	for pos < len(line) && strings.TrimSpace(line[pos:]) != "" {
		var field string
		field, pos = scanField(line, pos)
		fields = append(fields, field)
	}
	return fields
}

// scanField reads the field starting at pos and returns it with the offset
// just past its delimiter.
func scanField(line string, pos int) (string, int) {
	start := skipSpace(line, pos)

	if q := line[start]; q == '\'' || q == '"' {
		if n := strings.IndexByte(line[start+1:], q); n >= 0 {
			closing := start + 1 + n
			after := skipSpace(line, closing+1)
			switch {
			case after == len(line):
				return line[start+1 : closing], after
			case line[after] == ',':
				return line[start+1 : closing], after + 1
			}
		}
		// unbalanced or followed by junk: fall through to a bare field
	}

	n := strings.IndexByte(line[start:], ',')
	if n < 0 {
		return strings.TrimRightFunc(line[start:], unicode.IsSpace), len(line)
	}
	return strings.TrimRightFunc(line[start:start+n], unicode.IsSpace), start + n + 1
}

func skipSpace(s string, pos int) int {
	rest := s[pos:]
	return pos + len(rest) - len(strings.TrimLeftFunc(rest, unicode.IsSpace))
}

// cleanField removes stray double quotes left inside a token.
func cleanField(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, `"`, ""))
}
