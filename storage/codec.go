// Package storage owns every entity collection and its on-disk form.
// Each collection lives in its own text file: a leading record count,
// then one pipe-delimited record per line. Free-text fields are escaped
// so a '|' or newline typed into a name or request can never corrupt the
// file. Field order per entity is fixed and shared by writer and reader.
package storage

import (
	"fmt"
	"strconv"
	"strings"
)

const fieldSep = "|"

// escapeField protects the record delimiter and line breaks inside a
// field value.
func escapeField(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			sb.WriteString(`\\`)
		case '|':
			sb.WriteString(`\|`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

// joinRecord renders one record line from already-stringified fields.
func joinRecord(fields []string) string {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = escapeField(f)
	}
	return strings.Join(escaped, fieldSep)
}

// splitRecord parses one record line back into its fields, undoing the
// escaping. A dangling or unknown escape means the file is corrupted.
func splitRecord(line string) ([]string, error) {
	var fields []string
	var sb strings.Builder
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '\\':
			if i+1 >= len(line) {
				return nil, fmt.Errorf("dangling escape at end of record")
			}
			i++
			switch line[i] {
			case '\\':
				sb.WriteByte('\\')
			case '|':
				sb.WriteByte('|')
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			default:
				return nil, fmt.Errorf("invalid escape %q", `\`+string(line[i]))
			}
		case '|':
			fields = append(fields, sb.String())
			sb.Reset()
		default:
			sb.WriteByte(line[i])
		}
	}
	fields = append(fields, sb.String())
	return fields, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatInt(n int) string {
	return strconv.Itoa(n)
}

func formatInt64(n int64) string {
	return strconv.FormatInt(n, 10)
}

func formatBool(b bool) string {
	return strconv.FormatBool(b)
}
