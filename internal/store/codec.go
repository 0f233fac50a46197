package store

import "strings"

// Escape protects commas in a description so the record keeps exactly
// three fields on disk.
func Escape(description string) string {
	return strings.ReplaceAll(description, ",", `\,`)
}

// Unescape reverses Escape.
func Unescape(field string) string {
	return strings.ReplaceAll(field, `\,`, ",")
}

// splitRecord splits a task file line on unescaped commas. Escaped
// commas stay in the field for Unescape to restore.
func splitRecord(line string) []string {
	var fields []string
	start := 0
	for i := 0; i < len(line); i++ {
		if line[i] == ',' && (i == 0 || line[i-1] != '\\') {
			fields = append(fields, line[start:i])
			start = i + 1
		}
	}
	return append(fields, line[start:])
}
