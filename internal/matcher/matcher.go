// Package matcher finds lines of a text that contain the query - exactly or ignoring case
package matcher

import "strings"

// SearchCaseSensitive returns every line of contents containing query, in source order.
// Returned lines are substrings of contents.
func SearchCaseSensitive(query, contents string) []string {
	result := []string{}
	for _, line := range SplitLines(contents) {
		if strings.Contains(line, query) {
			result = append(result, line)
		}
	}
	return result
}

// SearchCaseInsensitive is SearchCaseSensitive over lower-cased query and lines,
// but the original lines are returned.
func SearchCaseInsensitive(query, contents string) []string {
	result := []string{}
	query = strings.ToLower(query)
	for _, line := range SplitLines(contents) {
		if strings.Contains(strings.ToLower(line), query) {
			result = append(result, line)
		}
	}
	return result
}

// SplitLines splits contents at "\n" and "\r\n" terminators. The final terminator is optional
// and doesn't produce an empty trailing line.
func SplitLines(contents string) []string {
	lines := make([]string, 0, strings.Count(contents, "\n")+1)
	for contents != "" {
		i := strings.IndexByte(contents, '\n')
		if i < 0 { // последняя строка без терминатора - "\r" остаётся как есть
			lines = append(lines, contents)
			break
		}
		lines = append(lines, strings.TrimSuffix(contents[:i], "\r"))
		contents = contents[i+1:]
	}
	return lines
}
