package cf

import "strings"

// Header lines printed before the data rows of each listing.
const (
	orgsHeaderLines   = 3
	spacesHeaderLines = 3
	appsHeaderLines   = 4
)

// ParseTable returns the first whitespace-delimited token of every non-blank line
// after the first skip lines of out.
func ParseTable(out string, skip int) []string {
	return parseRows(out, skip, func(line string) string {
		if fields := strings.Fields(line); len(fields) > 0 {
			return fields[0]
		}
		return ""
	})
}

// ParseNames returns every non-blank line after the first skip lines of out,
// trimmed of surrounding whitespace. Org and space names may contain spaces.
func ParseNames(out string, skip int) []string {
	return parseRows(out, skip, strings.TrimSpace)
}

func parseRows(out string, skip int, cell func(string) string) []string {
	lines := strings.Split(strings.ReplaceAll(out, "\r\n", "\n"), "\n")
	if skip >= len(lines) {
		return nil
	}

	var names []string
	for _, line := range lines[max(skip, 0):] {
		if name := cell(line); name != "" {
			names = append(names, name)
		}
	}
	return names
}
