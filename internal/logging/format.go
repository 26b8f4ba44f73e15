package logging

import (
	"fmt"
	"strings"
	"time"
)

// FormatSearch formats a search as markdown
func FormatSearch(s *Search) string {
	var sb strings.Builder

	sb.WriteString("# Search Log\n\n")

	sb.WriteString("## Metadata\n\n")
	sb.WriteString("| Field | Value |\n")
	sb.WriteString("|-------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Timestamp | %s |\n", s.Timestamp.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("| Root | `%s` |\n", s.Root))
	sb.WriteString(fmt.Sprintf("| Pattern | `%s` |\n", s.Pattern))
	sb.WriteString(fmt.Sprintf("| Substrings | %s |\n", quoteList(s.Substrings)))
	sb.WriteString(fmt.Sprintf("| Mode | %s |\n", s.Mode))
	if s.Prefix != "" {
		sb.WriteString(fmt.Sprintf("| Prefix | `%s` |\n", s.Prefix))
	}
	if len(s.Exclude) > 0 {
		sb.WriteString(fmt.Sprintf("| Exclude | %s |\n", quoteList(s.Exclude)))
	}
	sb.WriteString(fmt.Sprintf("| Duration | %.3fs |\n", s.Duration.Seconds()))
	sb.WriteString(fmt.Sprintf("| Status | %s |\n", s.Status))
	sb.WriteString(fmt.Sprintf("| Matches | %d |\n", len(s.Matches)))
	sb.WriteString("\n")

	if len(s.Matches) > 0 {
		sb.WriteString("## Matches\n\n")
		for _, m := range s.Matches {
			sb.WriteString(fmt.Sprintf("- %s\n", m))
		}
		sb.WriteString("\n")
	}

	if s.Error != nil {
		sb.WriteString("## Error\n\n")
		sb.WriteString("```\n")
		sb.WriteString(s.Error.Error())
		sb.WriteString("\n```\n")
	}

	return sb.String()
}

// quoteList renders items as inline code, or "(none)"
func quoteList(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = fmt.Sprintf("`%s`", item)
	}
	return strings.Join(quoted, ", ")
}
