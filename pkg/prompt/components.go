package prompt

import (
	"fmt"
	"strings"
	"time"

	"github.com/design4music/sni-platform-sub000/pkg/models"
)

// FormatTitleList renders titles one per line in the pipe-separated layout
// both stage prompts document. Newlines inside title text would break the
// one-title-per-line contract, so they collapse to spaces.
func FormatTitleList(titles []models.Title) string {
	var sb strings.Builder
	for i, t := range titles {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(t.ID)
		sb.WriteString(" | ")
		sb.WriteString(t.Lang)
		sb.WriteString(" | ")
		sb.WriteString(t.Source)
		sb.WriteString(" | ")
		sb.WriteString(t.PublishedAt.UTC().Format(time.RFC3339))
		sb.WriteString(" | ")
		sb.WriteString(flattenText(t.Text))
	}
	return sb.String()
}

// FormatVocabulary renders a closed vocabulary as the bulleted list the
// reduce system prompt injects.
func FormatVocabulary(values []string) string {
	var sb strings.Builder
	for i, v := range values {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("- ")
		sb.WriteString(v)
	}
	return sb.String()
}

// formatRationaleLine renders the optional clustering rationale carried
// from the map stage into the reduce user message.
func formatRationaleLine(rationale string) string {
	if strings.TrimSpace(rationale) == "" {
		return ""
	}
	return fmt.Sprintf("Clustering rationale: %s\n", strings.TrimSpace(rationale))
}

func flattenText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
