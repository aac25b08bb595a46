package notes

import (
	"strings"

	"github.com/notedly/minutes/analysis"
)

// ApplyAnalysis merges a meeting analysis into the document's anchor
// sections. Sections absent from the document are left alone.
func ApplyAnalysis(doc *Document, result *analysis.MeetingAnalysis) {
	if result == nil {
		return
	}
	if len(result.Participants) > 0 {
		MergeParticipants(doc, result.Participants)
	}
	if len(result.Agenda) > 0 {
		MergeAgenda(doc, result.Agenda)
	}
	if len(result.KeyPoints) > 0 {
		fillBullets(doc, HeaderKeyPoints, formatBullets(result.KeyPoints))
	}
	if len(result.ActionItems) > 0 {
		fillBullets(doc, HeaderActionItems, formatActionItems(result.ActionItems))
	}
	if len(result.NextSteps) > 0 {
		fillBullets(doc, HeaderNextSteps, formatBullets(result.NextSteps))
	}
}

// MergeParticipants appends incoming participants not already present,
// comparing case-insensitively and keeping existing spellings. The body
// becomes a comma-separated list.
func MergeParticipants(doc *Document, incoming []string) {
	section := doc.Section(HeaderParticipants)
	if section == nil {
		return
	}

	existing := splitParticipants(strings.TrimSpace(section.Body))

	seen := make(map[string]bool, len(existing))
	for _, p := range existing {
		seen[strings.ToLower(p)] = true
	}
	merged := existing
	for _, p := range incoming {
		if !seen[strings.ToLower(p)] {
			seen[strings.ToLower(p)] = true
			merged = append(merged, p)
		}
	}

	if len(merged) == 0 {
		return
	}
	section.Body = strings.Join(merged, ", ") + "\n\n"
}

func splitParticipants(body string) []string {
	var participants []string
	for _, token := range strings.Split(body, ",") {
		if name := strings.TrimSpace(token); name != "" {
			participants = append(participants, name)
		}
	}
	return participants
}

// MergeAgenda appends incoming agenda items not already present, using
// the list-item text (leading "-"/"*" stripped) as the case-insensitive
// dedup key. The body becomes a bullet list.
func MergeAgenda(doc *Document, incoming []string) {
	section := doc.Section(HeaderAgenda)
	if section == nil {
		return
	}

	var existing []string
	for _, line := range strings.Split(strings.TrimSpace(section.Body), "\n") {
		item := strings.TrimSpace(line)
		item = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(item, "-"), "*"))
		if item != "" && item != "-" {
			existing = append(existing, item)
		}
	}

	seen := make(map[string]bool, len(existing))
	for _, item := range existing {
		seen[strings.ToLower(item)] = true
	}
	merged := existing
	for _, item := range incoming {
		if !seen[strings.ToLower(item)] {
			seen[strings.ToLower(item)] = true
			merged = append(merged, item)
		}
	}

	if len(merged) == 0 {
		return
	}
	section.Body = formatBullets(merged) + "\n\n"
}

// fillBullets replaces a section's leading placeholder bullet with
// rendered items. This is first-match replacement, not a merge: a
// section without a placeholder bullet is left untouched.
func fillBullets(doc *Document, title, rendered string) {
	section := doc.Section(title)
	if section == nil {
		return
	}
	body := section.Body
	for _, placeholder := range []string{"- [ ] ", "- [ ]", "- ", "-"} {
		if strings.HasPrefix(body, placeholder) {
			section.Body = rendered + strings.TrimPrefix(body, placeholder)
			return
		}
	}
}

func formatBullets(items []string) string {
	bullets := make([]string, len(items))
	for i, item := range items {
		bullets[i] = "- " + item
	}
	return strings.Join(bullets, "\n")
}

// formatActionItems renders items as checkbox bullets, normalizing to
// "- [ ] <text>" unless the item is already checkbox-formatted.
func formatActionItems(items []string) string {
	bullets := make([]string, len(items))
	for i, item := range items {
		if strings.HasPrefix(item, "[ ]") || strings.HasPrefix(item, "[x]") {
			bullets[i] = "- " + item
		} else {
			bullets[i] = "- [ ] " + item
		}
	}
	return strings.Join(bullets, "\n")
}
