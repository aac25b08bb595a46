package analysis

import (
	"regexp"
	"strings"
)

// MeetingAnalysis is the structured result of analyzing a meeting.
// Lists preserve the model's output order.
type MeetingAnalysis struct {
	// Participants is deduplicated case-insensitively, first spelling wins.
	Participants []string `json:"participants,omitempty"`
	Agenda       []string `json:"agenda,omitempty"`
	KeyPoints    []string `json:"key_points"`
	ActionItems  []string `json:"action_items"`
	NextSteps    []string `json:"next_steps"`
	// RawResponse is the unparsed model reply, kept for debugging.
	RawResponse string `json:"raw_response,omitempty"`
}

var sectionHeader = regexp.MustCompile(`(?i)\*\*(Participants|Agenda|Key Points|Action Items|Next Steps)\*\*:`)

// ParseResponse parses a model reply into a MeetingAnalysis.
//
// The reply is split on bolded section headers; bullet lines under each
// header become that section's items. Participants tolerate
// comma/semicolon-delimited prose. If no header yields key points,
// action items, or next steps, every bullet in the reply is classified
// by keyword instead so a bullet-bearing reply always produces output.
func ParseResponse(response string) *MeetingAnalysis {
	result := &MeetingAnalysis{RawResponse: response}

	matches := sectionHeader.FindAllStringSubmatchIndex(response, -1)
	for i, match := range matches {
		title := strings.ToLower(response[match[2]:match[3]])
		contentStart := match[1]
		contentEnd := len(response)
		if i+1 < len(matches) {
			contentEnd = matches[i+1][0]
		}
		content := response[contentStart:contentEnd]

		switch {
		case strings.Contains(title, "participant"):
			result.Participants = dedupeFold(parseParticipants(content))
		case strings.Contains(title, "agenda"):
			result.Agenda = bulletLines(content)
		case strings.Contains(title, "key point"):
			result.KeyPoints = bulletLines(content)
		case strings.Contains(title, "action item"):
			result.ActionItems = bulletLines(content)
		case strings.Contains(title, "next step"):
			result.NextSteps = bulletLines(content)
		}
	}

	if len(result.KeyPoints) == 0 && len(result.ActionItems) == 0 && len(result.NextSteps) == 0 {
		classifyBullets(response, result)
	}
	return result
}

// bulletLines extracts lines starting with "-" or "•", marker stripped.
func bulletLines(content string) []string {
	var items []string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		var item string
		switch {
		case strings.HasPrefix(trimmed, "-"):
			item = strings.TrimPrefix(trimmed, "-")
		case strings.HasPrefix(trimmed, "•"):
			item = strings.TrimPrefix(trimmed, "•")
		default:
			continue
		}
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// parseParticipants splits a participants section on commas and
// semicolons, tolerating one-name-per-line prose as well as bullets.
func parseParticipants(content string) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	joined := strings.Join(lines, ", ")

	var participants []string
	for _, token := range strings.FieldsFunc(joined, func(r rune) bool { return r == ',' || r == ';' }) {
		name := strings.TrimSpace(token)
		name = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(name, "-"), "•"))
		if name != "" && name != "-" {
			participants = append(participants, name)
		}
	}
	return participants
}

// classifyBullets scans the whole reply for bullets and sorts each into
// a section by keyword. Action cues win over next-step cues.
func classifyBullets(response string, result *MeetingAnalysis) {
	for _, bullet := range bulletLines(response) {
		lower := strings.ToLower(bullet)
		switch {
		case strings.Contains(lower, "action") || strings.Contains(lower, "task") || strings.Contains(lower, "[ ]"):
			result.ActionItems = append(result.ActionItems, bullet)
		case strings.Contains(lower, "next") || strings.Contains(lower, "follow"):
			result.NextSteps = append(result.NextSteps, bullet)
		default:
			result.KeyPoints = append(result.KeyPoints, bullet)
		}
	}
}

// dedupeFold removes case-insensitive duplicates, keeping the first
// spelling and order of appearance.
func dedupeFold(items []string) []string {
	seen := make(map[string]bool, len(items))
	var unique []string
	for _, item := range items {
		key := strings.ToLower(item)
		if !seen[key] {
			seen[key] = true
			unique = append(unique, item)
		}
	}
	return unique
}
