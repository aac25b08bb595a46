package notes

import "strings"

// Anchor headers the merge algorithm knows how to rewrite.
const (
	HeaderParticipants  = "Participants"
	HeaderAgenda        = "Agenda"
	HeaderNotes         = "Notes"
	HeaderKeyPoints     = "Key Points"
	HeaderActionItems   = "Action Items"
	HeaderNextSteps     = "Next Steps"
	HeaderTranscription = "Transcription"
)

const sectionPrefix = "### "

// Section is one anchored block of a document: a "### " header line and
// the body up to the next header or end of document.
type Section struct {
	// Title is the header text without the "### " prefix.
	Title string
	// Body is the raw text following the header line, newlines included.
	Body string
}

// Document is a parsed note: everything before the first anchor header,
// then the ordered sections. Parse and String round-trip
// newline-terminated notes exactly; a final header line missing its
// trailing newline gains one on re-serialization.
type Document struct {
	Preamble string
	Sections []Section
}

// Parse splits a note into its preamble and "### " sections.
func Parse(content string) *Document {
	doc := &Document{}
	var current *strings.Builder

	preamble := &strings.Builder{}
	current = preamble

	lines := strings.SplitAfter(content, "\n")
	for _, line := range lines {
		if strings.HasPrefix(line, sectionPrefix) {
			title := strings.TrimSuffix(strings.TrimPrefix(line, sectionPrefix), "\n")
			title = strings.TrimSuffix(title, "\r")
			doc.Sections = append(doc.Sections, Section{Title: title})
			body := &strings.Builder{}
			current = body
			continue
		}
		current.WriteString(line)
		if len(doc.Sections) > 0 {
			doc.Sections[len(doc.Sections)-1].Body = current.String()
		}
	}

	doc.Preamble = preamble.String()
	return doc
}

// String re-serializes the document.
func (d *Document) String() string {
	var b strings.Builder
	b.WriteString(d.Preamble)
	for _, section := range d.Sections {
		b.WriteString(sectionPrefix + section.Title + "\n")
		b.WriteString(section.Body)
	}
	return b.String()
}

// Section returns the first section with the given title, or nil.
func (d *Document) Section(title string) *Section {
	for i := range d.Sections {
		if d.Sections[i].Title == title {
			return &d.Sections[i]
		}
	}
	return nil
}

// Body returns the trimmed body of the named section, or "".
func (d *Document) Body(title string) string {
	if s := d.Section(title); s != nil {
		return strings.TrimSpace(s.Body)
	}
	return ""
}

// RemoveSection deletes the first section with the given title.
func (d *Document) RemoveSection(title string) {
	for i := range d.Sections {
		if d.Sections[i].Title == title {
			d.Sections = append(d.Sections[:i], d.Sections[i+1:]...)
			return
		}
	}
}
