package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ukaji3/tabledef-go/pkg/tabledef/models"
)

// DefaultIndexTitle is the heading text of the table index block.
const DefaultIndexTitle = "테이블 목록"

var (
	// tableHeadingPattern matches "## <N>. <identifier> (<short description>)".
	tableHeadingPattern = regexp.MustCompile(`^## (\d+)\. ([\p{L}\p{N}_]+) \(([^)]+)\)\s*$`)
	// numberedHeadingPattern matches any level-2 heading starting with a digit.
	numberedHeadingPattern = regexp.MustCompile(`^## \d`)
)

// ExtractOptions configures section extraction.
type ExtractOptions struct {
	// IndexTitle is the heading text that opens the index block.
	IndexTitle string
}

// DefaultExtractOptions returns the default extraction options.
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{IndexTitle: DefaultIndexTitle}
}

type scanState int

const (
	stateScan scanState = iota
	stateIndex
	stateTable
)

// Extract splits a document into sections and parses each row block.
// Missing or malformed sections are skipped, never reported.
func Extract(text string, opts ExtractOptions) *models.Document {
	doc := &models.Document{}
	for _, sec := range ExtractSections(text, opts) {
		rows := ParseRows(sec.Lines)
		switch sec.Kind {
		case models.SectionIndex:
			doc.Index = rows
		case models.SectionTable:
			doc.Tables = append(doc.Tables, models.Table{
				Number:      sec.Number,
				Name:        sec.Name,
				ShortDesc:   sec.ShortDesc,
				Description: sec.Description,
				Rows:        rows,
			})
		}
	}
	return doc
}

// ExtractSections runs the line state machine over text and returns the index
// section (first one only) and every table section in document order.
func ExtractSections(text string, opts ExtractOptions) []models.Section {
	if opts.IndexTitle == "" {
		opts.IndexTitle = DefaultIndexTitle
	}
	lines := splitLines(text)

	var (
		sections  []models.Section
		current   *models.Section
		state     = stateScan
		indexSeen bool
	)
	closeSection := func() {
		if current != nil {
			sections = append(sections, *current)
			current = nil
		}
		state = stateScan
	}

	for i := 0; i < len(lines); {
		line := lines[i]
		switch state {
		case stateIndex, stateTable:
			if isBoundary(state, line) {
				// The boundary line is scanned again; it may open the next table.
				closeSection()
				continue
			}
			current.Lines = append(current.Lines, line)
			i++
		default:
			if !indexSeen && isIndexHeading(line, opts.IndexTitle) {
				indexSeen = true
				current = &models.Section{Kind: models.SectionIndex, Line: i + 1}
				state = stateIndex
				i++
				continue
			}
			if sec, next, ok := matchTableSection(lines, i); ok {
				current = &sec
				state = stateTable
				i = next
				continue
			}
			i++
		}
	}
	closeSection()

	return sections
}

// matchTableSection checks whether lines[i] opens a table section: a heading,
// blank line(s), a description line, blank line(s) and a pipe row whose first
// cell is "No". It returns the section seeded with that header row and the
// index of the line following it.
func matchTableSection(lines []string, i int) (models.Section, int, bool) {
	m := tableHeadingPattern.FindStringSubmatch(lines[i])
	if m == nil {
		return models.Section{}, 0, false
	}

	descLine := skipBlank(lines, i+1)
	if descLine == i+1 || descLine >= len(lines) {
		return models.Section{}, 0, false
	}
	headerLine := skipBlank(lines, descLine+1)
	if headerLine == descLine+1 || headerLine >= len(lines) {
		return models.Section{}, 0, false
	}
	if !isTableHeader(lines[headerLine]) {
		return models.Section{}, 0, false
	}

	sec := models.Section{
		Kind:        models.SectionTable,
		Number:      m[1],
		Name:        m[2],
		ShortDesc:   m[3],
		Description: strings.TrimSpace(lines[descLine]),
		Line:        i + 1,
		Lines:       []string{lines[headerLine]},
	}
	return sec, headerLine + 1, true
}

func isIndexHeading(line, title string) bool {
	return strings.TrimSpace(line) == "## "+title
}

func isTableHeader(line string) bool {
	row, ok := ParseRow(line)
	return ok && row[0] == "No"
}

// isBoundary reports whether line ends the current section. Both kinds end at
// a horizontal rule or a numbered heading; table sections also end at a bold
// Hangul annotation such as "**참고**". End of input closes either kind.
func isBoundary(state scanState, line string) bool {
	if strings.HasPrefix(line, "---") || numberedHeadingPattern.MatchString(line) {
		return true
	}
	return state == stateTable && isHangulAnnotation(line)
}

func isHangulAnnotation(line string) bool {
	rest, ok := strings.CutPrefix(line, "**")
	if !ok {
		return false
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return isHangulSyllable(r)
}

// isHangulSyllable reports whether r is a precomposed syllable (가-힣). Bare
// jamo such as "ㄱ" do not count.
func isHangulSyllable(r rune) bool {
	return r >= '가' && r <= '힣'
}

// skipBlank returns the index of the first non-blank line at or after i.
func skipBlank(lines []string, i int) int {
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	return i
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}
