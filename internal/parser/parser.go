package parser

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// TocMarker is the literal line that opens a generated table of contents
const TocMarker = "# Table of Contents"

var (
	anchorTagRegex = regexp.MustCompile(`^\s*<a +id="([\w-]+)"></a>`)
	keywordRegex   = regexp.MustCompile(`^\s*<!-- ?keyword:\s*(\w+).*`)
)

// AnchorStyle selects which inline syntax supplies explicit anchors
type AnchorStyle int

const (
	// StyleAnchorTag recognizes <a id="..."></a> lines
	StyleAnchorTag AnchorStyle = iota
	// StyleKeyword recognizes legacy <!-- keyword: ... --> lines
	StyleKeyword
)

// TocEntry is one table-of-contents line, created when its header is
// classified and never mutated afterward
type TocEntry struct {
	Level  int    // Header depth minus one: an H1 has level 0
	Title  string // Header text, internal whitespace collapsed
	Anchor string // Link target, derived or explicit
}

// Warning is a non-fatal diagnostic tied to an input line
type Warning struct {
	Line    int
	Message string
}

// Document is the result of one scan: the TOC entries in document order
// plus the rewritten body. The body never contains a consumed pre-existing
// TOC block, and every header line is preceded by an anchor tag line.
type Document struct {
	Entries  []TocEntry
	Body     string
	Warnings []Warning
}

// MalformedHeaderError reports a line that starts with "#" but does not
// parse as a header. It aborts the scan.
type MalformedHeaderError struct {
	Line int
}

func (e *MalformedHeaderError) Error() string {
	return fmt.Sprintf("line %d starts with \"#\" but is not a header", e.Line)
}

type scanState int

const (
	stateBody scanState = iota
	stateAfterAnchor
	stateCodeBlock
)

// Scanner rewrites markdown documents, collecting TOC entries as it goes
type Scanner struct {
	style AnchorStyle
}

// NewScanner creates a scanner using the given anchor style
func NewScanner(style AnchorStyle) *Scanner {
	return &Scanner{style: style}
}

// Scan performs a single forward pass over r and returns the rewritten
// document. A pre-existing TOC block at the top is consumed and discarded.
func (s *Scanner) Scan(r io.Reader) (*Document, error) {
	lr := NewLineReader(r)
	if err := skipOldToc(lr); err != nil {
		return nil, err
	}

	doc := &Document{}
	namer := NewAnchorNamer()
	var body strings.Builder

	state := stateBody
	var pending Line // buffered anchor tag line awaiting its header
	pendingAnchor := ""

	for {
		line, err := lr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch state {
		case stateCodeBlock:
			body.WriteString(line.Text)
			if isFence(line.Text) {
				state = stateBody
			}

		case stateAfterAnchor:
			switch {
			case s.explicitAnchor(line.Text) != "":
				// Most recent tag wins; the displaced one stays in the body
				body.WriteString(pending.Text)
				pending = line
				pendingAnchor = s.explicitAnchor(line.Text)

			case strings.HasPrefix(line.Text, "#"):
				entry, err := classifyHeader(line)
				if err != nil {
					return nil, err
				}
				entry.Anchor = pendingAnchor
				doc.Entries = append(doc.Entries, entry)
				// Keep the original tag line, do not synthesize a second one
				body.WriteString(pending.Text)
				body.WriteString(line.Text)
				state = stateBody

			case strings.TrimSpace(line.Text) == "":
				body.WriteString(line.Text)

			default:
				doc.Warnings = append(doc.Warnings, Warning{
					Line:    line.Num,
					Message: "content found between anchor tag and header",
				})
				body.WriteString(pending.Text)
				body.WriteString(line.Text)
				state = stateBody
			}

		case stateBody:
			switch {
			case s.explicitAnchor(line.Text) != "":
				pending = line
				pendingAnchor = s.explicitAnchor(line.Text)
				state = stateAfterAnchor

			case strings.HasPrefix(line.Text, "#"):
				entry, err := classifyHeader(line)
				if err != nil {
					return nil, err
				}
				entry.Anchor = namer.Name(entry.Title)
				doc.Entries = append(doc.Entries, entry)
				body.WriteString(anchorLine(entry.Anchor))
				body.WriteString(line.Text)

			case isFence(line.Text):
				body.WriteString(line.Text)
				state = stateCodeBlock

			default:
				body.WriteString(line.Text)
			}
		}
	}

	if state == stateAfterAnchor {
		doc.Warnings = append(doc.Warnings, Warning{
			Line:    pending.Num,
			Message: "anchor tag is not followed by a header",
		})
		body.WriteString(pending.Text)
	}

	doc.Body = body.String()
	return doc, nil
}

// explicitAnchor extracts the anchor id from a tag line, or "" when the
// line is not an anchor tag in the configured style
func (s *Scanner) explicitAnchor(text string) string {
	re := anchorTagRegex
	if s.style == StyleKeyword {
		re = keywordRegex
	}
	if m := re.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// skipOldToc discards leading blank lines and, when the first non-blank
// line is the TOC marker, the whole old TOC block up to and including the
// blank line that closes it
func skipOldToc(lr *LineReader) error {
	line, err := lr.Next()
	for err == nil && strings.TrimSpace(line.Text) == "" {
		line, err = lr.Next()
	}
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}

	if strings.TrimSpace(line.Text) != TocMarker {
		lr.Unread()
		return nil
	}

	for {
		line, err = lr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line.Text) == "" {
			return nil
		}
	}
}

// classifyHeader parses a line already known to start with "#". The level
// comes from the full leading run of hashes; a line with nothing after the
// run is not a header and aborts the scan.
func classifyHeader(line Line) (TocEntry, error) {
	rest := strings.TrimLeft(line.Text, "#")
	level := len(line.Text) - len(rest)

	title := strings.Join(strings.Fields(rest), " ")
	if title == "" {
		return TocEntry{}, &MalformedHeaderError{Line: line.Num}
	}
	return TocEntry{
		Level: level - 1,
		Title: title,
	}, nil
}

// isFence reports whether a line opens or closes a fenced code block
func isFence(text string) bool {
	return strings.HasPrefix(strings.TrimLeft(text, " \t"), "```")
}

// anchorLine synthesizes the tag inserted above headers without an
// explicit anchor
func anchorLine(anchor string) string {
	return fmt.Sprintf("<a id=%q></a>\n", anchor)
}
