// Package tables implements parsing of the Unicode emoji data files.
package tables

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/moji/internal/core/domain"
	"go.trai.ch/moji/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TableParser = (*Parser)(nil)

// Parser reads the semicolon-separated table formats published by Unicode:
// codepoint data files (emoji-data.txt), sequence files (emoji-sequences.txt,
// emoji-zwj-sequences.txt) and test files (emoji-test.txt). The shape is
// detected from the first content line.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile reads a table from disk.
func (p *Parser) ParseFile(path string) ([]domain.TableEntry, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open table"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	entries, err := p.Parse(f, filepath.Base(path))
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return entries, nil
}

// Parse reads a table from r, attaching name to every entry as its source.
func (p *Parser) Parse(r io.Reader, name string) ([]domain.TableEntry, error) {
	var (
		entries    []domain.TableEntry
		shape      domain.TableShape
		shapeKnown bool
		lineNo     int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line, comment, _ := strings.Cut(scanner.Text(), "#")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Split(line, ";")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		if len(fields) < 2 || fields[0] == "" {
			return nil, malformed(name, lineNo, "expected at least two fields")
		}

		if !shapeKnown {
			shape = sniffShape(fields)
			shapeKnown = true
		}

		var (
			parsed []domain.TableEntry
			err    error
		)
		switch shape {
		case domain.ShapeTest:
			parsed, err = parseTestLine(fields, comment, name)
		case domain.ShapeSequence:
			parsed, err = parseSequenceLine(fields, name)
		default:
			parsed, err = parseDataLine(fields, name)
		}
		if err != nil {
			return nil, zerr.With(err, "line", lineNo)
		}
		entries = append(entries, parsed...)
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read table"), "source", name)
	}

	return entries, nil
}

// ParseAliasFile reads a file of "sequence;sequence" pairs mapping an emoji
// to the emoji whose image it shares.
func (p *Parser) ParseAliasFile(path string) (map[domain.Identity]domain.Identity, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open alias file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	aliases := make(map[domain.Identity]domain.Identity)
	lineNo := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line, _, _ := strings.Cut(scanner.Text(), "#")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		from, to, found := strings.Cut(line, ";")
		if !found {
			return nil, zerr.With(malformed(filepath.Base(path), lineNo, "expected two sequences separated by a semicolon"), "path", path)
		}

		alias, err := domain.ParseFileStem(strings.TrimSpace(from))
		if err != nil {
			return nil, zerr.With(zerr.With(err, "line", lineNo), "path", path)
		}
		target, err := domain.ParseFileStem(strings.TrimSpace(to))
		if err != nil {
			return nil, zerr.With(zerr.With(err, "line", lineNo), "path", path)
		}
		aliases[alias] = target
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read alias file"), "path", path)
	}

	return aliases, nil
}

// sniffShape classifies a table by its first content line. Test files carry
// a qualification status in the second field, sequence files a property plus
// a description, data files just a property.
func sniffShape(fields []string) domain.TableShape {
	if _, ok := domain.ParseStatus(fields[1]); ok {
		return domain.ShapeTest
	}
	if len(fields) >= 3 && fields[2] != "" {
		return domain.ShapeSequence
	}
	return domain.ShapeData
}

func parseDataLine(fields []string, source string) ([]domain.TableEntry, error) {
	ids, err := parseIdentities(fields[0])
	if err != nil {
		return nil, err
	}

	kind, known := domain.ParseKind(fields[1])
	entries := make([]domain.TableEntry, 0, len(ids))
	for _, id := range ids {
		k := kind
		if !known {
			k = id.GuessKind()
		}
		entries = append(entries, domain.TableEntry{
			Identity: id,
			Kind:     k,
			Source:   source,
		})
	}
	return entries, nil
}

func parseSequenceLine(fields []string, source string) ([]domain.TableEntry, error) {
	ids, err := parseIdentities(fields[0])
	if err != nil {
		return nil, err
	}

	kind, known := domain.ParseKind(fields[1])
	name := ""
	if len(fields) >= 3 {
		name = fields[2]
	}

	entries := make([]domain.TableEntry, 0, len(ids))
	for _, id := range ids {
		k := kind
		if !known {
			k = id.GuessKind()
		}
		entry := domain.TableEntry{
			Identity: id,
			Kind:     k,
			Name:     name,
			Source:   source,
		}
		// A range line describes many emoji, so its description does not
		// name any single one of them.
		if len(ids) > 1 {
			entry.Name = ""
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func parseTestLine(fields []string, comment, source string) ([]domain.TableEntry, error) {
	id, err := parseSequence(fields[0])
	if err != nil {
		return nil, err
	}

	status, ok := domain.ParseStatus(fields[1])
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrMalformedTable, "unknown qualification status"), "status", fields[1])
	}

	return []domain.TableEntry{{
		Identity: id,
		Kind:     id.GuessKind(),
		Name:     testLineName(comment),
		Status:   status,
		Source:   source,
	}}, nil
}

// testLineName extracts the emoji name from a test file comment of the form
// "😀 E1.0 grinning face".
func testLineName(comment string) string {
	tokens := strings.Fields(comment)
	for i, token := range tokens {
		if len(token) > 1 && token[0] == 'E' && isVersion(token[1:]) {
			return strings.Join(tokens[i+1:], " ")
		}
	}
	return ""
}

func isVersion(s string) bool {
	major, minor, found := strings.Cut(s, ".")
	if !found {
		return false
	}
	if _, err := strconv.Atoi(major); err != nil {
		return false
	}
	_, err := strconv.Atoi(minor)
	return err == nil
}

// parseIdentities handles the first field of data and sequence lines: either
// a codepoint range "2600..2604", expanded to one identity per codepoint, or
// a single whitespace-separated sequence.
func parseIdentities(field string) ([]domain.Identity, error) {
	lo, hi, isRange := strings.Cut(field, "..")
	if !isRange {
		id, err := parseSequence(field)
		if err != nil {
			return nil, err
		}
		return []domain.Identity{id}, nil
	}

	first, err := parseCodepoint(lo)
	if err != nil {
		return nil, err
	}
	last, err := parseCodepoint(hi)
	if err != nil {
		return nil, err
	}
	if last < first {
		return nil, zerr.With(zerr.Wrap(domain.ErrMalformedTable, "descending codepoint range"), "range", field)
	}

	ids := make([]domain.Identity, 0, last-first+1)
	for cp := first; cp <= last; cp++ {
		id, err := domain.NewIdentity([]rune{cp})
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseSequence(field string) (domain.Identity, error) {
	tokens := strings.Fields(field)
	seq := make([]rune, 0, len(tokens))
	for _, token := range tokens {
		cp, err := parseCodepoint(token)
		if err != nil {
			return domain.Identity{}, err
		}
		seq = append(seq, cp)
	}
	if len(seq) == 0 {
		return domain.Identity{}, zerr.Wrap(domain.ErrMalformedTable, "empty codepoint sequence")
	}
	return domain.NewIdentity(seq)
}

func parseCodepoint(s string) (rune, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "U+")
	cp, err := strconv.ParseUint(s, 16, 32)
	if err != nil || cp == 0 || cp > 0x10FFFF {
		return 0, zerr.With(zerr.Wrap(domain.ErrMalformedTable, "invalid codepoint"), "codepoint", s)
	}
	return rune(cp), nil
}

func malformed(source string, line int, msg string) error {
	err := zerr.Wrap(domain.ErrMalformedTable, msg)
	err = zerr.With(err, "source", source)
	return zerr.With(err, "line", line)
}
