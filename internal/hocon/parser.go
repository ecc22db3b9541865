// internal/hocon/parser.go
package hocon

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"

	"github.com/sebastian-peter/tscfg/internal/config"
	"github.com/sebastian-peter/tscfg/internal/ctxlog"
)

// Parser is the HOCON-specific loader for schema documents.
type Parser struct{}

// NewParser creates a new HOCON parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile reads and parses a schema document from disk.
func (p *Parser) ParseFile(ctx context.Context, path string) (*config.Config, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Reading schema document.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Failed to read schema document",
			Detail:   err.Error(),
		}}
	}
	return p.Parse(ctx, path, src)
}

// Parse parses a schema document from a byte slice. The filename is
// used only for positions in diagnostics.
func (p *Parser) Parse(ctx context.Context, filename string, src []byte) (*config.Config, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx)

	ps := &parseState{s: newScanner(filename, string(src))}
	root := ps.parseDocument()
	if ps.diags.HasErrors() {
		return nil, ps.diags
	}

	logger.Debug("Schema document parsed.", "file", filename, "root_members", len(root.MemberNames()))
	return config.New(root), ps.diags
}

// parseState carries the scanner and accumulated diagnostics through one
// parse. A fatal diagnostic sets bail, which unwinds the recursion.
type parseState struct {
	s     *scanner
	diags hcl.Diagnostics
	bail  bool
}

var numberRe = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// errorf records a fatal diagnostic anchored at the given range.
func (p *parseState) errorf(rng hcl.Range, summary, format string, args ...any) {
	p.bail = true
	p.diags = append(p.diags, &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   fmt.Sprintf(format, args...),
		Subject:  &rng,
	})
}

// parseDocument parses the whole source: either a braced root object or
// a bare sequence of members.
func (p *parseState) parseDocument() *config.Value {
	start := p.s.pos()
	root := config.NewObject(config.Origin{Range: p.s.rangeFrom(start)})

	pending := p.skipGap()
	if p.s.peek() == '{' {
		p.s.next()
		p.parseBody(root, '}', pending)
		// Anything after the closing root brace except trivia is an error.
		p.skipGap()
		if !p.bail && !p.s.eof() {
			p.errorf(p.s.rangeFrom(p.s.pos()), "Unexpected content", "content after the closing root brace")
		}
	} else {
		p.parseBody(root, 0, pending)
	}

	ori := root.Origin()
	ori.Range = p.s.rangeFrom(start)
	root.SetOrigin(ori)
	return root
}

// parseBody parses members into obj until the terminator byte (or EOF
// when terminator is zero). firstPending carries a comment block the
// caller already consumed while looking for the body.
func (p *parseState) parseBody(obj *config.Value, terminator byte, firstPending []string) {
	pending := firstPending
	for !p.bail {
		pending = append(pending, p.skipGap()...)
		if p.s.eof() {
			if terminator != 0 {
				p.errorf(p.s.rangeFrom(p.s.pos()), "Unterminated object", "missing closing %q", string(terminator))
			}
			return
		}
		if terminator != 0 && p.s.peek() == terminator {
			p.s.next()
			return
		}
		if p.s.peek() == '}' || p.s.peek() == ']' {
			p.errorf(p.s.rangeFrom(p.s.pos()), "Unexpected delimiter", "unexpected %q", string(p.s.peek()))
			return
		}
		p.parseMember(obj, pending)
		pending = nil
	}
}

// parseMember parses one `key = value`, `key : value`, `key { ... }` or
// dotted-path member and inserts it into obj.
func (p *parseState) parseMember(obj *config.Value, pending []string) {
	keyStart := p.s.pos()
	segs := p.parseKeySegments()
	if p.bail {
		return
	}
	keyRange := p.s.rangeFrom(keyStart)
	p.s.skipInlineSpace()

	var val *config.Value
	switch p.s.peek() {
	case '{':
		val = p.parseObjectValue()
	case '=', ':':
		p.s.next()
		p.s.skipInlineSpace()
		if p.s.peek() == '{' {
			val = p.parseObjectValue()
		} else {
			val = p.parseValue()
			if val != nil && !p.bail {
				// A trailing comment on the value's own line belongs to it.
				p.s.skipInlineSpace()
				if p.s.atComment() {
					ori := val.Origin()
					ori.Comments = append(ori.Comments, p.s.readCommentLine())
					val.SetOrigin(ori)
				}
			}
		}
	default:
		p.errorf(p.s.rangeFrom(keyStart), "Malformed member",
			"expected '=', ':' or '{' after key %q", strings.Join(segs, "."))
		return
	}
	if p.bail || val == nil {
		return
	}

	ori := val.Origin()
	ori.Comments = append(append([]string(nil), pending...), ori.Comments...)
	val.SetOrigin(ori)

	p.insertMember(obj, segs, val, keyRange)
}

// parseKeySegments parses a dotted key path. A quoted segment whose
// content contains a dot (or is empty) keeps its quotes in the member
// name, so the dot never acts as a path separator downstream.
func (p *parseState) parseKeySegments() []string {
	var segs []string
	for {
		start := p.s.pos()
		var seg string
		if p.s.peek() == '"' {
			content := p.parseQuotedString()
			if p.bail {
				return nil
			}
			if strings.Contains(content, ".") || content == "" {
				seg = `"` + content + `"`
			} else {
				seg = content
			}
		} else {
			for !p.s.eof() && isKeyByte(p.s.peek()) {
				seg += string(p.s.next())
			}
			if seg == "" {
				p.errorf(p.s.rangeFrom(start), "Malformed key", "expected a key, found %q", string(p.s.peek()))
				return nil
			}
		}
		segs = append(segs, seg)
		if p.s.peek() != '.' {
			return segs
		}
		p.s.next()
	}
}

func isKeyByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '_', b == '-', b == '$':
		return true
	}
	return false
}

// parseObjectValue parses `{ ... }`. A comment on the same line as the
// opening brace is attached to the object itself, not to its first
// member; annotations such as `Dog { # @define extends Animal` rely on
// this.
func (p *parseState) parseObjectValue() *config.Value {
	start := p.s.pos()
	p.s.next() // consume '{'
	obj := config.NewObject(config.Origin{Range: p.s.rangeFrom(start)})

	var trailing []string
	p.s.skipInlineSpace()
	if p.s.atComment() {
		trailing = append(trailing, p.s.readCommentLine())
	}

	p.parseBody(obj, '}', nil)

	obj.SetOrigin(config.Origin{Range: p.s.rangeFrom(start), Comments: trailing})
	return obj
}

// parseArrayValue parses `[ v, v, ... ]` with comma or newline element
// separators.
func (p *parseState) parseArrayValue() *config.Value {
	start := p.s.pos()
	p.s.next() // consume '['
	var elems []*config.Value
	for !p.bail {
		p.skipGap()
		if p.s.eof() {
			p.errorf(p.s.rangeFrom(start), "Unterminated array", "missing closing ']'")
			return nil
		}
		if p.s.peek() == ']' {
			p.s.next()
			return config.NewList(elems, config.Origin{Range: p.s.rangeFrom(start)})
		}
		elem := p.parseValue()
		if p.bail || elem == nil {
			return nil
		}
		elems = append(elems, elem)
	}
	return nil
}

// parseValue parses a single value: object, array, quoted string, or an
// unquoted scalar running to the end of the line or to the next `,`,
// `}`, `]` or comment.
func (p *parseState) parseValue() *config.Value {
	start := p.s.pos()
	switch p.s.peek() {
	case '{':
		return p.parseObjectValue()
	case '[':
		return p.parseArrayValue()
	case '"':
		content := p.parseQuotedString()
		if p.bail {
			return nil
		}
		return config.NewString(content, strconv.Quote(content), config.Origin{Range: p.s.rangeFrom(start)})
	}

	var raw string
	for !p.s.eof() {
		b := p.s.peek()
		if b == '\n' || b == ',' || b == '}' || b == ']' || p.s.atComment() {
			break
		}
		raw += string(p.s.next())
	}
	raw = strings.TrimRight(raw, " \t\r")
	origin := config.Origin{Range: p.s.rangeFrom(start)}

	switch {
	case raw == "":
		p.errorf(p.s.rangeFrom(start), "Missing value", "expected a value")
		return nil
	case raw == "true":
		return config.NewBool(true, raw, origin)
	case raw == "false":
		return config.NewBool(false, raw, origin)
	case raw == "null":
		return config.NewNull(origin)
	case numberRe.MatchString(raw):
		n, err := cty.ParseNumberVal(raw)
		if err == nil {
			return config.NewNumber(n, raw, origin)
		}
		// Literals cty cannot parse stay strings; the model builder then
		// treats them like any other string leaf.
		return config.NewString(raw, raw, origin)
	default:
		return config.NewString(raw, raw, origin)
	}
}

// parseQuotedString parses a double-quoted string with the usual escape
// sequences and returns its decoded content.
func (p *parseState) parseQuotedString() string {
	start := p.s.pos()
	p.s.next() // consume '"'
	var sb strings.Builder
	for {
		if p.s.eof() || p.s.peek() == '\n' {
			p.errorf(p.s.rangeFrom(start), "Unterminated string", "missing closing quote")
			return ""
		}
		b := p.s.next()
		if b == '"' {
			return sb.String()
		}
		if b != '\\' {
			sb.WriteByte(b)
			continue
		}
		esc := p.s.next()
		switch esc {
		case '"', '\\', '/':
			sb.WriteByte(esc)
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'u':
			var hex string
			for i := 0; i < 4 && !p.s.eof(); i++ {
				hex += string(p.s.next())
			}
			code, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				p.errorf(p.s.rangeFrom(start), "Invalid escape", "invalid unicode escape \\u%s", hex)
				return ""
			}
			sb.WriteRune(rune(code))
		default:
			p.errorf(p.s.rangeFrom(start), "Invalid escape", "unknown escape sequence \\%s", string(esc))
			return ""
		}
	}
}

// skipGap consumes whitespace, commas and comments between members and
// returns the comment block adjacent to the next token. A blank line
// detaches any comments above it.
func (p *parseState) skipGap() []string {
	var pending []string
	newlines := 0
	for !p.s.eof() {
		switch {
		case p.s.peek() == ' ' || p.s.peek() == '\t' || p.s.peek() == '\r' || p.s.peek() == ',':
			p.s.next()
		case p.s.peek() == '\n':
			p.s.next()
			newlines++
			if newlines >= 2 {
				pending = nil
			}
		case p.s.atComment():
			pending = append(pending, p.s.readCommentLine())
			newlines = 0
		default:
			return pending
		}
	}
	return pending
}

// insertMember places val under the dotted path segs, creating
// intermediate objects on demand. Two objects arriving at the same key
// merge; any other collision is last-wins.
func (p *parseState) insertMember(obj *config.Value, segs []string, val *config.Value, keyRange hcl.Range) {
	cur := obj
	for _, seg := range segs[:len(segs)-1] {
		if m := cur.Member(seg); m != nil && m.Kind() == config.ObjectKind {
			cur = m
			continue
		}
		inner := config.NewObject(config.Origin{Range: keyRange})
		cur.SetMember(seg, inner)
		cur = inner
	}
	last := segs[len(segs)-1]
	if existing := cur.Member(last); existing != nil &&
		existing.Kind() == config.ObjectKind && val.Kind() == config.ObjectKind {
		mergeObjects(existing, val)
		return
	}
	cur.SetMember(last, val)
}

// mergeObjects folds the members of src into dst, object-over-object
// recursively and last-wins otherwise. Comments from src join dst's so
// annotations survive split definitions.
func mergeObjects(dst, src *config.Value) {
	for _, name := range src.MemberNames() {
		sv := src.Member(name)
		if dv := dst.Member(name); dv != nil &&
			dv.Kind() == config.ObjectKind && sv.Kind() == config.ObjectKind {
			mergeObjects(dv, sv)
			continue
		}
		dst.SetMember(name, sv)
	}
	if sc := src.Origin().Comments; len(sc) > 0 {
		ori := dst.Origin()
		ori.Comments = append(ori.Comments, sc...)
		dst.SetOrigin(ori)
	}
}
