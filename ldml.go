package qlocalexml

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Draft is the resolution status of an LDML entry. An element without a
// draft attribute counts as approved.
type Draft int

const (
	DraftUnconfirmed Draft = iota
	DraftProvisional
	DraftContributed
	DraftApproved
)

var draftNames = map[string]Draft{
	"unconfirmed": DraftUnconfirmed,
	"provisional": DraftProvisional,
	"contributed": DraftContributed,
	"approved":    DraftApproved,
}

// ParseDraft maps an LDML draft attribute value to its Draft level.
// The empty string corresponds to Approved.
func ParseDraft(level string) (Draft, error) {
	if level == "" {
		return DraftApproved, nil
	}
	if d, ok := draftNames[level]; ok {
		return d, nil
	}
	return DraftApproved, fmt.Errorf("unknown draft level %q", level)
}

// NotFoundError reports a query that matched no acceptable entry.
// Callers that have a fallback check for it with IsNotFound and choose
// the next query themselves.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no entry for %q", e.Query)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

type node struct {
	name   string
	attr   map[string]string
	text   string
	kids   []*node
	parent *node
}

func (n *node) attribute(key string) string {
	if n.attr == nil {
		return ""
	}
	return n.attr[key]
}

func (n *node) draft() Draft {
	d, err := ParseDraft(n.attribute("draft"))
	if err != nil {
		return DraftUnconfirmed
	}
	return d
}

// document is a single parsed LDML file.
type document struct {
	path string
	root *node
}

func parseDocument(path string) (*document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var root *node
	cur := (*node)(nil)
	decoder := xml.NewDecoder(f)
	for {
		t, err := decoder.Token()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.Wrapf(err, "parse %v", path)
		}
		switch elem := t.(type) {
		case xml.StartElement:
			n := &node{name: elem.Name.Local, parent: cur}
			if 0 < len(elem.Attr) {
				n.attr = make(map[string]string, len(elem.Attr))
				for _, a := range elem.Attr {
					n.attr[a.Name.Local] = a.Value
				}
			}
			if cur == nil {
				root = n
			} else {
				cur.kids = append(cur.kids, n)
			}
			cur = n
		case xml.CharData:
			if cur != nil && len(cur.kids) == 0 {
				cur.text += string(elem)
			}
		case xml.EndElement:
			if cur != nil {
				if 0 < len(cur.kids) {
					cur.text = ""
				} else {
					cur.text = strings.TrimSpace(cur.text)
				}
				cur = cur.parent
			}
		}
	}
	if root == nil {
		return nil, errors.Errorf("parse %v: no root element", path)
	}
	return &document{path: path, root: root}, nil
}

// selector is one path segment of a query. The query language follows
// the form tag[attr=value]; a bare tag[value] filter is shorthand for
// tag[type=value] and tag[!attr] requires the attribute to be absent.
type selector struct {
	name    string
	filters []attrFilter
}

type attrFilter struct {
	key    string
	value  string
	equals bool
	absent bool
}

func parseQuery(query string) ([]selector, error) {
	parts := strings.Split(query, "/")
	sels := make([]selector, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		idx := strings.IndexByte(part, '[')
		if idx == -1 {
			sels = append(sels, selector{name: part})
			continue
		}
		sel := selector{name: part[:idx]}
		for idx < len(part) {
			if part[idx] != '[' {
				return nil, errors.Errorf("bad query syntax %q", query)
			}
			end := strings.IndexByte(part[idx+1:], ']')
			if end == -1 {
				return nil, errors.Errorf("bad query syntax %q", query)
			}
			expr := part[idx+1 : idx+1+end]
			if is := strings.IndexByte(expr, '='); is != -1 {
				sel.filters = append(sel.filters, attrFilter{key: expr[:is], value: expr[is+1:], equals: true})
			} else if strings.HasPrefix(expr, "!") {
				sel.filters = append(sel.filters, attrFilter{key: expr[1:], absent: true})
			} else {
				sel.filters = append(sel.filters, attrFilter{key: "type", value: expr, equals: true})
			}
			idx += 1 + end + 1
		}
		sels = append(sels, sel)
	}
	return sels, nil
}

func (sel selector) match(n *node) bool {
	if sel.name != n.name {
		return false
	}
	for _, f := range sel.filters {
		val, ok := "", false
		if n.attr != nil {
			val, ok = n.attr[f.key]
		}
		if f.absent {
			if ok {
				return false
			}
		} else if !ok || (f.equals && val != f.value) {
			return false
		}
	}
	return true
}

// findNode locates the first node matching the selector chain at or
// above minDraft, following in-file <alias source="locale" path=".."/>
// redirections along the way. A match below minDraft does not stop the
// search; a later sibling may still be acceptable.
func findNode(n *node, sels []selector, minDraft Draft) *node {
	if len(sels) == 0 {
		if n.draft() < minDraft {
			return nil
		}
		return n
	}
	for _, kid := range n.kids {
		if sels[0].match(kid) {
			if r := findNode(kid, sels[1:], minDraft); r != nil {
				return r
			}
		}
	}
	for _, kid := range n.kids {
		if kid.name == "alias" && kid.attribute("source") == "locale" {
			if target := followAliasPath(n, kid.attribute("path")); target != nil && target != n {
				if r := findNode(target, sels, minDraft); r != nil {
					return r
				}
			}
		}
	}
	return nil
}

// followAliasPath resolves an alias path attribute, a relative xpath of
// the form ../..//monthContext[@type='format'].
func followAliasPath(n *node, path string) *node {
	for _, comp := range strings.Split(path, "/") {
		if comp == "" || comp == "." {
			continue
		}
		if comp == ".." {
			if n = n.parent; n == nil {
				return nil
			}
			continue
		}
		name, key, value := comp, "", ""
		if idx := strings.IndexByte(comp, '['); idx != -1 {
			name = comp[:idx]
			expr := strings.TrimSuffix(comp[idx+1:], "]")
			expr = strings.TrimPrefix(expr, "@")
			if is := strings.IndexByte(expr, '='); is != -1 {
				key = expr[:is]
				value = strings.Trim(expr[is+1:], "'")
			}
		}
		var next *node
		for _, kid := range n.kids {
			if kid.name != name {
				continue
			}
			if key != "" && kid.attribute(key) != value {
				continue
			}
			next = kid
			break
		}
		if next == nil {
			return nil
		}
		n = next
	}
	return n
}

func (d *document) find(query string, minDraft Draft) (*node, error) {
	sels, err := parseQuery(query)
	if err != nil {
		return nil, err
	}
	n := findNode(d.root, sels, minDraft)
	if n == nil {
		return nil, &NotFoundError{Query: query}
	}
	return n, nil
}

// entry returns the text content of the first acceptable match.
func (d *document) entry(query string, minDraft Draft) (string, error) {
	n, err := d.find(query, minDraft)
	if err != nil {
		return "", err
	}
	return n.text, nil
}

// attrOf returns the named attribute of the first match, regardless of
// draft status. Identity and supplemental lookups use this form.
func (d *document) attrOf(query, attr string) (string, error) {
	n, err := d.find(query, DraftUnconfirmed)
	if err != nil {
		return "", err
	}
	return n.attribute(attr), nil
}

// alias returns the source locale if the whole file is an alias to
// another locale, as legacy locale files are.
func (d *document) alias() string {
	for _, kid := range d.root.kids {
		if kid.name == "alias" {
			return kid.attribute("source")
		}
	}
	return ""
}

// Tag is a leaf element: its name and attributes.
type Tag struct {
	Name string
	Attr map[string]string
}

// leaves returns all childless elements at or below the first node
// matching query, in document order.
func (d *document) leaves(query string) ([]Tag, error) {
	n, err := d.find(query, DraftUnconfirmed)
	if err != nil {
		return nil, err
	}
	var tags []Tag
	var walk func(*node)
	walk = func(n *node) {
		if len(n.kids) == 0 {
			tags = append(tags, Tag{Name: n.name, Attr: n.attr})
			return
		}
		for _, kid := range n.kids {
			walk(kid)
		}
	}
	walk(n)
	return tags, nil
}

// Source is the CLDR repository being read: the common/main directory
// plus its sibling supplemental and dtd directories. It owns the
// process-wide caches (parsed documents, numbering systems, the en.xml
// code-name maps and the defaultContent locale list), all populated at
// most once and read-only afterwards.
type Source struct {
	Dir string // the common/main directory
	Log *zap.SugaredLogger

	docs           map[string]*document
	numberSystems  map[string]NumberSystem
	codeNames      map[string]map[string]string
	defaultContent []string
	defaultLoaded  bool
}

func NewSource(dir string, log *zap.SugaredLogger) *Source {
	return &Source{Dir: dir, Log: log, docs: map[string]*document{}}
}

func (s *Source) document(path string) (*document, error) {
	if d, ok := s.docs[path]; ok {
		return d, nil
	}
	d, err := parseDocument(path)
	if err != nil {
		return nil, err
	}
	s.docs[path] = d
	return d, nil
}

// Locale returns the parsed document for a locale name such as "en_US".
func (s *Source) Locale(name string) (*document, error) {
	return s.document(filepath.Join(s.Dir, name+".xml"))
}

// Supplemental returns a parsed document from the supplemental sibling
// directory.
func (s *Source) Supplemental(filename string) (*document, error) {
	return s.document(filepath.Join(s.Dir, "..", "supplemental", filename))
}

// chain returns the locale inheritance chain for name, most specific
// first, ending at root. Parents whose file does not exist are skipped.
func (s *Source) chain(name string) ([]*document, error) {
	d, err := s.Locale(name)
	if err != nil {
		return nil, err
	}
	docs := []*document{d}
	for name != "root" {
		if idx := strings.LastIndexByte(name, '_'); idx != -1 {
			name = name[:idx]
		} else {
			name = "root"
		}
		if d, err := s.Locale(name); err == nil {
			docs = append(docs, d)
		}
	}
	return docs, nil
}

// FindEntry looks up query in the locale's inheritance chain and returns
// the text of the first entry at or above minDraft.
func (s *Source) FindEntry(locale, query string, minDraft Draft) (string, error) {
	docs, err := s.chain(locale)
	if err != nil {
		return "", err
	}
	for _, d := range docs {
		if v, err := d.entry(query, minDraft); err == nil {
			return v, nil
		}
	}
	return "", &NotFoundError{Query: query}
}

// codeName looks up the name the repository itself gives to a code, per
// the self-referential naming tables in en.xml. The scan happens at
// most once per Source; form is "language", "script" or "country".
func (s *Source) codeName(form, code string) string {
	if s.codeNames == nil {
		s.codeNames = map[string]map[string]string{
			"language": {},
			"script":   {},
			"country":  {},
		}
		if d, err := s.Locale("en"); err == nil {
			fill := func(query, elem, form string) {
				if n, err := d.find(query, DraftUnconfirmed); err == nil {
					for _, kid := range n.kids {
						if kid.name == elem {
							s.codeNames[form][kid.attribute("type")] = kid.text
						}
					}
				}
			}
			fill("localeDisplayNames/languages", "language", "language")
			fill("localeDisplayNames/scripts", "script", "script")
			fill("localeDisplayNames/territories", "territory", "country")
		}
	}
	return s.codeNames[form][code]
}

// DefaultContentLocales lists the locales declared as default content in
// the supplemental metadata, cached after the first call.
func (s *Source) DefaultContentLocales() ([]string, error) {
	if s.defaultLoaded {
		return s.defaultContent, nil
	}
	d, err := s.Supplemental("supplementalMetadata.xml")
	if err != nil {
		return nil, errors.Wrap(err, "supplemental metadata")
	}
	tags, err := d.leaves("metadata/defaultContent")
	if err != nil {
		return nil, err
	}
	for _, tag := range tags {
		if locales, ok := tag.Attr["locales"]; ok {
			s.defaultContent = append(s.defaultContent, strings.Fields(locales)...)
		}
	}
	s.defaultLoaded = true
	return s.defaultContent, nil
}
