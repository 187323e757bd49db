// Package results models a parsed MQSim result document as a generic element
// tree. Result files differ between simulator builds, so the model makes no
// assumption about which elements or attributes are present; lookups report
// absence instead of failing.
package results

import (
	"encoding/xml"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Element is a single node of a result document.
type Element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []*Element `xml:",any"`
	Text     string     `xml:",chardata"`
}

// Document is a parsed result file.
type Document struct {
	Root *Element
}

// ParseFile reads and parses the result document at path.
func ParseFile(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening result file %q failed", path)
	}
	defer file.Close()

	root := &Element{}
	if err := xml.NewDecoder(file).Decode(root); err != nil {
		return nil, errors.Wrapf(err, "decoding result file %q failed", path)
	}

	return &Document{Root: root}, nil
}

// Parse parses a result document from raw bytes.
func Parse(data []byte) (*Document, error) {
	root := &Element{}
	if err := xml.Unmarshal(data, root); err != nil {
		return nil, errors.Wrap(err, "decoding result document failed")
	}
	return &Document{Root: root}, nil
}

// FindPath returns the first element under the document root matching the
// slash separated path, or nil when the subtree is absent.
func (d *Document) FindPath(path string) *Element {
	return d.Root.FindPath(path)
}

// FindAllPath returns all elements under the document root matching the slash
// separated path.
func (d *Document) FindAllPath(path string) []*Element {
	return d.Root.FindAllPath(path)
}

// Find returns the first direct child with the given name, or nil.
func (e *Element) Find(name string) *Element {
	for _, child := range e.Children {
		if child.XMLName.Local == name {
			return child
		}
	}
	return nil
}

// FindAll returns all direct children with the given name.
func (e *Element) FindAll(name string) []*Element {
	found := []*Element{}
	for _, child := range e.Children {
		if child.XMLName.Local == name {
			found = append(found, child)
		}
	}
	return found
}

// FindPath walks a slash separated path of element names and returns the
// first match, or nil when any segment is missing.
func (e *Element) FindPath(path string) *Element {
	current := e
	for _, segment := range strings.Split(path, "/") {
		current = current.Find(segment)
		if current == nil {
			return nil
		}
	}
	return current
}

// FindAllPath walks a slash separated path and returns every element matching
// the final segment under the first match of the leading segments.
func (e *Element) FindAllPath(path string) []*Element {
	segments := strings.Split(path, "/")
	current := e
	for _, segment := range segments[:len(segments)-1] {
		current = current.Find(segment)
		if current == nil {
			return nil
		}
	}
	return current.FindAll(segments[len(segments)-1])
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, attr := range e.Attrs {
		if attr.Name.Local == name {
			return attr.Value, true
		}
	}
	return "", false
}

// IntAttr returns the named attribute parsed as an integer.
func (e *Element) IntAttr(name string) (int64, bool) {
	value, ok := e.Attr(name)
	if !ok {
		return 0, false
	}
	return SafeInt(value)
}

// FloatAttr returns the named attribute parsed as a float.
func (e *Element) FloatAttr(name string) (float64, bool) {
	value, ok := e.Attr(name)
	if !ok {
		return 0, false
	}
	return SafeFloat(value)
}

// ChildText returns the text content of the first direct child with the
// given name.
func (e *Element) ChildText(name string) (string, bool) {
	child := e.Find(name)
	if child == nil {
		return "", false
	}
	return child.Text, true
}

// IntChild returns the text of the named child parsed as an integer.
func (e *Element) IntChild(name string) (int64, bool) {
	text, ok := e.ChildText(name)
	if !ok {
		return 0, false
	}
	return SafeInt(text)
}

// FloatChild returns the text of the named child parsed as a float.
func (e *Element) FloatChild(name string) (float64, bool) {
	text, ok := e.ChildText(name)
	if !ok {
		return 0, false
	}
	return SafeFloat(text)
}

// SafeInt leniently parses an integer from document text. Values written in
// float notation are truncated. Empty or malformed text reports absence.
func SafeInt(text string) (int64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}
	if value, err := strconv.ParseInt(text, 10, 64); err == nil {
		return value, true
	}
	if value, err := strconv.ParseFloat(text, 64); err == nil {
		return int64(value), true
	}
	return 0, false
}

// SafeFloat leniently parses a float from document text. Empty or malformed
// text reports absence.
func SafeFloat(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
