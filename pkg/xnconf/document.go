// Package xnconf builds the XML settings document read by the xNormal
// command line baker.
package xnconf

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Attr is a single name/value attribute.
type Attr struct {
	Name  string
	Value string
}

// Element is an XML element whose attributes keep insertion order.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
}

// NewElement creates an empty element.
func NewElement(name string) *Element {
	return &Element{Name: name}
}

// Set assigns an attribute. An existing attribute keeps its position and only
// its value changes.
func (e *Element) Set(name, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

// Get returns the value of an attribute.
func (e *Element) Get(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Append adds child elements and returns e.
func (e *Element) Append(children ...*Element) *Element {
	e.Children = append(e.Children, children...)
	return e
}

// Child returns the first child with the given name, or nil.
func (e *Element) Child(name string) *Element {
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Document is a complete xNormal settings document.
type Document struct {
	Root *Element
}

// Find walks a slash separated path of element names from the root, e.g.
// "LowPolyModel/Mesh". An empty path returns the root.
func (d *Document) Find(path string) *Element {
	e := d.Root
	if path == "" {
		return e
	}
	for _, name := range strings.Split(path, "/") {
		if e == nil {
			return nil
		}
		e = e.Child(name)
	}
	return e
}

// WriteTo encodes the document as tab indented XML with a declaration.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	if _, err := io.WriteString(cw, xml.Header); err != nil {
		return cw.n, err
	}

	enc := xml.NewEncoder(cw)
	enc.Indent("", "\t")
	if err := encodeElement(enc, d.Root); err != nil {
		return cw.n, fmt.Errorf("encoding %s: %w", d.Root.Name, err)
	}
	if err := enc.Flush(); err != nil {
		return cw.n, err
	}
	_, err := io.WriteString(cw, "\n")
	return cw.n, err
}

func encodeElement(enc *xml.Encoder, e *Element) error {
	start := xml.StartElement{Name: xml.Name{Local: e.Name}}
	for _, a := range e.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, c := range e.Children {
		if err := encodeElement(enc, c); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
