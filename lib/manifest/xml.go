// Copyright 2026 The ApkForge Authors
// SPDX-License-Identifier: Apache-2.0

// Package manifest provides the small XML document model used for
// package manifests: namespace-aware elements with source line
// numbers, attribute lookup by namespace and local name, and
// in-place mutation of compiled integer values.
package manifest

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SchemaAndroid is the platform's reserved attribute namespace.
const SchemaAndroid = "http://schemas.android.com/apk/res/android"

// Document is one parsed manifest. Root is nil when the input
// contained no element at all.
type Document struct {
	Root *Element

	// Source identifies where the document came from, for
	// diagnostics ("app.apkg!AndroidManifest.xml").
	Source string
}

// Element is one XML element with resolved namespaces.
type Element struct {
	NamespaceURI string
	Name         string
	Attributes   []*Attribute
	Children     []*Element

	// Text is the concatenated character data directly inside the
	// element, trimmed of surrounding whitespace.
	Text string

	// Line is the 1-based source line the element starts on.
	Line int
}

// Attribute is one attribute with a resolved namespace. When the
// value parses as a decimal integer, CompiledInt carries the compiled
// form alongside the raw string.
type Attribute struct {
	NamespaceURI string
	Name         string
	Value        string
	CompiledInt  *int
}

// SetInt overwrites the attribute's compiled integer value and keeps
// the string form in sync.
func (a *Attribute) SetInt(value int) {
	a.Value = strconv.Itoa(value)
	compiled := value
	a.CompiledInt = &compiled
}

// FindChild returns the first direct child with the given namespace
// URI and local name, or nil.
func (e *Element) FindChild(namespaceURI, name string) *Element {
	for _, child := range e.Children {
		if child.NamespaceURI == namespaceURI && child.Name == name {
			return child
		}
	}
	return nil
}

// FindAttribute returns the attribute with the given namespace URI
// and local name, or nil.
func (e *Element) FindAttribute(namespaceURI, name string) *Attribute {
	for _, attribute := range e.Attributes {
		if attribute.NamespaceURI == namespaceURI && attribute.Name == name {
			return attribute
		}
	}
	return nil
}

// Parse decodes a manifest document. Namespace prefixes are resolved
// to URIs and each element records its source line. A document with
// no element yields Root == nil without error; malformed XML is an
// error.
func Parse(source string, data []byte) (*Document, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	document := &Document{Source: source}
	var stack []*Element

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", source, err)
		}

		switch typed := token.(type) {
		case xml.StartElement:
			line, _ := decoder.InputPos()
			element := &Element{
				NamespaceURI: typed.Name.Space,
				Name:         typed.Name.Local,
				Line:         line,
			}
			for _, attr := range typed.Attr {
				// Namespace declarations are carried implicitly by the
				// resolved URIs; drop them from the attribute list.
				if attr.Name.Space == "xmlns" || (attr.Name.Space == "" && attr.Name.Local == "xmlns") {
					continue
				}
				attribute := &Attribute{
					NamespaceURI: attr.Name.Space,
					Name:         attr.Name.Local,
					Value:        attr.Value,
				}
				if compiled, err := strconv.Atoi(attr.Value); err == nil {
					attribute.CompiledInt = &compiled
				}
				element.Attributes = append(element.Attributes, attribute)
			}

			if len(stack) == 0 {
				if document.Root != nil {
					return nil, fmt.Errorf("parsing %s: multiple root elements", source)
				}
				document.Root = element
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, element)
			}
			stack = append(stack, element)

		case xml.EndElement:
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) > 0 {
				text := strings.TrimSpace(string(typed))
				if text != "" {
					current := stack[len(stack)-1]
					current.Text += text
				}
			}
		}
	}

	return document, nil
}

// Encode serializes the document back to XML. The android namespace
// keeps its conventional prefix; any other namespace gets a generated
// one. All namespace declarations are emitted on the root element.
func (d *Document) Encode() ([]byte, error) {
	if d.Root == nil {
		return nil, fmt.Errorf("encoding %s: document has no root element", d.Source)
	}

	prefixes := map[string]string{SchemaAndroid: "android"}
	collectNamespaces(d.Root, prefixes)

	var buffer bytes.Buffer
	buffer.WriteString(xml.Header)
	if err := encodeElement(&buffer, d.Root, prefixes, true); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", d.Source, err)
	}
	buffer.WriteByte('\n')
	return buffer.Bytes(), nil
}

// collectNamespaces assigns a prefix to every namespace URI used in
// the tree.
func collectNamespaces(element *Element, prefixes map[string]string) {
	assign := func(uri string) {
		if uri == "" {
			return
		}
		if _, ok := prefixes[uri]; !ok {
			prefixes[uri] = fmt.Sprintf("ns%d", len(prefixes))
		}
	}
	assign(element.NamespaceURI)
	for _, attribute := range element.Attributes {
		assign(attribute.NamespaceURI)
	}
	for _, child := range element.Children {
		collectNamespaces(child, prefixes)
	}
}

func encodeElement(buffer *bytes.Buffer, element *Element, prefixes map[string]string, root bool) error {
	name := qualifiedName(element.NamespaceURI, element.Name, prefixes)

	buffer.WriteByte('<')
	buffer.WriteString(name)

	if root {
		// Deterministic declaration order: android first, then
		// generated prefixes in assignment order.
		type declaration struct{ prefix, uri string }
		var declarations []declaration
		for uri, prefix := range prefixes {
			declarations = append(declarations, declaration{prefix, uri})
		}
		for i := 0; i < len(declarations); i++ {
			for j := i + 1; j < len(declarations); j++ {
				if declarations[j].prefix < declarations[i].prefix {
					declarations[i], declarations[j] = declarations[j], declarations[i]
				}
			}
		}
		for _, decl := range declarations {
			if namespaceUsed(element, decl.uri) {
				fmt.Fprintf(buffer, " xmlns:%s=%q", decl.prefix, decl.uri)
			}
		}
	}

	for _, attribute := range element.Attributes {
		buffer.WriteByte(' ')
		buffer.WriteString(qualifiedName(attribute.NamespaceURI, attribute.Name, prefixes))
		buffer.WriteString(`="`)
		if err := xml.EscapeText(buffer, []byte(attribute.Value)); err != nil {
			return err
		}
		buffer.WriteByte('"')
	}

	if len(element.Children) == 0 && element.Text == "" {
		buffer.WriteString(" />")
		return nil
	}

	buffer.WriteByte('>')
	if element.Text != "" {
		if err := xml.EscapeText(buffer, []byte(element.Text)); err != nil {
			return err
		}
	}
	for _, child := range element.Children {
		if err := encodeElement(buffer, child, prefixes, false); err != nil {
			return err
		}
	}
	buffer.WriteString("</" + name + ">")
	return nil
}

// namespaceUsed reports whether uri appears anywhere in the tree.
func namespaceUsed(element *Element, uri string) bool {
	if element.NamespaceURI == uri {
		return true
	}
	for _, attribute := range element.Attributes {
		if attribute.NamespaceURI == uri {
			return true
		}
	}
	for _, child := range element.Children {
		if namespaceUsed(child, uri) {
			return true
		}
	}
	return false
}

func qualifiedName(namespaceURI, local string, prefixes map[string]string) string {
	if namespaceURI == "" {
		return local
	}
	return prefixes[namespaceURI] + ":" + local
}
