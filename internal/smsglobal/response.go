package smsglobal

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// Response is the XML payload of a remote call converted to a tree.
// The gateway payloads have a single `resp` root element.
type Response struct {
	Root *Node
}

type Node struct {
	Name     string
	Attrs    []Attr
	Text     string
	Children []*Node
}

type Attr struct {
	Name  string
	Value string
}

// Lookup returns the value at the dot separated path given, where
// the first element is the root name and an element prefixed with
// `@` designates an attribute, for example `resp.@err`.
func (r Response) Lookup(path string) (value string, ok bool) {
	if r.Root == nil {
		return "", false
	}

	names := strings.Split(path, ".")
	if names[0] != r.Root.Name {
		return "", false
	}

	node := r.Root
	for i, name := range names[1:] {
		if strings.HasPrefix(name, "@") {
			if i != len(names)-2 {
				return "", false
			}
			return node.Attr(strings.TrimPrefix(name, "@"))
		}
		node = node.Child(name)
		if node == nil {
			return "", false
		}
	}
	return node.Text, true
}

// ErrorCode returns the error attribute of the root element, or the
// empty string if it is not set or set to "0".
func (r Response) ErrorCode() string {
	if r.Root == nil {
		return ""
	}
	code, _ := r.Root.Attr("err")
	if code == "0" {
		return ""
	}
	return code
}

// Map returns the response tree as nested maps keyed by element names,
// with attributes keyed by their name prefixed with `@`. Elements without
// attribute nor child are plain strings, repeated elements are slices.
func (r Response) Map() map[string]any {
	if r.Root == nil {
		return map[string]any{}
	}
	return map[string]any{r.Root.Name: r.Root.value()}
}

func (r Response) String() string {
	if r.Root == nil {
		return ""
	}
	return r.Root.String()
}

func (n *Node) Attr(name string) (value string, ok bool) {
	for _, attr := range n.Attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Child returns the first child element named name, or nil.
func (n *Node) Child(name string) *Node {
	for _, child := range n.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

func (n *Node) String() string {
	var builder strings.Builder
	n.write(&builder, "")
	return strings.TrimSuffix(builder.String(), "\n")
}

func (n *Node) write(builder *strings.Builder, indent string) {
	builder.WriteString(indent + n.Name)
	for _, attr := range n.Attrs {
		builder.WriteString(fmt.Sprintf(" @%s=%s", attr.Name, attr.Value))
	}
	if n.Text != "" {
		builder.WriteString(": " + n.Text)
	}
	builder.WriteString("\n")
	for _, child := range n.Children {
		child.write(builder, indent+"  ")
	}
}

func (n *Node) value() any {
	if len(n.Attrs) == 0 && len(n.Children) == 0 {
		return n.Text
	}

	fields := make(map[string]any, len(n.Attrs)+len(n.Children)+1)
	for _, attr := range n.Attrs {
		fields["@"+attr.Name] = attr.Value
	}
	if n.Text != "" {
		fields["@"] = n.Text
	}

	for _, child := range n.Children {
		value := child.value()
		existing, ok := fields[child.Name]
		if !ok {
			fields[child.Name] = value
			continue
		}
		values, isSlice := existing.([]any)
		if !isSlice {
			values = []any{existing}
		}
		fields[child.Name] = append(values, value)
	}
	return fields
}

func parseXML(payload string) (response Response, err error) {
	document := etree.NewDocument()
	err = document.ReadFromString(payload)
	if err != nil {
		return response, err
	}

	root := document.Root()
	if root == nil {
		return response, fmt.Errorf("%w", ErrRootMissing)
	}

	return Response{Root: toNode(root)}, nil
}

func toNode(element *etree.Element) *Node {
	node := &Node{
		Name: element.Tag,
		Text: strings.TrimSpace(element.Text()),
	}

	for _, attr := range element.Attr {
		if attr.Space == "xmlns" || (attr.Space == "" && attr.Key == "xmlns") {
			continue
		}
		node.Attrs = append(node.Attrs, Attr{Name: attr.Key, Value: attr.Value})
	}

	for _, child := range element.ChildElements() {
		node.Children = append(node.Children, toNode(child))
	}

	return node
}
