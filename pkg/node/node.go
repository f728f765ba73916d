// Package node defines the polymorphic node-tree input type (spec.md §3,
// §6, §9): a tagged variant over Container/Text/Image/Svg, each carrying an
// optional style and Tailwind token list.
package node

import (
	"encoding/json"
	"fmt"

	"rasterkit/pkg/css"
)

// Kind discriminates the node variant.
type Kind int

const (
	KindContainer Kind = iota
	KindText
	KindImage
	KindSvg
)

// Node is one entry of the input tree. Exactly one of the content fields
// (Children, Text, Src, SvgContent) is meaningful, selected by Kind
// (spec.md §9 "Polymorphic nodes... single interface... do not share state
// across variants").
type Node struct {
	Kind Kind

	Style *css.Style
	TW    []string

	Children   []*Node // KindContainer
	Text       string  // KindText
	Src        string  // KindImage
	SvgContent string  // KindSvg
}

// InlineContentKind reports how this node participates in inline-run
// building (spec.md §9 "inline_content_kind").
type InlineContentKind int

const (
	InlineContentNone InlineContentKind = iota
	InlineContentText
	InlineContentAtomic
)

// InlineContentKind reports what kind of inline content this node
// contributes when absorbed into an ancestor's inline run.
func (n *Node) InlineContentKind() InlineContentKind {
	switch n.Kind {
	case KindText:
		return InlineContentText
	case KindImage, KindSvg:
		return InlineContentAtomic
	default:
		return InlineContentNone
	}
}

// IsDisplayInline reports whether this node's resolved style is
// `display: inline`, used by layout tree assembly to decide whether the
// node is absorbed into an ancestor's inline run rather than becoming its
// own solver node (spec.md §4.3 step 3). Containers default to block;
// text/image/svg nodes with no explicit display are treated as inline,
// matching ordinary replaced/text-content behavior.
func (n *Node) IsDisplayInline(computed *css.ComputedStyle) bool {
	if computed.Display == css.DisplayInline {
		return true
	}
	if n.Style == nil || n.Style.Display.Kind != css.ValueKindValue {
		return n.Kind == KindText || n.Kind == KindImage || n.Kind == KindSvg
	}
	return false
}

// jsonNode is the wire shape decoded from the tagged JSON input before
// being converted into a Node (spec.md §6).
type jsonNode struct {
	Type     string            `json:"type"`
	Style    map[string]string `json:"style"`
	TW       []string          `json:"tw"`
	Children []json.RawMessage `json:"children"`
	Text     string            `json:"text"`
	Src      string            `json:"src"`
	Content  string            `json:"content"`
}

// UnmarshalJSON decodes one of the four tagged node shapes described in
// spec.md §6. The wire style map is decoded as map[string]string and each
// value is parsed through the CSS parser by DecodeStyle, per known property
// name. Style values are accepted only as JSON strings: a typed (non-string)
// JSON value is not decoded and fails the whole decode.
func (n *Node) UnmarshalJSON(data []byte) error {
	var raw jsonNode
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Type {
	case "container":
		n.Kind = KindContainer
	case "text":
		n.Kind = KindText
		n.Text = raw.Text
	case "image":
		n.Kind = KindImage
		n.Src = raw.Src
	case "svg":
		n.Kind = KindSvg
		n.SvgContent = raw.Content
	default:
		return fmt.Errorf("node: unknown type %q", raw.Type)
	}
	n.TW = raw.TW

	if len(raw.Style) > 0 {
		style, err := DecodeStyle(raw.Style)
		if err != nil {
			return err
		}
		n.Style = style
	}

	for _, childRaw := range raw.Children {
		child := &Node{}
		if err := json.Unmarshal(childRaw, child); err != nil {
			return err
		}
		n.Children = append(n.Children, child)
	}
	return nil
}
