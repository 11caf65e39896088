// Package markup holds the minimal parse-tree node a template renderer
// hands around. Nodes may reference localized messages by their numeric
// ID; resolving those IDs is the msgcat.Catalog's job, and nothing here
// depends on how a catalog stores them.
package markup

import "strings"

// NoMsgID marks a node that does not reference a localized message.
const NoMsgID = -1

// Node is an element of a template's parse tree: a tag with an ordered
// child sequence, or a leaf text run when Tag is empty. For an open tag
// the children are its attributes, in source order.
type Node struct {
	Tag         string
	Text        string
	SelfClosing bool

	// MsgID is the ID of the localized message this node renders, or
	// NoMsgID.
	MsgID int64

	Children []*Node
}

// NewNode returns a tag node with no message reference.
func NewNode(tag string, selfClosing bool) *Node {
	return &Node{Tag: tag, SelfClosing: selfClosing, MsgID: NoMsgID}
}

// TextNode returns a leaf node holding a literal text run.
func TextNode(text string) *Node {
	return &Node{Text: text, MsgID: NoMsgID}
}

// Copy returns a deep copy of the subtree rooted at n. Node identity is
// preserved: a node reachable through multiple paths is copied once, so
// shared children stay shared in the copy.
func (n *Node) Copy() *Node {
	return n.copy(map[*Node]*Node{})
}

func (n *Node) copy(seen map[*Node]*Node) *Node {
	if n == nil {
		return nil
	}
	if dup, ok := seen[n]; ok {
		return dup
	}
	dup := &Node{
		Tag:         n.Tag,
		Text:        n.Text,
		SelfClosing: n.SelfClosing,
		MsgID:       n.MsgID,
	}
	seen[n] = dup
	if len(n.Children) > 0 {
		dup.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			dup.Children[i] = child.copy(seen)
		}
	}
	return dup
}

// SourceString reconstructs an approximation of the source text for
// debugging and error messages.
func (n *Node) SourceString() string {
	if n.Tag == "" {
		return n.Text
	}
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(n.Tag)
	for _, child := range n.Children {
		sb.WriteByte(' ')
		sb.WriteString(child.SourceString())
	}
	if n.SelfClosing {
		sb.WriteString("/>")
	} else {
		sb.WriteByte('>')
	}
	return sb.String()
}
