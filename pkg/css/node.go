package css

// NodeKind classifies the type of a stylesheet node.
type NodeKind uint8

// Node kinds mirror the usual stylesheet object model.
const (
	NodeRoot NodeKind = iota
	NodeRule
	NodeAtRule
	NodeDecl
	NodeComment
)

// String returns the lower-case kind name.
func (k NodeKind) String() string {
	switch k {
	case NodeRoot:
		return "root"
	case NodeRule:
		return "rule"
	case NodeAtRule:
		return "atrule"
	case NodeDecl:
		return "decl"
	case NodeComment:
		return "comment"
	default:
		return "unknown"
	}
}

// Node is a single node of a parsed stylesheet.
// Only the fields relevant to Kind are populated.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Parent is nil for the root.
	Parent *Node

	// Children holds the nodes inside a block.
	Children []*Node

	// Selector is the raw selector of a rule.
	Selector string

	// Name and Params describe an at-rule (Name without the leading "@").
	Name   string
	Params string

	// Prop, Value and Important describe a declaration.
	Prop      string
	Value     string
	Important bool

	// ValueOffset is the byte offset of Value within the source.
	ValueOffset int

	// Text is the comment body without delimiters, trimmed.
	Text string

	// Inline is true for "//" line comments.
	Inline bool

	// HasBlock is true when the node owns a {...} block.
	HasBlock bool

	// StartOffset and EndOffset delimit the node in the source (end exclusive).
	StartOffset int
	EndOffset   int

	// Start and End are the 1-based positions of the first and last byte.
	Start Position
	End   Position
}

// IsContainer returns true if the node can hold children.
func (n *Node) IsContainer() bool {
	return n.Kind == NodeRoot || n.HasBlock
}

// Depth returns the number of block ancestors between n and the root.
func (n *Node) Depth() int {
	depth := 0
	for p := n.Parent; p != nil && p.Kind != NodeRoot; p = p.Parent {
		depth++
	}
	return depth
}

// append attaches child as the last child of n.
func (n *Node) append(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(n *Node) error

// Walk performs a pre-order traversal of the tree starting at root.
func Walk(root *Node, walkFunc WalkFunc) error {
	if root == nil {
		return nil
	}
	if err := walkFunc(root); err != nil {
		return err
	}
	for _, child := range root.Children {
		if err := Walk(child, walkFunc); err != nil {
			return err
		}
	}
	return nil
}

// Collect returns all nodes of the given kind in document order.
func Collect(root *Node, kind NodeKind) []*Node {
	var out []*Node
	_ = Walk(root, func(n *Node) error {
		if n.Kind == kind {
			out = append(out, n)
		}
		return nil
	})
	return out
}
