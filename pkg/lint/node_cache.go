package lint

import "github.com/yaklabco/gocsslint/pkg/css"

// NodeCache indexes stylesheet nodes by kind, in document order.
// It is built once per rule context.
type NodeCache struct {
	rules        []*css.Node
	atRules      []*css.Node
	declarations []*css.Node
	comments     []*css.Node
}

func newNodeCache() *NodeCache {
	return &NodeCache{}
}

func (nc *NodeCache) build(root *css.Node) {
	_ = css.Walk(root, func(n *css.Node) error {
		switch n.Kind {
		case css.NodeRule:
			nc.rules = append(nc.rules, n)
		case css.NodeAtRule:
			nc.atRules = append(nc.atRules, n)
		case css.NodeDecl:
			nc.declarations = append(nc.declarations, n)
		case css.NodeComment:
			nc.comments = append(nc.comments, n)
		case css.NodeRoot:
		}
		return nil
	})
}

// Rules returns all style rules.
func (nc *NodeCache) Rules() []*css.Node {
	return nc.rules
}

// AtRules returns all at-rules.
func (nc *NodeCache) AtRules() []*css.Node {
	return nc.atRules
}

// Declarations returns all declarations, including SCSS variables.
func (nc *NodeCache) Declarations() []*css.Node {
	return nc.declarations
}

// Comments returns all comments.
func (nc *NodeCache) Comments() []*css.Node {
	return nc.comments
}

// Blocks returns every rule and at-rule that owns a block, in document order.
func (nc *NodeCache) Blocks() []*css.Node {
	var out []*css.Node
	ri, ai := 0, 0
	for ri < len(nc.rules) || ai < len(nc.atRules) {
		if ai >= len(nc.atRules) || (ri < len(nc.rules) && nc.rules[ri].StartOffset < nc.atRules[ai].StartOffset) {
			out = append(out, nc.rules[ri])
			ri++
			continue
		}
		if nc.atRules[ai].HasBlock {
			out = append(out, nc.atRules[ai])
		}
		ai++
	}
	return out
}
