package pyast

// AttachParents assigns each node's Parent back-pointer in a single
// depth-first traversal. It must run before catalog construction, which
// classifies functions by their enclosing definition. Re-running is
// harmless but wasteful; callers should attach once per tree.
func AttachParents(t *Tree) {
	var attach func(n *Node)
	attach = func(n *Node) {
		for _, c := range n.Children {
			c.Parent = n
			attach(c)
		}
	}
	attach(t.Root)
	t.annotated = true
}
