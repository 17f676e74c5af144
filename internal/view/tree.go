package view

// Box returns a container node.
func Box(key string, style Style, children ...*Node) *Node {
	return &Node{Kind: KindView, Key: key, Style: style, Children: compact(children)}
}

// Text returns a text node.
func Text(key, text string, style Style) *Node {
	return &Node{Kind: KindText, Key: key, Text: text, Style: style}
}

// Button returns a pressable node that reports action when pressed.
func Button(key, action string, style Style, children ...*Node) *Node {
	return &Node{Kind: KindButton, Key: key, Action: action, Style: style, Children: compact(children)}
}

// Image returns an image node. An empty source renders as a placeholder.
func Image(key, source string, style Style) *Node {
	return &Node{Kind: KindImage, Key: key, Source: source, Style: style}
}

// Icon returns a named glyph node.
func Icon(key, name string, style Style) *Node {
	return &Node{Kind: KindIcon, Key: key, Icon: name, Style: style}
}

// List returns a scrollable list node.
func List(key string, style Style, children ...*Node) *Node {
	return &Node{Kind: KindList, Key: key, Style: style, Children: compact(children)}
}

// compact drops nil children so components can use conditionals inline.
func compact(nodes []*Node) []*Node {
	out := nodes[:0:0]
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Walk visits n and its descendants depth first. Returning false from fn
// skips the node's children.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// Find returns the first node with the given key, or nil.
func Find(root *Node, key string) *Node {
	var found *Node
	Walk(root, func(n *Node) bool {
		if found != nil {
			return false
		}
		if n.Key == key {
			found = n
			return false
		}
		return true
	})
	return found
}

// Actions returns the actions of every button in the tree, in tree order.
func Actions(root *Node) []string {
	var out []string
	Walk(root, func(n *Node) bool {
		if n.Kind == KindButton && n.Action != "" {
			out = append(out, n.Action)
		}
		return true
	})
	return out
}
