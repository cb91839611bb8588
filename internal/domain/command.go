package domain

// Command is an entry of the command tree: either a *Node or a *Leaf.
type Command interface {
	Shortcut() KeyChord
	Name() string
	command()
}

// Node is a sub-menu holding an ordered list of children.
type Node struct {
	shortcut KeyChord
	name     string
	children []Command
}

// Leaf is a directly executable entry.
type Leaf struct {
	shortcut KeyChord
	name     string
	task     CommandTask
}

// NewNode creates a node. Children keep their order.
func NewNode(shortcut KeyChord, name string, children ...Command) *Node {
	return &Node{shortcut: shortcut, name: name, children: children}
}

// NewLeaf creates a leaf running task.
func NewLeaf(shortcut KeyChord, name string, task CommandTask) *Leaf {
	return &Leaf{shortcut: shortcut, name: name, task: task}
}

func (n *Node) Shortcut() KeyChord { return n.shortcut }
func (n *Node) Name() string       { return n.name }
func (n *Node) command()           {}

// Children returns a copy of the node's children.
func (n *Node) Children() []Command {
	out := make([]Command, len(n.children))
	copy(out, n.children)
	return out
}

func (l *Leaf) Shortcut() KeyChord { return l.shortcut }
func (l *Leaf) Name() string       { return l.name }
func (l *Leaf) command()           {}

// Task returns the leaf's command task.
func (l *Leaf) Task() CommandTask { return l.task }

// DisplayItem is one row of the flat listing shown at a tree level.
type DisplayItem struct {
	Shortcut KeyChord
	Name     string
	IsNode   bool
}

// FindChildForShortcut returns the child of cmd bound to chord, or nil when cmd
// is a leaf or nothing matches.
func FindChildForShortcut(cmd Command, chord KeyChord) Command {
	node, ok := cmd.(*Node)
	if !ok {
		return nil
	}
	for _, child := range node.children {
		if child.Shortcut() == chord {
			return child
		}
	}
	return nil
}

// DisplayableChildren lists a node's direct children, or the leaf itself.
func DisplayableChildren(cmd Command) []DisplayItem {
	switch c := cmd.(type) {
	case *Leaf:
		return []DisplayItem{{Shortcut: c.shortcut, Name: c.name}}
	case *Node:
		items := make([]DisplayItem, 0, len(c.children))
		for _, child := range c.children {
			_, isNode := child.(*Node)
			items = append(items, DisplayItem{
				Shortcut: child.Shortcut(),
				Name:     child.Name(),
				IsNode:   isNode,
			})
		}
		return items
	default:
		return nil
	}
}

// ResolvePath follows path from root. It returns the deepest command reached
// and the number of chords consumed before the first miss.
func ResolvePath(root Command, path []KeyChord) (Command, int) {
	current := root
	for i, chord := range path {
		next := FindChildForShortcut(current, chord)
		if next == nil {
			return current, i
		}
		current = next
	}
	return current, len(path)
}

// LeafEntry describes a leaf reached by WalkLeaves.
type LeafEntry struct {
	Path  []KeyChord
	Names []string
	Leaf  *Leaf
}

// WalkLeaves visits every leaf below root in depth-first order.
// Path and Names exclude the root itself.
func WalkLeaves(root Command, fn func(LeafEntry)) {
	var walk func(cmd Command, path []KeyChord, names []string)
	walk = func(cmd Command, path []KeyChord, names []string) {
		switch c := cmd.(type) {
		case *Leaf:
			fn(LeafEntry{
				Path:  append([]KeyChord(nil), path...),
				Names: append([]string(nil), names...),
				Leaf:  c,
			})
		case *Node:
			for _, child := range c.children {
				walk(child, append(path, child.Shortcut()), append(names, child.Name()))
			}
		}
	}

	if leaf, ok := root.(*Leaf); ok {
		fn(LeafEntry{Leaf: leaf})
		return
	}
	walk(root, nil, nil)
}
