package domain

import "strings"

// DefaultRootName labels the root in the breadcrumb trail when it has no name.
const DefaultRootName = "Root"

// TrailSeparator joins the breadcrumb trail.
const TrailSeparator = " > "

// ProjectionMode selects what a Projection lists.
type ProjectionMode int

const (
	ModeMenu ProjectionMode = iota
	ModeForm
)

// FormField is a variable of the selected leaf and its current value.
type FormField struct {
	Name  string
	Value string
}

// Projection is the render model of a navigation state.
type Projection struct {
	Trail    []string
	Mode     ProjectionMode
	Items    []DisplayItem
	Fields   []FormField
	Template string
}

// TrailText joins the trail, e.g. "Root > Git > Status".
func (p Projection) TrailText() string {
	return strings.Join(p.Trail, TrailSeparator)
}

// Project derives the render model from n. It does not modify n.
func Project(n *Navigator) Projection {
	rootName := n.root.Name()
	if rootName == "" {
		rootName = DefaultRootName
	}

	p := Projection{Trail: make([]string, 0, len(n.crumbs)+1)}
	p.Trail = append(p.Trail, rootName)
	for _, c := range n.crumbs {
		p.Trail = append(p.Trail, c.Name)
	}

	leaf, ok := n.current.(*Leaf)
	if !ok {
		p.Mode = ModeMenu
		p.Items = DisplayableChildren(n.current)
		return p
	}

	p.Mode = ModeForm
	p.Template = leaf.task.Template
	p.Fields = make([]FormField, 0, len(leaf.task.Variables))
	for _, v := range leaf.task.Variables {
		p.Fields = append(p.Fields, FormField{Name: v.Name, Value: n.values[v.Name]})
	}
	return p
}
