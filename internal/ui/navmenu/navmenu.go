// ABOUTME: Recursive navigation menu with per-node expansion state
// ABOUTME: Flat expansion map keyed by path so duplicate labels stay distinct

package navmenu

import (
	"fmt"
	"strings"
)

// Item is one labeled node. Target is the navigation destination (empty for
// pure group headers); Children nest to arbitrary depth.
type Item struct {
	Label    string
	Target   string
	Children []Item
}

// Items is the static menu tree of the console.
var Items = []Item{
	{Label: "Inicio", Target: "/"},
	{
		Label: "Personal",
		Children: []Item{
			{Label: "Ver todo el personal", Target: "/personal"},
			{
				Label: "Investigador/a",
				Children: []Item{
					{Label: "Ver todos los Investigadores", Target: "/investigadores"},
					{Label: "Actividades en Docencia", Target: "/docenciaInvestigador"},
					{Label: "Trabajos en Reunión Científica", Target: "/trabajosCientInv"},
				},
			},
		},
	},
	{
		Label: "Proyectos",
		Children: []Item{
			{Label: "Ver todos los proyectos", Target: "/proyectos"},
			{Label: "Trabajos en Revistas", Target: "/trabajosProyectos"},
			{Label: "Distinciones Recibidas", Target: "/distincionesProyectos"},
		},
	},
	{
		Label: "Actividades I+D+i",
		Children: []Item{
			{Label: "Ver todas las Actividades", Target: "/actividades"},
		},
	},
	{
		Label: "Financiamiento",
		Children: []Item{
			{Label: "Ver todos los objetos y financiamiento", Target: "/financiamiento"},
			{Label: "Equipamiento", Target: "/equipamiento"},
			{Label: "Erogaciones", Target: "/erogaciones"},
		},
	},
}

// Key derives the expansion-map key for a node: parent path, index and
// label, plus the serialized target so duplicate labels under one parent
// never collide.
func Key(parentKey string, idx int, it Item) string {
	target := it.Target
	if target == "" {
		target = "nolink"
	}
	return fmt.Sprintf("%s/%d-%s::%s", parentKey, idx, it.Label, target)
}

// RootKey anchors top-level node keys.
const RootKey = "root"

// Menu tracks the overlay and per-node expansion state over a static tree.
type Menu struct {
	items    []Item
	open     bool
	expanded map[string]bool
}

// New creates a closed menu over the given tree (pass Items for the
// console's own navigation).
func New(items []Item) *Menu {
	return &Menu{items: items, expanded: make(map[string]bool)}
}

// IsOpen reports whether the overlay is showing.
func (m *Menu) IsOpen() bool { return m.open }

// Open shows the overlay. Expansion state survives reopening.
func (m *Menu) Open() { m.open = true }

// Close hides the overlay. Escape and backdrop clicks route here.
func (m *Menu) Close() { m.open = false }

// Toggle flips a single node's expansion. Siblings and ancestors keep
// their state.
func (m *Menu) Toggle(key string) {
	m.expanded[key] = !m.expanded[key]
}

// Expanded reports one node's expansion state.
func (m *Menu) Expanded(key string) bool { return m.expanded[key] }

// Select activates a node. Nodes with a target close the whole overlay,
// regardless of depth, and the target is returned; group headers return
// false and leave the overlay alone.
func (m *Menu) Select(key string) (string, bool) {
	it, ok := m.find(key)
	if !ok || it.Target == "" {
		return "", false
	}
	m.open = false
	return it.Target, true
}

func (m *Menu) find(key string) (Item, bool) {
	return findIn(m.items, RootKey, key)
}

func findIn(items []Item, parentKey, key string) (Item, bool) {
	for idx, it := range items {
		k := Key(parentKey, idx, it)
		if k == key {
			return it, true
		}
		if len(it.Children) > 0 {
			if found, ok := findIn(it.Children, k, key); ok {
				return found, true
			}
		}
	}
	return Item{}, false
}

// Line is one row of the rendered menu, already indented by depth.
type Line struct {
	Key      string
	Label    string
	Target   string
	Depth    int
	HasKids  bool
	Expanded bool
}

// Render walks the tree depth-first, descending only into expanded nodes,
// and returns the visible rows in order.
func (m *Menu) Render() []Line {
	var out []Line
	m.render(&out, m.items, RootKey, 0)
	return out
}

// RenderAll walks the whole tree ignoring expansion state, for flat
// printing of the full navigation map.
func (m *Menu) RenderAll() []Line {
	var out []Line
	renderAll(&out, m.items, RootKey, 0)
	return out
}

func (m *Menu) render(out *[]Line, items []Item, parentKey string, depth int) {
	for idx, it := range items {
		k := Key(parentKey, idx, it)
		*out = append(*out, Line{
			Key:      k,
			Label:    it.Label,
			Target:   it.Target,
			Depth:    depth,
			HasKids:  len(it.Children) > 0,
			Expanded: m.expanded[k],
		})
		if len(it.Children) > 0 && m.expanded[k] {
			m.render(out, it.Children, k, depth+1)
		}
	}
}

func renderAll(out *[]Line, items []Item, parentKey string, depth int) {
	for idx, it := range items {
		k := Key(parentKey, idx, it)
		*out = append(*out, Line{
			Key:     k,
			Label:   it.Label,
			Target:  it.Target,
			Depth:   depth,
			HasKids: len(it.Children) > 0,
		})
		if len(it.Children) > 0 {
			renderAll(out, it.Children, k, depth+1)
		}
	}
}

// Indent renders the depth prefix used by the console printer.
func (l Line) Indent() string {
	return strings.Repeat("  ", l.Depth)
}
