package swipe

import "github.com/google/uuid"

// RowID identifies a row inside a group.
type RowID = uuid.UUID

// Group lets only one of its rows be open at a time. It is the shared
// selection cell every member reads and writes; pass the same *Group to each
// row through RowConfig.
type Group struct {
	selection RowID
	members   []*Row
}

// NewGroup returns an empty group with nothing selected.
func NewGroup() *Group {
	return &Group{}
}

// Selection returns the selected row, or uuid.Nil.
func (g *Group) Selection() RowID {
	return g.selection
}

// Len returns the number of member rows.
func (g *Group) Len() int {
	return len(g.members)
}

// Select makes id the selected row and closes every other open member.
// Selecting the current selection does nothing.
func (g *Group) Select(id RowID) {
	if g.selection == id {
		return
	}
	g.selection = id
	members := append([]*Row(nil), g.members...)
	for _, row := range members {
		row.selectionChanged(id)
	}
}

// Release clears the selection if id holds it. No member is closed.
func (g *Group) Release(id RowID) {
	if id == uuid.Nil || g.selection != id {
		return
	}
	g.selection = uuid.Nil
}

func (g *Group) join(row *Row) {
	for _, m := range g.members {
		if m == row {
			return
		}
	}
	g.members = append(g.members, row)
}

func (g *Group) leave(row *Row) {
	for i, m := range g.members {
		if m == row {
			g.members = append(g.members[:i], g.members[i+1:]...)
			break
		}
	}
	g.Release(row.id)
}
