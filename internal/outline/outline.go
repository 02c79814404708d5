package outline

import (
	"errors"

	"fdk/internal/model"
)

var (
	// ErrNegativeLevel rejects a reindent that would push a node below level 0.
	ErrNegativeLevel = errors.New("level cannot go below 0")
	// ErrRootLevel rejects any reindent of the first node away from level 0.
	ErrRootLevel = errors.New("first node must stay at level 0")
	// ErrLevelJump rejects a reindent deeper than the predecessor's level + 1.
	ErrLevelJump = errors.New("level may exceed predecessor by at most 1")
	// ErrLocked rejects toggling the optional flag of a node whose optional
	// state is forced by an optional ancestor.
	ErrLocked = errors.New("node is locked by an optional ancestor")
)

// Node is one outline entry. Optional holds the user-assigned flag; whether the
// node is *effectively* optional also depends on its ancestors (see Tree).
type Node struct {
	Text     string
	Level    int
	Optional bool
}

// Tree is the working copy of one stage's items.
//
// Nodes are kept in the flat, level-tagged order they are persisted in, plus a
// derived parent arena so cascade operations don't re-scan the whole list.
// A node whose ancestor chain contains an effectively-optional node is locked:
// its own optional flag cannot be toggled, and it reads as optional. The
// user-assigned flag underneath is preserved, so removing or out-denting the
// optional ancestor restores the node's own state.
type Tree struct {
	nodes  []Node
	parent []int  // index of the nearest preceding node with a lower level; -1 for roots
	locked []bool // forced optional by an (effectively) optional ancestor
}

// New builds a Tree from persisted items, repairing malformed level sequences
// (first node clamped to 0, jumps clamped to predecessor + 1) rather than
// rejecting them. An empty item list yields a single blank node: a stage always
// has at least one node.
func New(items []model.Item) *Tree {
	t := &Tree{}
	if len(items) == 0 {
		t.nodes = []Node{{}}
	} else {
		t.nodes = make([]Node, len(items))
		for i, it := range items {
			t.nodes[i] = Node{Text: it.Text, Level: it.Level, Optional: it.Optional}
		}
	}
	t.normalize()
	return t
}

func (t *Tree) Len() int { return len(t.nodes) }

func (t *Tree) Node(i int) Node { return t.nodes[i] }

// Parent returns the index of node i's parent, or -1 for root nodes.
func (t *Tree) Parent(i int) int { return t.parent[i] }

// Locked reports whether node i's optional state is forced by an ancestor.
func (t *Tree) Locked(i int) bool { return t.locked[i] }

// Optional reports node i's effective optional state: its own flag or an
// ancestor-forced one.
func (t *Tree) Optional(i int) bool { return t.nodes[i].Optional || t.locked[i] }

func (t *Tree) SetText(i int, text string) {
	if i < 0 || i >= len(t.nodes) {
		return
	}
	t.nodes[i].Text = text
}

// Items flattens the tree back to the persisted form. The optional field is
// the effective state, so a persisted document always satisfies the cascade
// invariant on its face.
func (t *Tree) Items() []model.Item {
	out := make([]model.Item, len(t.nodes))
	for i, n := range t.nodes {
		out[i] = model.Item{Text: n.Text, Level: n.Level, Optional: t.Optional(i)}
	}
	return out
}

// InsertAfter inserts a new blank node immediately after index i and returns
// the new node's index (-1 if i is out of range). The new node continues the
// following node's child level when there is one, otherwise it becomes a
// sibling of i; it inherits i's effective optional state so siblings appended
// inside an optional block stay optional by default.
func (t *Tree) InsertAfter(i int) int {
	if i < 0 || i >= len(t.nodes) {
		return -1
	}
	n := Node{Level: t.nodes[i].Level, Optional: t.Optional(i)}
	if i+1 < len(t.nodes) && t.nodes[i+1].Level > t.nodes[i].Level {
		n.Level = t.nodes[i+1].Level
	}
	t.nodes = append(t.nodes, Node{})
	copy(t.nodes[i+2:], t.nodes[i+1:])
	t.nodes[i+1] = n
	t.normalize()
	return i + 1
}

// Remove deletes node i. Its descendants are promoted one level (clamped at 0)
// and re-synced against their new ancestor chain. Removing the only remaining
// node is a no-op; a stage never drops below one node.
func (t *Tree) Remove(i int) bool {
	if i < 0 || i >= len(t.nodes) || len(t.nodes) == 1 {
		return false
	}
	end := t.subtreeEnd(i)
	for j := i + 1; j < end; j++ {
		if t.nodes[j].Level > 0 {
			t.nodes[j].Level--
		}
	}
	t.nodes = append(t.nodes[:i], t.nodes[i+1:]...)
	t.normalize()
	return true
}

// Reindent shifts node i and its whole subtree by delta (+1 or -1).
// Validation order: the resulting level must be non-negative, the first node
// must stay at level 0, and no node may end up more than one level deeper than
// its predecessor. Any failure leaves the tree untouched. A node out-dented to
// level 0 has its optional flag cleared: root nodes cannot be optional.
func (t *Tree) Reindent(i, delta int) error {
	if i < 0 || i >= len(t.nodes) {
		return ErrLevelJump
	}
	if delta != 1 && delta != -1 {
		return ErrLevelJump
	}
	target := t.nodes[i].Level + delta
	if target < 0 {
		return ErrNegativeLevel
	}
	if i == 0 {
		if target != 0 {
			return ErrRootLevel
		}
	} else if target > t.nodes[i-1].Level+1 {
		return ErrLevelJump
	}

	end := t.subtreeEnd(i)
	for j := i; j < end; j++ {
		t.nodes[j].Level += delta
		if t.nodes[j].Level < 0 {
			t.nodes[j].Level = 0
		}
	}
	if t.nodes[i].Level == 0 {
		t.nodes[i].Optional = false
	}
	t.normalize()
	return nil
}

// SetOptional assigns node i's own optional flag. Locked nodes reject the
// edit. Descendants are not rewritten: they read as optional through the lock
// while value is true, and fall back to their own flags when it is cleared.
func (t *Tree) SetOptional(i int, value bool) error {
	if i < 0 || i >= len(t.nodes) {
		return ErrLocked
	}
	if t.locked[i] {
		return ErrLocked
	}
	t.nodes[i].Optional = value
	t.normalize()
	return nil
}

// subtreeEnd returns the index one past the last strict descendant of i:
// the contiguous run of following nodes with a strictly greater level.
func (t *Tree) subtreeEnd(i int) int {
	end := i + 1
	for end < len(t.nodes) && t.nodes[end].Level > t.nodes[i].Level {
		end++
	}
	return end
}

// normalize repairs level invariants and rebuilds the parent/lock arena.
// It runs after every structural edit so a partially-cascaded tree is never
// observable.
func (t *Tree) normalize() {
	if len(t.nodes) == 0 {
		t.nodes = []Node{{}}
	}
	if t.nodes[0].Level != 0 {
		t.nodes[0].Level = 0
	}
	for i := 1; i < len(t.nodes); i++ {
		if t.nodes[i].Level < 0 {
			t.nodes[i].Level = 0
		}
		if t.nodes[i].Level > t.nodes[i-1].Level+1 {
			t.nodes[i].Level = t.nodes[i-1].Level + 1
		}
	}

	t.parent = make([]int, len(t.nodes))
	t.locked = make([]bool, len(t.nodes))
	effective := make([]bool, len(t.nodes))
	// Track the most recent node seen at each level; the parent of a node at
	// level L is the last node seen at a lower level.
	lastAt := make([]int, 0, 8)
	for i := range t.nodes {
		lvl := t.nodes[i].Level
		if lvl < len(lastAt) {
			lastAt = lastAt[:lvl]
		}
		p := -1
		if len(lastAt) > 0 {
			p = lastAt[len(lastAt)-1]
		}
		t.parent[i] = p
		t.locked[i] = p >= 0 && effective[p]
		effective[i] = t.nodes[i].Optional || t.locked[i]
		for len(lastAt) <= lvl {
			lastAt = append(lastAt, i)
		}
		lastAt[lvl] = i
	}
}
