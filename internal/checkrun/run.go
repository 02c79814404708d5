package checkrun

import (
	"errors"

	"fdk/internal/outline"
)

var (
	// ErrItemLocked rejects toggling an item whose optional ancestor is
	// still unchecked.
	ErrItemLocked = errors.New("item is locked until its optional ancestor is checked")
	// ErrStageIncomplete blocks advancing past a stage with unchecked
	// required items.
	ErrStageIncomplete = errors.New("stage has unchecked required items")
	// ErrLastStage blocks advancing past the final stage.
	ErrLastStage = errors.New("already at the last stage")
)

// Run is the live check state for one stage. Checked flags live only in
// memory; the persisted document never records them.
//
// An unchecked optional node disables its whole subtree: descendants are
// forced unchecked and refuse toggles until the ancestor is checked.
type Run struct {
	tree     *outline.Tree
	checked  []bool
	disabled []bool
}

// NewRun builds run state over a stage tree, restoring checks for the given
// node texts and then enforcing the optional-ancestor rule.
func NewRun(tree *outline.Tree, checkedTexts map[string]bool) *Run {
	r := &Run{
		tree:     tree,
		checked:  make([]bool, tree.Len()),
		disabled: make([]bool, tree.Len()),
	}
	for i := 0; i < tree.Len(); i++ {
		if checkedTexts[tree.Node(i).Text] {
			r.checked[i] = true
		}
	}
	r.sync()
	return r
}

func (r *Run) Tree() *outline.Tree { return r.tree }
func (r *Run) Len() int            { return r.tree.Len() }
func (r *Run) Checked(i int) bool  { return r.checked[i] }
func (r *Run) Disabled(i int) bool { return r.disabled[i] }

// Toggle flips the check state of node i. Disabled nodes reject the toggle;
// unchecking an optional node immediately clears and disables its subtree.
func (r *Run) Toggle(i int) error {
	if i < 0 || i >= len(r.checked) {
		return ErrItemLocked
	}
	if r.disabled[i] {
		return ErrItemLocked
	}
	r.checked[i] = !r.checked[i]
	r.sync()
	return nil
}

// Complete reports whether every required (non-optional) node is checked.
func (r *Run) Complete() bool {
	for i := 0; i < r.tree.Len(); i++ {
		if !r.tree.Optional(i) && !r.checked[i] {
			return false
		}
	}
	return true
}

// CompleteAll checks every node, optional ones included.
func (r *Run) CompleteAll() {
	for i := range r.checked {
		r.checked[i] = true
	}
	r.sync()
}

// CheckedTexts returns the texts of all checked nodes, the form the transient
// per-stage memory stores.
func (r *Run) CheckedTexts() map[string]bool {
	out := make(map[string]bool)
	for i, c := range r.checked {
		if c {
			out[r.tree.Node(i).Text] = true
		}
	}
	return out
}

// sync recomputes the disabled set top-down and forces disabled nodes
// unchecked.
func (r *Run) sync() {
	for i := 0; i < r.tree.Len(); i++ {
		p := r.tree.Parent(i)
		r.disabled[i] = p >= 0 &&
			(r.disabled[p] || (r.tree.Optional(p) && !r.checked[p]))
		if r.disabled[i] {
			r.checked[i] = false
		}
	}
}
