package presenter

import (
	"testing"

	"github.com/soocke/roi-binarizer/domain/selection"
)

type mockSelectionView struct{ labels []string }

func (v *mockSelectionView) SetSelectionLabel(s string) { v.labels = append(v.labels, s) }

func TestSelectionPresenter_FollowsMachine(t *testing.T) {
	m := selection.NewMachine(nil)
	v := &mockSelectionView{}
	p := NewSelectionPresenter(m, v)
	m.AddListener(p.OnState)

	m.Press(10, 20)
	m.Drag(30, 50)
	p.Refresh()
	m.Release(40, 60)
	m.Reset()

	want := []string{
		"Selection: dragging 0x0 at (10,20)",
		"Selection: dragging 20x30 at (10,20)",
		"Selection: selected 30x40 at (10,20)",
		"Selection: idle",
	}
	if len(v.labels) != len(want) {
		t.Fatalf("labels=%v", v.labels)
	}
	for i := range want {
		if v.labels[i] != want[i] {
			t.Fatalf("label %d: got %q want %q", i, v.labels[i], want[i])
		}
	}
}

func TestSelectionPresenter_SkipsDuplicateLabels(t *testing.T) {
	m := selection.NewMachine(nil)
	v := &mockSelectionView{}
	p := NewSelectionPresenter(m, v)
	p.Refresh()
	p.Refresh()
	if len(v.labels) != 1 {
		t.Fatalf("expected single label, got %v", v.labels)
	}
}

func TestSelectionPresenter_NilSafe(t *testing.T) {
	var p *SelectionPresenter
	p.OnState(selection.StateIdle, selection.StateDragging)
	p.Refresh()
}
