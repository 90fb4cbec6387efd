package debugger

import "testing"

func TestHistoryAddSkipsEmptyAndConsecutiveDuplicates(t *testing.T) {
	h := NewCommandHistory()

	h.Add("")
	h.Add("step")
	h.Add("step")
	h.Add("continue")

	got := h.GetAll()
	want := []string{"step", "continue"}
	if len(got) != len(want) {
		t.Fatalf("GetAll() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("GetAll()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHistoryPreviousAndNextNavigate(t *testing.T) {
	h := NewCommandHistory()
	h.Add("step")
	h.Add("continue")
	h.Add("break 0x4000")

	if got := h.Previous(); got != "break 0x4000" {
		t.Errorf("Previous() = %q, want %q", got, "break 0x4000")
	}
	if got := h.Previous(); got != "continue" {
		t.Errorf("Previous() = %q, want %q", got, "continue")
	}
	if got := h.Previous(); got != "step" {
		t.Errorf("Previous() = %q, want %q", got, "step")
	}
	if got := h.Previous(); got != "" {
		t.Errorf("Previous() past the start = %q, want empty", got)
	}

	if got := h.Next(); got != "continue" {
		t.Errorf("Next() = %q, want %q", got, "continue")
	}
	if got := h.Next(); got != "break 0x4000" {
		t.Errorf("Next() = %q, want %q", got, "break 0x4000")
	}
	if got := h.Next(); got != "" {
		t.Errorf("Next() past the end = %q, want empty", got)
	}
}

func TestHistorySearchMatchesPrefix(t *testing.T) {
	h := NewCommandHistory()
	h.Add("break 0x1000")
	h.Add("step")
	h.Add("break 0x2000")

	got := h.Search("break")
	if len(got) != 2 {
		t.Fatalf("Search(\"break\") = %v, want 2 matches", got)
	}
}

func TestHistoryClear(t *testing.T) {
	h := NewCommandHistory()
	h.Add("step")
	h.Add("continue")

	h.Clear()

	if h.Size() != 0 {
		t.Errorf("Size() after Clear() = %d, want 0", h.Size())
	}
	if got := h.GetLast(); got != "" {
		t.Errorf("GetLast() after Clear() = %q, want empty", got)
	}
}

func TestHistoryTrimsToMaxSize(t *testing.T) {
	h := NewCommandHistory()
	h.maxSize = 3

	h.Add("a")
	h.Add("b")
	h.Add("c")
	h.Add("d")

	got := h.GetAll()
	want := []string{"b", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("GetAll() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("GetAll()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
