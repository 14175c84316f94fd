package ui

import (
	"testing"
	"time"

	"chatui/api"
)

func TestScrollWindow(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		selected  int
		max       int
		wantStart int
		wantEnd   int
	}{
		{"fits entirely", 5, 2, 10, 0, 5},
		{"selection near top", 20, 1, 10, 0, 10},
		{"selection in middle", 20, 10, 10, 5, 15},
		{"selection near bottom", 20, 19, 10, 10, 20},
		{"zero max", 20, 0, 0, 0, 0},
		{"empty list", 0, 0, 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := scrollWindow(tt.total, tt.selected, tt.max)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("scrollWindow(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.total, tt.selected, tt.max, start, end, tt.wantStart, tt.wantEnd)
			}
			if tt.total > 0 && tt.max > 0 && (tt.selected < start || tt.selected >= end) {
				t.Errorf("selected %d not visible in window [%d, %d)", tt.selected, start, end)
			}
		})
	}
}

func TestTruncateLine(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"short", 20, "short"},
		{"exactly ten!", 12, "exactly ten!"},
		{"this is a long conversation title", 15, "this is a lo..."},
		{"", 10, ""},
	}

	for _, tt := range tests {
		if got := truncateLine(tt.input, tt.width); got != tt.want {
			t.Errorf("truncateLine(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestFormatTimeAgo(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"zero time", time.Time{}, ""},
		{"seconds ago", now.Add(-30 * time.Second), "just now"},
		{"minutes ago", now.Add(-5 * time.Minute), "5m ago"},
		{"hours ago", now.Add(-3 * time.Hour), "3h ago"},
		{"days ago", now.Add(-2 * 24 * time.Hour), "2d ago"},
		{"weeks ago", now.Add(-8 * 24 * time.Hour), "1w ago"},
		{"months ago", now.Add(-65 * 24 * time.Hour), "2mo ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatTimeAgo(tt.t); got != tt.want {
				t.Errorf("formatTimeAgo() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyConversationFilter(t *testing.T) {
	a := newTestAppView(t)
	a.dataModel.Conversations = []api.Conversation{
		{ID: 1, Title: "Go error handling"},
		{ID: 2, Title: "Shopping list"},
		{ID: 3, Title: "Go generics"},
	}
	a.filterMode = true

	a.filterInput.SetValue("go")
	a.applyConversationFilter()

	if len(a.filteredList) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(a.filteredList))
	}
	for _, c := range a.filteredList {
		if c.ID != 1 && c.ID != 3 {
			t.Errorf("unexpected match: %+v", c)
		}
	}

	// Clearing the filter clears the filtered list
	a.filterInput.SetValue("")
	a.applyConversationFilter()
	if len(a.filteredList) != 0 {
		t.Errorf("expected empty filtered list, got %d", len(a.filteredList))
	}
}

func TestApplyConversationFilterClampsSelection(t *testing.T) {
	a := newTestAppView(t)
	a.dataModel.Conversations = []api.Conversation{
		{ID: 1, Title: "alpha"},
		{ID: 2, Title: "beta"},
		{ID: 3, Title: "gamma"},
	}
	a.filterMode = true
	a.selectedIdx = 2

	a.filterInput.SetValue("alpha")
	a.applyConversationFilter()

	if len(a.filteredList) != 1 {
		t.Fatalf("expected 1 match, got %d", len(a.filteredList))
	}
	if a.selectedIdx != 0 {
		t.Errorf("expected selection reset to 0, got %d", a.selectedIdx)
	}
}

func TestSelectedConversation(t *testing.T) {
	a := newTestAppView(t)

	if a.selectedConversation() != nil {
		t.Error("expected nil selection on empty list")
	}

	a.dataModel.Conversations = []api.Conversation{
		{ID: 1, Title: "first"},
		{ID: 2, Title: "second"},
	}
	a.selectedIdx = 1

	got := a.selectedConversation()
	if got == nil || got.ID != 2 {
		t.Errorf("expected conversation 2 selected, got %+v", got)
	}

	a.selectedIdx = 9
	if a.selectedConversation() != nil {
		t.Error("expected nil for out-of-range selection")
	}
}

func TestGetConversationListWithActiveFilter(t *testing.T) {
	a := newTestAppView(t)
	a.dataModel.Conversations = []api.Conversation{
		{ID: 1, Title: "alpha"},
		{ID: 2, Title: "beta"},
	}

	// No filter: full list
	if got := a.getConversationList(); len(got) != 2 {
		t.Errorf("expected full list, got %d", len(got))
	}

	// Filter with matches: filtered list
	a.filterMode = true
	a.filterInput.SetValue("alp")
	a.applyConversationFilter()
	if got := a.getConversationList(); len(got) != 1 || got[0].ID != 1 {
		t.Errorf("expected filtered list with alpha, got %+v", got)
	}

	// Filter with no matches: empty, not the full list
	a.filterInput.SetValue("zzz")
	a.applyConversationFilter()
	if got := a.getConversationList(); len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
}
