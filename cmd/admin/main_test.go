package main

import (
	"context"
	"errors"
	"testing"

	"github.com/fabriciorsa/Guia-Ligiane/internal/admin"
	"github.com/fabriciorsa/Guia-Ligiane/internal/tour"
)

type stubStore struct {
	tours []tour.Tour
}

func (s *stubStore) Tours() []tour.Tour                                       { return s.tours }
func (s *stubStore) Load(ctx context.Context) error                           { return nil }
func (s *stubStore) Add(ctx context.Context, input tour.TourInput) (int64, error) { return 1, nil }
func (s *stubStore) Update(ctx context.Context, id int64, patch tour.Patch) error { return nil }
func (s *stubStore) Delete(ctx context.Context, id int64) error               { return nil }
func (s *stubStore) FilterByTitle(query string) []tour.Tour                   { return s.tours }

func editingTestWorkflow(t *testing.T) *admin.Workflow {
	t.Helper()
	store := &stubStore{tours: []tour.Tour{{ID: 1, Title: "T", Images: []string{"/a.jpg"}}}}
	wf := admin.NewWorkflow(store, toastPrinter{}, nil)
	if err := wf.Edit(1); err != nil {
		t.Fatalf("edit: %v", err)
	}
	return wf
}

func TestSetFieldUpdatesDraft(t *testing.T) {
	wf := editingTestWorkflow(t)

	if err := setField(wf, "title", "Novo Título"); err != nil {
		t.Fatalf("set title: %v", err)
	}
	if wf.Draft().Title != "Novo Título" {
		t.Fatalf("title not set: %q", wf.Draft().Title)
	}

	if err := setField(wf, "maxpeople", "12"); err != nil {
		t.Fatalf("set maxpeople: %v", err)
	}
	if wf.Draft().MaxPeople != 12 {
		t.Fatalf("maxPeople not set: %d", wf.Draft().MaxPeople)
	}

	if err := setField(wf, "features", "Guia|Lanche|Seguro"); err != nil {
		t.Fatalf("set features: %v", err)
	}
	if wf.Draft().FeaturesText != "Guia\nLanche\nSeguro" {
		t.Fatalf("features text: %q", wf.Draft().FeaturesText)
	}
}

func TestSetFieldRejects(t *testing.T) {
	wf := editingTestWorkflow(t)

	if err := setField(wf, "rating", "4.0"); err == nil {
		t.Fatalf("expected unknown field error")
	}
	if err := setField(wf, "maxpeople", "muitos"); err == nil {
		t.Fatalf("expected parse error")
	}

	wf.Cancel()
	if err := setField(wf, "title", "X"); !errors.Is(err, admin.ErrNotEditing) {
		t.Fatalf("expected ErrNotEditing, got %v", err)
	}
}

func TestWithIndex(t *testing.T) {
	var got int
	fn := func(i int) error {
		got = i
		return nil
	}

	if err := withIndex([]string{"cover", "2"}, fn); err != nil || got != 2 {
		t.Fatalf("withIndex: %v, got %d", err, got)
	}
	if err := withIndex([]string{"cover"}, fn); err == nil {
		t.Fatalf("expected missing index error")
	}
	if err := withIndex([]string{"cover", "x"}, fn); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("curto", 10); got != "curto" {
		t.Fatalf("short string must pass through, got %q", got)
	}
	if got := truncate("Excursão às cachoeiras", 8); got != "Excursão..." {
		t.Fatalf("unexpected truncation: %q", got)
	}
	for _, r := range truncate("ãããããããããã", 5) {
		if r == '�' {
			t.Fatalf("truncation split a rune")
		}
	}
}

func TestParseID(t *testing.T) {
	id, err := parseID([]string{"edit", "42"})
	if err != nil || id != 42 {
		t.Fatalf("parseID: %v, got %d", err, id)
	}
	if _, err := parseID([]string{"edit"}); err == nil {
		t.Fatalf("expected missing id error")
	}
	if _, err := parseID([]string{"edit", "abc"}); err == nil {
		t.Fatalf("expected parse error")
	}
}
