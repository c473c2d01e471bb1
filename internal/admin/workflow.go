// Package admin implements the editor workflow behind the dashboard: a
// two-state machine (listing, editing) that binds a draft tour, feeds the
// live preview, and commits changes through the catalog store.
package admin

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fabriciorsa/Guia-Ligiane/internal/tour"
)

type State int

const (
	Listing State = iota
	Editing
)

var (
	ErrNotListing   = errors.New("another tour is already open for editing")
	ErrNotEditing   = errors.New("no tour is open for editing")
	ErrTourNotFound = errors.New("tour not found")
)

// Store is the slice of the catalog client the workflow needs.
type Store interface {
	Tours() []tour.Tour
	Load(ctx context.Context) error
	Add(ctx context.Context, input tour.TourInput) (int64, error)
	Update(ctx context.Context, id int64, patch tour.Patch) error
	Delete(ctx context.Context, id int64) error
	FilterByTitle(query string) []tour.Tour
}

// Notifier receives the user-facing toasts.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// Draft is the in-memory working copy of the tour being edited. Features
// are flattened into one newline-delimited text block while editing and
// re-split on save.
type Draft struct {
	tour.Tour
	FeaturesText string
}

type Workflow struct {
	store   Store
	notify  Notifier
	confirm func(prompt string) bool

	state        State
	draft        *Draft
	draftNew     bool
	previewIndex int
	filter       string
	now          func() time.Time
}

func NewWorkflow(store Store, notify Notifier, confirm func(string) bool) *Workflow {
	if confirm == nil {
		confirm = func(string) bool { return true }
	}
	return &Workflow{
		store:   store,
		notify:  notify,
		confirm: confirm,
		now:     time.Now,
	}
}

func (w *Workflow) State() State { return w.state }

func (w *Workflow) Draft() *Draft { return w.draft }

// NewTour opens a placeholder draft for editing. Nothing is persisted until
// the first Save, so cancelling a fresh draft leaves no orphan row. The
// temporary id only serves the UI and is replaced by the server on save.
func (w *Workflow) NewTour() error {
	if w.state != Listing {
		return ErrNotListing
	}

	draft := &Draft{
		Tour: tour.Tour{
			ID:              w.now().UnixMilli(),
			Title:           "Novo Passeio",
			Subtitle:        "",
			Description:     "Descrição curta do passeio",
			FullDescription: "Descrição completa do passeio detalhada...",
			Duration:        "0 horas",
			Date:            "Data",
			Price:           "0,00",
			Images:          []string{placeholderImage},
			Features:        []string{"Item incluso 1", "Item incluso 2"},
			Rating:          5.0,
			Reviews:         0,
			MaxPeople:       0,
		},
	}
	draft.FeaturesText = JoinFeatures(draft.Features)

	w.draft = draft
	w.draftNew = true
	w.previewIndex = 0
	w.state = Editing
	w.notify.Info("Novo passeio criado. Edite os detalhes.")
	return nil
}

// Edit loads an existing record into a draft buffer and resets the preview
// carousel to the cover image.
func (w *Workflow) Edit(id int64) error {
	if w.state != Listing {
		return ErrNotListing
	}

	for _, t := range w.store.Tours() {
		if t.ID == id {
			if t.Images == nil {
				t.Images = []string{}
			}
			w.draft = &Draft{Tour: t, FeaturesText: JoinFeatures(t.Features)}
			w.draftNew = false
			w.previewIndex = 0
			w.state = Editing
			return nil
		}
	}
	return ErrTourNotFound
}

// Save re-splits the features text block, commits the draft and returns to
// listing. A fresh draft is created on the server here; an existing one is
// overwritten. Failures keep the editor open so the admin can retry.
func (w *Workflow) Save(ctx context.Context) error {
	if w.state != Editing {
		return ErrNotEditing
	}

	w.draft.Features = SplitFeatures(w.draft.FeaturesText)
	input := w.draft.Tour.Input()

	if w.draftNew {
		id, err := w.store.Add(ctx, input)
		if err != nil {
			if id != 0 {
				// the row exists; a retried save must overwrite it
				w.draft.ID = id
				w.draftNew = false
			}
			w.notify.Error("Erro ao salvar o passeio")
			return err
		}
	} else {
		if err := w.store.Update(ctx, w.draft.ID, tour.PatchOf(input)); err != nil {
			w.notify.Error("Erro ao salvar o passeio")
			return err
		}
	}

	w.draft = nil
	w.state = Listing
	w.notify.Success("Passeio atualizado com sucesso")
	return nil
}

// Cancel discards the draft without persisting anything.
func (w *Workflow) Cancel() {
	w.draft = nil
	w.state = Listing
}

// Delete removes a tour from the listing after interactive confirmation.
// There is no undo.
func (w *Workflow) Delete(ctx context.Context, id int64) error {
	if w.state != Listing {
		return ErrNotListing
	}
	if !w.confirm("Tem certeza que deseja excluir este passeio?") {
		return nil
	}
	if err := w.store.Delete(ctx, id); err != nil {
		w.notify.Error("Erro ao excluir o passeio")
		return err
	}
	w.notify.Success("Passeio excluído com sucesso")
	return nil
}

// SetFilter stores the listing filter term.
func (w *Workflow) SetFilter(query string) {
	w.filter = query
}

// Visible returns the cached tours matching the current title filter.
func (w *Workflow) Visible() []tour.Tour {
	return w.store.FilterByTitle(w.filter)
}

// Preview renders the draft the way the public modal would: the features
// text block re-split into array form.
func (w *Workflow) Preview() (tour.Tour, bool) {
	if w.state != Editing {
		return tour.Tour{}, false
	}
	t := w.draft.Tour
	t.Features = SplitFeatures(w.draft.FeaturesText)
	return t, true
}

func (w *Workflow) PreviewIndex() int { return w.previewIndex }

func (w *Workflow) NextPreviewImage() {
	if w.state == Editing && len(w.draft.Images) > 1 {
		w.previewIndex = (w.previewIndex + 1) % len(w.draft.Images)
	}
}

func (w *Workflow) PrevPreviewImage() {
	if w.state == Editing && len(w.draft.Images) > 1 {
		w.previewIndex = (w.previewIndex - 1 + len(w.draft.Images)) % len(w.draft.Images)
	}
}

// SplitFeatures turns the editable text block into the features array,
// dropping blank lines.
func SplitFeatures(text string) []string {
	features := []string{}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			features = append(features, line)
		}
	}
	return features
}

func JoinFeatures(features []string) string {
	return strings.Join(features, "\n")
}
