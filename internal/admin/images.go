package admin

import (
	"encoding/base64"
	"errors"
	"net/http"
	"sync"

	"github.com/fabriciorsa/Guia-Ligiane/internal/tour"
)

var (
	ErrImageLimit = errors.New("a tour can hold at most 5 images")
	ErrBadIndex   = errors.New("image index out of range")
)

const placeholderImage = "https://placehold.co/600x400?text=Sem+Imagem"

// ImageFile is one selected upload. MIME may be empty; it is then sniffed
// from the data.
type ImageFile struct {
	Name string
	MIME string
	Data []byte
}

// AddImages embeds the selected files into the draft gallery as data URIs,
// capped at 5 images total. Files beyond the cap are rejected with a
// user-facing notice. Encodings run concurrently but each result keeps its
// selection index, so images are appended in selection order.
func (w *Workflow) AddImages(files []ImageFile) error {
	if w.state != Editing {
		return ErrNotEditing
	}

	remaining := tour.MaxImages - len(w.draft.Images)
	if remaining <= 0 {
		w.notify.Error("Limite de 5 imagens atingido!")
		return ErrImageLimit
	}
	if len(files) > remaining {
		files = files[:remaining]
	}

	encoded := make([]string, len(files))
	var wg sync.WaitGroup
	for i, f := range files {
		wg.Add(1)
		go func(i int, f ImageFile) {
			defer wg.Done()
			encoded[i] = DataURI(f)
		}(i, f)
	}
	wg.Wait()

	w.draft.Images = append(w.draft.Images, encoded...)
	return nil
}

// RemoveImage deletes the image at the given index from the draft gallery.
func (w *Workflow) RemoveImage(index int) error {
	if w.state != Editing {
		return ErrNotEditing
	}
	if index < 0 || index >= len(w.draft.Images) {
		return ErrBadIndex
	}

	w.draft.Images = append(w.draft.Images[:index], w.draft.Images[index+1:]...)
	if w.previewIndex >= len(w.draft.Images) && w.previewIndex > 0 {
		w.previewIndex = len(w.draft.Images) - 1
	}
	return nil
}

// SetCoverImage moves the image at the given index to position 0, shifting
// the images before it one slot right. Relative order of the rest is kept.
func (w *Workflow) SetCoverImage(index int) error {
	if w.state != Editing {
		return ErrNotEditing
	}
	if index < 0 || index >= len(w.draft.Images) {
		return ErrBadIndex
	}

	images := w.draft.Images
	cover := images[index]
	copy(images[1:index+1], images[:index])
	images[0] = cover
	w.notify.Success("Imagem de capa definida!")
	return nil
}

// DataURI converts an upload into an embeddable base64 data URI.
func DataURI(f ImageFile) string {
	mime := f.MIME
	if mime == "" {
		mime = http.DetectContentType(f.Data)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(f.Data)
}
