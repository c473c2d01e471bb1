package tour

// Tour is the sole persisted entity: one bookable guided excursion.
// Images holds at most 5 entries; index 0 is the cover image.
type Tour struct {
	ID              int64    `json:"id"`
	Title           string   `json:"title"`
	Subtitle        string   `json:"subtitle"`
	Description     string   `json:"description"`
	FullDescription string   `json:"fullDescription"`
	Duration        string   `json:"duration"`
	Date            string   `json:"date"`
	Price           string   `json:"price"`
	Images          []string `json:"images"`
	Features        []string `json:"features"`
	Rating          float64  `json:"rating"`
	Reviews         int      `json:"reviews"`
	MaxPeople       int      `json:"maxPeople"`
}

// TourInput carries the editable fields of a tour. The server assigns id
// and defaults rating/reviews on create.
type TourInput struct {
	Title           string   `json:"title"`
	Subtitle        string   `json:"subtitle"`
	Description     string   `json:"description"`
	FullDescription string   `json:"fullDescription"`
	Duration        string   `json:"duration"`
	Date            string   `json:"date"`
	Price           string   `json:"price"`
	Images          []string `json:"images"`
	Features        []string `json:"features"`
	MaxPeople       int      `json:"maxPeople"`
}

// Patch is a partial update: nil fields are left untouched when merged
// into a cached record.
type Patch struct {
	Title           *string   `json:"title,omitempty"`
	Subtitle        *string   `json:"subtitle,omitempty"`
	Description     *string   `json:"description,omitempty"`
	FullDescription *string   `json:"fullDescription,omitempty"`
	Duration        *string   `json:"duration,omitempty"`
	Date            *string   `json:"date,omitempty"`
	Price           *string   `json:"price,omitempty"`
	Images          *[]string `json:"images,omitempty"`
	Features        *[]string `json:"features,omitempty"`
	MaxPeople       *int      `json:"maxPeople,omitempty"`
}

// MaxImages caps the image gallery; position 0 is the cover by convention.
const MaxImages = 5

// Input converts a full tour into its editable projection.
func (t Tour) Input() TourInput {
	return TourInput{
		Title:           t.Title,
		Subtitle:        t.Subtitle,
		Description:     t.Description,
		FullDescription: t.FullDescription,
		Duration:        t.Duration,
		Date:            t.Date,
		Price:           t.Price,
		Images:          t.Images,
		Features:        t.Features,
		MaxPeople:       t.MaxPeople,
	}
}

// PatchOf builds a patch that sets every editable field from the input.
func PatchOf(in TourInput) Patch {
	images := in.Images
	if images == nil {
		images = []string{}
	}
	features := in.Features
	if features == nil {
		features = []string{}
	}
	return Patch{
		Title:           &in.Title,
		Subtitle:        &in.Subtitle,
		Description:     &in.Description,
		FullDescription: &in.FullDescription,
		Duration:        &in.Duration,
		Date:            &in.Date,
		Price:           &in.Price,
		Images:          &images,
		Features:        &features,
		MaxPeople:       &in.MaxPeople,
	}
}

// Apply merges the patch into the tour, leaving nil fields unchanged.
// The id, rating and reviews of the target are always preserved.
func (p Patch) Apply(t *Tour) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Subtitle != nil {
		t.Subtitle = *p.Subtitle
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.FullDescription != nil {
		t.FullDescription = *p.FullDescription
	}
	if p.Duration != nil {
		t.Duration = *p.Duration
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Price != nil {
		t.Price = *p.Price
	}
	if p.Images != nil {
		t.Images = *p.Images
	}
	if p.Features != nil {
		t.Features = *p.Features
	}
	if p.MaxPeople != nil {
		t.MaxPeople = *p.MaxPeople
	}
}
