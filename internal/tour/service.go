package tour

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/fabriciorsa/Guia-Ligiane/internal/db"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

// List returns every tour with images/features deserialized and rating
// coerced to a float even when the column scans as text.
func (s *Service) List(ctx context.Context) ([]Tour, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, title, subtitle, description, full_description, duration, date, price, images, features, rating, reviews, max_people
		FROM tours ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tours := []Tour{}
	for rows.Next() {
		var t Tour
		var images, features []byte
		var rating string
		if err := rows.Scan(&t.ID, &t.Title, &t.Subtitle, &t.Description, &t.FullDescription,
			&t.Duration, &t.Date, &t.Price, &images, &features, &rating, &t.Reviews, &t.MaxPeople); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(images, &t.Images); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(features, &t.Features); err != nil {
			return nil, err
		}
		if t.Rating, err = strconv.ParseFloat(rating, 64); err != nil {
			return nil, err
		}
		tours = append(tours, t)
	}
	return tours, rows.Err()
}

// Create persists a new tour with rating 5.0 and zero reviews and returns
// the assigned id. Missing image/feature lists default to empty arrays.
func (s *Service) Create(ctx context.Context, input TourInput) (int64, error) {
	images, err := marshalList(input.Images)
	if err != nil {
		return 0, err
	}
	features, err := marshalList(input.Features)
	if err != nil {
		return 0, err
	}

	var id int64
	row := s.db.QueryRow(ctx, `
		INSERT INTO tours (title, subtitle, description, full_description, duration, date, price, images, features, rating, reviews, max_people)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,5.0,0,$10)
		RETURNING id
	`, input.Title, input.Subtitle, input.Description, input.FullDescription,
		input.Duration, input.Date, input.Price, images, features, input.MaxPeople)
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// Update overwrites the editable columns of the addressed row. Rating and
// reviews are preserved; a missing id is a silent no-op (last write wins).
func (s *Service) Update(ctx context.Context, id int64, input TourInput) error {
	images, err := marshalList(input.Images)
	if err != nil {
		return err
	}
	features, err := marshalList(input.Features)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(ctx, `
		UPDATE tours
		SET title=$2, subtitle=$3, description=$4, full_description=$5, duration=$6, date=$7, price=$8, images=$9, features=$10, max_people=$11
		WHERE id=$1
	`, id, input.Title, input.Subtitle, input.Description, input.FullDescription,
		input.Duration, input.Date, input.Price, images, features, input.MaxPeople)
	return err
}

// Delete removes the row unconditionally. Deleting an absent id is not an error.
func (s *Service) Delete(ctx context.Context, id int64) error {
	_, err := s.db.Exec(ctx, `DELETE FROM tours WHERE id=$1`, id)
	return err
}

func marshalList(list []string) ([]byte, error) {
	if list == nil {
		list = []string{}
	}
	return json.Marshal(list)
}
