package tour

import (
	"context"
	"encoding/json"

	"github.com/fabriciorsa/Guia-Ligiane/internal/db"
)

// Migrate creates the tours table when it does not exist yet. Images and
// features are serialized JSON arrays; rating keeps one decimal place.
func Migrate(ctx context.Context, q db.Querier) error {
	_, err := q.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS tours (
			id BIGSERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			subtitle TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			full_description TEXT NOT NULL DEFAULT '',
			duration TEXT NOT NULL DEFAULT '',
			date TEXT NOT NULL DEFAULT '',
			price TEXT NOT NULL DEFAULT '',
			images JSONB NOT NULL DEFAULT '[]',
			features JSONB NOT NULL DEFAULT '[]',
			rating NUMERIC(3,1) NOT NULL DEFAULT 5.0,
			reviews INT NOT NULL DEFAULT 0,
			max_people INT NOT NULL DEFAULT 0
		)
	`)
	return err
}

// Seed inserts the launch catalog when the table is empty so a fresh
// install renders a populated site.
func Seed(ctx context.Context, q db.Querier) error {
	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM tours`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, t := range seedTours {
		images, err := json.Marshal(t.Images)
		if err != nil {
			return err
		}
		features, err := json.Marshal(t.Features)
		if err != nil {
			return err
		}
		_, err = q.Exec(ctx, `
			INSERT INTO tours (title, subtitle, description, full_description, duration, date, price, images, features, rating, reviews, max_people)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		`, t.Title, t.Subtitle, t.Description, t.FullDescription, t.Duration, t.Date, t.Price,
			images, features, t.Rating, t.Reviews, t.MaxPeople)
		if err != nil {
			return err
		}
	}
	return nil
}

var seedTours = []Tour{
	{
		Title:           "Ilha Pomonga",
		Subtitle:        "No Tototó",
		Description:     "Um passeio relaxante pelo estuário, conhecendo a rica biodiversidade e a cultura local.",
		FullDescription: "Explore a Ilha Pomonga a bordo do tradicional Tototó. Um passeio que conecta você com a natureza vibrante do estuário, manguezais e a tranquilidade das águas sergipanas.",
		Duration:        "5 horas",
		Date:            "01 de Março de 2026",
		Price:           "160",
		Images:          []string{"/images/tours/pomonga.jpg"},
		Features:        []string{"Passeio de Tototó", "Guia local", "Almoço típico", "Parada para banho", "Seguro viagem"},
		Rating:          4.8,
		Reviews:         124,
		MaxPeople:       20,
	},
	{
		Title:           "Pacatuba",
		Subtitle:        "Pantanal Sergipano",
		Description:     "Dunas, lagoas e uma paisagem de tirar o fôlego no coração de Sergipe.",
		FullDescription: "Conheça o Pantanal Sergipano em Pacatuba. Uma aventura off-road que leva você a dunas intocadas, lagoas cristalinas e mirantes com vistas espetaculares.",
		Duration:        "8 horas",
		Date:            "08 de Março de 2026",
		Price:           "220",
		Images:          []string{"/images/tours/pacatuba.jpg"},
		Features:        []string{"Transporte 4x4", "Guia especializado", "Lanche de trilha", "Fotos inclusas", "Taxas ambientais"},
		Rating:          4.9,
		Reviews:         89,
		MaxPeople:       12,
	},
	{
		Title:           "Tur 3 Ilhas",
		Subtitle:        "No Tototó",
		Description:     "Um roteiro completo visitando três ilhas paradisíacas em um único dia.",
		FullDescription: "Aventure-se no Tur 3 Ilhas a bordo do Tototó. Descubra paisagens únicas, bancos de areia e a vida marinha local em um passeio dinâmico e divertido.",
		Duration:        "6 horas",
		Date:            "15 de Março de 2026",
		Price:           "180",
		Images:          []string{"/images/tours/3ilhas.jpg"},
		Features:        []string{"Visita a 3 Ilhas", "Música a bordo", "Frutas tropicais", "Equipamento snorkel", "Refrigerante e água"},
		Rating:          5.0,
		Reviews:         215,
		MaxPeople:       25,
	},
	{
		Title:           "Lagoa dos Tambaquis",
		Subtitle:        "+ Paraíso da Lagoa (Pirambu)",
		Description:     "Interação com peixes e relaxamento em um complexo de lazer incrível.",
		FullDescription: "Visite a famosa Lagoa dos Tambaquis, onde você pode alimentar e nadar com os peixes. Em seguida, relaxe no Paraíso da Lagoa em Pirambu, com estrutura completa.",
		Duration:        "7 horas",
		Date:            "22 de Março de 2026",
		Price:           "150",
		Images:          []string{"/images/tours/tambaquis.jpg"},
		Features:        []string{"Entrada na Lagoa", "Ração para peixes", "Acesso ao Day Use", "Transporte Climatizado", "Almoço não incluso"},
		Rating:          4.7,
		Reviews:         340,
		MaxPeople:       30,
	},
	{
		Title:           "Trilha Cachoeira Roncador",
		Subtitle:        "+ Paraíso da Lagoa (Pirambu)",
		Description:     "Aventura na mata atlântica terminando em uma cachoeira refrescante.",
		FullDescription: "Faça a Trilha da Cachoeira do Roncador, encravada na mata. Após a caminhada, descanse e aproveite o dia no clube Paraíso da Lagoa em Pirambu.",
		Duration:        "8 horas",
		Date:            "29 de Março de 2026",
		Price:           "190",
		Images:          []string{"/images/tours/roncador.jpg"},
		Features:        []string{"Guia de trilha", "Banho de cachoeira", "Day Use no Clube", "Kit primeiros socorros", "Translado"},
		Rating:          4.9,
		Reviews:         156,
		MaxPeople:       15,
	},
}
