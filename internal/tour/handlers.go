package tour

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Get("/", func(c *fiber.Ctx) error {
		tours, err := svc.List(c.Context())
		if err != nil {
			return internalError(c, "fetching tours", err)
		}
		return c.JSON(tours)
	})

	r.Post("/", func(c *fiber.Ctx) error {
		var input TourInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		if err := validateInput(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		id, err := svc.Create(c.Context(), input)
		if err != nil {
			return internalError(c, "creating tour", err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id, "message": "Tour created successfully"})
	})

	r.Put("/:id", func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid tour id"})
		}
		var input TourInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		if err := validateInput(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		if err := svc.Update(c.Context(), id, input); err != nil {
			return internalError(c, "updating tour", err)
		}
		return c.JSON(fiber.Map{"message": "Tour updated successfully"})
	})

	r.Delete("/:id", func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid tour id"})
		}
		if err := svc.Delete(c.Context(), id); err != nil {
			return internalError(c, "deleting tour", err)
		}
		return c.JSON(fiber.Map{"message": "Tour deleted successfully"})
	})
}

func validateInput(input TourInput) error {
	if input.Title == "" {
		return errors.New("title is required")
	}
	if input.MaxPeople < 0 {
		return errors.New("maxPeople must not be negative")
	}
	if len(input.Images) > MaxImages {
		return errors.New("a tour can hold at most 5 images")
	}
	return nil
}

// internalError logs the storage fault and returns the uniform 500 body;
// no error detail crosses the endpoint boundary.
func internalError(c *fiber.Ctx, op string, err error) error {
	log.Printf("Error %s: %v", op, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
}
