package controllers

import (
	"strconv"

	"fleet-backend/bleve/repositories"

	"github.com/gofiber/fiber/v2"
)

type SearchController struct {
	repo *repositories.BleveRepository
}

func NewSearchController(repo *repositories.BleveRepository) *SearchController {
	return &SearchController{repo: repo}
}

func (c *SearchController) SearchVehiclesController(ctx *fiber.Ctx) error {
	query := ctx.Query("q")
	status := ctx.Query("status")
	city := ctx.Query("registered_city")

	size := 50
	if sizeStr := ctx.Query("size"); sizeStr != "" {
		val, err := strconv.Atoi(sizeStr)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid 'size' value",
			})
		}
		size = val
	}

	results, err := c.repo.SearchVehicles(query, status, city, size)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Search failed",
		})
	}

	var matches []interface{}
	for _, hit := range results.Hits {
		matches = append(matches, hit.Fields)
	}

	return ctx.JSON(fiber.Map{
		"results": matches,
		"total":   results.Total,
	})
}
