package pagination

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// FromRequest extracts page, limit and search term from query parameters.
// Values outside the valid ranges are clamped by Normalize at query time.
func FromRequest(c *fiber.Ctx) Query {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", strconv.Itoa(DefaultLimit)))

	return Query{
		Page:   page,
		Limit:  limit,
		Search: c.Query("search"),
	}
}
