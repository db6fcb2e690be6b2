package handler

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// FormValues returns the url-encoded or multipart form of the request with
// repeated fields kept in order.
func FormValues(c *fiber.Ctx) url.Values {
	values := url.Values{}

	if form, err := c.MultipartForm(); err == nil && form != nil {
		for k, v := range form.Value {
			values[k] = append(values[k], v...)
		}

		return values
	}

	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		values.Add(string(key), string(value))
	})

	return values
}

// ParamID parses a numeric route parameter.
func ParamID(c *fiber.Ctx, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusNotFound, "Not Found")
	}

	return id, nil
}
