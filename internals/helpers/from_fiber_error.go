// file: internals/helpers/from_fiber_error.go
package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// FiberErrorHandler renders every error as the uniform API envelope.
// Handlers return *fiber.Error with the status they mean; anything else is
// an unexpected failure and comes back as a bare 500 with no internals.
func FiberErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	} else {
		log.Printf("[ERROR] unhandled: %v", err)
	}

	return Error(c, code, message)
}
