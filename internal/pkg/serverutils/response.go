package serverutils

import "github.com/gofiber/fiber/v2"

// SuccessResponse is the standard success envelope.
func SuccessResponse(message string, data interface{}) fiber.Map {
	return fiber.Map{
		"success": true,
		"code":    200,
		"message": message,
		"data":    data,
	}
}

// ErrorResponse is the standard error envelope.
func ErrorResponse(code int, message string) fiber.Map {
	return fiber.Map{
		"success": false,
		"code":    code,
		"message": message,
	}
}
