package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fuelpark-service/internal/pkg/utils"
)

// queryFloat читает необязательное число из query. Десятичная запятая
// допускается. Отсутствующее или нечитаемое значение - nil.
func queryFloat(c *fiber.Ctx, key string) *float64 {
	v, ok := utils.ParseDecimal(c.Query(key))
	if !ok {
		return nil
	}
	return &v
}
