package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Ключи Locals для идентичности запроса
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalIsAdmin  = "is_admin"
)

// Identity извлекает идентичность пользователя из заголовков, которые
// проставляет вышестоящий шлюз после аутентификации. Сам сервис токены
// не проверяет.
func Identity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if raw := c.Get("X-User-ID"); raw != "" {
			if id, err := uuid.Parse(raw); err == nil {
				c.Locals(LocalUserID, id)
			}
		}
		if username := c.Get("X-Username"); username != "" {
			c.Locals(LocalUsername, username)
		}
		c.Locals(LocalIsAdmin, c.Get("X-User-Admin") == "true")

		return c.Next()
	}
}

// UserID возвращает ID пользователя из контекста запроса
func UserID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(LocalUserID).(uuid.UUID)
	return id, ok
}

// Username возвращает имя пользователя из контекста запроса
func Username(c *fiber.Ctx) string {
	name, _ := c.Locals(LocalUsername).(string)
	return name
}

// IsAdmin сообщает, помечен ли запрос как административный
func IsAdmin(c *fiber.Ctx) bool {
	admin, _ := c.Locals(LocalIsAdmin).(bool)
	return admin
}
