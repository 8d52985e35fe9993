package http

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Envelope envoltura uniforme de toda respuesta exitosa:
// {statusCode, message, data, timestamp}. Los errores (status >= 400) y las
// respuestas no-JSON (PDF, HTML de Swagger) la omiten.
type Envelope struct {
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
	Timestamp  string      `json:"timestamp"`
}

// DefaultMessage mensaje del envelope cuando el handler no entrega uno propio.
const DefaultMessage = "Solicitud exitosa"

// ResponseEnvelope middleware que reempaqueta el cuerpo JSON de las respuestas
// exitosas dentro del Envelope. Si el payload del handler ya trae un campo
// "data", se desenvuelve y su "message" (si existe) se usa como mensaje.
func ResponseEnvelope() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := c.Next(); err != nil {
			return err
		}
		status := c.Response().StatusCode()
		if status >= fiber.StatusBadRequest {
			return nil
		}
		contentType := string(c.Response().Header.ContentType())
		if !strings.HasPrefix(contentType, fiber.MIMEApplicationJSON) {
			return nil
		}

		var payload interface{}
		if err := json.Unmarshal(c.Response().Body(), &payload); err != nil {
			return nil // cuerpo no parseable: se deja intacto
		}

		message := DefaultMessage
		data := payload
		if m, ok := payload.(map[string]interface{}); ok {
			if inner, exists := m["data"]; exists {
				data = inner
				if s, ok := m["message"].(string); ok && s != "" {
					message = s
				}
			}
		}

		return c.Status(status).JSON(Envelope{
			StatusCode: status,
			Message:    message,
			Data:       data,
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
		})
	}
}
