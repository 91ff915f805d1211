package handlers

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/disha-labs/disha-backend/internal/dialog"
	"github.com/disha-labs/disha-backend/internal/sms"
)

// SMSHandler handles inbound message webhooks.
type SMSHandler struct {
	manager *dialog.Manager
	sender  sms.Sender
}

// NewSMSHandler creates an SMS webhook handler. A nil sender is allowed
// for deployments that only use the synchronous TwiML reply.
func NewSMSHandler(manager *dialog.Manager, sender sms.Sender) *SMSHandler {
	return &SMSHandler{manager: manager, sender: sender}
}

// inboundPayload accepts both the Twilio form post (Body/From) and the
// JSON shape {"message": ..., "phone": ...}; both route here.
type inboundPayload struct {
	Body string `form:"Body" json:"message"`
	From string `form:"From" json:"phone"`
}

// HandleWebhook processes one inbound message and answers with the next
// dialog reply, as TwiML for form posts and JSON otherwise.
func (h *SMSHandler) HandleWebhook(c *fiber.Ctx) error {
	var payload inboundPayload
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing webhook: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid webhook payload",
		})
	}
	if payload.Body == "" || payload.From == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing message body or sender",
		})
	}

	phone := strings.TrimPrefix(payload.From, "whatsapp:")
	log.Printf("📱 Message from %s: %s", phone, payload.Body)

	reply, err := h.manager.HandleMessage(phone, payload.Body)
	if err != nil {
		// Store failures are retryable; nothing was committed.
		log.Printf("Error processing message from %s: %v", phone, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Temporary failure, please retry",
		})
	}

	// The turn is already committed. A failed outbound send is logged
	// and never rolls the session back.
	if h.sender != nil {
		if err := h.sender.Send(phone, reply); err != nil {
			log.Printf("❌ Failed to deliver reply to %s: %v", phone, err)
		}
	}

	if c.Is("json") {
		return c.JSON(fiber.Map{"reply": reply})
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	return c.SendString(twiml(reply))
}

// testPayload mirrors inboundPayload for the development echo endpoint.
type testPayload struct {
	From    string `json:"from"`
	Message string `json:"message"`
}

// HandleTestWebhook processes test messages without Twilio, echoing the
// reply as JSON.
func (h *SMSHandler) HandleTestWebhook(c *fiber.Ctx) error {
	var payload testPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid test payload",
		})
	}

	reply, err := h.manager.HandleMessage(payload.From, payload.Message)
	if err != nil {
		log.Printf("Error processing test message: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"response": reply,
	})
}

func twiml(reply string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(reply))
	return fmt.Sprintf("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<Response><Message>%s</Message></Response>", buf.String())
}
