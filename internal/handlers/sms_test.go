package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/disha-labs/disha-backend/internal/dialog"
	"github.com/disha-labs/disha-backend/internal/i18n"
	"github.com/disha-labs/disha-backend/internal/knowledge"
	"github.com/disha-labs/disha-backend/internal/storage"
)

func newSMSTestApp(t *testing.T) (*fiber.App, *recordingSender) {
	t.Helper()

	store := storage.NewMemoryStore()
	manager := dialog.NewManager(store, knowledge.NewBase(), i18n.NewTranslator())
	sender := &recordingSender{}

	handler := NewSMSHandler(manager, sender)
	app := fiber.New()
	app.Post("/webhook/sms", handler.HandleWebhook)
	app.Post("/test/sms", handler.HandleTestWebhook)
	return app, sender
}

type recordingSender struct {
	to   string
	body string
}

func (r *recordingSender) Send(to, body string) error {
	r.to = to
	r.body = body
	return nil
}

func TestHandleWebhook_FormPostRepliesTwiML(t *testing.T) {
	app, sender := newSMSTestApp(t)

	form := "Body=I+need+a+job&From=whatsapp%3A%2B919000000001"
	req := httptest.NewRequest("POST", "/webhook/sms", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/xml")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "<Response><Message>")
	assert.Contains(t, string(body), "What is your age?")

	// The "whatsapp:" prefix is stripped before delivery.
	assert.Equal(t, "+919000000001", sender.to)
	assert.Contains(t, sender.body, "What is your age?")
}

func TestHandleWebhook_JSONPostRepliesJSON(t *testing.T) {
	app, _ := newSMSTestApp(t)

	req := httptest.NewRequest("POST", "/webhook/sms",
		strings.NewReader(`{"message": "I need a job", "phone": "+919000000001"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "What is your age?", out["reply"])
}

func TestHandleWebhook_MissingFields(t *testing.T) {
	app, _ := newSMSTestApp(t)

	req := httptest.NewRequest("POST", "/webhook/sms",
		strings.NewReader(`{"message": "hello"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleTestWebhook_Echo(t *testing.T) {
	app, _ := newSMSTestApp(t)

	req := httptest.NewRequest("POST", "/test/sms",
		strings.NewReader(`{"from": "+919000000002", "message": "scholarship chahiye"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		Success  bool   `json:"success"`
		Response string `json:"response"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Success)
	assert.NotEmpty(t, out.Response)
}
