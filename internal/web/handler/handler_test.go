package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testInput struct {
	Title string `json:"title" validate:"required"`
	Order *int   `json:"order" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
}

// errorApp writes *Error values the way the web package does.
func errorApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*Error); ok { //nolint:errorlint // test helper
				return c.Status(e.Status).JSON(e)
			}

			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": MsgInternalServerError})
		},
	})
}

func TestBind(t *testing.T) {
	app := errorApp()
	app.Post("/", func(c *fiber.Ctx) error {
		in := new(testInput)
		if err := Bind(c, in); err != nil {
			return err
		}

		return c.JSON(in)
	})

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   map[string]any
	}{
		{
			name:       "valid",
			body:       `{"title":"t","order":0}`,
			wantStatus: fiber.StatusOK,
			wantBody:   map[string]any{"title": "t", "order": float64(0), "email": ""},
		},
		{
			name:       "malformed json",
			body:       `{"title":`,
			wantStatus: fiber.StatusBadRequest,
			wantBody:   map[string]any{"message": MsgInvalidBody},
		},
		{
			name:       "wrong type",
			body:       `{"title":1,"order":0}`,
			wantStatus: fiber.StatusBadRequest,
			wantBody:   map[string]any{"message": MsgInvalidBody},
		},
		{
			name:       "missing fields",
			body:       `{"email":"nope"}`,
			wantStatus: fiber.StatusBadRequest,
			wantBody: map[string]any{
				"message": MsgValidationFailed,
				"errors": []any{
					map[string]any{"field": "title", "tag": "required", "value": ""},
					map[string]any{"field": "order", "tag": "required", "value": nil},
					map[string]any{"field": "email", "tag": "email", "value": "nope"},
				},
			},
		},
		{
			name:       "empty body is an empty object",
			body:       ``,
			wantStatus: fiber.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantBody == nil {
				return
			}

			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			var got map[string]any
			require.NoError(t, json.Unmarshal(raw, &got))
			assert.Equal(t, tt.wantBody, got)
		})
	}
}

func TestParseID(t *testing.T) {
	app := errorApp()
	app.Get("/:id", func(c *fiber.Ctx) error {
		id, err := ParseID(c)
		if err != nil {
			return err
		}

		return c.JSON(fiber.Map{"id": id})
	})

	tests := []struct {
		path       string
		wantStatus int
	}{
		{path: "/1", wantStatus: fiber.StatusOK},
		{path: "/9223372036854775807", wantStatus: fiber.StatusOK},
		{path: "/9223372036854775808", wantStatus: fiber.StatusBadRequest},
		{path: "/18446744073709551615", wantStatus: fiber.StatusBadRequest},
		{path: "/0", wantStatus: fiber.StatusBadRequest},
		{path: "/-1", wantStatus: fiber.StatusBadRequest},
		{path: "/abc", wantStatus: fiber.StatusBadRequest},
		{path: "/1.5", wantStatus: fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, tt.path, nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestErrorConstructors(t *testing.T) {
	assert.Equal(t, fiber.StatusBadRequest, ValidationError(nil).Status)
	assert.Equal(t, fiber.StatusUnauthorized, Unauthorized(MsgUnauthorized).Status)
	assert.Equal(t, "Blog post not found", NotFound("Blog post not found").Message)
	assert.Equal(t, MsgNotFound, NotFound("").Message)
	assert.Equal(t, "400: Invalid id", BadRequest(MsgInvalidID).Error())
}
