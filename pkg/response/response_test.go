package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github-event-monitor/pkg/response"
)

func TestResponses(t *testing.T) {
	// Setup Gin test mode
	gin.SetMode(gin.TestMode)

	t.Run("Success", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Success(c)

		if w.Code != http.StatusOK {
			t.Errorf("expected %d but got %d", http.StatusOK, w.Code)
		}
		if body := w.Body.String(); body != `{"status":"success"}` {
			t.Errorf("unexpected body: %s", body)
		}
	})

	t.Run("Ignored", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Ignored(c)

		if w.Code != http.StatusOK {
			t.Errorf("expected %d but got %d", http.StatusOK, w.Code)
		}
		if body := w.Body.String(); body != `{"status":"ignored"}` {
			t.Errorf("unexpected body: %s", body)
		}
	})

	t.Run("BadRequest", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.BadRequest(c, "No data received")

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected %d, got %d", http.StatusBadRequest, w.Code)
		}

		var ack response.Ack
		if err := json.Unmarshal(w.Body.Bytes(), &ack); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if ack.Status != response.StatusError || ack.Message != "No data received" {
			t.Errorf("unexpected ack: %+v", ack)
		}
	})

	t.Run("InternalError", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.InternalError(c, errors.New("storage down"))

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected %d, got %d", http.StatusInternalServerError, w.Code)
		}

		var ack response.Ack
		if err := json.Unmarshal(w.Body.Bytes(), &ack); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if ack.Status != response.StatusError || ack.Message != "storage down" {
			t.Errorf("unexpected ack: %+v", ack)
		}
	})

	t.Run("List", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.List(c, []string{"a", "b"})

		if body := w.Body.String(); body != `["a","b"]` {
			t.Errorf("unexpected body: %s", body)
		}
	})

	t.Run("List with nil slice renders empty array", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.List(c, nil)

		if body := w.Body.String(); body != `[]` {
			t.Errorf("unexpected body: %s", body)
		}
	})

	t.Run("ListInternalError", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.ListInternalError(c, errors.New("failed to list records"))

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected %d, got %d", http.StatusInternalServerError, w.Code)
		}
		if body := w.Body.String(); body != `{"error":"failed to list records"}` {
			t.Errorf("unexpected body: %s", body)
		}
	})
}
