package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Lixing-Zhang/grubdash-api/internal/idgen"
	"github.com/Lixing-Zhang/grubdash-api/internal/models"
	"github.com/Lixing-Zhang/grubdash-api/internal/repository"
	"github.com/Lixing-Zhang/grubdash-api/internal/service"
	"github.com/Lixing-Zhang/grubdash-api/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderResponse struct {
	Data models.Order `json:"data"`
}

type errorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func newTestRouter() (http.Handler, *repository.InMemoryOrderRepository) {
	repo := repository.NewInMemoryOrderRepository()
	log := logger.New("error")
	svc := service.NewOrderService(repo, idgen.New(100), log)
	handler := NewOrderHandler(svc, log)

	r := chi.NewRouter()
	r.Get("/orders", handler.ListOrders)
	r.Post("/orders", handler.CreateOrder)
	r.Get("/orders/{orderId}", handler.GetOrder)
	r.Put("/orders/{orderId}", handler.UpdateOrder)
	r.Delete("/orders/{orderId}", handler.DeleteOrder)
	return r, repo
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "successful order",
			body:           `{"data":{"deliverTo":"123 Main","mobileNumber":"555-1234","dishes":[{"name":"Pizza","price":10,"quantity":1}]}}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing deliverTo",
			body:           `{"data":{"mobileNumber":"555-1234","dishes":[{"quantity":1}]}}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Must include deliverTo",
		},
		{
			name:           "missing data",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Must include deliverTo",
		},
		{
			name:           "empty body",
			body:           ``,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Must include deliverTo",
		},
		{
			name:           "empty dishes",
			body:           `{"data":{"deliverTo":"a","mobileNumber":"b","dishes":[]}}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Order must include at least one dish.",
		},
		{
			name:           "non-integer quantity",
			body:           `{"data":{"deliverTo":"a","mobileNumber":"b","dishes":[{"quantity":1},{"quantity":"2"}]}}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Dish 1 must have a quantity that is an integer greater than 0.",
		},
		{
			name:           "invalid JSON",
			body:           `invalid json`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter()
			w := doRequest(t, router, http.MethodPost, "/orders", tt.body)

			require.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			if tt.expectedError != "" {
				var resp errorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedStatus, resp.Status)
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}

			var resp orderResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.NotEmpty(t, resp.Data.ID)
			assert.Equal(t, "123 Main", resp.Data.DeliverTo)
			assert.Equal(t, models.StatusPending, resp.Data.Status)
			require.Len(t, resp.Data.Dishes, 1)
			assert.Equal(t, 1, resp.Data.Dishes[0].Quantity)
		})
	}
}

func TestOrderHandler_ReadUpdateDelete(t *testing.T) {
	router, repo := newTestRouter()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, models.Order{
		ID:           "abc",
		DeliverTo:    "1 Road",
		MobileNumber: "555",
		Status:       models.StatusPending,
		Dishes:       []models.Dish{{Name: "Pizza", Quantity: 1}},
	}))

	w := doRequest(t, router, http.MethodGet, "/orders/abc", "")
	require.Equal(t, http.StatusOK, w.Code)
	var got orderResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, "abc", got.Data.ID)

	w = doRequest(t, router, http.MethodGet, "/orders/nope", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	update := `{"data":{"id":"abc","deliverTo":"2 Road","mobileNumber":"555","status":"preparing","dishes":[{"name":"Soup","quantity":4}]}}`
	w = doRequest(t, router, http.MethodPut, "/orders/abc", update)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, "2 Road", got.Data.DeliverTo)
	assert.Equal(t, models.StatusPreparing, got.Data.Status)
	assert.Equal(t, 4, got.Data.Dishes[0].Quantity)

	w = doRequest(t, router, http.MethodDelete, "/orders/abc", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	var errResp errorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&errResp))
	assert.Equal(t, "An order cannot be deleted unless it is pending", errResp.Message)
}

func TestOrderHandler_DeleteOrder(t *testing.T) {
	router, repo := newTestRouter()
	require.NoError(t, repo.Create(context.Background(), models.Order{ID: "p", Status: models.StatusPending}))

	w := doRequest(t, router, http.MethodDelete, "/orders/p", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, 0, repo.Count())
}

func TestOrderHandler_ListOrders(t *testing.T) {
	router, _ := newTestRouter()

	w := doRequest(t, router, http.MethodGet, "/orders", "")
	require.Equal(t, http.StatusOK, w.Code)
	// an empty store still renders an array
	assert.JSONEq(t, `{"data":[]}`, w.Body.String())
}

type failingService struct {
	orderService
}

func (failingService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return nil, errors.New("store unavailable")
}

func TestOrderHandler_InternalErrorIsHidden(t *testing.T) {
	handler := NewOrderHandler(failingService{}, logger.New("error"))

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	w := httptest.NewRecorder()
	handler.ListOrders(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp errorResponse
	require.NoError(t, json.NewDecoder(bytes.NewReader(w.Body.Bytes())).Decode(&resp))
	assert.Equal(t, "Internal server error", resp.Message)
	assert.NotContains(t, w.Body.String(), "store unavailable")
}
