package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Lixing-Zhang/grubdash-api/internal/apperror"
	"github.com/Lixing-Zhang/grubdash-api/internal/models"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 1 << 20

// decodeOrder reads a {"data": {...}} body. An empty body yields an empty
// payload so the required-field checks report what is missing.
func decodeOrder(w http.ResponseWriter, r *http.Request) (*models.OrderPayload, error) {
	var envelope models.OrderEnvelope

	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&envelope)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, apperror.Validation("Invalid request body")
	}

	if envelope.Data == nil {
		return &models.OrderPayload{}, nil
	}
	return envelope.Data, nil
}
