package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/minesight/rockfall-backend-go/internal/ml"
	"github.com/minesight/rockfall-backend-go/internal/models"
	"github.com/minesight/rockfall-backend-go/pkg/response"
)

// PredictHandler handles HTTP requests for risk predictions
type PredictHandler struct {
	predictor *ml.Predictor
}

// NewPredictHandler creates a new predict handler
func NewPredictHandler(predictor *ml.Predictor) *PredictHandler {
	return &PredictHandler{
		predictor: predictor,
	}
}

// Predict handles POST /predict-risk/. The endpoint is public; omitted input
// fields fall back to fixed defaults. A missing forest model or scaler fails
// the request with a server error.
func (h *PredictHandler) Predict(c *gin.Context) {
	var req models.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		// An empty body is a valid request; every field has a default
		response.BadRequest(c, "Invalid prediction payload")
		return
	}

	result, err := h.predictor.Predict(req)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, result)
}
