package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go-poultrigo/pkg/validator"
)

var ErrPredictionUnavailable = errors.New("prediction service unavailable")

// Gender values accepted by the feed prediction form.
const (
	GenderJantan = "jantan"
	GenderBetina = "betina"
)

// PredictionRequest carries the daily feed inputs for one kandang.
type PredictionRequest struct {
	Population    int     `json:"population" form:"population" validate:"required,gt=0"`
	Age           int     `json:"age" form:"age" validate:"required,gt=0"`
	FeedYesterday float64 `json:"feed_yesterday" form:"feed_yesterday" validate:"required,gt=0"`
	Leftover      float64 `json:"leftover" form:"leftover" validate:"gte=0"`
	Gender        string  `json:"gender" form:"gender" validate:"required,oneof=jantan betina"`
}

type PredictionService interface {
	Predict(req *PredictionRequest) (float64, error)
}

type predictionService struct {
	baseURL string
	client  *http.Client
}

func NewPredictionService(baseURL string) PredictionService {
	return &predictionService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// wire format of the external ML service
type predictPayload struct {
	Population    int     `json:"population"`
	Age           int     `json:"age"`
	FeedYesterday float64 `json:"feedYesterday"`
	Leftover      float64 `json:"leftover"`
	Gender        int     `json:"gender"` // 1 = jantan, 0 = betina
}

type predictResponse struct {
	Prediction float64 `json:"prediction"`
	Error      string  `json:"error"`
}

// Predict calls the external ML service. No retry: a failed call surfaces
// directly to the caller.
func (s *predictionService) Predict(req *PredictionRequest) (float64, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return 0, errors.New("all prediction fields are required")
	}

	gender := 0
	if req.Gender == GenderJantan {
		gender = 1
	}

	body, err := json.Marshal(predictPayload{
		Population:    req.Population,
		Age:           req.Age,
		FeedYesterday: req.FeedYesterday,
		Leftover:      req.Leftover,
		Gender:        gender,
	})
	if err != nil {
		return 0, err
	}

	resp, err := s.client.Post(s.baseURL+"/predict", "application/json", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPredictionUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: %s", ErrPredictionUnavailable, resp.Status)
	}

	var result predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("%w: bad response", ErrPredictionUnavailable)
	}
	if result.Error != "" {
		return 0, errors.New(result.Error)
	}

	return result.Prediction, nil
}
