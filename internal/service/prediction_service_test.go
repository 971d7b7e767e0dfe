package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPredictionRequest() *PredictionRequest {
	return &PredictionRequest{
		Population:    1200,
		Age:           21,
		FeedYesterday: 85.5,
		Leftover:      2.3,
		Gender:        GenderJantan,
	}
}

func TestPredictSendsWirePayload(t *testing.T) {
	var got predictPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/predict", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(predictResponse{Prediction: 88.7})
	}))
	defer server.Close()

	svc := NewPredictionService(server.URL)
	result, err := svc.Predict(validPredictionRequest())
	require.NoError(t, err)
	assert.InDelta(t, 88.7, result, 0.0001)

	assert.Equal(t, 1200, got.Population)
	assert.Equal(t, 21, got.Age)
	assert.InDelta(t, 85.5, got.FeedYesterday, 0.0001)
	assert.InDelta(t, 2.3, got.Leftover, 0.0001)
	assert.Equal(t, 1, got.Gender)
}

func TestPredictGenderEncoding(t *testing.T) {
	var got predictPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(predictResponse{Prediction: 1})
	}))
	defer server.Close()

	svc := NewPredictionService(server.URL)

	req := validPredictionRequest()
	req.Gender = GenderBetina
	_, err := svc.Predict(req)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Gender)
}

func TestPredictValidatesInput(t *testing.T) {
	// No server at all: validation must fail before the HTTP call
	svc := NewPredictionService("http://127.0.0.1:1")

	cases := []*PredictionRequest{
		{},
		{Population: 100, Age: 21, FeedYesterday: 80, Gender: "unknown"},
		{Population: -5, Age: 21, FeedYesterday: 80, Gender: GenderJantan},
		{Population: 100, Age: 0, FeedYesterday: 80, Gender: GenderBetina},
	}
	for _, req := range cases {
		_, err := svc.Predict(req)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrPredictionUnavailable)
	}
}

func TestPredictServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(predictResponse{Error: "model not loaded"})
	}))
	defer server.Close()

	svc := NewPredictionService(server.URL)
	_, err := svc.Predict(validPredictionRequest())
	require.Error(t, err)
	assert.EqualError(t, err, "model not loaded")
}

func TestPredictNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := NewPredictionService(server.URL)
	_, err := svc.Predict(validPredictionRequest())
	assert.ErrorIs(t, err, ErrPredictionUnavailable)
}

func TestPredictUnreachable(t *testing.T) {
	svc := NewPredictionService("http://127.0.0.1:1")
	_, err := svc.Predict(validPredictionRequest())
	assert.ErrorIs(t, err, ErrPredictionUnavailable)
}
