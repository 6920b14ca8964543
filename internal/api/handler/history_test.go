package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/moodlens/moodlens/internal/domain"
)

func TestHistoryHandler_History(t *testing.T) {
	createdAt := time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC)

	mockService := &MockPredictionService{}
	mockService.On("History", mock.Anything, 100).Return([]domain.Prediction{
		{Emotion: "happy", Confidence: 0.97, CreatedAt: createdAt},
		{Emotion: "sad", Confidence: 0.61, CreatedAt: createdAt.Add(-time.Minute)},
	}, nil)

	h := NewHistoryHandler(mockService, 100, testLogger())
	app := createTestApp()
	app.Get("/history", h.History)

	resp, err := app.Test(httptest.NewRequest("GET", "/history", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out HistoryResponse
	require.NoError(t, json.Unmarshal(body, &out))
	require.Len(t, out.History, 2)

	assert.Equal(t, "2026-08-23T10:30:00Z", out.History[0].Timestamp)
	assert.Equal(t, "happy", out.History[0].Emotion)
	assert.Equal(t, 0.97, out.History[0].Confidence)
	assert.Equal(t, "sad", out.History[1].Emotion)

	mockService.AssertExpectations(t)
}

func TestHistoryHandler_History_LimitParam(t *testing.T) {
	mockService := &MockPredictionService{}
	mockService.On("History", mock.Anything, 10).Return([]domain.Prediction{}, nil)

	h := NewHistoryHandler(mockService, 100, testLogger())
	app := createTestApp()
	app.Get("/history", h.History)

	resp, err := app.Test(httptest.NewRequest("GET", "/history?limit=10", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out HistoryResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.NotNil(t, out.History)
	assert.Empty(t, out.History)

	mockService.AssertExpectations(t)
}

func TestHistoryHandler_History_InvalidLimit(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "zero", query: "limit=0"},
		{name: "negative", query: "limit=-5"},
		{name: "above cap", query: "limit=1001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockPredictionService{}

			h := NewHistoryHandler(mockService, 100, testLogger())
			app := createTestApp()
			app.Get("/history", h.History)

			resp, err := app.Test(httptest.NewRequest("GET", "/history?"+tt.query, nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, 400, resp.StatusCode)
			mockService.AssertNotCalled(t, "History", mock.Anything, mock.Anything)
		})
	}
}

func TestHistoryHandler_History_NonNumericLimitFallsBack(t *testing.T) {
	mockService := &MockPredictionService{}
	mockService.On("History", mock.Anything, 100).Return([]domain.Prediction{}, nil)

	h := NewHistoryHandler(mockService, 100, testLogger())
	app := createTestApp()
	app.Get("/history", h.History)

	resp, err := app.Test(httptest.NewRequest("GET", "/history?limit=abc", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestHistoryHandler_History_ServiceError(t *testing.T) {
	mockService := &MockPredictionService{}
	mockService.On("History", mock.Anything, 100).Return(nil, domain.ErrInternal)

	h := NewHistoryHandler(mockService, 100, testLogger())
	app := createTestApp()
	app.Get("/history", h.History)

	resp, err := app.Test(httptest.NewRequest("GET", "/history", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 500, resp.StatusCode)
}

func TestHistoryHandler_Stats(t *testing.T) {
	mockService := &MockPredictionService{}
	mockService.On("Stats", mock.Anything).Return(&domain.EmotionCounts{
		Total:     9,
		ByEmotion: map[string]int64{"happy": 5, "neutral": 4},
	}, nil)

	h := NewHistoryHandler(mockService, 100, testLogger())
	app := createTestApp()
	app.Get("/stats", h.Stats)

	resp, err := app.Test(httptest.NewRequest("GET", "/stats", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out StatsResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, int64(9), out.Total)
	assert.Equal(t, int64(5), out.ByEmotion["happy"])
	assert.Equal(t, int64(4), out.ByEmotion["neutral"])

	mockService.AssertExpectations(t)
}
