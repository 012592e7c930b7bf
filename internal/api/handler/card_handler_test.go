package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"natrix-bank/internal/api/handler"
	"natrix-bank/internal/api/handler/dto"
	"natrix-bank/internal/domain/card"
	"natrix-bank/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCardService struct {
	mock.Mock
}

func (_m *MockCardService) CreateCard(ctx context.Context, mobileNumber string) (*card.Card, error) {
	ret := _m.Called(ctx, mobileNumber)

	var r0 *card.Card
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*card.Card)
	}

	return r0, ret.Error(1)
}

func (_m *MockCardService) FetchCard(ctx context.Context, mobileNumber string) (*card.Card, error) {
	ret := _m.Called(ctx, mobileNumber)

	var r0 *card.Card
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*card.Card)
	}

	return r0, ret.Error(1)
}

func (_m *MockCardService) UpdateCard(ctx context.Context, c *card.Card) error {
	ret := _m.Called(ctx, c)
	return ret.Error(0)
}

func (_m *MockCardService) DeleteCard(ctx context.Context, mobileNumber string) error {
	ret := _m.Called(ctx, mobileNumber)
	return ret.Error(0)
}

func newCardHandler(t *testing.T) (*MockCardService, *handler.CardHandler) {
	t.Helper()
	mockService := new(MockCardService)
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	return mockService, handler.NewCardHandler(mockService, logger)
}

func TestCardHandlerCreateCard(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockService, h := newCardHandler(t)
		issued := &card.Card{CardID: 7, CardNumber: "100523467891", MobileNumber: "0943210987"}
		mockService.On("CreateCard", mock.Anything, "0943210987").Return(issued, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/cards/create?mobileNumber=0943210987", nil)
		rec := httptest.NewRecorder()

		h.CreateCard(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var resp dto.ResponseDto
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "CREATED", resp.Status)
		mockService.AssertExpectations(t)
	})

	t.Run("invalid mobile number", func(t *testing.T) {
		mockService, h := newCardHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/cards/create?mobileNumber=12345", nil)
		rec := httptest.NewRecorder()

		h.CreateCard(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "CreateCard")
	})

	t.Run("already issued", func(t *testing.T) {
		mockService, h := newCardHandler(t)
		mockService.On("CreateCard", mock.Anything, "0943210987").Return(nil, apperrors.ErrAlreadyExists).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/cards/create?mobileNumber=0943210987", nil)
		rec := httptest.NewRecorder()

		h.CreateCard(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		mockService.AssertExpectations(t)
	})
}

func TestCardHandlerFetchCard(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockService, h := newCardHandler(t)
		stored := &card.Card{
			CardID:          7,
			CardNumber:      "100523467891",
			MobileNumber:    "0943210987",
			CardType:        card.DefaultCardType,
			TotalLimit:      decimal.NewFromInt(card.NewCardLimit),
			AmountUsed:      decimal.Zero,
			AvailableAmount: decimal.NewFromInt(card.NewCardLimit),
		}
		mockService.On("FetchCard", mock.Anything, "0943210987").Return(stored, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/cards/fetch?mobileNumber=0943210987", nil)
		rec := httptest.NewRecorder()

		h.FetchCard(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp dto.CardDto
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "100523467891", resp.CardNumber)
		assert.True(t, resp.TotalLimit.Equal(decimal.NewFromInt(card.NewCardLimit)))
		mockService.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockService, h := newCardHandler(t)
		mockService.On("FetchCard", mock.Anything, "0943210987").Return(nil, apperrors.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/cards/fetch?mobileNumber=0943210987", nil)
		rec := httptest.NewRecorder()

		h.FetchCard(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		mockService.AssertExpectations(t)
	})
}

func TestCardHandlerUpdateCard(t *testing.T) {
	payload := []byte(`{"mobileNumber":"0943210987","cardNumber":"100523467891","cardType":"Credit Card","totalLimit":"100000","amountUsed":"0","availableAmount":"100000"}`)

	t.Run("success", func(t *testing.T) {
		mockService, h := newCardHandler(t)
		mockService.On("UpdateCard", mock.Anything, mock.MatchedBy(func(c *card.Card) bool {
			return c.CardNumber == "100523467891" && c.MobileNumber == "0943210987"
		})).Return(nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/api/cards/update", bytes.NewReader(payload))
		rec := httptest.NewRecorder()

		h.UpdateCard(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("invalid card number length", func(t *testing.T) {
		mockService, h := newCardHandler(t)

		bad := []byte(`{"mobileNumber":"0943210987","cardNumber":"123","cardType":"Credit Card"}`)
		req := httptest.NewRequest(http.MethodPut, "/api/cards/update", bytes.NewReader(bad))
		rec := httptest.NewRecorder()

		h.UpdateCard(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "UpdateCard")
	})

	t.Run("not found", func(t *testing.T) {
		mockService, h := newCardHandler(t)
		mockService.On("UpdateCard", mock.Anything, mock.Anything).Return(apperrors.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodPut, "/api/cards/update", bytes.NewReader(payload))
		rec := httptest.NewRecorder()

		h.UpdateCard(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		mockService.AssertExpectations(t)
	})
}

func TestCardHandlerDeleteCard(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockService, h := newCardHandler(t)
		mockService.On("DeleteCard", mock.Anything, "0943210987").Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/cards/delete?mobileNumber=0943210987", nil)
		rec := httptest.NewRecorder()

		h.DeleteCard(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockService, h := newCardHandler(t)
		mockService.On("DeleteCard", mock.Anything, "0943210987").Return(apperrors.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/cards/delete?mobileNumber=0943210987", nil)
		rec := httptest.NewRecorder()

		h.DeleteCard(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		mockService.AssertExpectations(t)
	})
}
