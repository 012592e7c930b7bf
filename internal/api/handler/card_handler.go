package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"natrix-bank/internal/api/handler/dto"
	"natrix-bank/internal/domain/card"
	"natrix-bank/internal/pkg/apperrors"
)

type CardHandler struct {
	service card.CardService
	logger  *slog.Logger
}

func NewCardHandler(s card.CardService, l *slog.Logger) *CardHandler {
	if s == nil {
		panic("card service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &CardHandler{
		service: s,
		logger:  l.With("component", "CardHandler"),
	}
}

// CreateCard handles POST /api/cards/create
// @Summary Issue a new credit card
// @Description Issues a credit card with a generated 12-digit card number and default limits.
// @Tags Cards
// @Produce json
// @Param mobileNumber query string true "Mobile number to issue the card for"
// @Success 201 {object} dto.ResponseDto "Card successfully issued"
// @Failure 400 {object} dto.ErrorResponseDto "Invalid mobile number"
// @Failure 409 {object} dto.ErrorResponseDto "Card already issued for mobile number"
// @Failure 500 {object} dto.ErrorResponseDto "Internal server error"
// @Router /api/cards/create [post]
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	mobileNumber := r.URL.Query().Get("mobileNumber")
	if err := dto.ValidateMobileNumber(mobileNumber); err != nil {
		h.logger.WarnContext(r.Context(), "Invalid mobile number in create request", slog.Any("error", err))
		respondError(w, r, err)
		return
	}

	c, err := h.service.CreateCard(r.Context(), mobileNumber)
	if err != nil {
		level := slog.LevelError
		if errors.Is(err, apperrors.ErrAlreadyExists) || errors.Is(err, apperrors.ErrValidation) {
			level = slog.LevelWarn
		}
		h.logger.Log(r.Context(), level, "Service failed to create card", slog.Any("error", err))
		respondError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Card created successfully", slog.String("cardNumber", c.CardNumber))
	respondJSON(w, http.StatusCreated, dto.NewResponseDto(http.StatusCreated, "Card created successfully"))
}

// FetchCard handles GET /api/cards/fetch
// @Summary Fetch card details
// @Description Retrieves the card owned by the given mobile number.
// @Tags Cards
// @Produce json
// @Param mobileNumber query string true "Registered mobile number"
// @Success 200 {object} dto.CardDto "Card details retrieved"
// @Failure 400 {object} dto.ErrorResponseDto "Invalid mobile number"
// @Failure 404 {object} dto.ErrorResponseDto "Card not found"
// @Failure 500 {object} dto.ErrorResponseDto "Internal server error"
// @Router /api/cards/fetch [get]
func (h *CardHandler) FetchCard(w http.ResponseWriter, r *http.Request) {
	mobileNumber := r.URL.Query().Get("mobileNumber")
	if err := dto.ValidateMobileNumber(mobileNumber); err != nil {
		h.logger.WarnContext(r.Context(), "Invalid mobile number in fetch request", slog.Any("error", err))
		respondError(w, r, err)
		return
	}

	c, err := h.service.FetchCard(r.Context(), mobileNumber)
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrNotFound) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to fetch card", slog.Any("error", err))
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCardDto(c))
}

// UpdateCard handles PUT /api/cards/update
// @Summary Update card details
// @Description Updates the card named by cardNumber. The card number itself is immutable.
// @Tags Cards
// @Accept json
// @Produce json
// @Param request body dto.CardDto true "Updated card details"
// @Success 200 {object} dto.ResponseDto "Card updated successfully"
// @Failure 400 {object} dto.ErrorResponseDto "Invalid request payload"
// @Failure 404 {object} dto.ErrorResponseDto "Card not found"
// @Failure 500 {object} dto.ErrorResponseDto "Internal server error"
// @Router /api/cards/update [put]
func (h *CardHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	var req dto.CardDto
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, r, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(r.Context(), "Request validation failed", slog.Any("error", err))
		respondError(w, r, err)
		return
	}

	if err := h.service.UpdateCard(r.Context(), req.ToDomain()); err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to update card", slog.Any("error", err))
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewResponseDto(http.StatusOK, "Request processed successfully"))
}

// DeleteCard handles DELETE /api/cards/delete
// @Summary Delete card
// @Description Retires the card owned by the given mobile number.
// @Tags Cards
// @Produce json
// @Param mobileNumber query string true "Registered mobile number"
// @Success 200 {object} dto.ResponseDto "Card deleted successfully"
// @Failure 400 {object} dto.ErrorResponseDto "Invalid mobile number"
// @Failure 404 {object} dto.ErrorResponseDto "Card not found"
// @Failure 500 {object} dto.ErrorResponseDto "Internal server error"
// @Router /api/cards/delete [delete]
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	mobileNumber := r.URL.Query().Get("mobileNumber")
	if err := dto.ValidateMobileNumber(mobileNumber); err != nil {
		h.logger.WarnContext(r.Context(), "Invalid mobile number in delete request", slog.Any("error", err))
		respondError(w, r, err)
		return
	}

	if err := h.service.DeleteCard(r.Context(), mobileNumber); err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrNotFound) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to delete card", slog.Any("error", err))
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewResponseDto(http.StatusOK, "Request processed successfully"))
}
