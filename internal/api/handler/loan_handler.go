package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"natrix-bank/internal/api/handler/dto"
	"natrix-bank/internal/domain/loan"
	"natrix-bank/internal/pkg/apperrors"
)

type LoanHandler struct {
	service loan.LoanService
	logger  *slog.Logger
}

func NewLoanHandler(s loan.LoanService, l *slog.Logger) *LoanHandler {
	if s == nil {
		panic("loan service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &LoanHandler{
		service: s,
		logger:  l.With("component", "LoanHandler"),
	}
}

// CreateLoan handles POST /api/loans/create
// @Summary Open a new loan
// @Description Opens a home loan with a generated 12-digit loan number and default amounts.
// @Tags Loans
// @Produce json
// @Param mobileNumber query string true "Mobile number to open the loan for"
// @Success 201 {object} dto.ResponseDto "Loan successfully opened"
// @Failure 400 {object} dto.ErrorResponseDto "Invalid mobile number"
// @Failure 409 {object} dto.ErrorResponseDto "Loan already open for mobile number"
// @Failure 500 {object} dto.ErrorResponseDto "Internal server error"
// @Router /api/loans/create [post]
func (h *LoanHandler) CreateLoan(w http.ResponseWriter, r *http.Request) {
	mobileNumber := r.URL.Query().Get("mobileNumber")
	if err := dto.ValidateMobileNumber(mobileNumber); err != nil {
		h.logger.WarnContext(r.Context(), "Invalid mobile number in create request", slog.Any("error", err))
		respondError(w, r, err)
		return
	}

	l, err := h.service.CreateLoan(r.Context(), mobileNumber)
	if err != nil {
		level := slog.LevelError
		if errors.Is(err, apperrors.ErrAlreadyExists) || errors.Is(err, apperrors.ErrValidation) {
			level = slog.LevelWarn
		}
		h.logger.Log(r.Context(), level, "Service failed to create loan", slog.Any("error", err))
		respondError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Loan created successfully", slog.String("loanNumber", l.LoanNumber))
	respondJSON(w, http.StatusCreated, dto.NewResponseDto(http.StatusCreated, "Loan created successfully"))
}

// FetchLoan handles GET /api/loans/fetch
// @Summary Fetch loan details
// @Description Retrieves the loan owned by the given mobile number.
// @Tags Loans
// @Produce json
// @Param mobileNumber query string true "Registered mobile number"
// @Success 200 {object} dto.LoanDto "Loan details retrieved"
// @Failure 400 {object} dto.ErrorResponseDto "Invalid mobile number"
// @Failure 404 {object} dto.ErrorResponseDto "Loan not found"
// @Failure 500 {object} dto.ErrorResponseDto "Internal server error"
// @Router /api/loans/fetch [get]
func (h *LoanHandler) FetchLoan(w http.ResponseWriter, r *http.Request) {
	mobileNumber := r.URL.Query().Get("mobileNumber")
	if err := dto.ValidateMobileNumber(mobileNumber); err != nil {
		h.logger.WarnContext(r.Context(), "Invalid mobile number in fetch request", slog.Any("error", err))
		respondError(w, r, err)
		return
	}

	l, err := h.service.FetchLoan(r.Context(), mobileNumber)
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrNotFound) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to fetch loan", slog.Any("error", err))
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewLoanDto(l))
}

// UpdateLoan handles PUT /api/loans/update
// @Summary Update loan details
// @Description Updates the loan named by loanNumber. The loan number itself is immutable.
// @Tags Loans
// @Accept json
// @Produce json
// @Param request body dto.LoanDto true "Updated loan details"
// @Success 200 {object} dto.ResponseDto "Loan updated successfully"
// @Failure 400 {object} dto.ErrorResponseDto "Invalid request payload"
// @Failure 404 {object} dto.ErrorResponseDto "Loan not found"
// @Failure 500 {object} dto.ErrorResponseDto "Internal server error"
// @Router /api/loans/update [put]
func (h *LoanHandler) UpdateLoan(w http.ResponseWriter, r *http.Request) {
	var req dto.LoanDto
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

	if err := h.service.UpdateLoan(r.Context(), req.ToDomain()); err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to update loan", slog.Any("error", err))
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewResponseDto(http.StatusOK, "Request processed successfully"))
}

// DeleteLoan handles DELETE /api/loans/delete
// @Summary Delete loan
// @Description Retires the loan owned by the given mobile number.
// @Tags Loans
// @Produce json
// @Param mobileNumber query string true "Registered mobile number"
// @Success 200 {object} dto.ResponseDto "Loan deleted successfully"
// @Failure 400 {object} dto.ErrorResponseDto "Invalid mobile number"
// @Failure 404 {object} dto.ErrorResponseDto "Loan not found"
// @Failure 500 {object} dto.ErrorResponseDto "Internal server error"
// @Router /api/loans/delete [delete]
func (h *LoanHandler) DeleteLoan(w http.ResponseWriter, r *http.Request) {
	mobileNumber := r.URL.Query().Get("mobileNumber")
	if err := dto.ValidateMobileNumber(mobileNumber); err != nil {
		h.logger.WarnContext(r.Context(), "Invalid mobile number in delete request", slog.Any("error", err))
		respondError(w, r, err)
		return
	}

	if err := h.service.DeleteLoan(r.Context(), mobileNumber); err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrNotFound) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to delete loan", slog.Any("error", err))
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewResponseDto(http.StatusOK, "Request processed successfully"))
}
