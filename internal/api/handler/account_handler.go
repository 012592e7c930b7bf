package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"natrix-bank/internal/api/handler/dto"
	"natrix-bank/internal/domain/account"
	"natrix-bank/internal/pkg/apperrors"
)

type AccountHandler struct {
	service account.AccountService
	logger  *slog.Logger
}

func NewAccountHandler(s account.AccountService, l *slog.Logger) *AccountHandler {
	if s == nil {
		panic("account service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &AccountHandler{
		service: s,
		logger:  l.With("component", "AccountHandler"),
	}
}

// CreateAccount handles POST /api/accounts/create
// @Summary Create a new customer with account
// @Description Registers a customer and provisions a savings account with a generated account number.
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body dto.CustomerDto true "Customer details (accountsDto is ignored on create)"
// @Success 201 {object} dto.ResponseDto "Account successfully created"
// @Failure 400 {object} dto.ErrorResponseDto "Invalid request payload"
// @Failure 409 {object} dto.ErrorResponseDto "Mobile number already registered"
// @Failure 500 {object} dto.ErrorResponseDto "Internal server error"
// @Router /api/accounts/create [post]
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received create account request")

	var req dto.CustomerDto
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

	details, err := h.service.CreateAccount(r.Context(), req.Name, req.Email, req.MobileNumber)
	if err != nil {
		level := slog.LevelError
		if errors.Is(err, apperrors.ErrAlreadyExists) || errors.Is(err, apperrors.ErrValidation) {
			level = slog.LevelWarn
		}
		h.logger.Log(r.Context(), level, "Service failed to create account", slog.Any("error", err))
		respondError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Account created successfully",
		slog.Int64("accountNumber", details.Account.AccountNumber))
	respondJSON(w, http.StatusCreated, dto.NewResponseDto(http.StatusCreated, "Account created successfully"))
}

// FetchAccount handles GET /api/accounts/fetch
// @Summary Fetch customer and account details
// @Description Retrieves the customer and the owned account by mobile number.
// @Tags Accounts
// @Produce json
// @Param mobileNumber query string true "Registered mobile number"
// @Success 200 {object} dto.CustomerDetailsResponse "Account details retrieved"
// @Failure 400 {object} dto.ErrorResponseDto "Invalid mobile number"
// @Failure 404 {object} dto.ErrorResponseDto "Account not found"
// @Failure 500 {object} dto.ErrorResponseDto "Internal server error"
// @Router /api/accounts/fetch [get]
func (h *AccountHandler) FetchAccount(w http.ResponseWriter, r *http.Request) {
	mobileNumber := r.URL.Query().Get("mobileNumber")
	if err := dto.ValidateMobileNumber(mobileNumber); err != nil {
		h.logger.WarnContext(r.Context(), "Invalid mobile number in fetch request", slog.Any("error", err))
		respondError(w, r, err)
		return
	}

	details, err := h.service.FetchAccount(r.Context(), mobileNumber)
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrNotFound) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to fetch account", slog.Any("error", err))
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCustomerDetailsResponse(details))
}

// UpdateAccount handles PUT /api/accounts/update
// @Summary Update customer and account details
// @Description Updates the account named by accountsDto.accountNumber and its owning customer.
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body dto.CustomerDto true "Updated details (accountsDto required)"
// @Success 200 {object} dto.ResponseDto "Account updated successfully"
// @Failure 400 {object} dto.ErrorResponseDto "Invalid request payload"
// @Failure 404 {object} dto.ErrorResponseDto "Account not found"
// @Failure 500 {object} dto.ErrorResponseDto "Internal server error"
// @Router /api/accounts/update [put]
func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received update account request")

	var req dto.CustomerDto
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, r, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.ValidateForUpdate(); err != nil {
		h.logger.WarnContext(r.Context(), "Request validation failed", slog.Any("error", err))
		respondError(w, r, err)
		return
	}

	if err := h.service.UpdateAccount(r.Context(), req.ToDomain()); err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to update account", slog.Any("error", err))
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewResponseDto(http.StatusOK, "Request processed successfully"))
}

// DeleteAccount handles DELETE /api/accounts/delete
// @Summary Delete customer and account
// @Description Retires the customer and the owned account by mobile number.
// @Tags Accounts
// @Produce json
// @Param mobileNumber query string true "Registered mobile number"
// @Success 200 {object} dto.ResponseDto "Account deleted successfully"
// @Failure 400 {object} dto.ErrorResponseDto "Invalid mobile number"
// @Failure 404 {object} dto.ErrorResponseDto "Account not found"
// @Failure 500 {object} dto.ErrorResponseDto "Internal server error"
// @Router /api/accounts/delete [delete]
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	mobileNumber := r.URL.Query().Get("mobileNumber")
	if err := dto.ValidateMobileNumber(mobileNumber); err != nil {
		h.logger.WarnContext(r.Context(), "Invalid mobile number in delete request", slog.Any("error", err))
		respondError(w, r, err)
		return
	}

	if err := h.service.DeleteAccount(r.Context(), mobileNumber); err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrNotFound) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to delete account", slog.Any("error", err))
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewResponseDto(http.StatusOK, "Request processed successfully"))
}
