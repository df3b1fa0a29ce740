package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/isaacbis/tommi38/internal/domain"
	"github.com/isaacbis/tommi38/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// Кто вызывает — решает исключённый отсюда слой аутентификации;
// сюда личность приходит готовой в заголовке.
const callerHeader = "X-Username"

type BookingSvc interface {
	ListSlots(ctx context.Context, fieldID, date string) ([]domain.Slot, error)
	ListReservations(ctx context.Context, caller, date string) ([]*domain.Reservation, error)
	Book(ctx context.Context, caller, fieldID, date, slotTime string) (*domain.Reservation, error)
	Cancel(ctx context.Context, caller, reservationID string) error
}

type AccountSvc interface {
	Create(ctx context.Context, caller string, input domain.CreateAccountInput) (*domain.Account, error)
	List(ctx context.Context, caller string) ([]*domain.Account, error)
	AdjustCredits(ctx context.Context, caller, username string, delta int) error
	SetDisabled(ctx context.Context, caller, username string, disabled bool) error
}

type ScheduleSvc interface {
	PublicConfig(ctx context.Context) (*domain.PublicConfig, error)
	SetConfig(ctx context.Context, caller string, cfg domain.ScheduleConfig) error
	SetFields(ctx context.Context, caller string, fields []domain.Field) error
}

type Handler struct {
	bookingService  BookingSvc
	accountService  AccountSvc
	scheduleService ScheduleSvc
}

func NewHandler(bookingService BookingSvc, accountService AccountSvc, scheduleService ScheduleSvc) *Handler {
	return &Handler{
		bookingService:  bookingService,
		accountService:  accountService,
		scheduleService: scheduleService,
	}
}

// Slots

func (h *Handler) ListSlots(c *ginext.Context) {
	fieldID := c.Query("field_id")
	date := c.Query("date")
	if fieldID == "" || date == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "field_id and date are required",
			Code:  "VALIDATION_ERROR",
		})
		return
	}

	slots, err := h.bookingService.ListSlots(c.Request.Context(), fieldID, date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SlotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, dto.ToSlotResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

// Reservations

func (h *Handler) ListReservations(c *ginext.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "date is required",
			Code:  "VALIDATION_ERROR",
		})
		return
	}

	reservations, err := h.bookingService.ListReservations(c.Request.Context(), caller, date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateReservation(c *ginext.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "VALIDATION_ERROR"})
		return
	}

	reservation, err := h.bookingService.Book(c.Request.Context(), caller, req.FieldID, req.Date, req.Time)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

func (h *Handler) DeleteReservation(c *ginext.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := h.bookingService.Cancel(c.Request.Context(), caller, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"ok": true})
}

// Public config

func (h *Handler) PublicConfig(c *ginext.Context) {
	cfg, err := h.scheduleService.PublicConfig(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPublicConfigResponse(cfg))
}

// Admin

func (h *Handler) ListUsers(c *ginext.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	accounts, err := h.accountService.List(c.Request.Context(), caller)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		resp = append(resp, dto.ToAccountResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateUser(c *ginext.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "VALIDATION_ERROR"})
		return
	}

	input := domain.CreateAccountInput{
		Username:       req.Username,
		Role:           domain.Role(req.Role),
		Credits:        req.Credits,
		TelegramChatID: req.TelegramChatID,
	}

	account, err := h.accountService.Create(c.Request.Context(), caller, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

func (h *Handler) AdjustCredits(c *ginext.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	var req dto.AdjustCreditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "VALIDATION_ERROR"})
		return
	}

	if err := h.accountService.AdjustCredits(c.Request.Context(), caller, req.Username, req.Delta); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"ok": true})
}

func (h *Handler) SetUserStatus(c *ginext.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	var req dto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "VALIDATION_ERROR"})
		return
	}

	if err := h.accountService.SetDisabled(c.Request.Context(), caller, req.Username, *req.Disabled); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"ok": true})
}

func (h *Handler) SetConfig(c *ginext.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	var req dto.SetConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "VALIDATION_ERROR"})
		return
	}

	cfg := domain.ScheduleConfig{
		SlotMinutes:              req.SlotMinutes,
		DayStart:                 req.DayStart,
		DayEnd:                   req.DayEnd,
		MaxBookingsPerUserPerDay: req.MaxBookingsPerUserPerDay,
		MaxActiveBookingsPerUser: req.MaxActiveBookingsPerUser,
	}

	if err := h.scheduleService.SetConfig(c.Request.Context(), caller, cfg); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"ok": true})
}

func (h *Handler) SetFields(c *ginext.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	var req dto.SetFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "VALIDATION_ERROR"})
		return
	}

	fields := make([]domain.Field, 0, len(req.Fields))
	for _, f := range req.Fields {
		fields = append(fields, domain.Field{ID: f.ID, Name: f.Name})
	}

	if err := h.scheduleService.SetFields(c.Request.Context(), caller, fields); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"ok": true})
}

func (h *Handler) caller(c *ginext.Context) (string, bool) {
	caller := c.GetHeader(callerHeader)
	if caller == "" {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "caller identity is required",
			Code:  "NOT_AUTHENTICATED",
		})
		return "", false
	}
	return caller, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	resp := dto.ErrorResponse{Error: err.Error(), Code: domain.ErrorCode(err)}

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, resp)

	case errors.Is(err, domain.ErrSlotTaken),
		errors.Is(err, domain.ErrDailyLimitExceeded),
		errors.Is(err, domain.ErrActiveLimitExceeded):
		c.JSON(http.StatusConflict, resp)

	case errors.Is(err, domain.ErrInsufficientCredits),
		errors.Is(err, domain.ErrNotAllowed),
		errors.Is(err, domain.ErrUserDisabled):
		c.JSON(http.StatusForbidden, resp)

	case errors.Is(err, domain.ErrPastDate),
		errors.Is(err, domain.ErrPastTime),
		errors.Is(err, domain.ErrUnknownField),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, resp)

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "internal server error",
			Code:  "INTERNAL",
		})
	}
}
