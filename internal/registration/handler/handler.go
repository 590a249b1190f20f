// Package handler exposes the registration lifecycle over HTTP. Handlers
// decode and validate wire types, pull the actor from the request context,
// delegate to the service, and map domain errors to statuses via httputil.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"crewdock/internal/platform/middleware"
	regmodels "crewdock/internal/registration/models"
	"crewdock/internal/registration/service"
	"crewdock/internal/registration/store"
	id "crewdock/pkg/domain"
	dErrors "crewdock/pkg/domain-errors"
	"crewdock/pkg/platform/httputil"
	"crewdock/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/registration-mocks.go -package=mocks Service

// Service defines the registration operations the handler depends on.
type Service interface {
	Create(ctx context.Context, in service.CreateInput) (*service.CreateResult, error)
	Get(ctx context.Context, regID id.RegistrationID, actorID id.UserID) (*regmodels.Registration, error)
	ListMine(ctx context.Context, actorID id.UserID, filter store.ListFilter) ([]*regmodels.Registration, error)
	Cancel(ctx context.Context, regID id.RegistrationID, actorID id.UserID) (*regmodels.Registration, error)
	Approve(ctx context.Context, regID id.RegistrationID, actorID id.UserID, notes string) (*regmodels.Registration, error)
	Decline(ctx context.Context, regID id.RegistrationID, actorID id.UserID, reason string) (*regmodels.Registration, error)
	Answers(ctx context.Context, regID id.RegistrationID, actorID id.UserID) ([]regmodels.Answer, error)
	ReplaceAnswers(ctx context.Context, regID id.RegistrationID, actorID id.UserID, subs []regmodels.Submission) ([]regmodels.Answer, error)
	DetailsForOwner(ctx context.Context, regID id.RegistrationID, actorID id.UserID) (*service.Details, error)
}

// Handler wires registration endpoints to the registration service.
type Handler struct {
	service   Service
	logger    *slog.Logger
	validator middleware.TokenValidator
}

// New constructs a registration handler.
func New(service Service, logger *slog.Logger, validator middleware.TokenValidator) *Handler {
	return &Handler{
		service:   service,
		logger:    logger,
		validator: validator,
	}
}

// Register mounts the registration routes.
func (h *Handler) Register(r chi.Router) {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RequestTime)
	router.Use(middleware.RequireAuth(h.validator, h.logger))

	// Registering, cancelling, and resubmitting answers are crew actions;
	// owner actions (approve, decline, details) are guarded by ownership
	// checks in the service instead of a role, since ownership is per
	// journey rather than per token.
	crewOnly := router.With(middleware.RequireRole(id.RoleCrew, h.logger))
	crewOnly.Post("/registrations", h.HandleCreate)
	crewOnly.Post("/registrations/{registrationID}/cancel", h.HandleCancel)
	crewOnly.Post("/registrations/{registrationID}/answers", h.HandleReplaceAnswers)

	router.Get("/registrations", h.HandleListMine)
	router.Get("/registrations/{registrationID}", h.HandleGet)
	router.Post("/registrations/{registrationID}/approve", h.HandleApprove)
	router.Post("/registrations/{registrationID}/decline", h.HandleDecline)
	router.Get("/registrations/{registrationID}/answers", h.HandleAnswers)
	router.Get("/registrations/{registrationID}/details", h.HandleDetails)

	r.Mount("/", router)
}

// actor pulls the authenticated user from context; RequireAuth guarantees it
// is set, so an empty ID is a wiring bug.
func (h *Handler) actor(ctx context.Context, w http.ResponseWriter) (id.UserID, bool) {
	userID := requestcontext.UserID(ctx)
	if userID.IsNil() {
		h.logger.ErrorContext(ctx, "user missing from context despite auth middleware",
			"request_id", requestcontext.RequestID(ctx),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return id.UserID{}, false
	}
	return userID, true
}

// registrationID parses the path parameter.
func registrationID(w http.ResponseWriter, r *http.Request) (id.RegistrationID, bool) {
	regID, err := id.ParseRegistrationID(chi.URLParam(r, "registrationID"))
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid registration id"))
		return id.RegistrationID{}, false
	}
	return regID, true
}

// HandleCreate handles POST /registrations.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	userID, ok := h.actor(ctx, w)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[CreateRegistrationRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Create(ctx, service.CreateInput{
		LegID:   req.ParsedLegID(),
		UserID:  userID,
		Notes:   req.Notes,
		Answers: req.Answers,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "registration create failed",
			"request_id", requestID,
			"user_id", userID,
			"leg_id", req.LegID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "registration created",
		"request_id", requestID,
		"registration_id", result.Registration.ID,
		"reactivated", result.Reactivated,
		"assessment_scheduled", result.AssessmentScheduled,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusCreated, FromCreateResult(result))
}

// HandleListMine handles GET /registrations with optional legId and status
// query filters.
func (h *Handler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.actor(ctx, w)
	if !ok {
		return
	}

	filter, err := parseListFilter(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	regs, err := h.service.ListMine(ctx, userID, filter)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromRegistrations(regs))
}

// HandleGet handles GET /registrations/{registrationID}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.actor(ctx, w)
	if !ok {
		return
	}
	regID, ok := registrationID(w, r)
	if !ok {
		return
	}

	reg, err := h.service.Get(ctx, regID, userID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromRegistration(reg))
}

// HandleCancel handles POST /registrations/{registrationID}/cancel.
func (h *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.actor(ctx, w)
	if !ok {
		return
	}
	regID, ok := registrationID(w, r)
	if !ok {
		return
	}

	reg, err := h.service.Cancel(ctx, regID, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "registration cancel failed",
			"request_id", requestcontext.RequestID(ctx),
			"registration_id", regID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromRegistration(reg))
}

// HandleApprove handles POST /registrations/{registrationID}/approve.
func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	userID, ok := h.actor(ctx, w)
	if !ok {
		return
	}
	regID, ok := registrationID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[DecisionRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	reg, err := h.service.Approve(ctx, regID, userID, req.Notes)
	if err != nil {
		h.logger.WarnContext(ctx, "registration approve failed",
			"request_id", requestID,
			"registration_id", regID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromRegistration(reg))
}

// HandleDecline handles POST /registrations/{registrationID}/decline.
func (h *Handler) HandleDecline(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	userID, ok := h.actor(ctx, w)
	if !ok {
		return
	}
	regID, ok := registrationID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[DecisionRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	reg, err := h.service.Decline(ctx, regID, userID, req.Notes)
	if err != nil {
		h.logger.WarnContext(ctx, "registration decline failed",
			"request_id", requestID,
			"registration_id", regID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromRegistration(reg))
}

// HandleAnswers handles GET /registrations/{registrationID}/answers.
func (h *Handler) HandleAnswers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.actor(ctx, w)
	if !ok {
		return
	}
	regID, ok := registrationID(w, r)
	if !ok {
		return
	}

	answers, err := h.service.Answers(ctx, regID, userID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromAnswers(answers))
}

// HandleReplaceAnswers handles PUT /registrations/{registrationID}/answers.
func (h *Handler) HandleReplaceAnswers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	userID, ok := h.actor(ctx, w)
	if !ok {
		return
	}
	regID, ok := registrationID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[ReplaceAnswersRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	answers, err := h.service.ReplaceAnswers(ctx, regID, userID, req.Answers)
	if err != nil {
		h.logger.WarnContext(ctx, "answer replacement failed",
			"request_id", requestID,
			"registration_id", regID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromAnswers(answers))
}

// HandleDetails handles GET /registrations/{registrationID}/details.
func (h *Handler) HandleDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.actor(ctx, w)
	if !ok {
		return
	}
	regID, ok := registrationID(w, r)
	if !ok {
		return
	}

	details, err := h.service.DetailsForOwner(ctx, regID, userID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromDetails(details))
}

// parseListFilter reads the optional legId and status query parameters.
func parseListFilter(r *http.Request) (store.ListFilter, error) {
	var filter store.ListFilter
	if raw := r.URL.Query().Get("legId"); raw != "" {
		legID, err := id.ParseLegID(raw)
		if err != nil {
			return filter, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid legId filter")
		}
		filter.LegID = legID
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := id.ParseRegistrationStatus(raw)
		if err != nil {
			return filter, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid status filter")
		}
		filter.Status = status
	}
	return filter, nil
}
