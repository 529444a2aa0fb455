package booking

import (
	"net/http"
	"parkside/infras/otel"
	"parkside/internal/domains/booking/model/dto"
	"parkside/internal/domains/booking/service"
	"parkside/shared/constant"
	"parkside/shared/validator"
	"parkside/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings/sessions", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.StartSession)
		routerGroup.Get("/{id}", handler.GetSession)
		routerGroup.Patch("/{id}", handler.UpdateSession)
		routerGroup.Post("/{id}/advance", handler.Advance)
		routerGroup.Post("/{id}/back", handler.Back)
		routerGroup.Get("/{id}/estimate", handler.GetEstimate)
		routerGroup.Post("/{id}/submit", handler.Submit)
	})
}

// StartSession opens a booking wizard session for a selected slot.
// @Summary Start a booking session
// @Description Open a party booking wizard session for an available room/time slot.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.StartSessionRequest true "Start Session Request"
// @Success 201 {object} response.Data[dto.SessionResponse] "Session started"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/sessions [post]
func (handler *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartSession")
	defer scope.End()

	req := dto.StartSessionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	session, err := handler.service.StartSession(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start booking session")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking session started: " + session.ID)

	response.WithJSON(w, http.StatusCreated, session)
}

// GetSession returns the wizard session with a fresh estimate.
// @Summary Get a booking session
// @Description Retrieve the wizard state and current cost estimate for a session.
// @Tags Booking
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse] "Session state"
// @Failure 410 {object} response.Error
// @Router /v1/bookings/sessions/{id} [get]
func (handler *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSession")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	session, err := handler.service.GetSession(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking session")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// UpdateSession merges form fields into the session.
// @Summary Update a booking session
// @Description Merge the provided wizard fields into the session; omitted fields are unchanged.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.UpdateSessionRequest true "Update Session Request"
// @Success 200 {object} response.Data[dto.SessionResponse] "Updated session"
// @Failure 400 {object} response.Error
// @Failure 410 {object} response.Error
// @Router /v1/bookings/sessions/{id} [patch]
func (handler *Handler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSession")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateSessionRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	session, err := handler.service.UpdateSession(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking session")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// Advance moves the wizard forward one step.
// @Summary Advance the wizard
// @Description Move the session forward one step if the current step's requirements are met.
// @Tags Booking
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse] "Session on the next step"
// @Failure 400 {object} response.Error
// @Failure 410 {object} response.Error
// @Router /v1/bookings/sessions/{id}/advance [post]
func (handler *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Advance")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	session, err := handler.service.Advance(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to advance booking session")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// Back moves the wizard back one step.
// @Summary Go back one step
// @Description Move the session back one step; backward navigation never validates.
// @Tags Booking
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse] "Session on the previous step"
// @Failure 410 {object} response.Error
// @Router /v1/bookings/sessions/{id}/back [post]
func (handler *Handler) Back(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Back")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	session, err := handler.service.Back(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to move booking session back")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// GetEstimate returns the itemized cost estimate for the session.
// @Summary Get the cost estimate
// @Description Retrieve the itemized party cost for the session's current form.
// @Tags Booking
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.EstimateResponse] "Itemized estimate"
// @Failure 410 {object} response.Error
// @Router /v1/bookings/sessions/{id}/estimate [get]
func (handler *Handler) GetEstimate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEstimate")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	estimate, err := handler.service.Estimate(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to estimate booking session")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, estimate)
}

// Submit finalizes the booking into a checkout cart.
// @Summary Submit the booking
// @Description Re-validate every step, create the checkout cart on the commerce platform and close the session.
// @Tags Booking
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SubmitResponse] "Cart created"
// @Failure 400 {object} response.Error
// @Failure 410 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/bookings/sessions/{id}/submit [post]
func (handler *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Submit")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	submitted, err := handler.service.Submit(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit booking session")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking submitted successfully: " + id)

	response.WithJSON(w, http.StatusOK, submitted)
}
