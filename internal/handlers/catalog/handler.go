package catalog

import (
	"net/http"
	"parkside/infras/otel"
	"parkside/internal/domains/catalog/service"
	"parkside/shared/constant"
	"parkside/shared/failure"
	"parkside/shared/validator"
	"parkside/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/catalog", func(routerGroup chi.Router) {
		routerGroup.Get("/availability", handler.GetCalendar)
		routerGroup.Get("/availability/{date}", handler.GetSlotsForDate)
	})
}

// GetCalendar returns the full availability calendar.
// @Summary Get the availability calendar
// @Description Retrieve every bookable date with its room and time slots, chronological with any-day slots last.
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Availability calendar"
// @Failure 502 {object} response.Error
// @Router /v1/catalog/availability [get]
func (handler *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalendar")
	defer scope.End()

	calendar, err := handler.service.Calendar(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability calendar")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability calendar retrieved successfully")

	response.WithJSON(w, http.StatusOK, calendar)
}

// GetSlotsForDate returns the bookable slots for one date key.
// @Summary Get slots for a date
// @Description Retrieve the bookable slots for a MMDDYY date key, or ANYDAY for undated slots.
// @Tags Catalog
// @Produce json
// @Param date path string true "MMDDYY date key or ANYDAY"
// @Success 200 {object} response.Data[dto.DateSlotsResponse] "Slots for the date"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/catalog/availability/{date} [get]
func (handler *Handler) GetSlotsForDate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlotsForDate")
	defer scope.End()

	dateKey := chi.URLParam(r, constant.RequestParamDateKey)

	if err := validator.ValidateVar(dateKey, "datekey"); err != nil {
		scope.TraceError(err)
		log.Warn().Str("dateKey", dateKey).Msg("rejected malformed date key param")

		response.WithError(w, failure.InvalidDateKeyParam)

		return
	}

	slots, err := handler.service.SlotsForDate(ctx, dateKey)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("dateKey", dateKey).Msg("failed to get slots for date")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Slots retrieved successfully for date " + dateKey)

	response.WithJSON(w, http.StatusOK, slots)
}
