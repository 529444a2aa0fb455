package hours

import (
	"net/http"
	"parkside/infras/otel"
	"parkside/internal/domains/hours/service"
	"parkside/shared/constant"
	"parkside/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Hours
	otel    otel.Otel
}

func New(service service.Hours, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hours", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetWeekly)
		routerGroup.Get("/{date}", handler.GetForDate)
	})
}

// GetWeekly returns the park's full operating-hours schedule.
// @Summary Get operating hours
// @Description Retrieve the weekday, weekend and winter operating hours.
// @Tags Hours
// @Produce json
// @Success 200 {object} response.Data[service.WeeklySchedule] "Operating hours"
// @Router /v1/hours [get]
func (handler *Handler) GetWeekly(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWeekly")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.Weekly(ctx))
}

// GetForDate returns the operating hours for one calendar date.
// @Summary Get hours for a date
// @Description Retrieve the operating hours that apply on a given date.
// @Tags Hours
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[service.DayHours] "Hours for the date"
// @Failure 400 {object} response.Error
// @Router /v1/hours/{date} [get]
func (handler *Handler) GetForDate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetForDate")
	defer scope.End()

	date := chi.URLParam(r, constant.RequestParamDateKey)

	day, err := handler.service.ForDate(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("date", date).Msg("failed to get hours for date")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, day)
}
