package contact

import (
	"net/http"
	"parkside/infras/otel"
	"parkside/internal/domains/contact/model/dto"
	"parkside/internal/domains/contact/service"
	"parkside/shared/constant"
	"parkside/shared/validator"
	"parkside/transport/http/middleware"
	"parkside/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Contact
	app     middleware.AppMiddleware
	otel    otel.Otel
}

func New(service service.Contact, app middleware.AppMiddleware, otel otel.Otel) Handler {
	return Handler{
		service: service,
		app:     app,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/contact", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.SubmitInquiry)
	})
}

// SubmitInquiry accepts a contact-form submission.
// @Summary Submit a contact inquiry
// @Description Accept a contact-form submission. Submissions are rate limited per client IP.
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.InquiryRequest true "Inquiry Request"
// @Success 202 {object} response.Data[dto.InquiryResponse] "Inquiry accepted"
// @Failure 400 {object} response.Error
// @Failure 429 {object} response.Error
// @Router /v1/contact [post]
func (handler *Handler) SubmitInquiry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitInquiry")
	defer scope.End()

	req := dto.InquiryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	accepted, err := handler.service.Submit(ctx, req, handler.app.ClientIP(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit inquiry")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inquiry accepted")

	response.WithJSON(w, http.StatusAccepted, accepted)
}
