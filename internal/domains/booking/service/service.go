package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/booking_mock.go -package=mocks

import (
	"context"
	"fmt"
	"parkside/config"
	"parkside/infras/commerce"
	"parkside/infras/kafka"
	"parkside/infras/otel"
	"parkside/internal/domains/booking/model"
	"parkside/internal/domains/booking/model/dto"
	"parkside/internal/domains/booking/pricing"
	catalogService "parkside/internal/domains/catalog/service"
	hoursService "parkside/internal/domains/hours/service"
	"parkside/shared"
	"parkside/shared/cache"
	"parkside/shared/constant"
	"parkside/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const sessionKeyPrefix = "booking:session"

// Booking drives the six-step party wizard. Session state lives in the cache
// under a TTL; the only durable artifact of a booking is the cart handed to
// the commerce platform on submit.
type Booking interface {
	StartSession(ctx context.Context, req dto.StartSessionRequest) (dto.SessionResponse, error)
	GetSession(ctx context.Context, id string) (dto.SessionResponse, error)
	UpdateSession(ctx context.Context, id string, req dto.UpdateSessionRequest) (dto.SessionResponse, error)
	Advance(ctx context.Context, id string) (dto.SessionResponse, error)
	Back(ctx context.Context, id string) (dto.SessionResponse, error)
	Estimate(ctx context.Context, id string) (dto.EstimateResponse, error)
	Submit(ctx context.Context, id string) (dto.SubmitResponse, error)
}

type serviceImpl struct {
	config       *config.Config
	availability catalogService.Availability
	hours        hoursService.Hours
	commerce     commerce.Commerce
	cache        cache.RedisCache
	producer     kafka.Producer
	otel         otel.Otel
}

func New(
	config *config.Config,
	availability catalogService.Availability,
	hours hoursService.Hours,
	commerceClient commerce.Commerce,
	cache cache.RedisCache,
	producer kafka.Producer,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		config:       config,
		availability: availability,
		hours:        hours,
		commerce:     commerceClient,
		cache:        cache,
		producer:     producer,
		otel:         otel,
	}
}

// StartSession validates the selected slot and opens a wizard session at step
// one. A variant marked unavailable on the platform cannot start a session.
func (s *serviceImpl) StartSession(ctx context.Context, req dto.StartSessionRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".StartSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	slot, err := s.availability.Slot(ctx, req.VariantID)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	if !slot.AvailableForSale {
		return res, failure.Conflict("this time slot is no longer available") // nolint:wrapcheck
	}

	room, matched := model.Classify(slot.RoomName)
	if !matched {
		log.Warn().
			Str("roomName", slot.RoomName).
			Str("variantID", slot.VariantID).
			Msg("[BookingService] Unrecognized room name, falling back to default policy")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return res, failure.InternalError(err) // nolint:wrapcheck
	}

	form := model.NewForm(id.String(), slot, room)

	if err = s.saveSession(ctx, form); err != nil {
		return res, err
	}

	log.Info().
		Str("sessionID", form.ID).
		Str("room", form.RoomName).
		Msg("[BookingService] Booking session started")

	res.FromModel(form, s.estimate(form))

	return res, nil
}

func (s *serviceImpl) GetSession(ctx context.Context, id string) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	form, err := s.loadSession(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(form, s.estimate(form))

	return res, nil
}

// UpdateSession merges the provided fields into the form. Updates never move
// the wizard; navigation is its own operation.
func (s *serviceImpl) UpdateSession(ctx context.Context, id string, req dto.UpdateSessionRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	form, err := s.loadSession(ctx, id)
	if err != nil {
		return res, err
	}

	if req.Drinks != nil && len(*req.Drinks) > model.MaxDrinkChoices {
		return res, failure.BadRequestFromString(fmt.Sprintf("you can choose up to %d drink flavors", model.MaxDrinkChoices)) // nolint:wrapcheck
	}

	req.ApplyTo(&form)

	if err = s.saveSession(ctx, form); err != nil {
		return res, err
	}

	res.FromModel(form, s.estimate(form))

	return res, nil
}

// Advance moves the wizard forward one step if the current step's gate passes.
func (s *serviceImpl) Advance(ctx context.Context, id string) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Advance")
	defer scope.End()
	defer scope.TraceIfError(err)

	form, err := s.loadSession(ctx, id)
	if err != nil {
		return res, err
	}

	ok, message := form.CanProceed(form.Step)
	if !ok {
		return res, failure.BadRequestFromString(message) // nolint:wrapcheck
	}

	form.Step++

	if err = s.saveSession(ctx, form); err != nil {
		return res, err
	}

	res.FromModel(form, s.estimate(form))

	return res, nil
}

// Back moves the wizard back one step. Backward navigation never validates.
func (s *serviceImpl) Back(ctx context.Context, id string) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Back")
	defer scope.End()
	defer scope.TraceIfError(err)

	form, err := s.loadSession(ctx, id)
	if err != nil {
		return res, err
	}

	if form.Step > model.FirstStep {
		form.Step--
	}

	if err = s.saveSession(ctx, form); err != nil {
		return res, err
	}

	res.FromModel(form, s.estimate(form))

	return res, nil
}

func (s *serviceImpl) Estimate(ctx context.Context, id string) (res dto.EstimateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Estimate")
	defer scope.End()
	defer scope.TraceIfError(err)

	form, err := s.loadSession(ctx, id)
	if err != nil {
		return res, err
	}

	res.EstimatedCost = s.estimate(form)

	return res, nil
}

// Submit re-validates every gated step, hands the flattened booking to the
// commerce platform as a single cart line and closes the session. The cart's
// checkout URL is where the customer pays the deposit.
func (s *serviceImpl) Submit(ctx context.Context, id string) (res dto.SubmitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	form, err := s.loadSession(ctx, id)
	if err != nil {
		return res, err
	}

	for step := model.FirstStep; step < model.FinalStep; step++ {
		if ok, message := form.CanProceed(step); !ok {
			return res, failure.BadRequestFromString(message) // nolint:wrapcheck
		}
	}

	cart, err := s.commerce.CartCreate(ctx, form.CartLine())
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	// The cart line consumed inventory on the platform; the cached
	// availability index no longer reflects it.
	s.availability.InvalidateIndex(ctx)

	event := kafka.Message{
		Key: form.ID,
		Value: map[string]any{
			"session_id": form.ID,
			"cart_id":    cart.ID,
			"room":       form.RoomName,
			"time_slot":  form.TimeSlot,
			"guests":     form.Participants,
			"estimate":   s.estimate(form),
		},
	}

	if err := s.producer.SendMessages(ctx, s.config.Kafka.Topic.Bookings, event); err != nil {
		// The cart already exists on the platform; losing the event must not
		// fail the submission.
		log.Error().Err(err).Str("sessionID", form.ID).Msg("[BookingService] Failed to publish booking event")
	}

	if err := s.cache.Delete(ctx, s.sessionKey(form.ID)); err != nil {
		log.Error().Err(err).Str("sessionID", form.ID).Msg("[BookingService] Failed to delete submitted session")
	}

	log.Info().
		Str("sessionID", form.ID).
		Str("cartID", cart.ID).
		Msg("[BookingService] Booking submitted")

	return dto.SubmitResponse{
		CartID:      cart.ID,
		CheckoutURL: cart.CheckoutURL,
	}, nil
}

func (s *serviceImpl) estimate(form model.BookingForm) pricing.EstimatedCost {
	return pricing.ComputeCost(form, s.hours.ClosingHour(form.Date))
}

func (s *serviceImpl) sessionKey(id string) string {
	return shared.BuildCacheKey(sessionKeyPrefix, id)
}

func (s *serviceImpl) loadSession(ctx context.Context, id string) (form model.BookingForm, err error) {
	if err = s.cache.Get(ctx, s.sessionKey(id), &form); err != nil {
		return form, failure.SessionExpired // nolint:wrapcheck
	}

	return form, nil
}

func (s *serviceImpl) saveSession(ctx context.Context, form model.BookingForm) error {
	err := s.cache.Save(ctx, s.sessionKey(form.ID), form, s.config.Park.Booking.SessionTTLSeconds)
	if err != nil {
		log.Error().Err(err).Str("sessionID", form.ID).Msg("[BookingService] Failed to save session")

		return failure.InternalError(err) // nolint:wrapcheck
	}

	return nil
}
