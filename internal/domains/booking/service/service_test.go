package service_test

import (
	"context"
	"errors"
	"parkside/config"
	"parkside/infras/commerce"
	commerceMocks "parkside/infras/commerce/mocks"
	kafkaMocks "parkside/infras/kafka/mocks"
	otelMocks "parkside/infras/otel/mocks"
	"parkside/internal/domains/booking/model"
	"parkside/internal/domains/booking/model/dto"
	"parkside/internal/domains/booking/service"
	catalogMocks "parkside/internal/domains/catalog/mocks"
	catalogModel "parkside/internal/domains/catalog/model"
	hoursMocks "parkside/internal/domains/hours/mocks"
	cacheMocks "parkside/shared/cache/mocks"
	"parkside/shared/failure"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testFixture struct {
	availability *catalogMocks.MockAvailability
	hours        *hoursMocks.MockHours
	commerce     *commerceMocks.MockCommerce
	cache        *cacheMocks.MockRedisCache
	producer     *kafkaMocks.MockProducer
	svc          service.Booking
}

func newFixture(t *testing.T) *testFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Park.Booking.SessionTTLSeconds = 3600
	cfg.Kafka.Topic.Bookings = "parkside.bookings"

	availabilityMock := catalogMocks.NewMockAvailability(ctrl)
	hoursMock := hoursMocks.NewMockHours(ctrl)
	commerceMock := commerceMocks.NewMockCommerce(ctrl)
	cacheMock := cacheMocks.NewMockRedisCache(ctrl)
	producerMock := kafkaMocks.NewMockProducer(ctrl)

	return &testFixture{
		availability: availabilityMock,
		hours:        hoursMock,
		commerce:     commerceMock,
		cache:        cacheMock,
		producer:     producerMock,
		svc: service.New(
			cfg,
			availabilityMock,
			hoursMock,
			commerceMock,
			cacheMock,
			producerMock,
			otelMocks.NewOtel(),
		),
	}
}

func carouselSlot() catalogModel.AvailabilitySlot {
	return catalogModel.AvailabilitySlot{
		VariantID:        "gid://variant/1",
		Title:            "Carousel Party Room / 2-4pm",
		RoomName:         "Carousel Party Room",
		TimeSlot:         "2-4pm",
		AvailableForSale: true,
		Date:             time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC),
		DateKey:          "061425",
		StartHour:        2,
	}
}

// completeForm is a session that passes every wizard gate.
func completeForm() model.BookingForm {
	room, _ := model.Classify("Carousel Party Room")
	form := model.NewForm("sess_1", carouselSlot(), room)
	form.PartyType = model.PartyTypeBirthday
	form.BirthdayChildName = "Riley"
	form.BirthdayChildAge = "8"
	form.Participants = 8
	form.Drinks = []string{"Lemonade"}
	form.Phone = "(555) 123-4567"
	form.AckPartyRules = true
	form.AckDepositPolicy = true
	form.AckOutsideFood = true
	form.Step = model.StepReviewAndBook
	return form
}

func (f *testFixture) expectLoad(ctx context.Context, form model.BookingForm) {
	f.cache.EXPECT().
		Get(ctx, "booking:session:"+form.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*value.(*model.BookingForm) = form
			return nil
		})
}

func TestStartSession(t *testing.T) {
	ctx := context.Background()

	t.Run("starts a session for an available slot", func(t *testing.T) {
		f := newFixture(t)
		slot := carouselSlot()

		f.availability.EXPECT().Slot(ctx, slot.VariantID).Return(slot, nil)
		f.cache.EXPECT().Save(ctx, gomock.Any(), gomock.Any(), 3600).Return(nil)
		f.hours.EXPECT().ClosingHour(slot.Date).Return(21)

		res, err := f.svc.StartSession(ctx, dto.StartSessionRequest{VariantID: slot.VariantID})

		require.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, "Carousel Party Room", res.RoomName)
		assert.Equal(t, model.StepPartyDetails, res.Step)
	})

	t.Run("rejects a slot that is no longer for sale", func(t *testing.T) {
		f := newFixture(t)
		slot := carouselSlot()
		slot.AvailableForSale = false

		f.availability.EXPECT().Slot(ctx, slot.VariantID).Return(slot, nil)

		_, err := f.svc.StartSession(ctx, dto.StartSessionRequest{VariantID: slot.VariantID})

		assert.Error(t, err)
	})

	t.Run("fails when the slot is unknown", func(t *testing.T) {
		f := newFixture(t)

		f.availability.EXPECT().
			Slot(ctx, "gid://variant/nope").
			Return(catalogModel.AvailabilitySlot{}, errors.New("not found"))

		_, err := f.svc.StartSession(ctx, dto.StartSessionRequest{VariantID: "gid://variant/nope"})

		assert.Error(t, err)
	})
}

func TestGetSession(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the session with a fresh estimate", func(t *testing.T) {
		f := newFixture(t)
		form := completeForm()

		f.expectLoad(ctx, form)
		f.hours.EXPECT().ClosingHour(form.Date).Return(21)

		res, err := f.svc.GetSession(ctx, form.ID)

		require.NoError(t, err)
		assert.Equal(t, form.ID, res.ID)
		// 8 guests at the $32 summer rate.
		assert.Equal(t, "256.00", res.Estimate.Subtotal.String())
	})

	t.Run("reports an expired session", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(ctx, "booking:session:gone", gomock.Any()).
			Return(errors.New("cache miss"))

		_, err := f.svc.GetSession(ctx, "gone")

		assert.ErrorIs(t, err, failure.SessionExpired)
	})
}

func TestUpdateSession(t *testing.T) {
	ctx := context.Background()

	t.Run("merges provided fields only", func(t *testing.T) {
		f := newFixture(t)
		form := completeForm()

		f.expectLoad(ctx, form)
		f.cache.EXPECT().Save(ctx, "booking:session:"+form.ID, gomock.Any(), 3600).Return(nil)
		f.hours.EXPECT().ClosingHour(form.Date).Return(21)

		participants := 12
		res, err := f.svc.UpdateSession(ctx, form.ID, dto.UpdateSessionRequest{Participants: &participants})

		require.NoError(t, err)
		assert.Equal(t, 12, res.Form.Participants)
		assert.Equal(t, model.PartyTypeBirthday, res.Form.PartyType)
	})

	t.Run("rejects a fourth drink flavor", func(t *testing.T) {
		f := newFixture(t)
		form := completeForm()

		f.expectLoad(ctx, form)

		drinks := []string{"Lemonade", "Cola", "Root Beer", "Orange"}
		_, err := f.svc.UpdateSession(ctx, form.ID, dto.UpdateSessionRequest{Drinks: &drinks})

		assert.Error(t, err)
	})
}

func TestAdvance(t *testing.T) {
	ctx := context.Background()

	t.Run("moves forward when the gate passes", func(t *testing.T) {
		f := newFixture(t)
		form := completeForm()
		form.Step = model.StepGuestCount

		f.expectLoad(ctx, form)
		f.cache.EXPECT().Save(ctx, "booking:session:"+form.ID, gomock.Any(), 3600).Return(nil)
		f.hours.EXPECT().ClosingHour(form.Date).Return(21)

		res, err := f.svc.Advance(ctx, form.ID)

		require.NoError(t, err)
		assert.Equal(t, model.StepPizzaAndDrinks, res.Step)
	})

	t.Run("refuses to advance past an unmet gate", func(t *testing.T) {
		f := newFixture(t)
		form := completeForm()
		form.Step = model.StepGuestCount
		form.Participants = 3 // Carousel needs 8

		f.expectLoad(ctx, form)

		_, err := f.svc.Advance(ctx, form.ID)

		assert.Error(t, err)
	})
}

func TestBack(t *testing.T) {
	ctx := context.Background()

	t.Run("moves back without validation", func(t *testing.T) {
		f := newFixture(t)
		room, _ := model.Classify("Carousel Party Room")
		form := model.NewForm("sess_1", carouselSlot(), room)
		form.Step = model.StepContactAndAck

		f.expectLoad(ctx, form)
		f.cache.EXPECT().Save(ctx, "booking:session:"+form.ID, gomock.Any(), 3600).Return(nil)
		f.hours.EXPECT().ClosingHour(form.Date).Return(21)

		res, err := f.svc.Back(ctx, form.ID)

		require.NoError(t, err)
		assert.Equal(t, model.StepAddOns, res.Step)
	})

	t.Run("stays on the first step", func(t *testing.T) {
		f := newFixture(t)
		room, _ := model.Classify("Carousel Party Room")
		form := model.NewForm("sess_1", carouselSlot(), room)

		f.expectLoad(ctx, form)
		f.cache.EXPECT().Save(ctx, "booking:session:"+form.ID, gomock.Any(), 3600).Return(nil)
		f.hours.EXPECT().ClosingHour(form.Date).Return(21)

		res, err := f.svc.Back(ctx, form.ID)

		require.NoError(t, err)
		assert.Equal(t, model.StepPartyDetails, res.Step)
	})
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the cart and closes the session", func(t *testing.T) {
		f := newFixture(t)
		form := completeForm()

		f.expectLoad(ctx, form)
		f.commerce.EXPECT().
			CartCreate(ctx, gomock.AssignableToTypeOf(commerce.CartLineInput{})).
			DoAndReturn(func(_ context.Context, line commerce.CartLineInput) (commerce.Cart, error) {
				assert.Equal(t, form.VariantID, line.MerchandiseID)
				assert.Equal(t, 1, line.Quantity)
				return commerce.Cart{ID: "cart_1", CheckoutURL: "https://checkout.example/cart_1"}, nil
			})
		f.availability.EXPECT().InvalidateIndex(ctx)
		f.hours.EXPECT().ClosingHour(form.Date).Return(21)
		f.producer.EXPECT().
			SendMessages(ctx, "parkside.bookings", gomock.Any()).
			Return(nil)
		f.cache.EXPECT().Delete(ctx, "booking:session:"+form.ID).Return(nil)

		res, err := f.svc.Submit(ctx, form.ID)

		require.NoError(t, err)
		assert.Equal(t, "cart_1", res.CartID)
		assert.Equal(t, "https://checkout.example/cart_1", res.CheckoutURL)
	})

	t.Run("re-validates every gated step", func(t *testing.T) {
		f := newFixture(t)
		form := completeForm()
		form.Phone = ""

		f.expectLoad(ctx, form)

		_, err := f.svc.Submit(ctx, form.ID)

		assert.Error(t, err)
	})

	t.Run("succeeds even when the event publish fails", func(t *testing.T) {
		f := newFixture(t)
		form := completeForm()

		f.expectLoad(ctx, form)
		f.commerce.EXPECT().
			CartCreate(ctx, gomock.Any()).
			Return(commerce.Cart{ID: "cart_1", CheckoutURL: "https://checkout.example/cart_1"}, nil)
		f.availability.EXPECT().InvalidateIndex(ctx)
		f.hours.EXPECT().ClosingHour(form.Date).Return(21)
		f.producer.EXPECT().
			SendMessages(ctx, "parkside.bookings", gomock.Any()).
			Return(errors.New("broker unavailable"))
		f.cache.EXPECT().Delete(ctx, "booking:session:"+form.ID).Return(nil)

		res, err := f.svc.Submit(ctx, form.ID)

		require.NoError(t, err)
		assert.Equal(t, "cart_1", res.CartID)
	})

	t.Run("fails when the cart cannot be created", func(t *testing.T) {
		f := newFixture(t)
		form := completeForm()

		f.expectLoad(ctx, form)
		f.commerce.EXPECT().
			CartCreate(ctx, gomock.Any()).
			Return(commerce.Cart{}, errors.New("upstream error"))

		_, err := f.svc.Submit(ctx, form.ID)

		assert.Error(t, err)
	})
}
