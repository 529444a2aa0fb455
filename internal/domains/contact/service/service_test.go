package service_test

import (
	"context"
	"errors"
	"parkside/config"
	"parkside/infras/kafka"
	kafkaMocks "parkside/infras/kafka/mocks"
	otelMocks "parkside/infras/otel/mocks"
	"parkside/internal/domains/contact/model/dto"
	"parkside/internal/domains/contact/service"
	cacheMocks "parkside/shared/cache/mocks"
	"parkside/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testFixture struct {
	cfg      *config.Config
	cache    *cacheMocks.MockRedisCache
	producer *kafkaMocks.MockProducer
	svc      service.Contact
}

func newFixture(t *testing.T) *testFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Park.Contact.MaxPerWindow = 3
	cfg.Park.Contact.WindowSeconds = 3600
	cfg.Kafka.Topic.Inquiries = "parkside.inquiries"

	cacheMock := cacheMocks.NewMockRedisCache(ctrl)
	producerMock := kafkaMocks.NewMockProducer(ctrl)

	return &testFixture{
		cfg:      cfg,
		cache:    cacheMock,
		producer: producerMock,
		svc:      service.New(cfg, cacheMock, producerMock, otelMocks.NewOtel()),
	}
}

func validRequest() dto.InquiryRequest {
	return dto.InquiryRequest{
		Name:    "Jordan Lee",
		Email:   "jordan@example.com",
		Phone:   "(555) 123-4567",
		Subject: "Birthday party question",
		Message: "Do you have availability on the 14th?",
	}
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()
	clientIP := "203.0.113.7"

	t.Run("accepts and publishes a valid inquiry", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Increment(ctx, "contact:limit:"+clientIP, 3600).
			Return(1, nil)
		f.producer.EXPECT().
			SendMessages(ctx, "parkside.inquiries", gomock.AssignableToTypeOf(kafka.Message{})).
			Return(nil)

		res, err := f.svc.Submit(ctx, validRequest(), clientIP)

		require.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.NotEmpty(t, res.Message)
	})

	t.Run("rejects when the rate limit is exceeded", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Increment(ctx, "contact:limit:"+clientIP, 3600).
			Return(4, nil)

		_, err := f.svc.Submit(ctx, validRequest(), clientIP)

		assert.ErrorIs(t, err, failure.TooManyInquiries)
	})

	t.Run("silently drops spam without publishing", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Increment(ctx, "contact:limit:"+clientIP, 3600).
			Return(1, nil)

		req := validRequest()
		req.Website = "https://spam.example"

		res, err := f.svc.Submit(ctx, req, clientIP)

		require.NoError(t, err)
		assert.NotEmpty(t, res.Message)
	})

	t.Run("fails when the counter cannot be incremented", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Increment(ctx, "contact:limit:"+clientIP, 3600).
			Return(0, errors.New("redis down"))

		_, err := f.svc.Submit(ctx, validRequest(), clientIP)

		assert.Error(t, err)
	})

	t.Run("fails when publishing fails", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Increment(ctx, "contact:limit:"+clientIP, 3600).
			Return(1, nil)
		f.producer.EXPECT().
			SendMessages(ctx, "parkside.inquiries", gomock.AssignableToTypeOf(kafka.Message{})).
			Return(errors.New("broker unavailable"))

		_, err := f.svc.Submit(ctx, validRequest(), clientIP)

		assert.Error(t, err)
	})
}
