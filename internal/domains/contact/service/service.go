package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"parkside/config"
	"parkside/infras/kafka"
	"parkside/infras/otel"
	"parkside/internal/domains/contact/model"
	"parkside/internal/domains/contact/model/dto"
	"parkside/shared"
	"parkside/shared/cache"
	"parkside/shared/constant"
	"parkside/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const rateLimitKeyPrefix = "contact:limit"

type Contact interface {
	Submit(ctx context.Context, req dto.InquiryRequest, clientIP string) (dto.InquiryResponse, error)
}

type serviceImpl struct {
	config   *config.Config
	cache    cache.RedisCache
	producer kafka.Producer
	otel     otel.Otel
}

func New(config *config.Config, cache cache.RedisCache, producer kafka.Producer, otel otel.Otel) Contact {
	return &serviceImpl{
		config:   config,
		cache:    cache,
		producer: producer,
		otel:     otel,
	}
}

// Submit rate-limits by client IP, screens the submission for spam and
// publishes accepted inquiries for the notification pipeline. Spam is
// acknowledged exactly like a real inquiry so bots cannot probe the filter.
func (s *serviceImpl) Submit(ctx context.Context, req dto.InquiryRequest, clientIP string) (res dto.InquiryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	limitKey := shared.BuildCacheKey(rateLimitKeyPrefix, clientIP)

	count, err := s.cache.Increment(ctx, limitKey, s.config.Park.Contact.WindowSeconds)
	if err != nil {
		log.Error().Err(err).Str("ip", clientIP).Msg("[ContactService] Failed to increment inquiry counter")

		return res, failure.InternalError(err) // nolint:wrapcheck
	}

	if count > s.config.Park.Contact.MaxPerWindow {
		return res, failure.TooManyInquiries // nolint:wrapcheck
	}

	id, err := uuid.NewV7()
	if err != nil {
		return res, failure.InternalError(err) // nolint:wrapcheck
	}

	if spam, reason := model.IsSpam(req.Website, req.Subject, req.Message); spam {
		log.Warn().
			Str("ip", clientIP).
			Str("reason", reason).
			Msg("[ContactService] Dropped spam inquiry")

		return dto.InquiryResponse{
			ID:      id,
			Message: "Thanks for reaching out. We will get back to you soon.",
		}, nil
	}

	inquiry := req.ToModel(id, clientIP)

	err = s.producer.SendMessages(ctx, s.config.Kafka.Topic.Inquiries, kafka.Message{
		Key:   inquiry.ID.String(),
		Value: inquiry,
	})
	if err != nil {
		log.Error().Err(err).Str("id", inquiry.ID.String()).Msg("[ContactService] Failed to publish inquiry")

		return res, failure.InternalError(err) // nolint:wrapcheck
	}

	log.Info().Str("id", inquiry.ID.String()).Msg("[ContactService] Inquiry accepted")

	return dto.InquiryResponse{
		ID:      inquiry.ID,
		Message: "Thanks for reaching out. We will get back to you soon.",
	}, nil
}
