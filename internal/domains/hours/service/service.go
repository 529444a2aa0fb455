package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/hours_mock.go -package=mocks

import (
	"context"
	"parkside/config"
	"parkside/infras/otel"
	catalogModel "parkside/internal/domains/catalog/model"
	"parkside/internal/domains/hours/model"
	"parkside/shared/constant"
	"parkside/shared/failure"
	"time"

	"github.com/rs/zerolog/log"
)

// Hours serves the operating-hours calendar and supplies structured closing
// hours to the booking pricing path.
type Hours interface {
	Weekly(ctx context.Context) WeeklySchedule
	ForDate(ctx context.Context, date string) (DayHours, error)
	ClosingHour(date time.Time) int
}

type WeeklySchedule struct {
	Weekday       model.DaySchedule `json:"weekday"`
	Weekend       model.DaySchedule `json:"weekend"`
	WinterWeekday model.DaySchedule `json:"winter_weekday"`
	WinterWeekend model.DaySchedule `json:"winter_weekend"`
}

type DayHours struct {
	Date string `json:"date"`
	model.DaySchedule
}

type serviceImpl struct {
	schedule WeeklySchedule
	otel     otel.Otel
}

// New parses the configured hours text once at startup. Malformed hours config
// is a deploy error, not something to limp past.
func New(cfg *config.Config, otel otel.Otel) Hours {
	schedule := WeeklySchedule{}

	entries := []struct {
		name string
		text string
		dest *model.DaySchedule
	}{
		{"weekday", cfg.Park.Hours.Weekday, &schedule.Weekday},
		{"weekend", cfg.Park.Hours.Weekend, &schedule.Weekend},
		{"winter weekday", cfg.Park.Hours.WinterWeekday, &schedule.WinterWeekday},
		{"winter weekend", cfg.Park.Hours.WinterWeekend, &schedule.WinterWeekend},
	}

	for _, entry := range entries {
		parsed, err := model.ParseHours(entry.text)
		if err != nil {
			log.Fatal().Err(err).Str("schedule", entry.name).Msg("Failed to parse park hours configuration")
		}

		*entry.dest = parsed
	}

	log.Info().
		Str("weekday", schedule.Weekday.Label).
		Str("weekend", schedule.Weekend.Label).
		Msg("Park operating hours initialized")

	return &serviceImpl{
		schedule: schedule,
		otel:     otel,
	}
}

func (s *serviceImpl) Weekly(ctx context.Context) WeeklySchedule {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Weekly")
	defer scope.End()

	return s.schedule
}

func (s *serviceImpl) ForDate(ctx context.Context, date string) (res DayHours, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ForDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := time.Parse(constant.DateOnlyFormat, date)
	if err != nil {
		return res, failure.BadRequestFromString("invalid date, expected YYYY-MM-DD") // nolint:wrapcheck
	}

	return DayHours{
		Date:        date,
		DaySchedule: s.daySchedule(day),
	}, nil
}

// ClosingHour returns the structured closing hour for a party date, feeding the
// late-day discount window.
func (s *serviceImpl) ClosingHour(date time.Time) int {
	return s.daySchedule(date).CloseHour
}

func (s *serviceImpl) daySchedule(date time.Time) model.DaySchedule {
	winter := catalogModel.IsWinter(date)
	weekend := model.IsWeekend(date)

	switch {
	case winter && weekend:
		return s.schedule.WinterWeekend
	case winter:
		return s.schedule.WinterWeekday
	case weekend:
		return s.schedule.Weekend
	default:
		return s.schedule.Weekday
	}
}
