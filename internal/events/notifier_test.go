package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	kafkaGo "github.com/segmentio/kafka-go"
	"go.uber.org/mock/gomock"

	"eikaiwa/config"
	kafkaMocks "eikaiwa/infras/kafka/mocks"
	mailerMocks "eikaiwa/infras/mailer/mocks"
	"eikaiwa/infras/otel/mocks"
	"eikaiwa/internal/events"
)

func encode(t *testing.T, key string, value any) kafkaGo.Message {
	t.Helper()

	payload, err := json.Marshal(value)
	assert.NoError(t, err)

	return kafkaGo.Message{Key: []byte(key), Value: payload}
}

func TestNotifier_Handle(t *testing.T) {
	lessonAt := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)

	created := events.BookingCreated{
		BookingID:        "bk-1",
		Date:             lessonAt,
		DurationMinutes:  60,
		ParticipantCount: 1,
		CustomerName:     "Hanako Yamada",
		CustomerKana:     "ヤマダ ハナコ",
		CustomerEmail:    "hanako@example.com",
		FinalPrice:       4000,
		Status:           "confirmed",
	}

	cancelled := events.BookingCancelled{
		BookingID:     "bk-1",
		Date:          lessonAt,
		CustomerEmail: "hanako@example.com",
	}

	t.Run("booking created mails customer and admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMailer := mailerMocks.NewMockMailer(ctrl)
		cfg := &config.Config{}
		cfg.App.AdminEmail = "school@example.com"

		notifier := events.NewNotifier(kafkaMocks.NewMockClient(ctrl), mockMailer, cfg, mocks.NewOtel())

		mockMailer.EXPECT().Send("hanako@example.com", gomock.Any(), gomock.Any()).Return(nil)
		mockMailer.EXPECT().Send("school@example.com", gomock.Any(), gomock.Any()).Return(nil)

		notifier.Handle(encode(t, events.KeyBookingCreated, created))
	})

	t.Run("no admin email configured mails customer only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMailer := mailerMocks.NewMockMailer(ctrl)
		notifier := events.NewNotifier(kafkaMocks.NewMockClient(ctrl), mockMailer, &config.Config{}, mocks.NewOtel())

		mockMailer.EXPECT().Send("hanako@example.com", gomock.Any(), gomock.Any()).Return(nil)

		notifier.Handle(encode(t, events.KeyBookingCreated, created))
	})

	t.Run("booking cancelled mails customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMailer := mailerMocks.NewMockMailer(ctrl)
		notifier := events.NewNotifier(kafkaMocks.NewMockClient(ctrl), mockMailer, &config.Config{}, mocks.NewOtel())

		mockMailer.EXPECT().Send("hanako@example.com", gomock.Any(), gomock.Any()).Return(nil)

		notifier.Handle(encode(t, events.KeyBookingCancelled, cancelled))
	})

	t.Run("unknown key is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMailer := mailerMocks.NewMockMailer(ctrl)
		notifier := events.NewNotifier(kafkaMocks.NewMockClient(ctrl), mockMailer, &config.Config{}, mocks.NewOtel())

		notifier.Handle(encode(t, "booking.unknown", created))
	})

	t.Run("mail failure does not panic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMailer := mailerMocks.NewMockMailer(ctrl)
		notifier := events.NewNotifier(kafkaMocks.NewMockClient(ctrl), mockMailer, &config.Config{}, mocks.NewOtel())

		mockMailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)

		notifier.Handle(encode(t, events.KeyBookingCancelled, cancelled))
	})
}
