package events

import (
	"context"
	"eikaiwa/config"
	"eikaiwa/infras/kafka"
	"eikaiwa/infras/mailer"
	"eikaiwa/infras/otel"
	"eikaiwa/shared/constant"
	"eikaiwa/shared/timezone"
	"fmt"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Notifier consumes booking events and sends the transactional mail: a
// confirmation to the customer and a notice to the school inbox. It runs as
// its own process so mail latency never sits on the booking request path.
type Notifier struct {
	kafka  kafka.Client
	mailer mailer.Mailer
	config *config.Config
	otel   otel.Otel
}

func NewNotifier(kafkaClient kafka.Client, mailerClient mailer.Mailer, cfg *config.Config, otel otel.Otel) *Notifier {
	return &Notifier{
		kafka:  kafkaClient,
		mailer: mailerClient,
		config: cfg,
		otel:   otel,
	}
}

func (n *Notifier) Run(ctx context.Context) {
	log.Info().Str("topic", n.config.Kafka.Topic).Msg("Starting booking notifier")

	n.kafka.Consume(ctx, n.config.Kafka.GroupID, n.config.Kafka.Topic, n.Handle)
}

func (n *Notifier) Handle(message kafkaGo.Message) {
	_, scope := n.otel.NewScope(context.Background(), constant.OtelEventScopeName, constant.OtelEventScopeName+".Handle")
	defer scope.End()

	scope.SetAttribute("event.key", string(message.Key))

	switch string(message.Key) {
	case KeyBookingCreated:
		decoded, err := kafka.DecodeKafkaMessage[BookingCreated](message)
		if err != nil {
			scope.TraceError(err)

			return
		}

		event, _ := decoded.Value.(BookingCreated)
		n.notifyCreated(event)
	case KeyBookingCancelled:
		decoded, err := kafka.DecodeKafkaMessage[BookingCancelled](message)
		if err != nil {
			scope.TraceError(err)

			return
		}

		event, _ := decoded.Value.(BookingCancelled)
		n.notifyCancelled(event)
	default:
		log.Warn().Str("key", string(message.Key)).Msg("unknown event key, skipping")
	}
}

func (n *Notifier) notifyCreated(event BookingCreated) {
	lessonAt := timezone.Format(event.Date, constant.CalendarFormat+" "+constant.ClockFormat)

	customerBody := fmt.Sprintf(
		"%s 様\n\nレッスンのご予約を承りました。\n\n日時: %s\n時間: %d分\n人数: %d名\n料金: ¥%d\n\nご来校をお待ちしております。",
		event.CustomerName, lessonAt, event.DurationMinutes, event.ParticipantCount, event.FinalPrice,
	)

	if err := n.mailer.Send(event.CustomerEmail, "【ご予約確認】レッスン予約が完了しました", customerBody); err != nil {
		log.Error().Err(err).Str("booking_id", event.BookingID).Msg("failed to send booking confirmation")
	}

	if n.config.App.AdminEmail == "" {
		return
	}

	adminBody := fmt.Sprintf(
		"New booking %s\n\nWhen: %s (%d min)\nWho: %s (%s)\nEmail: %s\nParticipants: %d\nPrice: ¥%d\nStatus: %s",
		event.BookingID, lessonAt, event.DurationMinutes,
		event.CustomerName, event.CustomerKana, event.CustomerEmail,
		event.ParticipantCount, event.FinalPrice, event.Status,
	)

	if err := n.mailer.Send(n.config.App.AdminEmail, "New lesson booking: "+lessonAt, adminBody); err != nil {
		log.Error().Err(err).Str("booking_id", event.BookingID).Msg("failed to send admin notification")
	}
}

func (n *Notifier) notifyCancelled(event BookingCancelled) {
	lessonAt := timezone.Format(event.Date, constant.CalendarFormat+" "+constant.ClockFormat)

	body := fmt.Sprintf(
		"ご予約(%s)のキャンセルを承りました。\n\nまたのご利用をお待ちしております。",
		lessonAt,
	)

	if err := n.mailer.Send(event.CustomerEmail, "【キャンセル確認】ご予約をキャンセルしました", body); err != nil {
		log.Error().Err(err).Str("booking_id", event.BookingID).Msg("failed to send cancellation mail")
	}

	if n.config.App.AdminEmail == "" {
		return
	}

	adminBody := fmt.Sprintf("Booking %s for %s was cancelled.", event.BookingID, lessonAt)

	if err := n.mailer.Send(n.config.App.AdminEmail, "Lesson booking cancelled: "+lessonAt, adminBody); err != nil {
		log.Error().Err(err).Str("booking_id", event.BookingID).Msg("failed to send admin cancellation notice")
	}
}
