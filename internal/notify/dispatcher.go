package notify

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zennara-clinics/booking-api/internal/models"
)

type Event struct {
	UserID    uint
	BookingID *uint

	Type    string
	Title   string
	Message string

	// Delivery targets; empty values skip that channel.
	Email     string
	Mobile    string
	WithVoice bool
}

// Dispatcher records an in-app notification and fans the event out to the
// delivery channels from a single worker goroutine. Failures are logged and
// swallowed; a booking transition never waits on (or rolls back for) any of
// this.
type Dispatcher struct {
	db    *gorm.DB
	email EmailSender
	sms   SMSSender
	voice VoiceCaller
	queue chan Event
}

func NewDispatcher(db *gorm.DB, email EmailSender, sms SMSSender, voice VoiceCaller) *Dispatcher {
	d := &Dispatcher{
		db:    db,
		email: email,
		sms:   sms,
		voice: voice,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		d.deliver(ctx, ev)
		cancel()
	}
}

func (d *Dispatcher) deliver(ctx context.Context, ev Event) {
	record := models.Notification{
		EventID:   uuid.NewString(),
		UserID:    ev.UserID,
		BookingID: ev.BookingID,
		Type:      ev.Type,
		Title:     ev.Title,
		Message:   ev.Message,
	}
	if err := d.db.WithContext(ctx).Create(&record).Error; err != nil {
		log.Println("notify record error:", err)
	}

	if ev.Email != "" {
		if err := d.email.SendEmail(ctx, ev.Email, ev.Title, ev.Message); err != nil {
			log.Println("notify email error:", err)
		}
	}

	if ev.Mobile != "" {
		if err := d.sms.SendSMS(ctx, ev.Mobile, ev.Message); err != nil {
			log.Println("notify sms error:", err)
		}
		if ev.WithVoice {
			if err := d.voice.PlaceCall(ctx, ev.Mobile, ev.Message); err != nil {
				log.Println("notify voice error:", err)
			}
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// queued
	default:
		// full queue must never block a booking transition
		log.Println("notify queue full, dropping event")
	}
}
