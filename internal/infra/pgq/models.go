package pgq

import (
	"time"

	"github.com/google/uuid"
)

type Reservation struct {
	ID            uuid.UUID
	ClientID      uuid.UUID
	ClientName    string
	Date          time.Time
	StartHour     int32
	Duration      int32
	LaneCount     int32
	TotalCents    int64
	Status        string
	PaymentStatus string
	EventType     string
	PeopleCount   int32
	Observations  string
	Guests        []byte
	GuestPhones   []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Client struct {
	ID            uuid.UUID
	Name          string
	Phone         string
	PhoneDigits   string
	Email         string
	Tags          []string
	FunnelStage   string
	CreatedAt     time.Time
	LastContactAt time.Time
}

type Settings struct {
	EstablishmentName    string
	Address              string
	Phone                string
	WhatsappLink         string
	ActiveLanes          int32
	WeekdayPriceCents    int64
	WeekendPriceCents    int64
	OnlinePaymentEnabled bool
	PaymentPublicKey     string
	BusinessHours        []byte
	UpdatedAt            time.Time
}
