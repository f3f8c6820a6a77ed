package models

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

const ReservationStatusPending = "pending"

// CalendarDate is a reservation day such as "2025-01-01". MySQL stores it in
// a DATE column and, without parseTime in the DSN, scans it back as text.
type CalendarDate string

func (CalendarDate) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "mysql" {
		return "date"
	}
	return "varchar(10)"
}

// Normalize zero-pads month and day so that text ordering is date ordering.
// Values that do not parse are left as sent.
func (d CalendarDate) Normalize() CalendarDate {
	t, err := time.Parse("2006-1-2", string(d))
	if err != nil {
		return d
	}
	return CalendarDate(t.Format("2006-01-02"))
}

// ClockTime is a reservation time of day such as "18:00" or "18:00:00".
type ClockTime string

func (ClockTime) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "mysql" {
		return "time"
	}
	return "varchar(8)"
}

// Normalize zero-pads the hour ("9:00" becomes "09:00") and keeps seconds
// only when they were sent.
func (c ClockTime) Normalize() ClockTime {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, string(c)); err == nil {
			return ClockTime(t.Format(layout))
		}
	}
	return c
}

type Reservation struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	CustomerName    string       `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail   string       `gorm:"type:varchar(255);not null" json:"customer_email"`
	CustomerPhone   string       `gorm:"type:varchar(50);not null" json:"customer_phone"`
	PartySize       int          `gorm:"not null" json:"party_size"`
	ReservationDate CalendarDate `gorm:"not null;index" json:"reservation_date"`
	ReservationTime ClockTime    `gorm:"not null" json:"reservation_time"`
	SpecialRequests *string      `gorm:"type:text" json:"special_requests"`
	Status          string       `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
}

func (Reservation) TableName() string {
	return "reservations"
}
