package controllers

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-api/database"
	"github.com/yeremiapane/restaurant-api/models"
	"github.com/yeremiapane/restaurant-api/utils"
)

const (
	errReservationMissingFields = "Missing required fields: customer_name, customer_email, customer_phone, party_size, reservation_date, and reservation_time are required"
	errReservationEmail         = "Invalid email format"
	errReservationPartySize     = "Party size must be between 1 and 20"

	minPartySize = 1
	maxPartySize = 20
)

type ReservationController struct {
	Store database.ReservationStore
}

func NewReservationController(store database.ReservationStore) *ReservationController {
	return &ReservationController{Store: store}
}

// Status is not read from callers; new reservations are always pending.
type createReservationRequest struct {
	CustomerName    string       `json:"customer_name" form:"customer_name" binding:"required"`
	CustomerEmail   string       `json:"customer_email" form:"customer_email" binding:"required"`
	CustomerPhone   string       `json:"customer_phone" form:"customer_phone" binding:"required"`
	PartySize       *json.Number `json:"party_size" form:"party_size" binding:"required"` // 4 or "4"
	ReservationDate string       `json:"reservation_date" form:"reservation_date" binding:"required"`
	ReservationTime string       `json:"reservation_time" form:"reservation_time" binding:"required"`
	SpecialRequests *string      `json:"special_requests" form:"special_requests"`

	partySize int
}

// validate checks the email first and the party size second; the first
// failure wins. A party size that is not a whole number is a malformed body.
func (r *createReservationRequest) validate() *ValidationError {
	size, err := r.PartySize.Float64()
	if err != nil || size != math.Trunc(size) {
		return invalidField(errInvalidBody, "party_size")
	}
	if !validEmail(r.CustomerEmail) {
		return invalidField(errReservationEmail, "customer_email")
	}
	if size < minPartySize || size > maxPartySize {
		return invalidField(errReservationPartySize, "party_size")
	}
	r.partySize = int(size)
	return nil
}

func (r *createReservationRequest) toModel() *models.Reservation {
	return &models.Reservation{
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		PartySize:       r.partySize,
		ReservationDate: models.CalendarDate(r.ReservationDate),
		ReservationTime: models.ClockTime(r.ReservationTime),
		SpecialRequests: nilIfEmpty(r.SpecialRequests),
		Status:          models.ReservationStatusPending,
	}
}

// GetAllReservations lists reservations, latest date and time first.
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	reservations, err := rc.Store.List(c.Request.Context())
	if err != nil {
		utils.ErrorLogger.Errorf("Error fetching reservations: %s", database.Describe(err))
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch reservations", err)
		return
	}
	utils.RespondList(c, len(reservations), reservations)
}

// CreateReservation
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBind(&req); err != nil {
		if verr := fromBindError(err, &req, errReservationMissingFields); verr != nil {
			respondValidation(c, verr)
			return
		}
		utils.RespondError(c, http.StatusBadRequest, errInvalidBody, err)
		return
	}
	if verr := req.validate(); verr != nil {
		respondValidation(c, verr)
		return
	}

	reservation, err := rc.Store.Create(c.Request.Context(), req.toModel())
	if err != nil {
		utils.ErrorLogger.Errorf("Error creating reservation: %s", database.Describe(err))
		utils.RespondError(c, http.StatusInternalServerError, "Failed to create reservation", err)
		return
	}

	utils.InfoLogger.Printf("Reservation created (ID=%d) for %s on %s %s, party of %d",
		reservation.ID, reservation.CustomerName, reservation.ReservationDate, reservation.ReservationTime, reservation.PartySize)
	utils.RespondCreated(c, "Reservation created successfully", reservation)
}
