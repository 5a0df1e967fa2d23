package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type JSONB map[string]any

func (a JSONB) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *JSONB) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

type BookingStatus string

const (
	BOOKING_PROVISIONAL BookingStatus = "PROVISIONAL"
	BOOKING_CONFIRMED   BookingStatus = "CONFIRMED"
	BOOKING_EXPIRED     BookingStatus = "EXPIRED"
	BOOKING_CANCELED    BookingStatus = "CANCELLED"
)

type BoatStatus string

const (
	BOAT_AVAILABLE   BoatStatus = "AVAILABLE"
	BOAT_MAINTENANCE BoatStatus = "MAINTENANCE"
	BOAT_RETIRED     BoatStatus = "RETIRED"
)

type TicketStatus string

const (
	TICKET_NEW      TicketStatus = "NEW"
	TICKET_OPEN     TicketStatus = "OPEN"
	TICKET_RESOLVED TicketStatus = "RESOLVED"
)

type PaymentStatus string

const (
	PAYMENT_PENDING   PaymentStatus = "PENDING"
	PAYMENT_COMPLETED PaymentStatus = "COMPLETED"
	PAYMENT_FAILED    PaymentStatus = "FAILED"
)

type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type RegisterUserRequestBody struct {
	FirstName  string `json:"firstName" binding:"required"`
	SecondName string `json:"secondName,omitempty"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	ContactNo  string `json:"contactNo,omitempty"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	Street     string `json:"street,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

type UpdateUserRequestBody struct {
	FirstName      string `json:"firstName" binding:"required"`
	SecondName     string `json:"secondName,omitempty"`
	ContactNo      string `json:"contactNo,omitempty"`
	Address        string `json:"address,omitempty"`
	City           string `json:"city,omitempty"`
	Street         string `json:"street,omitempty"`
	PostalCode     string `json:"postalCode,omitempty"`
	HireDate       string `json:"hireDate,omitempty"`
	Certification  string `json:"certification,omitempty"`
	Department     string `json:"department,omitempty"`
	Specialization string `json:"specialization,omitempty"`
}

type LoginRequestBody struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateBookingRequestBody struct {
	TripID     uint   `json:"tripId" binding:"required"`
	Name       string `json:"name"`
	Contact    string `json:"contact"`
	Email      string `json:"email"`
	Passengers int    `json:"numberOfPassengers"`
}

type CreateTripRequestBody struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date" binding:"required,bookabledate" time_format:"2006-01-02"`
	StartTime   string `json:"startTime,omitempty"`
	EndTime     string `json:"endTime,omitempty"`
	Duration    int    `json:"duration,omitempty"`
	Capacity    int    `json:"capacity" binding:"required,min=1"`
	Price       string `json:"price" binding:"required"`
	Location    string `json:"location,omitempty"`
	Route       string `json:"route,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	BoatID      *uint  `json:"boatId,omitempty"`
	GuideID     *uint  `json:"guideId,omitempty"`
}

type CreateBoatRequestBody struct {
	BoatName           string `json:"boatName" binding:"required"`
	Model              string `json:"model,omitempty"`
	Features           string `json:"features,omitempty"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`
	Status             string `json:"status,omitempty"`
	Capacity           int    `json:"capacity" binding:"required,min=1"`
	Description        string `json:"description,omitempty"`
	Type               string `json:"type,omitempty"`
}

type AssignRoleRequestBody struct {
	Role string `json:"role" binding:"required"`
}

type AssignResourcesRequestBody struct {
	TripID  uint  `json:"tripId" binding:"required"`
	BoatID  *uint `json:"boatId,omitempty"`
	GuideID *uint `json:"guideId,omitempty"`
}

type ContactRequestBody struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone,omitempty"`
	Subject          string `json:"subject" binding:"required"`
	Message          string `json:"message" binding:"required"`
	PreferredContact string `json:"preferredContact,omitempty"`
}

type UpdateTicketStatusRequestBody struct {
	Status string `json:"status" binding:"required,oneof=NEW OPEN RESOLVED"`
}

type CreateFeedbackRequestBody struct {
	BookingID uint   `json:"bookingId" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comments  string `json:"comments,omitempty"`
}

type CreatePaymentRequestBody struct {
	BookingID      uint   `json:"bookingId" binding:"required"`
	PaymentMethod  string `json:"paymentMethod" binding:"required,oneof=CARD CASH"`
	CardNumber     string `json:"cardNumber,omitempty"`
	CardExpiry     string `json:"cardExpiry,omitempty"`
	CardHolderName string `json:"cardHolderName,omitempty"`
}

type CreateCheckInRequestBody struct {
	BookingID uint   `json:"bookingId" binding:"required"`
	Notes     string `json:"notes,omitempty"`
}

type BookingQueryFilters struct {
	Status string `form:"status,omitempty"`
	Email  string `form:"email,omitempty"`
	TripID uint   `form:"tripId,omitempty"`
}
