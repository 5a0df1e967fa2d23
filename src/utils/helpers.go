package utils

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"boatsafari/src/config"
	"boatsafari/src/db"
	"boatsafari/src/lib"
	"boatsafari/src/models"
	"boatsafari/src/types"

	"github.com/golang-jwt/jwt/v4"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)

// ValidateBookingRequest applies the field checks in order; the first
// failing check wins.
func ValidateBookingRequest(name, contact, email string, passengers int) error {
	if strings.TrimSpace(name) == "" {
		return types.InvalidArgument("Name is required")
	}
	if strings.TrimSpace(contact) == "" {
		return types.InvalidArgument("Contact number is required")
	}
	if !emailPattern.MatchString(email) {
		return types.InvalidArgument("Valid email is required")
	}
	if passengers < 1 {
		return types.InvalidArgument("Number of passengers must be at least 1")
	}
	return nil
}

// BookedSeats sums passengers over the bookings that still hold seats:
// confirmed bookings and unexpired provisional holds. Expired and
// cancelled bookings release their capacity.
func BookedSeats(bookings []models.Booking, now time.Time) int {
	booked := 0
	for _, b := range bookings {
		if b.CountsTowardCapacity(now) {
			booked += b.Passengers
		}
	}
	return booked
}

// GetBookedSeats reports seats currently held against a trip.
func GetBookedSeats(tripID uint) (int, error) {
	db := db.GetDb()
	var bookings []models.Booking
	if err := db.
		Model(&models.Booking{}).
		Where(&models.Booking{TripID: tripID}).
		Find(&bookings).
		Error; err != nil {
		return 0, err
	}
	return BookedSeats(bookings, time.Now()), nil
}

// CreateProvisionalBooking validates the request, checks seat capacity
// and persists a 15-minute hold. The capacity check and the insert run
// in one transaction serialized per trip, so two near-simultaneous
// requests cannot both pass the check on a nearly full trip.
func CreateProvisionalBooking(userID uint, body *types.CreateBookingRequestBody) (*models.Booking, error) {
	if userID < 1 {
		return nil, types.ErrInvalidIdentity
	}
	if err := ValidateBookingRequest(body.Name, body.Contact, body.Email, body.Passengers); err != nil {
		return nil, err
	}

	release, err := lib.AcquireTripLock(context.Background(), body.TripID)
	if err != nil {
		return nil, err
	}
	defer release()

	var booking models.Booking
	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		var trip models.Trip
		if err := tx.
			Where(&models.Trip{ID: body.TripID}).
			First(&trip).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NotFound("Trip not found")
			}
			return err
		}

		var existing []models.Booking
		if err := tx.
			Model(&models.Booking{}).
			Where(&models.Booking{TripID: trip.ID}).
			Find(&existing).
			Error; err != nil {
			return err
		}

		now := time.Now()
		booked := BookedSeats(existing, now)
		if booked+body.Passengers > trip.Capacity {
			available := trip.Capacity - booked
			if available < 0 {
				available = 0
			}
			return types.InvalidArgument(fmt.Sprintf("Not enough seats available. Available: %d", available))
		}

		totalCost := trip.Price.Mul(decimal.NewFromInt(int64(body.Passengers)))
		holdExpiresAt := now.Add(config.HoldWindowMinutes * time.Minute)
		booking = models.Booking{
			TripID:        trip.ID,
			CustomerID:    userID,
			Name:          body.Name,
			Contact:       body.Contact,
			Email:         body.Email,
			Passengers:    body.Passengers,
			Status:        types.BOOKING_PROVISIONAL,
			HoldExpiresAt: &holdExpiresAt,
			TotalCost:     totalCost,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("Booking saved: id=%d status=%s\n", booking.ID, booking.Status)
	scheduleHoldExpiry(&booking)
	return &booking, nil
}

// scheduleHoldExpiry enqueues a one-time job that reclaims this hold
// right after it lapses. The periodic sweeper catches anything a
// restart loses from the in-memory queue.
func scheduleHoldExpiry(booking *models.Booking) {
	if booking.HoldExpiresAt == nil {
		return
	}
	runsAt := booking.HoldExpiresAt.Add(time.Second)
	_, err := lib.CreateOneTimeJob(runsAt, func(id uint) {
		db := db.GetDb()
		res := db.
			Model(&models.Booking{}).
			Where("id = ? AND status = ?", id, types.BOOKING_PROVISIONAL).
			Where("hold_expires_at < ?", time.Now()).
			Update("status", types.BOOKING_EXPIRED)
		if res.Error != nil {
			log.Printf("Error expiring booking %d: %s\n", id, res.Error.Error())
			return
		}
		if res.RowsAffected > 0 {
			log.Printf("Booking expired: id=%d\n", id)
		}
	}, booking.ID)
	if err != nil {
		log.Printf("Error scheduling hold expiry for booking %d: %s\n", booking.ID, err.Error())
	}
}

// ConfirmBooking promotes a live provisional hold to CONFIRMED. Expiry
// is checked lazily here; the sweeper only tidies lapsed rows.
func ConfirmBooking(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where(&models.Booking{ID: bookingID}).
			First(&booking).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NotFound("Booking not found")
			}
			return err
		}
		if booking.HoldExpired(time.Now()) {
			return types.InvalidState("Booking has expired")
		}
		if !booking.Provisional() {
			return types.InvalidState("Booking is not in PROVISIONAL state")
		}
		if err := tx.
			Model(&models.Booking{}).
			Where(&models.Booking{ID: bookingID}).
			Update("status", types.BOOKING_CONFIRMED).
			Error; err != nil {
			return err
		}
		booking.Status = types.BOOKING_CONFIRMED
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("Booking confirmed: id=%d\n", bookingID)
	return &booking, nil
}

// ExpireLapsedBookings flips provisional bookings whose hold has passed
// to EXPIRED. Capacity reads already exclude them; this reclaims the
// rows so they stop looking like live holds.
func ExpireLapsedBookings() (int64, error) {
	db := db.GetDb()
	var expired int64
	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.
			Model(&models.Booking{}).
			Where("status = ?", types.BOOKING_PROVISIONAL).
			Where("hold_expires_at < ?", time.Now()).
			Update("status", types.BOOKING_EXPIRED)
		if res.Error != nil {
			return res.Error
		}
		expired = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	if expired > 0 {
		log.Printf("Expired %d lapsed provisional bookings\n", expired)
	}
	return expired, nil
}

// AssignRole migrates a user to a different role-specific shape while
// keeping the identifier and shared attributes.
func AssignRole(userID uint, newRole string) (*models.User, error) {
	role, ok := types.ParseRole(newRole)
	if !ok {
		return nil, types.UnsupportedRole(newRole)
	}
	var updated models.User
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.
			Where(&models.User{ID: userID}).
			First(&user).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NotFound(fmt.Sprintf("User not found with ID: %d", userID))
			}
			return err
		}
		updated = user.WithRole(role)
		if err := tx.Save(&updated).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("Assigned role %s to user %d\n", role, userID)
	return &updated, nil
}

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

func GenerateJWT(email string, userID uint, role types.Role) (string, error) {
	now := time.Now()
	claims := types.Claims{
		Username: email,
		Role:     string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(int(userID)),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// NotifyBookingConfirmed sends the confirmation email when SMTP is
// configured. Failures are logged, never surfaced to the caller.
func NotifyBookingConfirmed(booking *models.Booking) {
	if !lib.MailEnabled() || booking.Email == "" {
		return
	}
	body := fmt.Sprintf(
		"Hello %s,\n\nYour booking #%d for %d passenger(s) is confirmed. Total cost: %s.\n\nSee you on board!\n",
		booking.Name, booking.ID, booking.Passengers, booking.TotalCost.StringFixed(2),
	)
	err := lib.SendMail(&lib.SendMailInput{
		From:     os.Getenv("MAIL_FROM"),
		FromName: "Boat Safari",
		To:       []string{booking.Email},
		Subject:  fmt.Sprintf("Booking #%d confirmed", booking.ID),
		Body:     body,
	})
	if err != nil {
		log.Printf("Error sending confirmation email for booking %d: %s\n", booking.ID, err.Error())
	}
}

// NotifyTicketReceived acknowledges a new support ticket by email.
func NotifyTicketReceived(ticket *models.SupportTicket) {
	if !lib.MailEnabled() || ticket.Email == "" {
		return
	}
	body := fmt.Sprintf(
		"Hello %s,\n\nWe received your message about %q. Ticket reference: %d. Our team will contact you soon.\n",
		ticket.Name, ticket.Subject, ticket.ID,
	)
	err := lib.SendMail(&lib.SendMailInput{
		From:     os.Getenv("MAIL_FROM"),
		FromName: "Boat Safari Support",
		To:       []string{ticket.Email},
		Subject:  fmt.Sprintf("Support ticket #%d received", ticket.ID),
		Body:     body,
	})
	if err != nil {
		log.Printf("Error sending ticket ack for ticket %d: %s\n", ticket.ID, err.Error())
	}
}
