package main

import (
	"log"
	"net/http"
	"time"

	"boatsafari/src/db"
	"boatsafari/src/middlewares"
	"boatsafari/src/models"
	"boatsafari/src/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func guideHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	guide := g.Group("/guide", middlewares.RequireRoles(types.GuideRoles...))
	guide.
		POST("/checkins", func(ctx *gin.Context) {
			var body types.CreateCheckInRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			var checkin models.PassengerCheckIn
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				var booking models.Booking
				if err := tx.
					Where(&models.Booking{ID: body.BookingID}).
					First(&booking).
					Error; err != nil {
					return types.NotFound("Booking not found")
				}
				if booking.Status != types.BOOKING_CONFIRMED {
					return types.InvalidState("Booking is not in CONFIRMED state")
				}
				var existing int64
				if err := tx.
					Model(&models.PassengerCheckIn{}).
					Where("booking_id = ?", booking.ID).
					Count(&existing).
					Error; err != nil {
					return err
				}
				if existing > 0 {
					return types.InvalidState("Booking is already checked in")
				}
				now := time.Now()
				checkin = models.PassengerCheckIn{
					BookingID:   booking.ID,
					CheckedIn:   true,
					CheckInTime: &now,
					Notes:       body.Notes,
					CheckedInBy: userId,
				}
				return tx.Create(&checkin).Error
			})
			if err != nil {
				if types.ClientError(err) {
					ctx.JSON(http.StatusBadRequest, gin.H{"message": types.ClientMessage(err)})
					return
				}
				log.Printf("Error checking in booking %d: %s\n", body.BookingID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to record check-in"})
				return
			}
			ctx.JSON(http.StatusCreated, checkin)
		}).
		GET("/checkins/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var checkins []models.PassengerCheckIn
			if err := db.
				Model(&models.PassengerCheckIn{}).
				Joins("JOIN bookings ON bookings.id = passenger_check_ins.booking_id").
				Where("bookings.trip_id = ?", params.ID).
				Preload("Booking").
				Find(&checkins).
				Error; err != nil {
				log.Printf("Error retrieving check-ins for trip %d: %s\n", params.ID, err.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": checkins, "count": len(checkins)})
		})
	return g
}
