package main

import (
	"errors"
	"log"
	"net/http"

	"boatsafari/src/db"
	"boatsafari/src/middlewares"
	"boatsafari/src/models"
	"boatsafari/src/types"
	"boatsafari/src/utils"

	"github.com/gin-gonic/gin"
)

func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/bookings", func(ctx *gin.Context) {
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			booking, err := utils.CreateProvisionalBooking(userId, &body)
			if err != nil {
				if errors.Is(err, types.ErrInvalidIdentity) {
					ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
					return
				}
				if types.ClientError(err) {
					ctx.JSON(http.StatusBadRequest, gin.H{"message": types.ClientMessage(err)})
					return
				}
				log.Printf("Error creating booking: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create booking"})
				return
			}
			ctx.JSON(http.StatusCreated, booking)
		}).
		POST("/bookings/:id/confirm", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			booking, err := utils.ConfirmBooking(params.ID)
			if err != nil {
				if types.ClientError(err) {
					ctx.JSON(http.StatusBadRequest, gin.H{"message": types.ClientMessage(err)})
					return
				}
				log.Printf("Error confirming booking %d: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to confirm booking"})
				return
			}
			go utils.NotifyBookingConfirmed(booking)
			ctx.Status(http.StatusOK)
		}).
		GET("/bookings/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var booking models.Booking
			if err := db.
				Model(&models.Booking{}).
				Where(&models.Booking{ID: params.ID}).
				Preload("Trip").
				Preload("Payment").
				First(&booking).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
				return
			}
			userId := ctx.GetUint("id")
			role, _ := types.ParseRole(ctx.GetString("role"))
			if booking.CustomerID != userId && !role.OneOf(types.StaffRoles...) {
				ctx.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		})

	g.Group("", middlewares.RequireRoles(types.ROLE_ADMIN, types.ROLE_STAFF, types.ROLE_IT_SUPPORT, types.ROLE_IT_ASSISTANT)).
		GET("/bookings", func(ctx *gin.Context) {
			var filters types.BookingQueryFilters
			if err := ctx.ShouldBindQuery(&filters); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			db := db.GetDb()
			q := db.Model(&models.Booking{}).Preload("Trip")
			if filters.Status != "" {
				q = q.Where("status = ?", filters.Status)
			}
			if filters.Email != "" {
				q = q.Where("email = ?", filters.Email)
			}
			if filters.TripID > 0 {
				q = q.Where("trip_id = ?", filters.TripID)
			}
			var bookings []models.Booking
			if err := q.Order("created_at desc").Find(&bookings).Error; err != nil {
				log.Printf("Error retrieving bookings: %s\n", err.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings)})
		})
	return g
}
