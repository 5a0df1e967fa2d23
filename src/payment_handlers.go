package main

import (
	"log"
	"net/http"
	"time"

	"boatsafari/src/db"
	"boatsafari/src/models"
	"boatsafari/src/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func paymentHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/payments", func(ctx *gin.Context) {
			var body types.CreatePaymentRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			var payment models.Payment
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				var booking models.Booking
				if err := tx.
					Where(&models.Booking{ID: body.BookingID}).
					First(&booking).
					Error; err != nil {
					return types.NotFound("Booking not found")
				}
				role, _ := types.ParseRole(ctx.GetString("role"))
				if booking.CustomerID != userId && !role.OneOf(types.StaffRoles...) {
					return types.NotFound("Booking not found")
				}
				if booking.Status != types.BOOKING_CONFIRMED {
					return types.InvalidState("Booking is not in CONFIRMED state")
				}
				if booking.PaymentID != nil {
					return types.InvalidState("Booking is already paid")
				}
				payment = models.Payment{
					BookingID:      booking.ID,
					PaymentMethod:  body.PaymentMethod,
					PaymentDate:    time.Now(),
					Amount:         booking.TotalCost,
					Status:         types.PAYMENT_COMPLETED,
					CardLast4:      models.MaskCard(body.CardNumber),
					CardHolderName: body.CardHolderName,
				}
				if err := tx.Create(&payment).Error; err != nil {
					return err
				}
				return tx.
					Model(&models.Booking{}).
					Where(&models.Booking{ID: booking.ID}).
					Update("payment_id", payment.ID).
					Error
			})
			if err != nil {
				if types.ClientError(err) {
					ctx.JSON(http.StatusBadRequest, gin.H{"message": types.ClientMessage(err)})
					return
				}
				log.Printf("Error recording payment for booking %d: %s\n", body.BookingID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to record payment"})
				return
			}
			ctx.JSON(http.StatusCreated, payment)
		}).
		GET("/payments/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var payment models.Payment
			if err := db.
				Where(&models.Payment{ID: params.ID}).
				First(&payment).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"message": "Payment not found"})
				return
			}
			var booking models.Booking
			if err := db.
				Where(&models.Booking{ID: payment.BookingID}).
				First(&booking).
				Error; err == nil {
				userId := ctx.GetUint("id")
				role, _ := types.ParseRole(ctx.GetString("role"))
				if booking.CustomerID != userId && !role.OneOf(types.StaffRoles...) {
					ctx.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
					return
				}
			}
			ctx.JSON(http.StatusOK, gin.H{"data": payment})
		})
	return g
}
