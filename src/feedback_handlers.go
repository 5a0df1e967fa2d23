package main

import (
	"log"
	"net/http"

	"boatsafari/src/db"
	"boatsafari/src/models"
	"boatsafari/src/types"

	"github.com/gin-gonic/gin"
)

func feedbackPublicHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/feedback/public", func(ctx *gin.Context) {
			var body types.CreateFeedbackRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			db := db.GetDb()
			var booking models.Booking
			if err := db.
				Where(&models.Booking{ID: body.BookingID}).
				First(&booking).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
				return
			}
			feedback := models.Feedback{
				BookingID: booking.ID,
				Rating:    body.Rating,
				Comments:  body.Comments,
			}
			if err := db.Create(&feedback).Error; err != nil {
				log.Printf("Error creating feedback: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit feedback"})
				return
			}
			ctx.JSON(http.StatusCreated, feedback)
		}).
		GET("/feedback/public", func(ctx *gin.Context) {
			db := db.GetDb()
			var feedback []models.Feedback
			if err := db.
				Model(&models.Feedback{}).
				Order("created_at desc").
				Limit(100).
				Find(&feedback).
				Error; err != nil {
				log.Printf("Error retrieving feedback: %s\n", err.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": feedback, "count": len(feedback)})
		})
	return g
}
