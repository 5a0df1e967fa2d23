package main

import (
	"log"
	"net/http"
	"time"

	"boatsafari/src/config"
	"boatsafari/src/db"
	"boatsafari/src/middlewares"
	"boatsafari/src/models"
	"boatsafari/src/types"
	"boatsafari/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func tripAvailability(trip models.Trip, now time.Time) gin.H {
	available := trip.Capacity - utils.BookedSeats(trip.Bookings, now)
	if available < 0 {
		available = 0
	}
	trip.Bookings = nil
	return gin.H{"trip": trip, "availableSeats": available}
}

// tripPublicHandlers serves the browsing endpoints. No auth needed; the
// catalogue and live availability are public.
func tripPublicHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/trips", func(ctx *gin.Context) {
			db := db.GetDb()
			var trips []models.Trip
			if err := db.
				Model(&models.Trip{}).
				Preload("Boat").
				Preload("Bookings").
				Order("date asc").
				Find(&trips).
				Error; err != nil {
				log.Printf("Error retrieving trips: %s\n", err.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			now := time.Now()
			data := make([]gin.H, 0, len(trips))
			for _, trip := range trips {
				data = append(data, tripAvailability(trip, now))
			}
			ctx.JSON(http.StatusOK, gin.H{"data": data, "count": len(data)})
		}).
		GET("/trips/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var trip models.Trip
			if err := db.
				Model(&models.Trip{}).
				Where(&models.Trip{ID: params.ID}).
				Preload("Boat").
				Preload("Guide").
				First(&trip).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"message": "Trip not found"})
				return
			}
			booked, err := utils.GetBookedSeats(trip.ID)
			if err != nil {
				log.Printf("Error counting booked seats for trip %d: %s\n", trip.ID, err.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			available := trip.Capacity - booked
			if available < 0 {
				available = 0
			}
			ctx.JSON(http.StatusOK, gin.H{"data": gin.H{"trip": trip, "availableSeats": available}})
		})
	return g
}

// tripAdminHandlers manages the catalogue itself.
func tripAdminHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	admin := g.Group("", middlewares.RequireRoles(types.ROLE_ADMIN))
	admin.
		POST("/trips", func(ctx *gin.Context) {
			var body types.CreateTripRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			date, err := time.Parse(config.DATE_PARSE_FORMAT, body.Date)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date"})
				return
			}
			price, err := decimal.NewFromString(body.Price)
			if err != nil || price.IsNegative() {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid price"})
				return
			}
			trip := models.Trip{
				Name:        body.Name,
				Description: body.Description,
				Date:        date,
				StartTime:   body.StartTime,
				EndTime:     body.EndTime,
				Duration:    body.Duration,
				Capacity:    body.Capacity,
				Price:       price,
				Location:    body.Location,
				Route:       body.Route,
				ImageURL:    body.ImageURL,
				BoatID:      body.BoatID,
				GuideID:     body.GuideID,
			}
			db := db.GetDb()
			if err := db.Create(&trip).Error; err != nil {
				log.Printf("Error creating trip: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create trip"})
				return
			}
			ctx.JSON(http.StatusCreated, trip)
		}).
		PUT("/trips/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.CreateTripRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			db := db.GetDb()
			var trip models.Trip
			if err := db.
				Where(&models.Trip{ID: params.ID}).
				First(&trip).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"message": "Trip not found"})
				return
			}
			date, err := time.Parse(config.DATE_PARSE_FORMAT, body.Date)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date"})
				return
			}
			price, err := decimal.NewFromString(body.Price)
			if err != nil || price.IsNegative() {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid price"})
				return
			}
			trip.Name = body.Name
			trip.Description = body.Description
			trip.Date = date
			trip.StartTime = body.StartTime
			trip.EndTime = body.EndTime
			trip.Duration = body.Duration
			trip.Capacity = body.Capacity
			trip.Price = price
			trip.Location = body.Location
			trip.Route = body.Route
			trip.ImageURL = body.ImageURL
			trip.BoatID = body.BoatID
			trip.GuideID = body.GuideID
			if err := db.Save(&trip).Error; err != nil {
				log.Printf("Error updating trip %d: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update trip"})
				return
			}
			ctx.JSON(http.StatusOK, trip)
		}).
		DELETE("/trips/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			res := db.Delete(&models.Trip{}, params.ID)
			if res.Error != nil {
				log.Printf("Error deleting trip %d: %s\n", params.ID, res.Error.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			if res.RowsAffected == 0 {
				ctx.JSON(http.StatusNotFound, gin.H{"message": "Trip not found"})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
