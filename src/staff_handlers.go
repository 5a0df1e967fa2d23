package main

import (
	"log"
	"net/http"

	"boatsafari/src/db"
	"boatsafari/src/middlewares"
	"boatsafari/src/models"
	"boatsafari/src/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func staffHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	staff := g.Group("/staff", middlewares.RequireRoles(types.StaffRoles...))
	staff.
		GET("/dashboard/stats", func(ctx *gin.Context) {
			db := db.GetDb()
			stats := gin.H{}
			counts := []struct {
				key   string
				query *gorm.DB
			}{
				{"totalTrips", db.Model(&models.Trip{})},
				{"totalBoats", db.Model(&models.Boat{})},
				{"availableBoats", db.Model(&models.Boat{}).Where("status = ?", types.BOAT_AVAILABLE)},
				{"totalBookings", db.Model(&models.Booking{})},
				{"provisionalBookings", db.Model(&models.Booking{}).Where("status = ?", types.BOOKING_PROVISIONAL)},
				{"confirmedBookings", db.Model(&models.Booking{}).Where("status = ?", types.BOOKING_CONFIRMED)},
				{"openTickets", db.Model(&models.SupportTicket{}).Where("status <> ?", types.TICKET_RESOLVED)},
			}
			for _, c := range counts {
				var n int64
				if err := c.query.Count(&n).Error; err != nil {
					log.Printf("Error counting %s: %s\n", c.key, err.Error())
					ctx.Status(http.StatusInternalServerError)
					return
				}
				stats[c.key] = n
			}
			ctx.JSON(http.StatusOK, gin.H{"data": stats})
		}).
		GET("/assignments", func(ctx *gin.Context) {
			db := db.GetDb()
			var trips []models.Trip
			if err := db.
				Model(&models.Trip{}).
				Where("boat_id IS NOT NULL OR guide_id IS NOT NULL").
				Preload("Boat").
				Preload("Guide").
				Order("date asc").
				Find(&trips).
				Error; err != nil {
				log.Printf("Error retrieving assignments: %s\n", err.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": trips, "count": len(trips)})
		})

	staff.Group("", middlewares.RequireRoles(types.ROLE_ADMIN, types.ROLE_STAFF)).
		POST("/assign-resources", func(ctx *gin.Context) {
			var body types.AssignResourcesRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				var trip models.Trip
				if err := tx.
					Where(&models.Trip{ID: body.TripID}).
					First(&trip).
					Error; err != nil {
					return types.NotFound("Trip not found")
				}
				if body.BoatID != nil {
					var boat models.Boat
					if err := tx.
						Where(&models.Boat{ID: *body.BoatID}).
						First(&boat).
						Error; err != nil {
						return types.NotFound("Boat not found")
					}
					if boat.Status != types.BOAT_AVAILABLE {
						return types.InvalidState("Boat is not available")
					}
					trip.BoatID = body.BoatID
				}
				if body.GuideID != nil {
					var guide models.User
					if err := tx.
						Where(&models.User{ID: *body.GuideID}).
						First(&guide).
						Error; err != nil {
						return types.NotFound("Guide not found")
					}
					if !guide.Role.OneOf(types.ROLE_GUIDE, types.ROLE_CAPTAIN) {
						return types.InvalidArgument("User is not a guide")
					}
					trip.GuideID = body.GuideID
				}
				return tx.Save(&trip).Error
			})
			if err != nil {
				if types.ClientError(err) {
					ctx.JSON(http.StatusBadRequest, gin.H{"message": types.ClientMessage(err)})
					return
				}
				log.Printf("Error assigning resources to trip %d: %s\n", body.TripID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to assign resources"})
				return
			}
			ctx.Status(http.StatusOK)
		}).
		DELETE("/assignments/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			res := db.
				Model(&models.Trip{}).
				Where(&models.Trip{ID: params.ID}).
				Updates(map[string]any{"boat_id": nil, "guide_id": nil})
			if res.Error != nil {
				log.Printf("Error clearing assignments on trip %d: %s\n", params.ID, res.Error.Error())
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
