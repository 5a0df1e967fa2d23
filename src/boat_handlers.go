package main

import (
	"log"
	"net/http"

	"boatsafari/src/db"
	"boatsafari/src/middlewares"
	"boatsafari/src/models"
	"boatsafari/src/types"

	"github.com/gin-gonic/gin"
)

func boatHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/boats", func(ctx *gin.Context) {
			db := db.GetDb()
			var boats []models.Boat
			if err := db.Model(&models.Boat{}).Find(&boats).Error; err != nil {
				log.Printf("Error retrieving boats: %s\n", err.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": boats, "count": len(boats)})
		}).
		GET("/boats/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var boat models.Boat
			if err := db.
				Where(&models.Boat{ID: params.ID}).
				First(&boat).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"message": "Boat not found"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": boat})
		})

	g.Group("", middlewares.RequireRoles(types.ROLE_ADMIN, types.ROLE_STAFF)).
		POST("/boats", func(ctx *gin.Context) {
			var body types.CreateBoatRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			boat := models.Boat{
				BoatName:           body.BoatName,
				Model:              body.Model,
				Features:           body.Features,
				RegistrationNumber: body.RegistrationNumber,
				Capacity:           body.Capacity,
				Description:        body.Description,
				Type:               body.Type,
			}
			if body.Status != "" {
				boat.Status = types.BoatStatus(body.Status)
			}
			db := db.GetDb()
			if err := db.Create(&boat).Error; err != nil {
				log.Printf("Error creating boat: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create boat"})
				return
			}
			ctx.JSON(http.StatusCreated, boat)
		}).
		PUT("/boats/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.CreateBoatRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			db := db.GetDb()
			var boat models.Boat
			if err := db.
				Where(&models.Boat{ID: params.ID}).
				First(&boat).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"message": "Boat not found"})
				return
			}
			boat.BoatName = body.BoatName
			boat.Model = body.Model
			boat.Features = body.Features
			boat.RegistrationNumber = body.RegistrationNumber
			boat.Capacity = body.Capacity
			boat.Description = body.Description
			boat.Type = body.Type
			if body.Status != "" {
				boat.Status = types.BoatStatus(body.Status)
			}
			if err := db.Save(&boat).Error; err != nil {
				log.Printf("Error updating boat %d: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update boat"})
				return
			}
			ctx.JSON(http.StatusOK, boat)
		}).
		DELETE("/boats/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			res := db.Delete(&models.Boat{}, params.ID)
			if res.Error != nil {
				log.Printf("Error deleting boat %d: %s\n", params.ID, res.Error.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			if res.RowsAffected == 0 {
				ctx.JSON(http.StatusNotFound, gin.H{"message": "Boat not found"})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
