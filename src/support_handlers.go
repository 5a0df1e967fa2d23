package main

import (
	"log"
	"net/http"

	"boatsafari/src/db"
	"boatsafari/src/middlewares"
	"boatsafari/src/models"
	"boatsafari/src/types"
	"boatsafari/src/utils"

	"github.com/gin-gonic/gin"
)

// supportPublicHandlers takes contact-form submissions and lists the
// public staff directory. Both are reachable without an account.
func supportPublicHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/support/contact", func(ctx *gin.Context) {
			var body types.ContactRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			ticket := models.SupportTicket{
				Name:             body.Name,
				Email:            body.Email,
				Phone:            body.Phone,
				Subject:          body.Subject,
				Message:          body.Message,
				Status:           types.TICKET_NEW,
				PreferredContact: body.PreferredContact,
			}
			db := db.GetDb()
			if err := db.Create(&ticket).Error; err != nil {
				log.Printf("Error creating support ticket: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit message"})
				return
			}
			go utils.NotifyTicketReceived(&ticket)
			ctx.JSON(http.StatusCreated, gin.H{"ticketId": ticket.ID})
		}).
		GET("/support/staff", func(ctx *gin.Context) {
			db := db.GetDb()
			var staff []models.User
			if err := db.
				Model(&models.User{}).
				Select([]string{"id", "first_name", "second_name", "role", "specialization", "department"}).
				Where("role IN ?", []types.Role{types.ROLE_STAFF, types.ROLE_GUIDE, types.ROLE_CAPTAIN}).
				Order("id asc").
				Find(&staff).
				Error; err != nil {
				log.Printf("Error retrieving staff directory: %s\n", err.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": staff, "count": len(staff)})
		})
	return g
}

// supportTicketHandlers is the ticket queue for the support team.
func supportTicketHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	support := g.Group("/support", middlewares.RequireRoles(types.SupportRoles...))
	support.
		GET("/tickets", func(ctx *gin.Context) {
			db := db.GetDb()
			q := db.Model(&models.SupportTicket{})
			if status := ctx.Query("status"); status != "" {
				q = q.Where("status = ?", status)
			}
			var tickets []models.SupportTicket
			if err := q.Order("created_at desc").Find(&tickets).Error; err != nil {
				log.Printf("Error retrieving tickets: %s\n", err.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": tickets, "count": len(tickets)})
		}).
		PUT("/tickets/:id/status", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.UpdateTicketStatusRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			db := db.GetDb()
			res := db.
				Model(&models.SupportTicket{}).
				Where(&models.SupportTicket{ID: params.ID}).
				Update("status", types.TicketStatus(body.Status))
			if res.Error != nil {
				log.Printf("Error updating ticket %d: %s\n", params.ID, res.Error.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update ticket"})
				return
			}
			if res.RowsAffected == 0 {
				ctx.JSON(http.StatusNotFound, gin.H{"message": "Ticket not found"})
				return
			}
			ctx.Status(http.StatusOK)
		})
	return g
}
