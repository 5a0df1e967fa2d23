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

func adminHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	admin := g.Group("/admin", middlewares.RequireRoles(types.ROLE_ADMIN))
	admin.
		GET("/users", func(ctx *gin.Context) {
			db := db.GetDb()
			var users []models.User
			q := db.Model(&models.User{}).Omit("password")
			if role := ctx.Query("role"); role != "" {
				q = q.Where("role = ?", role)
			}
			if err := q.Order("id asc").Find(&users).Error; err != nil {
				log.Printf("Error retrieving users: %s\n", err.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": users, "count": len(users)})
		}).
		GET("/users/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var user models.User
			if err := db.
				Omit("password").
				Where(&models.User{ID: params.ID}).
				First(&user).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": user})
		}).
		POST("/users", func(ctx *gin.Context) {
			var body types.RegisterUserRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			role := types.ROLE_CUSTOMER
			if value := ctx.Query("role"); value != "" {
				parsed, ok := types.ParseRole(value)
				if !ok {
					ctx.JSON(http.StatusBadRequest, gin.H{"message": types.ClientMessage(types.UnsupportedRole(value))})
					return
				}
				role = parsed
			}
			hash, err := utils.HashPassword(body.Password)
			if err != nil {
				log.Printf("Error hashing password: %s\n", err.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			user := models.User{
				FirstName:  body.FirstName,
				SecondName: body.SecondName,
				Password:   hash,
				Email:      body.Email,
				ContactNo:  body.ContactNo,
				Address:    body.Address,
				City:       body.City,
				Street:     body.Street,
				PostalCode: body.PostalCode,
				Role:       role,
			}
			db := db.GetDb()
			if err := db.Create(&user).Error; err != nil {
				log.Printf("Error creating user: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create user"})
				return
			}
			user.Password = ""
			ctx.JSON(http.StatusCreated, user)
		}).
		PUT("/users/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.UpdateUserRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			db := db.GetDb()
			var user models.User
			if err := db.
				Where(&models.User{ID: params.ID}).
				First(&user).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
				return
			}
			user.FirstName = body.FirstName
			user.SecondName = body.SecondName
			user.ContactNo = body.ContactNo
			user.Address = body.Address
			user.City = body.City
			user.Street = body.Street
			user.PostalCode = body.PostalCode
			user.HireDate = body.HireDate
			user.Certification = body.Certification
			user.Department = body.Department
			user.Specialization = body.Specialization
			if err := db.Save(&user).Error; err != nil {
				log.Printf("Error updating user %d: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update user"})
				return
			}
			user.Password = ""
			ctx.JSON(http.StatusOK, user)
		}).
		PUT("/users/:id/role", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.AssignRoleRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			user, err := utils.AssignRole(params.ID, body.Role)
			if err != nil {
				if errors.Is(err, types.ErrNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"message": types.ClientMessage(err)})
					return
				}
				if types.ClientError(err) {
					ctx.JSON(http.StatusBadRequest, gin.H{"message": types.ClientMessage(err)})
					return
				}
				log.Printf("Error assigning role to user %d: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to assign role"})
				return
			}
			user.Password = ""
			ctx.JSON(http.StatusOK, gin.H{"data": user})
		}).
		DELETE("/users/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			if params.ID == ctx.GetUint("id") {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": "Cannot delete your own account"})
				return
			}
			db := db.GetDb()
			res := db.Delete(&models.User{}, params.ID)
			if res.Error != nil {
				log.Printf("Error deleting user %d: %s\n", params.ID, res.Error.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			if res.RowsAffected == 0 {
				ctx.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		GET("/payments", func(ctx *gin.Context) {
			db := db.GetDb()
			var payments []models.Payment
			if err := db.
				Model(&models.Payment{}).
				Order("created_at desc").
				Find(&payments).
				Error; err != nil {
				log.Printf("Error retrieving payments: %s\n", err.Error())
				ctx.Status(http.StatusInternalServerError)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": payments, "count": len(payments)})
		})
	return g
}
