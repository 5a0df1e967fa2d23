package main

import (
	"net/http"

	"boatsafari/src/controllers"
	"boatsafari/src/db"
	"boatsafari/src/models"

	"github.com/gin-gonic/gin"
)

func authHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/register", func(ctx *gin.Context) {
			user, code, err := controllers.AuthRegister(ctx)
			if err != nil {
				ctx.JSON(code, gin.H{"message": err.Error()})
				return
			}
			ctx.JSON(code, user)
		}).
		POST("/login", func(ctx *gin.Context) {
			token, code, err := controllers.AuthLogin(ctx)
			if err != nil {
				ctx.JSON(code, gin.H{"message": err.Error()})
				return
			}
			ctx.JSON(code, gin.H{"token": *token})
		})
	return g
}

func profileHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/me", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			db := db.GetDb()
			var user models.User
			if err := db.
				Omit("password").
				Where(&models.User{ID: userId}).
				First(&user).
				Error; err != nil {
				ctx.Status(http.StatusUnauthorized)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": user})
		})
	return g
}
