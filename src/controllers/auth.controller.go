package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"boatsafari/src/db"
	"boatsafari/src/lib"
	"boatsafari/src/models"
	"boatsafari/src/types"
	"boatsafari/src/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthRegister creates a customer account with a bcrypt-hashed
// password. Staff accounts are created through the admin area.
func AuthRegister(ctx *gin.Context) (*models.User, int, error) {
	var body types.RegisterUserRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}

	db := db.GetDb()
	var existing int64
	if err := db.
		Model(&models.User{}).
		Where("email = ?", body.Email).
		Count(&existing).
		Error; err != nil {
		return nil, http.StatusInternalServerError, err
	}
	if existing > 0 {
		return nil, http.StatusBadRequest, errors.New("email is already registered")
	}

	hash, err := utils.HashPassword(body.Password)
	if err != nil {
		log.Printf("Error hashing password: %s\n", err.Error())
		return nil, http.StatusInternalServerError, err
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
		Role:       types.ROLE_CUSTOMER,
	}
	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&user).Error
	}); err != nil {
		log.Printf("Error creating user: %s\n", err.Error())
		return nil, http.StatusBadRequest, err
	}
	user.Password = ""
	return &user, http.StatusCreated, nil
}

// AuthLogin verifies credentials and issues a signed token carrying the
// user's role. The resolved user is cached in redis when available so
// dashboards can show it without another query.
func AuthLogin(ctx *gin.Context) (*string, int, error) {
	var body types.LoginRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}

	db := db.GetDb()
	var user models.User
	if err := db.
		Model(&models.User{}).
		Where("email = ?", body.Email).
		First(&user).
		Error; err != nil {
		log.Printf("Login failed for %s: %s\n", body.Email, err.Error())
		return nil, http.StatusUnauthorized, errors.New("invalid email or password")
	}
	if !utils.CheckPassword(user.Password, body.Password) {
		return nil, http.StatusUnauthorized, errors.New("invalid email or password")
	}

	token, err := utils.GenerateJWT(user.Email, user.ID, user.Role)
	if err != nil {
		log.Printf("Error generating JWT: %s\n", err.Error())
		return nil, http.StatusInternalServerError, err
	}
	log.Printf("%s logged in as %s\n", user.FullName(), user.Role)

	if rd := lib.GetRedisClient(); rd != nil {
		user.Password = ""
		if cached, err := json.Marshal(&user); err == nil {
			if err := rd.Set(context.Background(), fmt.Sprintf("%d:user", user.ID), cached, 24*time.Hour).Err(); err != nil {
				log.Printf("[redis] Error updating user cache: %s\n", err.Error())
			}
		}
	}

	return &token, http.StatusOK, nil
}
