package services

import (
	"errors"
	"time"

	"github.com/dig-it-all-from-digital/Plauntie/config"
	"github.com/dig-it-all-from-digital/Plauntie/models"
	"github.com/dig-it-all-from-digital/Plauntie/utils"

	"github.com/google/uuid"
)

func RegisterUser(email, password, fullName string) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  hashedPassword,
		FullName:  fullName,
		CreatedAt: time.Now().UTC(),
	}

	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func AuthenticateUser(email, password string) (string, *models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return "", nil, errors.New("user not found")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, errors.New("incorrect password")
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}

	return token, &user, nil
}
