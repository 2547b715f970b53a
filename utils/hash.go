package utils

import (
	"OnShift/config"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt 自带盐，cost 走配置，生产可以调高

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), config.Cfg.BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
