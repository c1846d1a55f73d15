package helpers

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := strings.ToLower(err.Field())
		switch err.Tag() {
		case "required":
			errorMessages[field] = fmt.Sprintf("%s wajib diisi.", err.Field())
		case "email":
			errorMessages[field] = fmt.Sprintf("%s harus berupa alamat email yang valid.", err.Field())
		case "numeric":
			errorMessages[field] = fmt.Sprintf("%s harus berupa angka.", err.Field())
		case "min":
			errorMessages[field] = fmt.Sprintf("%s minimal %s karakter/nilai.", err.Field(), err.Param())
		case "max":
			errorMessages[field] = fmt.Sprintf("%s maksimal %s karakter/nilai.", err.Field(), err.Param())
		case "oneof":
			errorMessages[field] = fmt.Sprintf("%s harus salah satu dari: %s.", err.Field(), err.Param())
		case "datetime":
			errorMessages[field] = fmt.Sprintf("%s harus berupa tanggal yang valid.", err.Field())
		case "hexcolor":
			errorMessages[field] = fmt.Sprintf("%s harus berupa kode warna hex.", err.Field())
		case "url":
			errorMessages[field] = fmt.Sprintf("%s harus berupa URL yang valid.", err.Field())
		default:
			errorMessages[field] = fmt.Sprintf("Validasi %s gagal pada field %s.", err.Tag(), err.Field())
		}
	}
	return errorMessages
}

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return ""
	}
	return string(bytes)
}

func PasswordCompare(hashPass string, password []byte) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashPass), password)
	if err != nil {
		return false
	}
	return true
}
