package validator

import (
	"ctchen222/Tic-Tac-Toe-Minimax/internal/game"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("mark", validateMark); err != nil {
		panic(err)
	}
}

// validateMark accepts "", "X" and "O".
func validateMark(fl validator.FieldLevel) bool {
	switch game.PlayerMark(fl.Field().String()) {
	case game.None, game.PlayerX, game.PlayerO:
		return true
	}
	return false
}

func GetValidator() *validator.Validate {
	return validate
}
