package handler

import (
	"errors"
	"net/http"

	"wpcopyright/internal/app/copyright"
)

// statusFor переводит ошибки лицензий в HTTP статус
func statusFor(err error) int {
	switch {
	case copyright.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, copyright.ErrNoMatch):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// adminMessage: текст сообщения на странице настроек
func adminMessage(err error) string {
	var ve *copyright.ValidationError
	switch {
	case errors.Is(err, copyright.ErrNoMatch):
		return "Error: There are no posts to change."
	case errors.As(err, &ve):
		switch ve.Field {
		case "default choice":
			return `Error: You can't apply "none" as a choice.`
		case "license":
			if ve.Value != "" && copyright.SanitizeKey(ve.Value) == copyright.None {
				return `Error: You can't apply "none" as a choice.`
			}
			return "Error: The form inputs failed to validate (validateChoice)."
		case "author", "type":
			return "Error: The form inputs failed to validate (validateArg)."
		}
		return "Error: The value from this input was found to be incorrect."
	}
	return "Error: " + err.Error()
}
