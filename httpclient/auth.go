package httpclient

import (
	"encoding/base64"

	"github.com/go-playground/validator/v10"
)

// authorizationHeader derives the Authorization header value from the
// configured credentials. Returns the empty string when no credentials
// are set. The config must already be validated.
func (c *Config) authorizationHeader() string {
	switch {
	case c.Password != "":
		return basicAuth(c.Username, c.Password)
	case c.Token != "":
		return c.TokenType + " " + c.Token
	default:
		return ""
	}
}

// basicAuth builds a Basic authorization header value from
// base64("username:password").
func basicAuth(username, password string) string {
	credentials := username + ":" + password
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(credentials))
}

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// validateStruct runs tag-based validation and converts failures into
// ConfigError values.
func validateStruct(c *Config) error {
	err := structValidator.Struct(c)
	if err == nil {
		return nil
	}
	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ConfigError{
			Field:   fe.Field(),
			Message: "failed validation on '" + fe.Tag() + "'",
		}
	}
	return &ConfigError{Message: err.Error()}
}
