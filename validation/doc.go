// Package validation provides input validation for minutes settings and
// request types.
//
// It supports struct tag validation (using the validator library) for
// configuration structs:
//
//	type Settings struct {
//	    APIURL string `mapstructure:"api_url" validate:"required,url"`
//	}
//	err := validation.Validate(settings)
package validation
