package forms

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance backing the presence checks.
var validate *validator.Validate

// emailPattern is the permissive RFC-5322-like grammar the builder has
// always accepted: local-part@domain, quoted local parts and bracketed
// IPv4 domains included.
var emailPattern = regexp.MustCompile(`^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("flow_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
}

// hasTag reports whether any field failed the given validation tag.
func hasTag(err error, tag string) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Tag() == tag {
			return true
		}
	}
	return false
}
