package controllers

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Same shape the public API has always accepted: something@something.something
// with no whitespace and a single @.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError is a 400 outcome. Reason is sent as the envelope's error and
// Fields names the offending input.
type ValidationError struct {
	Reason  string
	Fields  []string
	missing bool
}

func (e *ValidationError) Error() string {
	if e.missing {
		return "missing fields: " + strings.Join(e.Fields, ", ")
	}
	return "invalid field: " + strings.Join(e.Fields, ", ")
}

func missingFields(reason string, fields ...string) *ValidationError {
	return &ValidationError{Reason: reason, Fields: fields, missing: true}
}

func invalidField(reason, field string) *ValidationError {
	return &ValidationError{Reason: reason, Fields: []string{field}}
}

// fromBindError turns the validator errors produced by gin's binding into a
// missing-fields error named after the request's json tags. Other bind errors
// (malformed bodies, wrong types) are returned as nil.
func fromBindError(err error, req interface{}, reason string) *ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	t := reflect.TypeOf(req)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		if sf, ok := t.FieldByName(fe.StructField()); ok {
			if tag := strings.Split(sf.Tag.Get("json"), ",")[0]; tag != "" {
				name = tag
			}
		}
		fields = append(fields, name)
	}
	return missingFields(reason, fields...)
}

func validEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func nilIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
