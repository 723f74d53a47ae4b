package validator

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"reflect"
	"strings"
	"sync"
	"time"

	playground "github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

var (
	once     sync.Once
	validate *playground.Validate
)

func engine() *playground.Validate {
	once.Do(func() {
		validate = playground.New(playground.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
		_ = validate.RegisterValidation("isodate", func(fl playground.FieldLevel) bool {
			_, ok := IsValidDate(fl.Field().String())
			return ok
		})
		_ = validate.RegisterValidation("yearmonth", func(fl playground.FieldLevel) bool {
			_, err := time.Parse("2006-01", fl.Field().String())
			return err == nil
		})
	})
	return validate
}

// Struct runs the `validate` struct tags on s and returns ValidationErrors keyed by json field name.
func Struct(s interface{}) error {
	err := engine().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, ValidationError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return errs
}

func message(fe playground.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "isodate":
		return field + " must be in YYYY-MM-DD format"
	case "yearmonth":
		return field + " must be in YYYY-MM format"
	default:
		return fmt.Sprintf("%s failed on %s", field, fe.Tag())
	}
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// MaxImagePixels caps the declared dimensions of an uploaded image before it is decoded.
const MaxImagePixels = 40_000_000

var (
	ErrEmptyImage       = errors.New("image is empty")
	ErrInvalidBase64    = errors.New("image is not valid base64")
	ErrUnsupportedImage = errors.New("image must be a JPEG or PNG")
	ErrCorruptImage     = errors.New("image data is corrupt")
	ErrImageTooLarge    = errors.New("image dimensions are too large")
)

// DecodeBase64Image decodes a base64 payload (optionally a data URL as produced
// by a browser canvas) and checks it is a well-formed JPEG or PNG.
// It returns the raw bytes and the image format ("jpeg" or "png").
func DecodeBase64Image(payload string) ([]byte, string, error) {
	payload = strings.TrimSpace(payload)
	if strings.HasPrefix(payload, "data:") {
		idx := strings.Index(payload, ",")
		if idx < 0 {
			return nil, "", ErrInvalidBase64
		}
		payload = payload[idx+1:]
	}
	if payload == "" {
		return nil, "", ErrEmptyImage
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		raw, err = base64.RawStdEncoding.DecodeString(payload)
		if err != nil {
			return nil, "", ErrInvalidBase64
		}
	}
	if len(raw) == 0 {
		return nil, "", ErrEmptyImage
	}

	if err := CheckImageSize(raw); err != nil {
		return nil, "", err
	}
	_, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, "", ErrCorruptImage
	}
	return raw, format, nil
}

// CheckImageSize reads only the header of raw and rejects anything that is not a
// non-empty JPEG or PNG within MaxImagePixels.
func CheckImageSize(raw []byte) error {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil || (format != "jpeg" && format != "png") {
		return ErrUnsupportedImage
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return ErrUnsupportedImage
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxImagePixels {
		return ErrImageTooLarge
	}
	return nil
}
