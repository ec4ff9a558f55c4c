package validation

import (
	"errors"
	"reflect"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/LavaJover/shvark-order-intake/internal/domain"
)

var validate = New()

// New returns a validator that reports fields by their json names.
func New() *validatorv10.Validate {
	v := validatorv10.New(validatorv10.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateCreate normalizes the raw input (trims strings, lowercases the email)
// and checks it. On failure every violated field is reported.
func ValidateCreate(input domain.CreateOrderInput) (domain.CreateOrderRequest, error) {
	schema := createOrderSchema{
		TelegramChatID:     input.TelegramChatID,
		TelegramUserID:     input.TelegramUserID,
		TelegramUsername:   strings.TrimSpace(input.TelegramUsername),
		FirstName:          strings.TrimSpace(input.FirstName),
		LastName:           strings.TrimSpace(input.LastName),
		Device:             strings.TrimSpace(input.Device),
		Country:            strings.TrimSpace(input.Country),
		Email:              strings.ToLower(strings.TrimSpace(input.Email)),
		FullName:           strings.TrimSpace(input.FullName),
		ConsentGroupInvite: input.ConsentGroupInvite,
		Meta:               input.Meta,
	}

	if err := validate.Struct(schema); err != nil {
		return domain.CreateOrderRequest{}, toError(err)
	}

	return domain.CreateOrderRequest{
		TelegramChatID:     schema.TelegramChatID,
		TelegramUserID:     schema.TelegramUserID,
		TelegramUsername:   optional(schema.TelegramUsername),
		FirstName:          optional(schema.FirstName),
		LastName:           optional(schema.LastName),
		Device:             domain.DeviceType(schema.Device),
		Country:            schema.Country,
		Email:              schema.Email,
		FullName:           schema.FullName,
		ConsentGroupInvite: schema.ConsentGroupInvite,
		Meta:               schema.Meta,
	}, nil
}

// ValidateUpdate checks a partial patch; all fields are optional.
func ValidateUpdate(input domain.UpdateOrderInput) (domain.UpdateOrderRequest, error) {
	schema := updateOrderSchema{
		Status: input.Status,
		Meta:   input.Meta,
	}
	if schema.Status != nil {
		trimmed := strings.TrimSpace(*schema.Status)
		schema.Status = &trimmed
	}

	if err := validate.Struct(schema); err != nil {
		return domain.UpdateOrderRequest{}, toError(err)
	}

	var req domain.UpdateOrderRequest
	if schema.Status != nil {
		status := domain.OrderStatus(*schema.Status)
		req.Status = &status
	}
	req.Meta = schema.Meta
	return req, nil
}

func ValidateOrderID(id string) error {
	if _, err := domain.ParseID(domain.PrefixOrder, id); err != nil {
		return &Error{Fields: []FieldError{{
			Field:   "id",
			Rule:    "order_id",
			Message: "must be an order id",
		}}}
	}
	return nil
}

func toError(err error) error {
	var ve validatorv10.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	out := &Error{Fields: make([]FieldError, 0, len(ve))}
	for _, fe := range ve {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validatorv10.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "failed on " + fe.Tag()
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
