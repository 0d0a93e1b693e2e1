package menus

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/agentstation/menumap/pkg/errors"
)

// Decode records mirror the document schema. Pointers mark the fields whose
// absence must be told apart from a zero value.
type (
	itemRecord struct {
		MenuName string   `json:"menu_name" validate:"required"`
		Price    *float64 `json:"price" validate:"required"`
		Image    string   `json:"image"`
		Rating   *float64 `json:"rating"`
	}

	flatRecord struct {
		RestaurantName string   `json:"restaurant_name" validate:"required"`
		MenuName       string   `json:"menu_name" validate:"required"`
		Price          *float64 `json:"price" validate:"required"`
		Image          string   `json:"image"`
		Rating         *float64 `json:"rating"`
	}

	restaurantRecord struct {
		ID    int          `json:"id" validate:"gt=0"`
		Name  string       `json:"name" validate:"required"`
		Menus []itemRecord `json:"menus" validate:"dive"`
	}
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkRecord validates one top-level record and reports the first violation
// with a path such as "[2].menus[0].price".
func checkRecord(index int, record any) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.WrapValidation(fmt.Sprintf("[%d]", index), err)
	}

	fe := fieldErrs[0]
	path := fe.Namespace()
	if dot := strings.IndexByte(path, '.'); dot >= 0 {
		path = path[dot+1:]
	}

	return errors.NewValidationError(fmt.Sprintf("[%d].%s", index, path), fe.Value(), describe(fe))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

func (r itemRecord) item() MenuItem {
	return MenuItem{
		MenuName: r.MenuName,
		Price:    *r.Price,
		Image:    r.Image,
		Rating:   r.Rating,
	}
}

func (r flatRecord) item() MenuItem {
	return MenuItem{
		RestaurantName: r.RestaurantName,
		MenuName:       r.MenuName,
		Price:          *r.Price,
		Image:          r.Image,
		Rating:         r.Rating,
	}
}

func (r restaurantRecord) restaurant() Restaurant {
	out := Restaurant{ID: r.ID, Name: r.Name, Menus: make([]MenuItem, len(r.Menus))}
	for i, item := range r.Menus {
		out.Menus[i] = item.item()
	}
	return out
}
