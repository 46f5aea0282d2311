package model

import "workboard/internal/apperr"

// Order is a piece of work placed by a customer and optionally taken by an
// executor. Dates are kept as plain text, the storage layer does not
// interpret them as calendar dates.
type Order struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
	Price       *int    `json:"price"`
	CustomerID  *int    `json:"customer_id"`
	ExecutorID  *int    `json:"executor_id"`
}

func (o *Order) PrimaryKey() int { return o.ID }

func (o *Order) Apply(fields map[string]any) error {
	for key, raw := range fields {
		switch key {
		case "id":
			id, err := intValue(key, raw)
			if err != nil {
				return err
			}
			if id == nil {
				return apperr.Validationf("field %q cannot be null", key)
			}
			o.ID = *id
		case "name":
			s, err := stringValue(key, raw)
			if err != nil {
				return err
			}
			if s == nil {
				return apperr.Validationf("field %q cannot be null", key)
			}
			o.Name = *s
		case "description":
			s, err := stringValue(key, raw)
			if err != nil {
				return err
			}
			o.Description = s
		case "start_date":
			s, err := stringValue(key, raw)
			if err != nil {
				return err
			}
			if s == nil {
				return apperr.Validationf("field %q cannot be null", key)
			}
			o.StartDate = *s
		case "end_date":
			s, err := stringValue(key, raw)
			if err != nil {
				return err
			}
			if s == nil {
				return apperr.Validationf("field %q cannot be null", key)
			}
			o.EndDate = *s
		case "email":
			s, err := stringValue(key, raw)
			if err != nil {
				return err
			}
			o.Email = s
		case "address":
			s, err := stringValue(key, raw)
			if err != nil {
				return err
			}
			o.Address = s
		case "price":
			n, err := intValue(key, raw)
			if err != nil {
				return err
			}
			o.Price = n
		case "customer_id":
			n, err := intValue(key, raw)
			if err != nil {
				return err
			}
			o.CustomerID = n
		case "executor_id":
			n, err := intValue(key, raw)
			if err != nil {
				return err
			}
			o.ExecutorID = n
		default:
			return apperr.Validationf("unknown field %q", key)
		}
	}
	return nil
}

func (o *Order) Validate() error {
	if o.Name == "" {
		return apperr.Validationf("name is required")
	}
	if o.StartDate == "" {
		return apperr.Validationf("start_date is required")
	}
	if o.EndDate == "" {
		return apperr.Validationf("end_date is required")
	}
	return nil
}
