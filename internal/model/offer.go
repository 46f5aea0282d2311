package model

import "workboard/internal/apperr"

// Offer is an executor's bid on an order.
type Offer struct {
	ID         int  `json:"id"`
	OrderID    *int `json:"order_id"`
	ExecutorID *int `json:"executor_id"`
}

func (o *Offer) PrimaryKey() int { return o.ID }

func (o *Offer) Apply(fields map[string]any) error {
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
		case "order_id":
			n, err := intValue(key, raw)
			if err != nil {
				return err
			}
			o.OrderID = n
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

// Validate is a no-op, an offer has no required fields beyond the key.
func (o *Offer) Validate() error { return nil }
