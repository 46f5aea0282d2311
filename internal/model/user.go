package model

import "workboard/internal/apperr"

// User is a marketplace participant. A user can place orders as a customer
// and take orders or leave offers as an executor.
type User struct {
	ID        int     `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name"`
	Age       *int    `json:"age"`
	Email     *string `json:"email"`
	Role      *string `json:"role"`
	Phone     *string `json:"phone"`
}

func (u *User) PrimaryKey() int { return u.ID }

// Apply sets the fields present in the request body. Unknown keys are
// rejected so a typo can never silently drop an update.
func (u *User) Apply(fields map[string]any) error {
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
			u.ID = *id
		case "first_name":
			s, err := stringValue(key, raw)
			if err != nil {
				return err
			}
			if s == nil {
				return apperr.Validationf("field %q cannot be null", key)
			}
			u.FirstName = *s
		case "last_name":
			s, err := stringValue(key, raw)
			if err != nil {
				return err
			}
			u.LastName = s
		case "age":
			n, err := intValue(key, raw)
			if err != nil {
				return err
			}
			u.Age = n
		case "email":
			s, err := stringValue(key, raw)
			if err != nil {
				return err
			}
			u.Email = s
		case "role":
			s, err := stringValue(key, raw)
			if err != nil {
				return err
			}
			u.Role = s
		case "phone":
			s, err := stringValue(key, raw)
			if err != nil {
				return err
			}
			u.Phone = s
		default:
			return apperr.Validationf("unknown field %q", key)
		}
	}
	return nil
}

func (u *User) Validate() error {
	if u.FirstName == "" {
		return apperr.Validationf("first_name is required")
	}
	return nil
}
