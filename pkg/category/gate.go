package category

import (
	"errors"
	"strings"
)

// requiredFields lists fields which must be filled before a record can be formatted
var requiredFields = map[ID][]string{
	PayPal:   {"username", "amount", "currency"},
	Event:    {"title", "start", "end"},
	WiFi:     {"ssid"},
	Geo:      {"lat", "lon"},
	LinkedIn: {"username", "type"},
}

// MissingFieldsError lists required fields left blank
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "Missing required fields: " + strings.Join(e.Fields, ", ")
}

// Missing returns names of required fields with blank values, in declaration order
func Missing(id ID, in Input) []string {
	req, ok := requiredFields[id]
	if !ok || in == nil {
		return nil
	}
	values := map[string]string{}
	for _, f := range in.fields() {
		values[f.name] = f.value
	}

	var res []string
	for _, name := range req {
		if strings.TrimSpace(values[name]) == "" {
			res = append(res, name)
		}
	}
	return res
}

// CheckRequired returns *MissingFieldsError if any required field of the record is blank.
// This is coarser than validation and runs even when validation is off.
func CheckRequired(id ID, in Input) error {
	if missing := Missing(id, in); len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	return nil
}

// IsMissingFields reports whether err is caused by blank required fields
func IsMissingFields(err error) bool {
	var mfe *MissingFieldsError
	return errors.As(err, &mfe)
}
