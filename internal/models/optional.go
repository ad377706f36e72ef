package models

import "encoding/json"

// OptionalString distinguishes an absent JSON key from an explicit null. Set is true
// whenever the key was present in the payload.
type OptionalString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// Apply overwrites *dst when the key was present.
func (o OptionalString) Apply(dst **string) {
	if o.Set {
		*dst = o.Value
	}
}

// Present builds a set OptionalString.
func Present(v *string) OptionalString {
	return OptionalString{Set: true, Value: v}
}
