package types

import "fmt"

// ValidateIDPresent rejects empty resource identifiers before a request is
// built, so path construction never produces a malformed URL.
func ValidateIDPresent(id, field string) error {
	if id == "" {
		return fmt.Errorf("%s must not be empty", field)
	}
	return nil
}

// ValidateRef rejects a missing or empty foreign-key reference.
func ValidateRef(r *Ref, field string) error {
	if r == nil || r.ID == "" {
		return fmt.Errorf("%s reference must carry an id", field)
	}
	return nil
}
