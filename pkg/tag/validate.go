package tag

import (
	"github.com/google/uuid"

	"github.com/basictag/basictag-go/pkg/value"
)

// ValidateUUID is a write validator for UUID tags. It accepts null
// candidates (which clear the cell) and candidates whose string payload
// parses as an RFC 4122 UUID.
//
//	t, _ := reg.CreateUUIDTag("device.id", &id, 1, true, false)
//	_ = t.SetValidateWrite(tag.ValidateUUID)
func ValidateUUID(candidate *value.BasicValue) bool {
	if candidate == nil {
		return false
	}
	if candidate.IsNull {
		return true
	}
	_, err := uuid.Parse(candidate.StringValue())
	return err == nil
}
