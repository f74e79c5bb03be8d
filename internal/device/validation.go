package device

import (
	"fmt"
	"strings"
)

// maxNameLength matches the limit used for room names.
const maxNameLength = 100

// ValidateName checks if a device name is valid.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrCantAddDevice)
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrCantAddDevice, maxNameLength)
	}
	return nil
}
