package logging

import (
	"fmt"

	"ptladmin/cli/internal/apierrors"
)

// PresentError formats an error for user display with masking. Typed API
// errors contribute their display message instead of the raw error chain.
func PresentError(context string, err error) string {
	if err == nil {
		return ""
	}
	msg := Mask(apierrors.MessageOf(err))
	if context == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", context, msg)
}
