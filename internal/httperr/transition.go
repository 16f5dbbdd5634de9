package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// TransitionError is returned when a lifecycle event is not permitted from
// the record's current status. It always names the allowed source set so the
// caller can see why the request was rejected.
type TransitionError struct {
	Current string
	Allowed []string
}

func (e TransitionError) Error() string {
	return fmt.Sprintf(
		"transition not allowed from status %q (allowed: %s)",
		e.Current,
		strings.Join(e.Allowed, ", "),
	)
}

func ErrTransition(current string, allowed []string) error {
	return TransitionError{Current: current, Allowed: allowed}
}

func AsTransition(err error) (TransitionError, bool) {
	var te TransitionError
	ok := errors.As(err, &te)
	return te, ok
}

func InvalidTransition(c *gin.Context, te TransitionError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error_code":       "invalid_transition",
		"message":          te.Error(),
		"current_status":   te.Current,
		"allowed_statuses": te.Allowed,
	})
}
