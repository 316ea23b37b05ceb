package platform

import (
	"errors"
)

// ErrAlreadyRunning is an error returned when a run can't be started because the previous run is not finished yet.
var ErrAlreadyRunning = errors.New("sync already running")
