package v1

import "errors"

var errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
