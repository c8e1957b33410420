package repository

import (
	"errors"

	errorvalues "github.com/limbo/discipline/internal/error_values"
)

// storageErr marks a driver failure as ErrStorageUnavailable, keeping the
// cause in the message.
func storageErr(op string, err error) error {
	return errors.Join(errorvalues.ErrStorageUnavailable, errors.New(op+": "+err.Error()))
}
