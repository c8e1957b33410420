package service

import (
	"errors"

	errorvalues "github.com/limbo/discipline/internal/error_values"
	"golang.org/x/crypto/bcrypt"
)

// LockService guards the app behind a PIN stored as a bcrypt hash.
type LockService struct {
	pinHash []byte
}

// NewLockService with an empty hash disables the lock.
func NewLockService(pinHash string) *LockService {
	return &LockService{pinHash: []byte(pinHash)}
}

func (ls *LockService) Enabled() bool {
	return len(ls.pinHash) > 0
}

func (ls *LockService) Unlock(pin string) error {
	if !ls.Enabled() {
		return errorvalues.ErrLockDisabled
	}
	err := bcrypt.CompareHashAndPassword(ls.pinHash, []byte(pin))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return errorvalues.ErrWrongPin
		}
		return errors.New("comparing pin error: " + err.Error())
	}
	return nil
}

func HashPin(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
