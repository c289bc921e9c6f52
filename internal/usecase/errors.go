package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrPartNotFound          = errors.New("part not found")
	ErrInvalidPartNumber     = errors.New("invalid part_number")
	ErrOrderNotFound         = errors.New("repair order not found")
	ErrOrderAlreadyExists    = errors.New("repair order already exists")
	ErrInvalidOrderID        = errors.New("invalid repair order id")
	ErrTechnicianBusy        = errors.New("technician already has an active repair order")
	ErrNotAssignedTechnician = errors.New("repair order is not assigned to this technician")
	ErrEngineClosed          = errors.New("sync engine closed")
	ErrOrderNotInvoiceable   = errors.New("repair order is not pending invoice")
	ErrSettlementInProgress  = errors.New("repair order settlement already in progress")

	ErrRemoteReadFailed  = errors.New("remote store read failed")
	ErrRemoteWriteFailed = errors.New("remote store write failed")

	ErrSessionNotStarted     = errors.New("session not started")
	ErrSessionAlreadyStarted = errors.New("session already started in connected mode")
)

// RemoteWriteError describes an asynchronous persistence failure. The local
// mutation it belongs to has already been applied and is not rolled back.
type RemoteWriteError struct {
	Resource  string
	Operation string
	Key       string
	Err       error
}

func (e *RemoteWriteError) Error() string {
	return fmt.Sprintf("%s: %s %s key=%s: %v", ErrRemoteWriteFailed, e.Operation, e.Resource, e.Key, e.Err)
}

func (e *RemoteWriteError) Unwrap() []error {
	return []error{ErrRemoteWriteFailed, e.Err}
}
