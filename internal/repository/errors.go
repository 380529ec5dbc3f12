// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"inkwell/internal/models"
)

// wrapStorageError classifies a database error. Connection-class failures
// surface as StorageUnavailable so the transport answers 503 and clients
// know to retry; everything else is an internal error.
func wrapStorageError(err error) *models.AppError {
	if isStorageUnavailable(err) {
		return models.NewStorageUnavailableError(err)
	}
	return models.NewInternalError(err)
}

func isStorageUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "failed to connect")
}
