package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapStorageError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"Bad connection", driver.ErrBadConn, models.CodeStorageUnavailable},
		{"Wrapped bad connection", fmt.Errorf("exec: %w", driver.ErrBadConn), models.CodeStorageUnavailable},
		{"Query deadline", context.DeadlineExceeded, models.CodeStorageUnavailable},
		{"Network error", &net.OpError{Op: "dial", Err: errors.New("timeout")}, models.CodeStorageUnavailable},
		{"Refused connection", errors.New("dial tcp 127.0.0.1:5432: connection refused"), models.CodeStorageUnavailable},
		{"Constraint violation", errors.New("null value in column \"title\""), models.CodeInternal},
		{"Syntax error", errors.New("syntax error at or near \"FORM\""), models.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := wrapStorageError(tt.err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.want, appErr.Code)
		})
	}
}
