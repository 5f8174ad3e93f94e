package social

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// Tagged error kinds surfaced to the handler layer. All are expected,
// recoverable-by-caller conditions; anything else coming out of the store
// is an opaque infrastructure failure.
var (
	ErrNotFound      = errors.New("not found")
	ErrSelfReference = errors.New("action targets yourself")
	ErrDuplicate     = errors.New("already exists")
	ErrPrivate       = errors.New("profile is private")
	ErrInvalidState  = errors.New("invalid state")
	ErrValidation    = errors.New("invalid input")
)

const mysqlDuplicateEntry = 1062

// isDuplicateKey reports whether err is a unique-constraint violation.
// Concurrent identical inserts race past the existence pre-checks; the
// unique key is the real guard and its violation must stay
// distinguishable from generic failures.
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}
	return false
}
