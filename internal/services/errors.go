package services

import (
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/shauryacodes/nas-backend/internal/platform/apierr"
)

// ErrStoreNotConfigured is returned by every persistence-backed operation
// when Postgres credentials were absent or the connection failed at boot.
// The API stays up; callers get a configuration-error object.
var ErrStoreNotConfigured = apierr.New(
	http.StatusServiceUnavailable,
	"store_not_configured",
	errors.New("persistence store is not configured; set POSTGRES_* and restart"),
)

// storeErr maps a raw store failure onto an API error. The message passes
// through verbatim; only the status and code are derived.
func storeErr(err error) *apierr.Error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierr.New(http.StatusNotFound, "not_found", err)
	}
	if strings.Contains(err.Error(), "does not exist") && strings.Contains(err.Error(), "relation") {
		// Schema was never migrated; point the operator at setup.
		return apierr.New(http.StatusInternalServerError, "schema_missing", err)
	}
	return apierr.New(http.StatusInternalServerError, "store_error", err)
}
