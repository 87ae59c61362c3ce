// Package dateutils provides timestamp conversion for SMS backup records.
package dateutils

import (
	"strconv"
	"time"

	"github.com/Tresor26/MOMO-Dashboard/internal/parsererror"
)

// Layout constants used when formatting and filtering stored dates.
const (
	DateLayoutFull  = "2006-01-02 15:04:05"
	DateLayoutISO   = "2006-01-02"
	DateLayoutMonth = "2006-01"
)

// ConvertTimestamp converts an epoch-milliseconds string, as found in SMS
// backup exports, into the storage date format in local time.
func ConvertTimestamp(timestamp string) (string, error) {
	millis, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return "", &parsererror.ParseError{
			Parser: "dateutils",
			Field:  "date",
			Value:  timestamp,
			Err:    err,
		}
	}
	return time.UnixMilli(millis).Format(DateLayoutFull), nil
}
