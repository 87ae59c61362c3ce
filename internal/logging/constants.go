package logging

// Standardized field names for structured logging. Using these constants
// keeps log output consistent across the ingestion pipeline and the query
// API, so logs stay easy to filter and aggregate.
const (
	FieldFile     = "file_path"
	FieldCategory = "category"
	FieldAmount   = "amount"
	FieldBody     = "body"
	FieldCount    = "count"
	FieldDate     = "date"
	FieldReason   = "reason"
	FieldAddr     = "addr"
	FieldPath     = "path"
	FieldError    = "error"
)
