package constant

// Receipt print statuses.
const (
	ReceiptStatusPending = "pending"
	ReceiptStatusPrinted = "printed"
	ReceiptStatusFailed  = "failed"
)

// Event type codes published on the bus.
const (
	EventReceiptPrinted     = "RECEIPT_PRINTED"
	EventReceiptPrintFailed = "RECEIPT_PRINT_FAILED"
	EventCatalogUpdated     = "CATALOG_UPDATED"
)

// DefaultStation is used when a client does not identify itself.
const DefaultStation = "station-1"

// StationHeader carries the station id on HTTP requests.
const StationHeader = "X-Station-Id"
