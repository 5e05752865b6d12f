package register

import "errors"

var (
	// ErrProductNotFound is returned when a typed product name has no exact
	// catalog match. A partial match against a suggestion is not enough.
	ErrProductNotFound = errors.New("product not found")

	// ErrDuplicateName is returned by the catalog store when an insert or
	// update would collide with an existing product name.
	ErrDuplicateName = errors.New("product must be unique")

	// ErrLineNotFound is returned when an edit targets a product that has
	// no line in the ledger.
	ErrLineNotFound = errors.New("order line not found")

	// ErrNoEditSession is returned when a commit arrives with no session open.
	ErrNoEditSession = errors.New("no edit session open")
)
