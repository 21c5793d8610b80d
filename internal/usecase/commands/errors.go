package commands

import (
	"marketplace-core/internal/pkg/errs"
)

// notFoundAs marks a store miss with the aggregate's own not-found sentinel.
func notFoundAs(err error, sentinel error) error {
	if errs.Is(err, errs.ErrNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
