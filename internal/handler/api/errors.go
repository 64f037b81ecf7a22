package api

import "car-rental-api/internal/pkg/errs"

var (
	errMissingIdentity  = errs.New("identity missing from context")
	errInvalidPathParam = errs.New("invalid path parameter")
)
