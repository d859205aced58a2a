package travelpackage

import "errors"

var (
	ErrPackageNotFound   = errors.New("travel package not found")
	ErrOwnerNotFound     = errors.New("owner not found")
	ErrNotAgency         = errors.New("only travel agencies can publish packages")
	ErrAgencyNameMissing = errors.New("agency account has no agency name")
	ErrNotOwner          = errors.New("not the package owner")
)
