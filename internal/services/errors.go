package services

import "errors"

// Not-found sentinels; their text is what the API returns in the 404 body.
var (
	ErrCamperNotFound   = errors.New("Camper not found")
	ErrActivityNotFound = errors.New("Activity not found")
)
