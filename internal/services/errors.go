package services

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")

	ErrRaceNotFound    = errors.New("race not found")
	ErrAthleteNotFound = errors.New("athlete not found")
	ErrEmptyBatch      = errors.New("results batch must not be empty")
	ErrInvalidPlace    = errors.New("place must be a positive integer")
	ErrDuplicateResult = errors.New("result already recorded for this race and athlete")
)
