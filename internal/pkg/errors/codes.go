package errors

import "net/http"

var (
	ErrStationNotFound = New(
		"STATION_NOT_FOUND",
		"Station not found",
		http.StatusNotFound,
	)

	ErrParkingNotFound = New(
		"PARKING_NOT_FOUND",
		"Parking not found",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"Invalid radius value",
		http.StatusBadRequest,
	)

	ErrInvalidSort = New(
		"INVALID_SORT",
		"Invalid sort type",
		http.StatusBadRequest,
	)

	ErrInvalidFuelType = New(
		"INVALID_FUEL_TYPE",
		"Invalid fuel type",
		http.StatusBadRequest,
	)

	ErrUserAlreadyExists = New(
		"USER_ALREADY_EXISTS",
		"Username is already taken",
		http.StatusConflict,
	)

	ErrUserNotFound = New(
		"USER_NOT_FOUND",
		"User is not registered",
		http.StatusNotFound,
	)

	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		"Invalid username or password",
		http.StatusUnauthorized,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrStreamError = New(
		"STREAM_ERROR",
		"Event publishing failed",
		http.StatusServiceUnavailable,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
