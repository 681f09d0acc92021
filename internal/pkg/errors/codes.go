package errors

import "net/http"

var (
	ErrSpotNotFound = New(
		"SPOT_NOT_FOUND",
		"Spot not found",
		http.StatusNotFound,
	)

	ErrSpotTooClose = New(
		"SPOT_TOO_CLOSE",
		"Another spot already exists within the minimum separation distance",
		http.StatusConflict,
	)

	ErrSpotNotApproved = New(
		"SPOT_NOT_APPROVED",
		"Spot is awaiting moderation",
		http.StatusForbidden,
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

	ErrInvalidCategory = New(
		"INVALID_CATEGORY",
		"Unknown spot category",
		http.StatusBadRequest,
	)

	ErrAttendanceNotFound = New(
		"ATTENDANCE_NOT_FOUND",
		"Attendance record not found",
		http.StatusNotFound,
	)

	ErrAlreadyAttending = New(
		"ALREADY_ATTENDING",
		"User already has an attendance record for this spot",
		http.StatusConflict,
	)

	ErrItemNotFound = New(
		"ITEM_NOT_FOUND",
		"Item not found",
		http.StatusNotFound,
	)

	ErrItemSold = New(
		"ITEM_SOLD",
		"Item has already been sold",
		http.StatusConflict,
	)

	ErrOwnPurchase = New(
		"OWN_PURCHASE",
		"Cannot buy your own item",
		http.StatusBadRequest,
	)

	ErrInsufficientFunds = New(
		"INSUFFICIENT_FUNDS",
		"Not enough funds for this purchase",
		http.StatusPaymentRequired,
	)

	ErrProfileNotFound = New(
		"PROFILE_NOT_FOUND",
		"Profile not found",
		http.StatusNotFound,
	)

	ErrTournamentNotFound = New(
		"TOURNAMENT_NOT_FOUND",
		"Tournament not found",
		http.StatusNotFound,
	)

	ErrTournamentClosed = New(
		"TOURNAMENT_CLOSED",
		"Tournament is not accepting submissions",
		http.StatusConflict,
	)

	ErrSubmissionNotFound = New(
		"SUBMISSION_NOT_FOUND",
		"Trick submission not found",
		http.StatusNotFound,
	)

	ErrCommentNotFound = New(
		"COMMENT_NOT_FOUND",
		"Comment not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		"FORBIDDEN",
		"Operation requires owner or admin rights",
		http.StatusForbidden,
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

	ErrStorageError = New(
		"STORAGE_ERROR",
		"Object storage operation failed",
		http.StatusInternalServerError,
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
