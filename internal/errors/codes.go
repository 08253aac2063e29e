package errors

// Error code constants, format: CATEGORY_SPECIFIC_DETAIL.
// The storefront maps these codes to display messages.

const (
	// Authentication (AUTH_)
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"
	AuthTokenRevoked       = "AUTH_TOKEN_REVOKED"
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"

	// Authorization (AUTHZ_)
	AuthzForbidden = "AUTHZ_FORBIDDEN"
	AuthzOwnerOnly = "AUTHZ_OWNER_ONLY"

	// Validation (VALIDATION_)
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID    = "VALIDATION_INVALID_ID"
	ValidationRequired     = "VALIDATION_REQUIRED"

	// Resources (RESOURCE_)
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT"

	// Store (STORE_)
	StoreNotFound     = "STORE_NOT_FOUND"
	StoreAccessDenied = "STORE_ACCESS_DENIED"

	// Catalog (CATALOG_)
	BillboardNotFound = "BILLBOARD_NOT_FOUND"
	BrandNotFound     = "BRAND_NOT_FOUND"
	ProductNotFound   = "PRODUCT_NOT_FOUND"
	PromocodeNotFound = "PROMOCODE_NOT_FOUND"

	// Promocode (PROMOCODE_)
	PromocodeInvalidDiscountType = "PROMOCODE_INVALID_DISCOUNT_TYPE"
	PromocodeInUse               = "PROMOCODE_IN_USE"

	// Upload (UPLOAD_)
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE"
	UploadFailed          = "UPLOAD_FAILED"

	// Internal (INTERNAL_)
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
)
