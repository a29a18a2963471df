package models

// Reserved session-hash field names. Everything else a
// step_validator/post_call writes shares the same flat namespace.
const (
	FieldFormStep            = "FORM_STEP"
	FieldProcessedPath       = "PROCESSED_PATH"
	FieldLastSuccessResponse = "LAST_SUCCESS_RESPONSE"
	FieldValidLastInput      = "USSD_VALID_LAST_INPUT"
	FieldResponseMenuName    = "USSD_RESPONSE_MENU_NAME"
)

// ValueSuffix is appended to a captured field's name to hold the 0-based
// index of a ListInput selection alongside the resolved value itself.
const ValueSuffix = "_VALUE"

// RetrySuffix is appended to a form step's name to track consecutive
// invalid-input attempts for the optional per-step retry ceiling.
const RetrySuffix = "_RETRIES"
