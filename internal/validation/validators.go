package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/openclaw/quota-tracker/internal/models"
)

var (
	// Validate is a shared validator instance
	Validate *validator.Validate
)

func init() {
	Validate = validator.New()

	// Register custom validator for the service enum
	// This should never fail in normal operation
	if err := Validate.RegisterValidation("service_id", validateServiceID); err != nil {
		panic(fmt.Sprintf("failed to register service_id validator: %v", err))
	}
}

// validateServiceID validates that a string is a known ServiceID enum value
func validateServiceID(fl validator.FieldLevel) bool {
	return IsKnownService(models.ServiceID(fl.Field().String()))
}

// IsKnownService reports whether id is one of the tracked services
func IsKnownService(id models.ServiceID) bool {
	switch id {
	case models.ServiceMiniMax, models.ServiceClaudePro, models.ServiceGeminiPro:
		return true
	default:
		return false
	}
}

// ValidateQuotaConfig checks a parsed quota document for structural validity:
// the quotas mapping must be present and every limit must be positive.
// Unknown service keys are allowed; the renderer ignores them.
func ValidateQuotaConfig(cfg *models.QuotaConfig) error {
	if cfg.Quotas == nil {
		return fmt.Errorf("missing quotas mapping")
	}
	if err := Validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid quota document: %w", err)
	}
	return nil
}
