package customvalidator

import (
	"github.com/go-playground/validator/v10"

	"gearguard/internal/entities"
)

// RegisterCustomValidations registers the domain enum rules on the given
// validator instance.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("request_status", isRequestStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("request_type", isRequestType); err != nil {
		return err
	}
	if err := v.RegisterValidation("priority", isPriority); err != nil {
		return err
	}
	if err := v.RegisterValidation("user_role", isUserRole); err != nil {
		return err
	}
	if err := v.RegisterValidation("equipment_status", isEquipmentStatus); err != nil {
		return err
	}
	return nil
}

func isRequestStatus(fl validator.FieldLevel) bool {
	return entities.RequestStatus(fl.Field().String()).Valid()
}

func isRequestType(fl validator.FieldLevel) bool {
	switch entities.RequestType(fl.Field().String()) {
	case entities.TypeCorrective, entities.TypePreventive:
		return true
	}
	return false
}

func isPriority(fl validator.FieldLevel) bool {
	switch entities.Priority(fl.Field().String()) {
	case entities.PriorityHigh, entities.PriorityMedium, entities.PriorityLow:
		return true
	}
	return false
}

func isUserRole(fl validator.FieldLevel) bool {
	return entities.UserRole(fl.Field().String()).Valid()
}

func isEquipmentStatus(fl validator.FieldLevel) bool {
	switch entities.EquipmentStatus(fl.Field().String()) {
	case entities.EquipmentOperational, entities.EquipmentUnderMaintenance, entities.EquipmentScrapped:
		return true
	}
	return false
}
