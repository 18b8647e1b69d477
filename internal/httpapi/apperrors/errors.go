// Package apperrors defines the error taxonomy shared by services and
// handlers. Services wrap failures in one of the typed errors below; handlers
// map them to HTTP statuses with errors.Is against the sentinel values.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrDuplicate    = errors.New("duplicate resource")
	ErrBusinessRule = errors.New("business rule violation")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
)

// NotFoundError names the resource and id that failed to resolve.
type NotFoundError struct {
	Resource string
	ID       any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func NewNotFound(resource string, id any) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// DuplicateError names the conflicting resource and natural key.
type DuplicateError struct {
	Resource string
	Field    string
	Value    any
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s with %s %v already exists", e.Resource, e.Field, e.Value)
}

func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicate
}

func NewDuplicate(resource, field string, value any) error {
	return &DuplicateError{Resource: resource, Field: field, Value: value}
}

// BusinessRuleError carries a caller-facing description of the violated rule.
type BusinessRuleError struct {
	Reason string
}

func (e *BusinessRuleError) Error() string {
	return e.Reason
}

func (e *BusinessRuleError) Is(target error) bool {
	return target == ErrBusinessRule
}

func NewBusinessRule(reason string) error {
	return &BusinessRuleError{Reason: reason}
}

// ForbiddenError is returned when an ownership or role check fails.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string {
	return e.Reason
}

func (e *ForbiddenError) Is(target error) bool {
	return target == ErrForbidden
}

func NewForbidden(reason string) error {
	return &ForbiddenError{Reason: reason}
}
