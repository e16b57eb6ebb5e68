package model

import (
	"fmt"
	"time"
)

// EmergencyType identifies the kind of emergency an instruction or help
// request is about. The set is closed; anything else is rejected at the
// boundary before it reaches the store.
type EmergencyType string

const (
	EmergencyChoking          EmergencyType = "choking"
	EmergencyBleeding         EmergencyType = "bleeding"
	EmergencyAllergicReaction EmergencyType = "allergic_reaction"
)

// EmergencyTypes lists every valid EmergencyType. The bootstrap seed set
// must cover each of them.
func EmergencyTypes() []EmergencyType {
	return []EmergencyType{EmergencyChoking, EmergencyBleeding, EmergencyAllergicReaction}
}

// ParseEmergencyType validates a raw token against the closed set.
func ParseEmergencyType(raw string) (EmergencyType, error) {
	switch t := EmergencyType(raw); t {
	case EmergencyChoking, EmergencyBleeding, EmergencyAllergicReaction:
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown emergency type %q", ErrValidation, raw)
}

// Severity is the ordinal severity class of an instruction.
type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
	SeverityCritical Severity = "critical"
)

// HelpRequestStatus is the lifecycle stage of a help request.
// active is the initial state; resolved is terminal by convention, but
// transitions are not order-enforced (see HelpRequestService.UpdateStatus).
type HelpRequestStatus string

const (
	StatusActive    HelpRequestStatus = "active"
	StatusResponded HelpRequestStatus = "responded"
	StatusResolved  HelpRequestStatus = "resolved"
)

// ParseStatus validates a raw token against the closed status set.
func ParseStatus(raw string) (HelpRequestStatus, error) {
	switch s := HelpRequestStatus(raw); s {
	case StatusActive, StatusResponded, StatusResolved:
		return s, nil
	}
	return "", fmt.Errorf("%w: unknown status %q", ErrValidation, raw)
}

// EmergencyInstruction is a static first-aid procedure record. Instructions
// are written once by the bootstrap and never mutated through the API.
//
// Steps and VoiceInstructions are two renderings of the same procedure:
// Steps is written for reading, VoiceInstructions for speech synthesis
// (numbers and symbols spelled out). Both are non-empty and describe the
// procedure in the same order.
type EmergencyInstruction struct {
	ID                string        `json:"id" bson:"id"`
	Type              EmergencyType `json:"type" bson:"type"`
	Title             string        `json:"title" bson:"title"`
	Description       string        `json:"description" bson:"description"`
	Steps             []string      `json:"steps" bson:"steps"`
	VoiceInstructions []string      `json:"voice_instructions" bson:"voice_instructions"`
	Severity          Severity      `json:"severity" bson:"severity"`
	DurationEstimate  string        `json:"duration_estimate" bson:"duration_estimate"`
	WhenToCall911     string        `json:"when_to_call_911" bson:"when_to_call_911"`
	CreatedAt         time.Time     `json:"created_at" bson:"created_at"`
}

// HelpRequest is a citizen-submitted record of an in-progress emergency.
// Records are never deleted; resolution is a terminal status, not removal.
type HelpRequest struct {
	ID                  string            `json:"id" bson:"id"`
	EmergencyType       EmergencyType     `json:"emergency_type" bson:"emergency_type"`
	LocationDescription string            `json:"location_description" bson:"location_description"`
	Latitude            *float64          `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude           *float64          `json:"longitude,omitempty" bson:"longitude,omitempty"`
	ContactPhone        *string           `json:"contact_phone,omitempty" bson:"contact_phone,omitempty"`
	AdditionalInfo      *string           `json:"additional_info,omitempty" bson:"additional_info,omitempty"`
	Status              HelpRequestStatus `json:"status" bson:"status"`
	CreatedAt           time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at" bson:"updated_at"`
}

// CreateHelpRequest carries client input for a new help request.
// Phone number format is deliberately not validated; coordinates are only
// checked for the both-or-neither rule. Both gaps are documented choices.
type CreateHelpRequest struct {
	EmergencyType       string   `json:"emergency_type"`
	LocationDescription string   `json:"location_description"`
	Latitude            *float64 `json:"latitude,omitempty"`
	Longitude           *float64 `json:"longitude,omitempty"`
	ContactPhone        *string  `json:"contact_phone,omitempty"`
	AdditionalInfo      *string  `json:"additional_info,omitempty"`
}
