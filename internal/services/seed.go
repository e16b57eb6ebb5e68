package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/model"
)

// seedInstructions returns the canonical reference catalog: every emergency
// type covered, severities spanning minor to critical, and every record
// carrying both the written steps and the spoken rendering of the same
// procedure, in the same order.
func seedInstructions(now time.Time) []*model.EmergencyInstruction {
	return []*model.EmergencyInstruction{
		{
			ID:               uuid.New().String(),
			Type:             model.EmergencyChoking,
			Title:            "Adult Choking (Conscious)",
			Description:      "For conscious adults who cannot cough, speak, or breathe",
			Severity:         model.SeverityCritical,
			DurationEstimate: "1-2 minutes",
			WhenToCall911:    "If person becomes unconscious or obstruction doesn't clear",
			Steps: []string{
				"Stand behind the person",
				"Place arms around their waist",
				"Make a fist with one hand, place thumb side against abdomen above navel",
				"Grasp fist with other hand, press hard into abdomen with quick upward thrust",
				"Repeat until object is expelled or person becomes unconscious",
			},
			VoiceInstructions: []string{
				"Stand behind the choking person",
				"Wrap your arms around their waist",
				"Make a fist and place it above their belly button",
				"Grab your fist with your other hand",
				"Push hard and quick upward into their abdomen",
			},
			CreatedAt: now,
		},
		{
			ID:               uuid.New().String(),
			Type:             model.EmergencyChoking,
			Title:            "Child Choking (1-8 years)",
			Description:      "For conscious children who cannot cough, speak, or breathe",
			Severity:         model.SeverityCritical,
			DurationEstimate: "1-2 minutes",
			WhenToCall911:    "Immediately, even if obstruction clears",
			Steps: []string{
				"Kneel behind child or stand if child is small",
				"Place arms around child's waist",
				"Make fist, place thumb side against abdomen above navel, below breastbone",
				"Press hard into abdomen with quick upward thrusts",
				"Be gentler than with adults",
				"Continue until object is expelled",
			},
			VoiceInstructions: []string{
				"Get behind the child at their level",
				"Put your arms around their waist",
				"Make a fist above their belly button, below the chest",
				"Push gently but firmly upward",
				"Be more gentle than you would be with an adult",
				"Keep doing this until the object comes out",
			},
			CreatedAt: now,
		},
		{
			ID:               uuid.New().String(),
			Type:             model.EmergencyBleeding,
			Title:            "Severe Bleeding Control",
			Description:      "For heavy bleeding from cuts or wounds",
			Severity:         model.SeveritySevere,
			DurationEstimate: "Until medical help arrives",
			WhenToCall911:    "For any severe bleeding that won't stop",
			Steps: []string{
				"Apply direct pressure with clean cloth or bandage",
				"Press firmly on the wound",
				"If blood soaks through, add more layers without removing original",
				"Raise injured area above heart level if possible",
				"Continue pressure until bleeding stops or help arrives",
			},
			VoiceInstructions: []string{
				"Put a clean cloth directly on the wound",
				"Press down firmly with your hands",
				"If blood soaks through, add more cloth on top",
				"Lift the injured part higher than the heart if you can",
				"Don't stop pressing until help arrives",
			},
			CreatedAt: now,
		},
		{
			ID:               uuid.New().String(),
			Type:             model.EmergencyBleeding,
			Title:            "Minor Cut Treatment",
			Description:      "For small cuts and scrapes",
			Severity:         model.SeverityMinor,
			DurationEstimate: "5-10 minutes",
			WhenToCall911:    "If bleeding won't stop after 10 minutes of pressure",
			Steps: []string{
				"Clean hands before treating wound",
				"Apply gentle pressure with clean cloth",
				"Clean wound gently with water",
				"Apply antibiotic ointment if available",
				"Cover with sterile bandage",
				"Change bandage daily and keep wound clean",
			},
			VoiceInstructions: []string{
				"First, wash your hands",
				"Put gentle pressure on the cut with a clean cloth",
				"When bleeding stops, clean the cut with water",
				"Put on antibiotic cream if you have it",
				"Cover with a clean bandage",
				"Change the bandage every day",
			},
			CreatedAt: now,
		},
		{
			ID:               uuid.New().String(),
			Type:             model.EmergencyAllergicReaction,
			Title:            "Severe Allergic Reaction (Anaphylaxis)",
			Description:      "Life-threatening allergic reaction with breathing problems",
			Severity:         model.SeverityCritical,
			DurationEstimate: "Immediate action required",
			WhenToCall911:    "Immediately for severe allergic reactions",
			Steps: []string{
				"Call 911 immediately",
				"Use epinephrine auto-injector (EpiPen) if available",
				"Help person lie down with legs elevated",
				"Remove or avoid allergen if known",
				"Monitor breathing and pulse",
				"Be prepared to perform CPR if needed",
			},
			VoiceInstructions: []string{
				"Call nine one one right now",
				"If there's an EpiPen, use it on the outer thigh",
				"Help the person lie down and lift their legs up",
				"Keep them away from whatever caused the reaction",
				"Stay with them and watch their breathing",
				"Be ready to do CPR if they stop breathing",
			},
			CreatedAt: now,
		},
		{
			ID:               uuid.New().String(),
			Type:             model.EmergencyAllergicReaction,
			Title:            "Mild Allergic Reaction",
			Description:      "Minor allergic reactions with skin or mild symptoms",
			Severity:         model.SeverityMinor,
			DurationEstimate: "Monitor for 30 minutes",
			WhenToCall911:    "If symptoms worsen or breathing becomes difficult",
			Steps: []string{
				"Remove or avoid the allergen",
				"Give antihistamine if available (Benadryl)",
				"Apply cool compress to affected skin",
				"Monitor for worsening symptoms",
				"Seek medical attention if symptoms persist or worsen",
			},
			VoiceInstructions: []string{
				"Stay away from whatever caused the reaction",
				"Take an antihistamine like Benadryl if you have it",
				"Put a cool cloth on itchy skin",
				"Watch carefully for any worsening",
				"Get medical help if it gets worse",
			},
			CreatedAt: now,
		},
	}
}
