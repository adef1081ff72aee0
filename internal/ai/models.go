package ai

// FixResult captures the structured output from the AI model.
type FixResult struct {
	// Suggestion is the user-facing resolution text shown to the admin
	// handling the complaint.
	Suggestion string `json:"suggestion"`

	// Severity is the model's read of how urgent the complaint is.
	// Valid values: "low", "medium", "high".
	Severity string `json:"severity"`

	// NeedsRevisit is true when the model believes a technician has to
	// go back on site rather than resolve the complaint remotely.
	NeedsRevisit bool `json:"needs_revisit"`
}
