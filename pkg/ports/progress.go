package ports

// Progress reports progress of a long-running phase.
type Progress interface {
	// Start begins a phase with the given number of steps.
	Start(total int, description string)

	// Increment advances the current phase by one step.
	Increment()

	// Finish ends the current phase.
	Finish()
}
