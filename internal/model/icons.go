package model

// Centralized icons for the UI components
// Using simple single-width characters for consistent terminal rendering
const (
	IconPriorityHigh = "¹" // Highest search priority (first entry)
	IconPriorityLow  = "¶" // Lowest search priority (last entry)
	IconMissing      = "✗" // Directory does not exist
	IconOK           = " " // Space (OK - no icon to reduce noise)
	IconAdded        = "+" // Added during this session
)
