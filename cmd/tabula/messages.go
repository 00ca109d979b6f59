package main

// ============================================================================
// CLI Branding & Help
// ============================================================================

const (
	MainTitle   = "▦ Tabula"
	MainSummary = "★  One attribute spec: model + migration"
)

// ============================================================================
// Database URL Display Configuration
// ============================================================================

const (
	// DBURLMaskLength is the max characters shown before masking with "...".
	DBURLMaskLength = 40
)

// MaskDatabaseURL truncates a database URL for display.
func MaskDatabaseURL(url string) string {
	if len(url) > DBURLMaskLength {
		return url[:DBURLMaskLength] + "..."
	}
	return url
}

// ============================================================================
// Structured Messages (grouped by command)
// ============================================================================

// Msg is the central message hub for all user-facing text.
//
// Usage:
//
//	ui.ShowSuccess(Msg.Gen.Created, ...)
var Msg = struct {
	Gen    GenMessages
	Init   InitMessages
	Types  TypesMessages
	Doctor DoctorMessages
}{
	Gen: GenMessages{
		Created:   "Model Generated",
		ApplyNote: "Remember to apply the migration before using the new table",
	},
	Init: InitMessages{
		Complete: "Project Initialized",
	},
	Types: TypesMessages{
		Title: "Supported Attribute Types",
	},
	Doctor: DoctorMessages{
		Title:   "Environment Check",
		Healthy: "Everything looks good",
	},
}

// ============================================================================
// Message Type Definitions
// ============================================================================

type GenMessages struct {
	Created   string
	ApplyNote string
}

type InitMessages struct {
	Complete string
}

type TypesMessages struct {
	Title string
}

type DoctorMessages struct {
	Title   string
	Healthy string
}
