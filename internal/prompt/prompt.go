// Package prompt composes the system instruction for the answer generator:
// a fixed base policy combined with a mode-specific behavioral overlay.
// Composition is a pure function of the mode.
package prompt

// Mode selects which organizational persona the assistant adopts.
type Mode string

const (
	ModeGeneral    Mode = "General"
	ModeHR         Mode = "HR"
	ModeSupport    Mode = "Support"
	ModeOperations Mode = "Operations"
)

// Modes lists every recognized mode in display order.
var Modes = []Mode{ModeGeneral, ModeHR, ModeSupport, ModeOperations}

// ParseMode maps a raw mode string to a recognized Mode.
// Unrecognized values fall back to General rather than failing.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case ModeGeneral, ModeHR, ModeSupport, ModeOperations:
		return Mode(s)
	default:
		return ModeGeneral
	}
}

const basePrompt = `You are OrgBrain, an AI knowledge base agent for an organization.

Instructions:
- Always answer strictly based on the provided documents.
- If the answer is not in the documents, say you are not sure and suggest contacting a human.
- Prefer concise, clear responses with headings and bullet points.
- At the end of each answer, include a 'Sources:' section listing relevant documents.`

var modeOverlays = map[Mode]string{
	ModeGeneral: `You answer any question based on the documents.
If the user is vague, you may ask for clarification.`,

	ModeHR: `You act as an HR assistant focused on:
- company policies
- leave & benefits
- attendance
- onboarding
Use a professional and friendly tone.`,

	ModeSupport: `You act as a support assistant focused on:
- FAQs
- troubleshooting
- common issues
You should be empathetic and solution-oriented.`,

	ModeOperations: `You act as an operations assistant focused on:
- SOPs
- internal processes
- checklists and workflows
You should be structured and precise.`,
}

// Compose builds the system instruction for the given mode.
// Unrecognized modes use the General overlay.
func Compose(mode Mode) string {
	overlay, ok := modeOverlays[mode]
	if !ok {
		overlay = modeOverlays[ModeGeneral]
	}
	return basePrompt + "\n\nMode:\n" + overlay
}
