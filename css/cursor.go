// Cursor value type.
package css

// Cursor represents the cursor property.
type Cursor int

const (
	CursorAuto Cursor = iota
	CursorDefault
	CursorPointer
	CursorText
	CursorMove
	CursorWait
	CursorHelp
	CursorNotAllowed
	CursorCrosshair
	CursorGrab
	CursorGrabbing
	CursorProgress
)

// ParseCursor parses a cursor keyword, defaulting to auto.
func ParseCursor(s string) Cursor {
	switch normalizeKeyword(s) {
	case "default":
		return CursorDefault
	case "pointer":
		return CursorPointer
	case "text":
		return CursorText
	case "move":
		return CursorMove
	case "wait":
		return CursorWait
	case "help":
		return CursorHelp
	case "not-allowed":
		return CursorNotAllowed
	case "crosshair":
		return CursorCrosshair
	case "grab":
		return CursorGrab
	case "grabbing":
		return CursorGrabbing
	case "progress":
		return CursorProgress
	}
	return CursorAuto
}

func (c Cursor) String() string {
	switch c {
	case CursorDefault:
		return "default"
	case CursorPointer:
		return "pointer"
	case CursorText:
		return "text"
	case CursorMove:
		return "move"
	case CursorWait:
		return "wait"
	case CursorHelp:
		return "help"
	case CursorNotAllowed:
		return "not-allowed"
	case CursorCrosshair:
		return "crosshair"
	case CursorGrab:
		return "grab"
	case CursorGrabbing:
		return "grabbing"
	case CursorProgress:
		return "progress"
	}
	return "auto"
}
