package key

// Code is a Windows virtual-key code, as found in wVirtualKeyCode of a console
// KEY_EVENT_RECORD
type Code uint16

// Virtual-key codes understood by Classify
const (
	VKNull    Code = 0x03 // VK_CANCEL slot, stands in for the NUL byte
	VKBackTab Code = 0x07 // Unassigned, stands in for Shift+Tab
	VKBack    Code = 0x08
	VKTab     Code = 0x09 // Not classified
	VKControl Code = 0x11
	VKMenu    Code = 0x12 // Alt
	VKEscape  Code = 0x1B
	VKSpace   Code = 0x20
	VKPrior   Code = 0x21 // Page Up
	VKNext    Code = 0x22 // Page Down
	VKEnd     Code = 0x23
	VKHome    Code = 0x24
	VKLeft    Code = 0x25
	VKUp      Code = 0x26
	VKRight   Code = 0x27
	VKDown    Code = 0x28
	VKInsert  Code = 0x2D
	VKDelete  Code = 0x2E

	VK0 Code = 0x30
	VK9 Code = 0x39
	VKA Code = 0x41
	VKZ Code = 0x5A

	VKNumpad0 Code = 0x60
	VKNumpad9 Code = 0x69

	VKF1  Code = 0x70
	VKF24 Code = 0x87
)
