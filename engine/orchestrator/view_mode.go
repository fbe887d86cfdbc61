package orchestrator

// ViewMode is one step of the showcase sequence. Exactly one mode is active at a time.
type ViewMode int

const (
	Overview ViewMode = iota
	ApproachingBox
	InspectingBox
	BoxOpening
	BoxOpened
	ApproachingDevice
	DeviceRotating
	DeviceInteractive
)

func (m ViewMode) String() string {
	switch m {
	case Overview:
		return "Overview"
	case ApproachingBox:
		return "ApproachingBox"
	case InspectingBox:
		return "InspectingBox"
	case BoxOpening:
		return "BoxOpening"
	case BoxOpened:
		return "BoxOpened"
	case ApproachingDevice:
		return "ApproachingDevice"
	case DeviceRotating:
		return "DeviceRotating"
	case DeviceInteractive:
		return "DeviceInteractive"
	default:
		return "Unknown"
	}
}

// Trigger is an event that may advance the view mode.
//
// Hotspot clicks and object activations come from the input layer. The remaining
// triggers are raised by the orchestrator itself when a tween or clip it started completes.
type Trigger int

const (
	TriggerHotspotClicked Trigger = iota
	TriggerBoxActivated
	TriggerDeviceActivated
	TriggerBoxApproached
	TriggerOpeningFinished
	TriggerDeviceApproached
	TriggerDeviceRotated
)

func (t Trigger) String() string {
	switch t {
	case TriggerHotspotClicked:
		return "hotspot-clicked"
	case TriggerBoxActivated:
		return "box-activated"
	case TriggerDeviceActivated:
		return "device-activated"
	case TriggerBoxApproached:
		return "box-approached"
	case TriggerOpeningFinished:
		return "opening-finished"
	case TriggerDeviceApproached:
		return "device-approached"
	case TriggerDeviceRotated:
		return "device-rotated"
	default:
		return "unknown"
	}
}

// Button identifies the pointer button of a press.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)
