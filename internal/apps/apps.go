package apps

import "fmt"

// App describes an embeddable widget. The module API treats it as opaque
// beyond its identifier and avatar metadata.
type App struct {
	// ID uniquely identifies the widget across the host.
	ID string
	// Name is the human-readable widget name.
	Name string
	// AvatarURI is the media URI of the widget's avatar, or "" when the
	// widget has none.
	AvatarURI string
}

// Container is a named placement slot within a room's UI.
type Container string

const (
	ContainerTop    Container = "top"
	ContainerRight  Container = "right"
	ContainerCenter Container = "center"
)

// ResizeMethod selects how an avatar thumbnail is fitted. Values outside
// the two known methods are passed through to the media resolver, whose
// behavior for them is its own business.
type ResizeMethod string

const (
	ResizeCrop  ResizeMethod = "crop"
	ResizeScale ResizeMethod = "scale"
)

// validContainer reports whether c is one of the host-defined slots.
func validContainer(c Container) bool {
	switch c {
	case ContainerTop, ContainerRight, ContainerCenter:
		return true
	default:
		return false
	}
}

// ErrUnknownContainer is returned when a caller names a container outside
// the host-defined set. This is a caller-contract violation surfaced
// synchronously, never absorbed.
type ErrUnknownContainer struct {
	Container Container
}

func (e *ErrUnknownContainer) Error() string {
	return fmt.Sprintf("unknown container %q: must be one of %q, %q, %q",
		e.Container, ContainerTop, ContainerRight, ContainerCenter)
}

// MediaResolver derives display URLs from media URIs. It is an external
// collaborator: the registry only decides whether there is an avatar to
// resolve at all.
type MediaResolver interface {
	ThumbnailURL(mediaURI string, width, height int, method ResizeMethod) string
}
