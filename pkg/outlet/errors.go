package outlet

import (
	"errors"
	"fmt"
)

// Sentinel errors for routing failures.
var (
	// ErrInvalidRouteDefinition indicates a child route suffix starts with the path
	// separator. Raised while building the route table; no table is usable afterwards.
	ErrInvalidRouteDefinition = errors.New("invalid route definition")

	// ErrRouteNotFound indicates no route table entry matches a pathname exactly.
	ErrRouteNotFound = errors.New("route not found")

	// ErrContainerNotFound indicates the document has no container with the
	// identifier chosen for a mount.
	ErrContainerNotFound = errors.New("mount container not found")

	// ErrMissingCollaborator indicates the router was constructed without a
	// history, document or renderer.
	ErrMissingCollaborator = errors.New("missing router collaborator")
)

// MountError represents a failure inside the renderer after the router has
// picked a container. The route resolved fine; the view could not be mounted.
type MountError struct {
	Op        string // Operation that failed, currently always "render"
	Pathname  string // Pathname being navigated to
	Container string // Identifier of the chosen container
	Err       error  // Underlying error
}

func (e *MountError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("outlet: %s %s into %q: %v", e.Op, e.Pathname, e.Container, e.Err)
	}
	return fmt.Sprintf("outlet: %s %s into %q", e.Op, e.Pathname, e.Container)
}

func (e *MountError) Unwrap() error {
	return e.Err
}

// NewMountError creates a new mount error.
func NewMountError(op, pathname, container string, err error) *MountError {
	return &MountError{Op: op, Pathname: pathname, Container: container, Err: err}
}

// IsMountError checks if an error is a mount error.
func IsMountError(err error) bool {
	var mountErr *MountError
	return errors.As(err, &mountErr)
}

// IsRouteNotFound checks if an error indicates an unregistered pathname.
func IsRouteNotFound(err error) bool {
	return errors.Is(err, ErrRouteNotFound)
}

// IsInvalidRouteDefinition checks if an error comes from a malformed route tree.
func IsInvalidRouteDefinition(err error) bool {
	return errors.Is(err, ErrInvalidRouteDefinition)
}
