package outlet

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMountError(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("navigate: %w", NewMountError("render", "/dash", "root", cause))

	assert.True(t, IsMountError(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), `render /dash into "root": boom`)

	var mountErr *MountError
	if assert.ErrorAs(t, err, &mountErr) {
		assert.Equal(t, "root", mountErr.Container)
	}
}

func TestMountError_NoCause(t *testing.T) {
	err := NewMountError("clear", "/", "app", nil)
	assert.Equal(t, `outlet: clear / into "app"`, err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestErrorHelpers(t *testing.T) {
	notFound := fmt.Errorf("lookup %q: %w", "/nope", ErrRouteNotFound)
	invalid := fmt.Errorf("child %q: %w", "/x", ErrInvalidRouteDefinition)

	assert.True(t, IsRouteNotFound(notFound))
	assert.False(t, IsRouteNotFound(invalid))
	assert.True(t, IsInvalidRouteDefinition(invalid))
	assert.False(t, IsInvalidRouteDefinition(notFound))
	assert.False(t, IsMountError(notFound))
}
