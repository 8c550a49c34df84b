package loader_test

import (
	"errors"
	"testing"

	"catalog-reconciler/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakeFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(app fiber.Router) error {
	f.loaded = true
	return f.err
}

func TestManager_LoadAll(t *testing.T) {
	runs := &fakeFeature{name: "runs", enabled: true}
	off := &fakeFeature{name: "off"}

	mgr := loader.NewManager()
	mgr.Register(runs)
	mgr.Register(off)

	loaded, err := mgr.LoadAll(fiber.New())
	assert.NoError(t, err)
	assert.Equal(t, []string{"runs"}, loaded)
	assert.True(t, runs.loaded)
	assert.False(t, off.loaded)
}

func TestManager_LoadAllError(t *testing.T) {
	mgr := loader.NewManager()
	mgr.Register(&fakeFeature{name: "broken", enabled: true, err: errors.New("migrate failed")})

	_, err := mgr.LoadAll(fiber.New())
	assert.EqualError(t, err, "load feature broken: migrate failed")
}
