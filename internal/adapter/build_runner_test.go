package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	m "catchup.dev/pkg/catchup/internal/model"
)

type stubFS struct {
	ProjectFS

	hasCMake bool
}

func (s *stubFS) HasCMakeLists(m.Path) bool {
	return s.hasCMake
}

func TestCMakeBuildRunner_RequiresCMakeLists(t *testing.T) {
	runner := NewCMakeBuildRunner(&stubFS{}, 0)

	executable, result := runner.Build(context.Background(), m.Project{Dir: "/tmp/nope", Name: "nope"})

	assert.Empty(t, executable)
	assert.False(t, result.Succeeded)
	assert.ErrorIs(t, result.Err, ErrNoCMakeLists)
}
