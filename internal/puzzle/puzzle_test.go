package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_BuiltinDays(t *testing.T) {
	assert.Equal(t, []int{1, 2}, Days())

	for _, day := range Days() {
		s, err := Get(day)
		require.NoError(t, err)
		assert.Equal(t, day, s.Day())
		assert.NotEmpty(t, s.Name())
	}
}

func TestGet_UnknownDay(t *testing.T) {
	_, err := Get(25)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "day 25")
}

func TestRegister_DuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		Register(calorieSolver{})
	})
}

func TestCalorieSolver_Sample(t *testing.T) {
	s, err := Get(1)
	require.NoError(t, err)

	ans, err := s.Solve("1000\n2000\n3000\n\n4000\n\n5000\n6000\n\n7000\n8000\n9000\n\n10000\n")
	require.NoError(t, err)
	assert.Equal(t, uint32(24000), ans.Part1)
	assert.Equal(t, uint32(45000), ans.Part2)
}

func TestCalorieSolver_EmptyInputFails(t *testing.T) {
	s, err := Get(1)
	require.NoError(t, err)

	_, err = s.Solve("")
	require.Error(t, err)
}

func TestStrategySolver_Sample(t *testing.T) {
	s, err := Get(2)
	require.NoError(t, err)

	ans, err := s.Solve("A Y\nB X\nC Z\n")
	require.NoError(t, err)
	assert.Equal(t, uint32(15), ans.Part1)
	assert.Equal(t, uint32(12), ans.Part2)
}

func TestStrategySolver_BadToken(t *testing.T) {
	s, err := Get(2)
	require.NoError(t, err)

	_, err = s.Solve("A Q\n")
	require.Error(t, err)
}
