package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `validate:"required"`
	Size int    `validate:"gt=0"`
}

func TestValidateStruct(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(sample{Name: "meeting", Size: 1}))
	require.Error(t, v.Validate(sample{Size: 1}))
	require.Error(t, v.Validate(sample{Name: "meeting"}))
}

func TestOneOf(t *testing.T) {
	v := New()
	allowed := []string{"mp3", "wav", "m4a", "flac"}

	require.NoError(t, v.OneOf("wav", allowed))
	require.NoError(t, v.OneOf("flac", allowed))
	require.Error(t, v.OneOf("txt", allowed))
	require.Error(t, v.OneOf("", allowed))
}
