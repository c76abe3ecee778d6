package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	err := Wrap(ErrLocalNotFound, "no local data for mondo")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLocalNotFound))
	assert.Equal(t, "no local data for mondo: no matching local data file", err.Error())

	assert.NoError(t, Wrap(nil, "ignored"))
}

func TestWrapf(t *testing.T) {
	err := Wrapf(ErrUnknownSource, "%q", "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownSource))
	assert.Equal(t, `"nope": unknown source name`, err.Error())

	assert.NoError(t, Wrapf(nil, "ignored %d", 1))
}
