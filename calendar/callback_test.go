package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCallbackConnected(t *testing.T) {
	notice, stripped, err := ParseCallback("https://app.fitfork.dev/mealplan?calendar=connected")
	require.NoError(t, err)

	require.NotNil(t, notice)
	assert.True(t, notice.Connected)
	assert.Equal(t, "https://app.fitfork.dev/mealplan", stripped)
}

func TestParseCallbackErrorWithDetail(t *testing.T) {
	notice, stripped, err := ParseCallback("https://app.fitfork.dev/mealplan?calendar=error&detail=access+denied")
	require.NoError(t, err)

	require.NotNil(t, notice)
	assert.False(t, notice.Connected)
	assert.Equal(t, "access denied", notice.Detail)
	assert.Equal(t, "https://app.fitfork.dev/mealplan", stripped)
}

func TestParseCallbackKeepsUnrelatedParams(t *testing.T) {
	notice, stripped, err := ParseCallback("https://app.fitfork.dev/mealplan?tab=week&calendar=connected")
	require.NoError(t, err)

	require.NotNil(t, notice)
	assert.Equal(t, "https://app.fitfork.dev/mealplan?tab=week", stripped)
}

func TestParseCallbackAbsentParam(t *testing.T) {
	notice, stripped, err := ParseCallback("https://app.fitfork.dev/mealplan?tab=week")
	require.NoError(t, err)

	assert.Nil(t, notice)
	assert.Equal(t, "https://app.fitfork.dev/mealplan?tab=week", stripped)
}
