package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultQueryParameters(t *testing.T) {
	params := DefaultQueryParameters()

	assert.Equal(t, "lalitmee", params.Owner)
	assert.Equal(t, "dotfiles", params.Repository)
	assert.Equal(t, RepoTypePublic, params.RepoType)
	assert.Equal(t, PRStateOpen, params.State)
	assert.Empty(t, params.BaseBranch)
	assert.NoError(t, params.Validate())
}

func TestParseEnums(t *testing.T) {
	repoType, err := ParseRepoType("Private")
	require.NoError(t, err)
	assert.Equal(t, RepoTypePrivate, repoType)

	state, err := ParsePRState("CLOSED")
	require.NoError(t, err)
	assert.Equal(t, PRStateClosed, state)

	_, err = ParsePRState("")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestResultSetClone(t *testing.T) {
	original := ResultSet{{Number: 1}}
	clone := original.Clone()
	clone[0].Number = 2

	assert.Equal(t, 1, original[0].Number)
	assert.NotNil(t, ResultSet(nil).Clone())
	assert.True(t, ResultSet(nil).Clone().IsEmpty())
}
