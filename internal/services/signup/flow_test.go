package signup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlow_HappyPath(t *testing.T) {
	flow := NewFlow()
	assert.Equal(t, StateCredentials, flow.State())

	require.NoError(t, flow.Advance(Data{Email: "Ali@Example.com", Password: "str0ng!pass"}))
	assert.Equal(t, StatePersonal, flow.State())

	require.NoError(t, flow.Advance(Data{Name: "  Ali Khan ", Phone: "03001234567"}))
	assert.Equal(t, StateDetails, flow.State())

	dob := time.Date(1995, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, flow.Advance(Data{Address: "Karachi", Occupation: "Engineer", DateOfBirth: &dob}))
	assert.Equal(t, StateComplete, flow.State())

	data, err := flow.Result()
	require.NoError(t, err)
	assert.Equal(t, "ali@example.com", data.Email)
	assert.Equal(t, "Ali Khan", data.Name)
	assert.Equal(t, "03001234567", data.Phone)
	assert.Equal(t, "Karachi", data.Address)
	require.NotNil(t, data.DateOfBirth)
	assert.True(t, dob.Equal(*data.DateOfBirth))
}

func TestFlow_CredentialsGuards(t *testing.T) {
	tests := []struct {
		name    string
		input   Data
		wantErr error
	}{
		{"missing email", Data{Password: "str0ng!pass"}, ErrInvalidEmail},
		{"malformed email", Data{Email: "not-an-email", Password: "str0ng!pass"}, ErrInvalidEmail},
		{"short password", Data{Email: "ali@example.com", Password: "a!1"}, ErrWeakPassword},
		{"no special character", Data{Email: "ali@example.com", Password: "longenough1"}, ErrWeakPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flow := NewFlow()
			err := flow.Advance(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, StateCredentials, flow.State(), "guard failure must not advance")
		})
	}
}

func TestFlow_PersonalGuards(t *testing.T) {
	flow := NewFlow()
	require.NoError(t, flow.Advance(Data{Email: "ali@example.com", Password: "str0ng!pass"}))

	assert.ErrorIs(t, flow.Advance(Data{Phone: "03001234567"}), ErrNameRequired)
	assert.ErrorIs(t, flow.Advance(Data{Name: "Ali Khan"}), ErrPhoneRequired)
	assert.Equal(t, StatePersonal, flow.State())
}

func TestFlow_DetailsAreOptional(t *testing.T) {
	flow := NewFlow()
	require.NoError(t, flow.Advance(Data{Email: "ali@example.com", Password: "str0ng!pass"}))
	require.NoError(t, flow.Advance(Data{Name: "Ali Khan", Phone: "03001234567"}))
	require.NoError(t, flow.Advance(Data{}))
	assert.Equal(t, StateComplete, flow.State())
}

func TestFlow_BackKeepsData(t *testing.T) {
	flow := NewFlow()
	require.NoError(t, flow.Advance(Data{Email: "ali@example.com", Password: "str0ng!pass"}))
	require.NoError(t, flow.Advance(Data{Name: "Ali Khan", Phone: "03001234567"}))

	flow.Back()
	assert.Equal(t, StatePersonal, flow.State())
	flow.Back()
	assert.Equal(t, StateCredentials, flow.State())
	flow.Back() // already at the first step
	assert.Equal(t, StateCredentials, flow.State())

	// Re-advancing with fresh inputs still works and earlier data survives.
	require.NoError(t, flow.Advance(Data{Email: "ali@example.com", Password: "str0ng!pass"}))
	require.NoError(t, flow.Advance(Data{Name: "Ali Khan", Phone: "03001234567"}))
	require.NoError(t, flow.Advance(Data{}))

	data, err := flow.Result()
	require.NoError(t, err)
	assert.Equal(t, "ali@example.com", data.Email)
}

func TestFlow_ResultBeforeCompleteFails(t *testing.T) {
	flow := NewFlow()
	_, err := flow.Result()
	assert.ErrorIs(t, err, ErrFlowNotDone)
}

func TestFlow_AdvancePastCompleteFails(t *testing.T) {
	flow := NewFlow()
	require.NoError(t, flow.Advance(Data{Email: "ali@example.com", Password: "str0ng!pass"}))
	require.NoError(t, flow.Advance(Data{Name: "Ali Khan", Phone: "03001234567"}))
	require.NoError(t, flow.Advance(Data{}))

	assert.ErrorIs(t, flow.Advance(Data{}), ErrFlowComplete)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "credentials", StateCredentials.String())
	assert.Equal(t, "personal", StatePersonal.String())
	assert.Equal(t, "details", StateDetails.String())
	assert.Equal(t, "complete", StateComplete.String())
	assert.Equal(t, "unknown", State(99).String())
}
