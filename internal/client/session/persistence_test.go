package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aka-Harsh/eventbook/internal/client/models"
)

func tempStore(t *testing.T) *FilePersistence {
	t.Helper()
	return NewFilePersistence(filepath.Join(t.TempDir(), "session.json"))
}

func TestFilePersistence_RoundTrip(t *testing.T) {
	p := tempStore(t)
	u := &models.User{ID: 2, Name: "John", Email: "john@example.com", Role: models.RoleUser}

	require.NoError(t, p.Save(u))

	got, err := p.Load()
	require.NoError(t, err)
	assert.Equal(t, u, got)
}

func TestFilePersistence_AbsentRecordMeansLoggedOut(t *testing.T) {
	p := tempStore(t)

	got, err := p.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFilePersistence_MalformedRecord(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "{not-json"},
		{"missing id", `{"name":"x","role":"USER"}`},
		{"unknown role", `{"id":1,"name":"x","role":"ROOT"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := tempStore(t)
			require.NoError(t, os.WriteFile(p.Path(), []byte(tc.body), 0o600))

			got, err := p.Load()
			assert.ErrorIs(t, err, ErrMalformed)
			assert.Nil(t, got)
		})
	}
}

func TestFilePersistence_ClearRemovesRecord(t *testing.T) {
	p := tempStore(t)
	require.NoError(t, p.Save(&models.User{ID: 1, Role: models.RoleAdmin}))

	require.NoError(t, p.Clear())

	got, err := p.Load()
	require.NoError(t, err)
	assert.Nil(t, got)

	// Clearing again must not fail.
	require.NoError(t, p.Clear())
}

func TestFilePersistence_SaveCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "session.json")
	p := NewFilePersistence(path)

	require.NoError(t, p.Save(&models.User{ID: 7, Role: models.RoleUser}))

	_, err := os.Stat(path)
	require.NoError(t, err)
}
