package setting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atik-theme/atik-assistant/internal/db/dbtest"
)

func TestGet(t *testing.T) {
	db := dbtest.New(t)

	_, err := Set(db, "existing", []byte("value"))
	require.NoError(t, err)

	testCases := []struct {
		name          string
		settingName   string
		nilDB         bool
		expectedError error
		expectedValue []byte
	}{
		{name: "nil database", settingName: "test", nilDB: true, expectedError: ErrDBNil},
		{name: "empty name", settingName: "", expectedError: ErrSettingNameEmpty},
		{name: "not found", settingName: "missing", expectedError: ErrSettingNotFound},
		{name: "found", settingName: "existing", expectedValue: []byte("value")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conn := db
			if tc.nilDB {
				conn = nil
			}

			got, err := Get(conn, tc.settingName)
			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedValue, got.Value)
		})
	}
}

func TestSetUpserts(t *testing.T) {
	db := dbtest.New(t)

	first, err := Set(db, "theme", []byte("atik"))
	require.NoError(t, err)

	second, err := Set(db, "theme", []byte("other"))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	all, err := GetAll(db)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, []byte("other"), all[0].Value)
}

func TestDeleteByName(t *testing.T) {
	db := dbtest.New(t)

	require.NoError(t, SetString(db, "x", "1"))
	require.NoError(t, DeleteByName(db, "x"))
	assert.ErrorIs(t, DeleteByName(db, "x"), ErrSettingNotFound)
	assert.ErrorIs(t, DeleteByName(db, ""), ErrSettingNameEmpty)
}

func TestOptions(t *testing.T) {
	db := dbtest.New(t)

	s, err := String(db, ActiveTheme, "atik")
	require.NoError(t, err)
	assert.Equal(t, "atik", s)

	n, err := Uint(db, PageOnFront)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, SetString(db, PageOnFront, "42"))
	n, err = Uint(db, PageOnFront)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), n)

	require.NoError(t, SetString(db, PageForPosts, "not-a-number"))
	n, err = Uint(db, PageForPosts)
	require.NoError(t, err)
	assert.Zero(t, n)
}
