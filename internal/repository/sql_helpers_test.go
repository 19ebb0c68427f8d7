package repository_test

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"safelink/backend/internal/repository"
	"safelink/backend/internal/repository/testutil"
)

func TestNullableValues(t *testing.T) {
	require.Nil(t, repository.NullableString(nil))
	empty := ""
	require.Equal(t, "", repository.NullableString(&empty))
	country := "Vietnam"
	require.Equal(t, "Vietnam", repository.NullableString(&country))

	require.Nil(t, repository.NullableTime(nil))
	at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.FixedZone("KST", 9*3600))
	require.Equal(t, "2025-03-01T00:00:00Z", repository.NullableTime(&at))
}

func TestStringPtr(t *testing.T) {
	require.Nil(t, repository.StringPtr(sql.NullString{}))
	p := repository.StringPtr(sql.NullString{String: "W/\"etag\"", Valid: true})
	require.NotNil(t, p)
	require.Equal(t, "W/\"etag\"", *p)
}

func TestParseNullTime(t *testing.T) {
	require.Nil(t, repository.ParseNullTime(sql.NullString{}))
	require.Nil(t, repository.ParseNullTime(sql.NullString{Valid: true}))
	require.Nil(t, repository.ParseNullTime(sql.NullString{String: "yesterday", Valid: true}))

	got := repository.ParseNullTime(sql.NullString{String: "2025-01-04T12:34:56Z", Valid: true})
	require.NotNil(t, got)
	require.True(t, got.Equal(time.Date(2025, 1, 4, 12, 34, 56, 0, time.UTC)))
}

func TestBoolToInt(t *testing.T) {
	require.Equal(t, 1, repository.BoolToInt(true))
	require.Equal(t, 0, repository.BoolToInt(false))
}

func TestFormatParseTime(t *testing.T) {
	kst := time.FixedZone("KST", 9*3600)
	cases := []struct {
		name string
		in   time.Time
		want string
	}{
		{"utc millis", time.Date(2025, 1, 4, 12, 34, 56, 789000000, time.UTC), "2025-01-04T12:34:56.789Z"},
		{"site local time is stored as utc", time.Date(2025, 1, 4, 21, 34, 56, 0, kst), "2025-01-04T12:34:56Z"},
		{"nanoseconds kept", time.Date(2025, 1, 4, 12, 34, 56, 123456789, time.UTC), "2025-01-04T12:34:56.123456789Z"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := repository.FormatTime(tc.in)
			require.Equal(t, tc.want, s)
			back, err := repository.ParseTime(s)
			require.NoError(t, err)
			require.True(t, back.Equal(tc.in))
		})
	}

	_, err := repository.ParseTime("2025-01-04 12:34:56")
	require.Error(t, err)
	_, err = repository.ParseTime("")
	require.Error(t, err)
}

func TestEncodeDecodeJSON(t *testing.T) {
	raw, err := repository.EncodeJSON(map[string]string{"vi": "Giàn giáo"})
	require.NoError(t, err)
	require.Equal(t, `{"vi":"Giàn giáo"}`, raw)

	got := map[string]string{}
	require.NoError(t, repository.DecodeJSON(raw, &got))
	require.Equal(t, "Giàn giáo", got["vi"])

	terms := []string{}
	require.NoError(t, repository.DecodeJSON("", &terms))
	require.NotNil(t, terms)
	require.Empty(t, terms)

	require.Error(t, repository.DecodeJSON("[broken", &terms))
}

func TestIsUniqueViolation(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.SeedCustomTerm(t, db, "뺑끼", "페인트", "{}")

	_, err := db.Exec(`INSERT INTO custom_terms (id, slang, standard, translations, created_at) VALUES (?, ?, ?, '{}', ?)`,
		999, "뺑끼", "도장", "2025-01-01T00:00:00Z")
	require.Error(t, err)
	require.True(t, repository.IsUniqueViolation(err))

	require.False(t, repository.IsUniqueViolation(errors.New("disk full")))
	require.False(t, repository.IsUniqueViolation(nil))
}
