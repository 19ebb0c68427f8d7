package hashutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"safelink/backend/internal/hashutil"
)

func TestSHA256Hex(t *testing.T) {
	// sha256("abc")
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	require.Equal(t, want, hashutil.SHA256Hex("abc"))
	require.Equal(t, want, hashutil.SHA256Hex("  abc\n"))
	require.Len(t, hashutil.SHA256Hex(""), 64)
}

func TestKey(t *testing.T) {
	base := hashutil.Key("manager", "vi", "비계 점검")
	require.Equal(t, base, hashutil.Key(" manager", "vi ", "비계 점검\n"))
	require.Equal(t, hashutil.SHA256Hex("manager|vi|비계 점검"), base)

	require.NotEqual(t, base, hashutil.Key("manager", "en", "비계 점검"))
	require.NotEqual(t, base, hashutil.Key("worker", "vi", "비계 점검"))
}
