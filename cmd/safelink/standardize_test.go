package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func runStandardize(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newStandardizeCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestStandardizeCmd(t *testing.T) {
	out, err := runStandardize(t, "아시바", "점검")
	require.NoError(t, err)
	require.Contains(t, out, "standard: 비계 점검")
	require.Contains(t, out, "detected: 아시바")
	require.NotContains(t, out, "vi:")
}

func TestStandardizeCmd_WithLang(t *testing.T) {
	out, err := runStandardize(t, "--lang", "vi-VN", "아시바 해체작업 전 안전 확인하세요")
	require.NoError(t, err)
	require.Contains(t, out, "vi: Giàn giáo Tháo dỡ công việc trước an toàn hãy kiểm tra")
}

func TestStandardizeCmd_Errors(t *testing.T) {
	_, err := runStandardize(t)
	require.Error(t, err)

	_, err = runStandardize(t, "--lang", "klingon", "아시바")
	require.ErrorContains(t, err, "unknown language")
}
