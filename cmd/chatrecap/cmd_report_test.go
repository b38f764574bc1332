package chatrecap

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjzar/chatrecap/internal/model"
)

const exportJSON = `{"messages": [
  {"createTime": 1735693200, "senderDisplayName": "小明", "type": "文本消息", "content": "周末一起去吃火锅", "isSend": 1},
  {"createTime": "1735696800", "senderDisplayName": "阿花", "type": "文本消息", "content": "好呀 火锅", "isSend": 0},
  {"createTime": 1735779600, "senderDisplayName": "阿花", "type": "图片消息", "isSend": 0}
]}`

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestReportCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "chat.json")
	require.NoError(t, os.WriteFile(input, []byte(exportJSON), 0o644))
	outDir := filepath.Join(dir, "out")

	out, err := runCLI(t, "report",
		"-i", input, "-o", outDir, "-f", "json",
		"--start", "2025-01-01", "--end", "2025-01-02",
		"--timezone", "Asia/Shanghai", "--segmenter", "bleve",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "消息总数: 3")
	assert.Contains(t, out, "参与者: 小明 & 阿花")

	b, err := os.ReadFile(filepath.Join(outDir, "chat_report.json"))
	require.NoError(t, err)
	var r model.Report
	require.NoError(t, json.Unmarshal(b, &r))
	assert.Equal(t, 3, r.TotalMessages)
	assert.Len(t, r.Daily, 2)
	assert.Equal(t, 1.5, r.DailyAverage)
	assert.Equal(t, "bleve", r.Meta.Segmenter)
}

func TestReportCommandNoData(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "chat.json")
	require.NoError(t, os.WriteFile(input, []byte(exportJSON), 0o644))

	out, err := runCLI(t, "report",
		"-i", input, "-o", dir,
		"--start", "2024-03-01", "--end", "2024-03-02",
		"--timezone", "Asia/Shanghai", "--segmenter", "bleve",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "指定日期范围内没有聊天记录")
	_, statErr := os.Stat(filepath.Join(dir, "chat_report.json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestReportCommandInvalidWindow(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "chat.json")
	require.NoError(t, os.WriteFile(input, []byte(exportJSON), 0o644))

	_, err := runCLI(t, "report", "-i", input, "-o", dir, "--start", "2025-02-01", "--end", "2025-01-01")
	assert.Error(t, err)
}
