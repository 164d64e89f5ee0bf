package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/tabledef-go/pkg/tabledef/models"
)

const sampleDoc = `## 테이블 목록

| No | 분류 | 테이블명 | 설명 |
|----|------|----------|------|
| 1 | 사용자 | users | 유저 테이블 |

---

## 1. users (유저 테이블)

사용자 계정.

| No | 컬럼명 | 데이터 타입 | NULL | 기본값 | PK/FK | 설명 |
|----|--------|-------------|------|--------|-------|------|
| 1 | email | VARCHAR(255) | NO | - | PK | 이메일 |
`

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "테이블정의서.md", sampleDoc)

	t.Run("default output path", func(t *testing.T) {
		stdout, _, err := execute(t, "convert", input)
		require.NoError(t, err)

		expected := filepath.Join(dir, "테이블정의서.xlsx")
		assert.Equal(t, "workbook written: "+expected+"\n", stdout)
		assert.FileExists(t, expected)
	})

	t.Run("explicit output path", func(t *testing.T) {
		output := filepath.Join(dir, "custom.xlsx")
		stdout, _, err := execute(t, "convert", input, "-o", output)
		require.NoError(t, err)
		assert.Contains(t, stdout, output)
		assert.FileExists(t, output)
	})

	t.Run("verbose logs each sheet", func(t *testing.T) {
		_, stderr, err := execute(t, "convert", input, "-o", filepath.Join(dir, "v.xlsx"), "--verbose")
		require.NoError(t, err)
		assert.Contains(t, stderr, "rendered table sheet")
		assert.Contains(t, stderr, "sheet=1.users")
	})

	t.Run("missing input", func(t *testing.T) {
		_, stderr, err := execute(t, "convert", filepath.Join(dir, "missing.md"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "file not found")
		assert.Contains(t, stderr, "Error:")
	})

	t.Run("invalid sheet name policy", func(t *testing.T) {
		_, _, err := execute(t, "convert", input, "--sheet-names", "rename")
		assert.Error(t, err)
	})
}

func TestSchemaCommand(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "schema.yaml", `
categories:
  - name: 사용자
    tables:
      - name: users
        desc: 유저 테이블
        columns:
          - {name: email, type: VARCHAR(255), key: PK, desc: 이메일}
`)

	stdout, _, err := execute(t, "schema", input)
	require.NoError(t, err)
	assert.Equal(t, "workbook written: "+filepath.Join(dir, "schema.xlsx")+"\n", stdout)

	dump, _, err := execute(t, "dump", filepath.Join(dir, "schema.xlsx"))
	require.NoError(t, err)

	var wb models.WorkbookData
	require.NoError(t, json.Unmarshal([]byte(dump), &wb))
	assert.Equal(t, []string{"테이블 목록", "1.users"}, wb.SheetNames())
}

func TestInspectCommand(t *testing.T) {
	input := writeFile(t, t.TempDir(), "doc.md", sampleDoc)

	stdout, _, err := execute(t, "inspect", input)
	require.NoError(t, err)

	var doc models.Document
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	require.Len(t, doc.Tables, 1)
	assert.Equal(t, "users", doc.Tables[0].Name)
	assert.Len(t, doc.Index, 2)

	yamlOut, _, err := execute(t, "inspect", input, "--format", "yaml")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(yamlOut, "index:"))

	_, _, err = execute(t, "inspect", input, "--format", "xml")
	assert.Error(t, err)
}

func TestDumpCommand(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "doc.md", sampleDoc)
	output := filepath.Join(dir, "doc.xlsx")

	_, _, err := execute(t, "convert", input, "-o", output)
	require.NoError(t, err)

	stdout, _, err := execute(t, "dump", output, "--pretty")
	require.NoError(t, err)
	assert.Contains(t, stdout, "\"book_name\": \"doc.xlsx\"")
	assert.Contains(t, stdout, "\"used_range\": \"A1:G5\"")

	_, _, err = execute(t, "dump", filepath.Join(dir, "missing.xlsx"))
	assert.Error(t, err)
}

func TestConfigInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tabledef.yaml")

	stdout, _, err := execute(t, "config", "init", path)
	require.NoError(t, err)
	assert.Equal(t, "config written: "+path+"\n", stdout)

	_, _, err = execute(t, "config", "init", path)
	assert.Error(t, err)

	_, _, err = execute(t, "config", "init", path, "--force")
	assert.NoError(t, err)
}

func TestConfigFileAppliesToConvert(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "custom.yaml", "index_title: Tables\n")
	input := writeFile(t, dir, "doc.md", "## Tables\n| No | name |\n| 1 | users |\n")
	output := filepath.Join(dir, "doc.xlsx")

	_, _, err := execute(t, "--config", cfg, "convert", input, "-o", output)
	require.NoError(t, err)

	dump, _, err := execute(t, "dump", output)
	require.NoError(t, err)
	var wb models.WorkbookData
	require.NoError(t, json.Unmarshal([]byte(dump), &wb))
	assert.Equal(t, []string{"Tables"}, wb.SheetNames())
	assert.Len(t, wb.Sheets[0].Rows, 2)
}

func TestDefaultOutput(t *testing.T) {
	assert.Equal(t, "docs/tables.xlsx", defaultOutput("docs/tables.md"))
	assert.Equal(t, "tables.xlsx", defaultOutput("tables"))
	assert.True(t, strings.HasSuffix(defaultInput(), "테이블정의서.md"))
}

func TestWatchStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "doc.md", sampleDoc)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"watch", input})
	require.NoError(t, cmd.ExecuteContext(ctx))

	assert.Equal(t, "workbook written: "+filepath.Join(dir, "doc.xlsx")+"\n", stdout.String())
	assert.FileExists(t, filepath.Join(dir, "doc.xlsx"))
}
