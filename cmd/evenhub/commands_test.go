package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/evenhub/internal/database"
	"github.com/jask/evenhub/internal/database/repository"
	"github.com/jask/evenhub/internal/layout"
)

func TestPrintLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "view.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
title: Feed
layout: list-footer
containers:
  - type: list
    id: rss
    items: [eins, zwei]
    capture: true
  - type: text
    id: status
    content: 1/1
`), 0o644))

	var out bytes.Buffer
	require.NoError(t, printLayout(&out, path, layout.DefaultContainerIDs))

	var payload layout.Payload
	require.NoError(t, json.Unmarshal(out.Bytes(), &payload))
	require.Equal(t, 2, payload.ContainerTotalNum)
	require.Equal(t, 488, payload.TextObject[0].XPosition)
	require.Equal(t, []string{"eins", "zwei"}, payload.ListObject[0].ItemContainer.ItemName)

	require.Error(t, printLayout(&out, filepath.Join(dir, "missing.yaml"), layout.DefaultContainerIDs))
}

func TestWritePageLog(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "log.db")
	require.NoError(t, database.RunMigrations(dbPath))
	db, err := database.Open(dbPath)
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewPageLogRepo(db)
	require.NoError(t, repo.Add(ctx, repository.PageLogEntry{Op: repository.OpCreate, ContainerTotal: 2, Payload: "{}", Result: "code(0)"}))
	require.NoError(t, repo.Add(ctx, repository.PageLogEntry{Op: repository.OpUpgrade, ContainerTotal: 0, Payload: "{}", Result: "true"}))

	var out bytes.Buffer
	require.NoError(t, writePageLog(ctx, &out, repo, 10))
	require.Contains(t, out.String(), "containers=2  result=code(0)")
	require.Contains(t, out.String(), "total create: 1\ntotal upgrade: 1\n")
}
