package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jask/evenhub/internal/config"
	"github.com/jask/evenhub/internal/database/repository"
	"github.com/jask/evenhub/internal/layout"
)

// printLayout writes the device payload of the YAML view model at path.
func printLayout(w io.Writer, path string, ids layout.ContainerIDs) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	vm, err := layout.LoadViewModel(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	data, err := json.MarshalIndent(layout.NewBuilder(ids).Build(vm), "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func showPageLog(cfg config.Config, limit int) error {
	ctx := context.Background()
	db, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	return writePageLog(ctx, os.Stdout, repository.NewPageLogRepo(db), limit)
}

func writePageLog(ctx context.Context, w io.Writer, repo *repository.PageLogRepo, limit int) error {
	entries, err := repo.Recent(ctx, limit)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%s  %-7s  containers=%d  result=%s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"), e.Op, e.ContainerTotal, e.Result)
	}
	counts, err := repo.CountByOp(ctx)
	if err != nil {
		return err
	}
	ops := make([]string, 0, len(counts))
	for op := range counts {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	for _, op := range ops {
		fmt.Fprintf(w, "total %s: %d\n", op, counts[op])
	}
	return nil
}
