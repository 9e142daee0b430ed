package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// ShoppingList keeps a JSON string array in local storage.
type ShoppingList struct {
	Storage StorageService
	Key     string
}

func NewShoppingList(storage StorageService, key string) *ShoppingList {
	return &ShoppingList{Storage: storage, Key: key}
}

// Items returns the stored list; a missing key is an empty list.
func (s *ShoppingList) Items(ctx context.Context) ([]string, error) {
	raw, err := s.Storage.Get(ctx, s.Key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Key, err)
	}
	if strings.TrimSpace(raw) == "" {
		return []string{}, nil
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.Key, err)
	}
	return items, nil
}

// Add appends item unless it is blank.
func (s *ShoppingList) Add(ctx context.Context, item string) ([]string, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}
	item = strings.TrimSpace(item)
	if item == "" {
		return items, nil
	}
	items = append(items, item)
	return items, s.save(ctx, items)
}

// Remove drops the item at index. Out of range indexes leave the list as is.
func (s *ShoppingList) Remove(ctx context.Context, index int) ([]string, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(items) {
		return items, nil
	}
	items = append(items[:index], items[index+1:]...)
	return items, s.save(ctx, items)
}

func (s *ShoppingList) save(ctx context.Context, items []string) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	ok, err := s.Storage.Set(ctx, s.Key, string(data))
	if err != nil {
		return fmt.Errorf("write %s: %w", s.Key, err)
	}
	if !ok {
		return fmt.Errorf("write %s: rejected by host", s.Key)
	}
	return nil
}
