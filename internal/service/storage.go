package service

import "context"

// StorageService is a string key/value store owned by the host.
type StorageService interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) (bool, error)
}

// LocalStorage is the bridge surface BridgeStorage delegates to.
type LocalStorage interface {
	GetLocalStorage(ctx context.Context, key string) (string, error)
	SetLocalStorage(ctx context.Context, key, value string) (bool, error)
}

// BridgeStorage stores values in the device host's local storage.
// A missing key reads as "".
type BridgeStorage struct {
	Bridge LocalStorage
}

func NewBridgeStorage(b LocalStorage) *BridgeStorage {
	return &BridgeStorage{Bridge: b}
}

func (s *BridgeStorage) Get(ctx context.Context, key string) (string, error) {
	return s.Bridge.GetLocalStorage(ctx, key)
}

func (s *BridgeStorage) Set(ctx context.Context, key, value string) (bool, error) {
	return s.Bridge.SetLocalStorage(ctx, key, value)
}
