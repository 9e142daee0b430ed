package bridge

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoStorage is returned when the bridge has no local storage capability.
var ErrNoStorage = errors.New("bridge: local storage unavailable")

// StorageBridge reaches the host's local storage. Each call waits for the
// bridge, so it works before and independently of an Adapter connection.
type StorageBridge struct {
	handshake Handshake
}

func NewStorageBridge(handshake Handshake) *StorageBridge {
	return &StorageBridge{handshake: handshake}
}

func (s *StorageBridge) GetLocalStorage(ctx context.Context, key string) (string, error) {
	store, err := s.store(ctx)
	if err != nil {
		return "", err
	}
	return store.GetLocalStorage(ctx, key)
}

func (s *StorageBridge) SetLocalStorage(ctx context.Context, key, value string) (bool, error) {
	store, err := s.store(ctx)
	if err != nil {
		return false, err
	}
	return store.SetLocalStorage(ctx, key, value)
}

func (s *StorageBridge) store(ctx context.Context) (LocalStorage, error) {
	if s.handshake == nil {
		return nil, ErrNoBridge
	}
	device, err := s.handshake.WaitForBridge(ctx)
	if err != nil {
		return nil, fmt.Errorf("bridge handshake: %w", err)
	}
	store, ok := device.(LocalStorage)
	if !ok {
		return nil, ErrNoStorage
	}
	return store, nil
}
