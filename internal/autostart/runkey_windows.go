//go:build windows

package autostart

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

type registryStore struct{}

// NewRunKeyStore returns a RunKeyStore backed by the Windows registry.
func NewRunKeyStore() RunKeyStore {
	return registryStore{}
}

func (registryStore) ReadRunKey(hive Hive) ([]RunValue, error) {
	root := registry.CURRENT_USER
	if hive == HiveLocalMachine {
		root = registry.LOCAL_MACHINE
	}

	key, err := registry.OpenKey(root, RunKeyPath, registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("opening %s\\%s: %w", hive, RunKeyPath, err)
	}
	defer key.Close()

	names, err := key.ReadValueNames(-1)
	if err != nil {
		return nil, fmt.Errorf("reading value names: %w", err)
	}

	values := make([]RunValue, 0, len(names))
	for _, name := range names {
		data, valType, err := key.GetStringValue(name)
		switch {
		case errors.Is(err, registry.ErrUnexpectedType):
			values = append(values, RunValue{Name: name, Type: ValueOther})
		case err != nil:
			values = append(values, RunValue{Name: name, Err: err})
		case valType == registry.EXPAND_SZ:
			values = append(values, RunValue{Name: name, Type: ValueExpandString, Data: data})
		default:
			values = append(values, RunValue{Name: name, Type: ValueString, Data: data})
		}
	}
	return values, nil
}
