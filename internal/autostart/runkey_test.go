package autostart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRunKeyStore struct {
	values map[Hive][]RunValue
	errs   map[Hive]error
}

func (s fakeRunKeyStore) ReadRunKey(hive Hive) ([]RunValue, error) {
	if err, ok := s.errs[hive]; ok {
		return nil, err
	}
	return s.values[hive], nil
}

func TestRunKeyReader_CurrentUserValue(t *testing.T) {
	store := fakeRunKeyStore{
		values: map[Hive][]RunValue{
			HiveCurrentUser: {{Name: "Updater", Type: ValueString, Data: `C:\Prog\upd.exe`}},
		},
		errs: map[Hive]error{HiveLocalMachine: ErrKeyNotFound},
	}

	items, err := NewRunKeyReader(store, zap.NewNop()).Read(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "Updater", item.Label())
	assert.Equal(t, KindRegistryRun, item.Kind())
	assert.Equal(t, ScopeUser, item.Scope())
	path, ok := item.Path()
	assert.True(t, ok)
	assert.Equal(t, `C:\Prog\upd.exe`, path)
}

func TestRunKeyReader_SkipsNonStringAndUnreadableValues(t *testing.T) {
	store := fakeRunKeyStore{
		values: map[Hive][]RunValue{
			HiveCurrentUser: {
				{Name: "Binary", Type: ValueOther},
				{Name: "Broken", Err: errors.New("access denied")},
				{Name: "Helper", Type: ValueExpandString, Data: `%LOCALAPPDATA%\helper.exe`},
			},
			HiveLocalMachine: {
				{Name: "Agent", Type: ValueString, Data: `"C:\Program Files\Agent\agent.exe" /background`},
			},
		},
	}

	items, err := NewRunKeyReader(store, zap.NewNop()).Read(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Helper", items[0].Label())
	assert.Equal(t, ScopeUser, items[0].Scope())
	assert.Equal(t, "Agent", items[1].Label())
	assert.Equal(t, ScopeSystem, items[1].Scope())
}

func TestRunKeyReader_MissingKeysYieldNothing(t *testing.T) {
	store := fakeRunKeyStore{errs: map[Hive]error{
		HiveCurrentUser:  ErrKeyNotFound,
		HiveLocalMachine: ErrKeyNotFound,
	}}

	items, err := NewRunKeyReader(store, zap.NewNop()).Read(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRunKeyReader_OneHiveFailing(t *testing.T) {
	store := fakeRunKeyStore{
		values: map[Hive][]RunValue{
			HiveCurrentUser: {{Name: "Updater", Type: ValueString, Data: "upd.exe"}},
		},
		errs: map[Hive]error{HiveLocalMachine: errors.New("access denied")},
	}

	items, err := NewRunKeyReader(store, zap.NewNop()).Read(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestRunKeyReader_AllHivesFailing(t *testing.T) {
	store := fakeRunKeyStore{errs: map[Hive]error{
		HiveCurrentUser:  errors.New("access denied"),
		HiveLocalMachine: errors.New("access denied"),
	}}

	items, err := NewRunKeyReader(store, zap.NewNop()).Read(context.Background())
	assert.Empty(t, items)
	var unavailable *SourceUnavailableError
	require.ErrorAs(t, err, &unavailable)
}
