package sdk

import (
	"github.com/syndtr/goleveldb/leveldb"
)

// LevelState persists chain state in a goleveldb directory. A tx lands as one
// batch, so a crash mid-commit leaves either all or none of it on disk.
type LevelState struct {
	db *leveldb.DB
}

// OpenLevelState opens (or creates) the database at path.
// Example payload: sdk.OpenLevelState("./data/chain")
func OpenLevelState(path string) (*LevelState, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}
	return &LevelState{db: db}, nil
}

func (l *LevelState) Get(key string) (*string, error) {
	data, err := l.db.Get([]byte(key), nil)
	if err == leveldb.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	val := string(data)
	return &val, nil
}

func (l *LevelState) Write(changes map[string]*string) error {
	batch := new(leveldb.Batch)
	for k, v := range changes {
		if v == nil {
			batch.Delete([]byte(k))
			continue
		}
		batch.Put([]byte(k), []byte(*v))
	}
	return l.db.Write(batch, nil)
}

func (l *LevelState) Close() error {
	return l.db.Close()
}
