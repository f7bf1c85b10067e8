package blockrepo

import (
	"context"
	"encoding/binary"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/go-petr/swagbank/internal/domain"
	"github.com/go-petr/swagbank/pkg/jsonpkg"
)

var (
	blockPrefix = []byte("blocks:")
	seqKey      = []byte("meta:next_seq")
)

// RepoLevelDB stores blocks in an embedded LevelDB under big-endian sequence
// keys, so that key order is append order.
type RepoLevelDB struct {
	mu   sync.Mutex
	once sync.Once
	db   *leveldb.DB
	next uint64
}

// OpenLevelDB opens or creates the store in directory.
func OpenLevelDB(directory string) (*RepoLevelDB, error) {
	db, err := leveldb.OpenFile(directory, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "open leveldb block store")
	}

	r := &RepoLevelDB{db: db}

	v, err := db.Get(seqKey, nil)

	switch {
	case err == nil:
		r.next = binary.BigEndian.Uint64(v)
	case pkgerrors.Is(err, leveldb.ErrNotFound):
	default:
		_ = db.Close()
		return nil, pkgerrors.Wrap(err, "read block sequence")
	}

	return r, nil
}

func blockKey(seq uint64) []byte {
	key := make([]byte, len(blockPrefix)+8)
	copy(key, blockPrefix)
	binary.BigEndian.PutUint64(key[len(blockPrefix):], seq)

	return key
}

// Append stores b after every block already stored.
func (r *RepoLevelDB) Append(_ context.Context, b domain.Block) error {
	body, err := jsonpkg.Marshal(b)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var next [8]byte
	binary.BigEndian.PutUint64(next[:], r.next+1)

	batch := new(leveldb.Batch)
	batch.Put(blockKey(r.next), body)
	batch.Put(seqKey, next[:])

	if err := r.db.Write(batch, nil); err != nil {
		return pkgerrors.Wrapf(err, "write block %s", b.ID())
	}

	r.next++

	return nil
}

// Delete removes the block id.
func (r *RepoLevelDB) Delete(_ context.Context, id domain.BlockID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var found []byte

	err := r.scan(func(key []byte, b domain.Block) bool {
		if b.ID().Equal(id) {
			found = append([]byte(nil), key...)
			return false
		}

		return true
	})
	if err != nil {
		return err
	}

	if found == nil {
		return domain.ErrBlockNotFound
	}

	return pkgerrors.Wrap(r.db.Delete(found, nil), "delete block")
}

// List returns all blocks in append order.
func (r *RepoLevelDB) List(_ context.Context) ([]domain.Block, error) {
	var blocks []domain.Block

	err := r.scan(func(_ []byte, b domain.Block) bool {
		blocks = append(blocks, b)
		return true
	})
	if err != nil {
		return nil, err
	}

	return blocks, nil
}

func (r *RepoLevelDB) scan(fn func(key []byte, b domain.Block) bool) error {
	iter := r.db.NewIterator(util.BytesPrefix(blockPrefix), nil)
	defer iter.Release()

	for iter.Next() {
		var b domain.Block
		if err := jsonpkg.Unmarshal(iter.Value(), &b); err != nil {
			return pkgerrors.Wrapf(err, "decode block at key %x", iter.Key())
		}

		if !fn(iter.Key(), b) {
			break
		}
	}

	return pkgerrors.Wrap(iter.Error(), "iterate blocks")
}

// Close closes the database. It is safe to call more than once.
func (r *RepoLevelDB) Close() error {
	var err error

	r.once.Do(func() {
		err = r.db.Close()
	})

	return err
}
