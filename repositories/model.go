//go:generate go run go.uber.org/mock/mockgen -source=model.go -destination=../mocks/mock_model_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"phish-lab/errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const modelPrefix = "model:"

type IModelRepository interface {
	Store(record ModelRecord) error
	Latest() (ModelRecord, error)
	List(limit int) ([]ModelRecord, error)
}

type ModelRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewModelRepository(db *badger.DB, log *slog.Logger) ModelRepository {
	return ModelRepository{db: db, log: log}
}

// ModelRecord is one training run kept in the registry. Document holds the
// exact bytes written to the model file.
type ModelRecord struct {
	ID        uuid.UUID
	TrainedAt time.Time
	Accuracy  float64
	Samples   int
	Document  []byte
}

type diskModel struct {
	ID        string  `json:"id"`
	TrainedAt int64   `json:"trained_at"`
	Accuracy  float64 `json:"accuracy"`
	Samples   int     `json:"samples"`
	Document  []byte  `json:"document"`
}

// Store persists a record under "model:{timestamp_padded}:{uuid}".
// The 19-digit padding keeps keys in chronological order and the uuid
// separates two runs finishing on the same nanosecond.
func (m ModelRepository) Store(record ModelRecord) error {
	key := fmt.Sprintf("%s%019d:%s", modelPrefix, record.TrainedAt.UnixNano(), record.ID)
	bytes, err := json.Marshal(fromModelRecord(record))
	if err != nil {
		return err
	}
	err = m.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
	if err != nil {
		return err
	}
	m.log.Debug("Model stored", "key", key, "bytes", len(record.Document))
	return nil
}

// Latest returns the most recently trained model.
func (m ModelRepository) Latest() (ModelRecord, error) {
	records, err := m.List(1)
	if err != nil {
		return ModelRecord{}, err
	}
	if len(records) == 0 {
		return ModelRecord{}, errors.ErrModelNotFound
	}
	return records[0], nil
}

// List walks the registry newest first and stops after limit records.
// A limit of zero or less returns every record.
func (m ModelRepository) List(limit int) ([]ModelRecord, error) {
	var values [][]byte
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte(modelPrefix)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Start past the highest possible timestamp and walk backwards
		it.Seek(append([]byte(modelPrefix), []byte("9999999999999999999;")...))
		for ; it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(values) == limit {
				break
			}
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			values = append(values, value)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	records := make([]ModelRecord, 0, len(values))
	for _, b := range values {
		var disk diskModel
		if err = json.Unmarshal(b, &disk); err != nil {
			return nil, err
		}
		record, err := toModelRecord(disk)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func fromModelRecord(record ModelRecord) diskModel {
	return diskModel{
		ID:        record.ID.String(),
		TrainedAt: record.TrainedAt.UnixNano(),
		Accuracy:  record.Accuracy,
		Samples:   record.Samples,
		Document:  record.Document,
	}
}

func toModelRecord(disk diskModel) (ModelRecord, error) {
	id, err := uuid.Parse(disk.ID)
	if err != nil {
		return ModelRecord{}, err
	}
	return ModelRecord{
		ID:        id,
		TrainedAt: time.Unix(0, disk.TrainedAt).UTC(),
		Accuracy:  disk.Accuracy,
		Samples:   disk.Samples,
		Document:  disk.Document,
	}, nil
}
