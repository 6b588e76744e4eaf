//go:generate go run go.uber.org/mock/mockgen -source=game.go -destination=../mocks/mock_game_repository.go -package=mocks
package repositories

import (
	"encoding/hex"
	"fmt"
	"hangman-bot/domain"
	"log/slog"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const gamePrefix = "game:"

type IGameRepository interface {
	StoreGame(record domain.GameRecord) error
	GetGames(senderID string, limit int) ([]domain.GameRecord, error)
	GetAllGames(limit int) ([]domain.GameRecord, error)
}

type GameRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewGameRepository(db *badger.DB, log *slog.Logger) GameRepository {
	return GameRepository{db: db, log: log}
}

// StoreGame persists a finished game.
// The key is formatted as "game:{hex(sender)}:{ended_at_padded}:{uuid}" so a prefix
// scan per sender is chronological (19-digit zero padding) and two games ending
// at the same nanosecond don't collide. Sender ids may contain ':' (device JIDs
// like "123:4@s.whatsapp.net"), hence the hex segment.
func (g GameRepository) StoreGame(record domain.GameRecord) error {
	key := fmt.Sprintf("%s%019d:%s",
		senderGamePrefix(record.SenderID),
		record.EndedAt.UnixNano(),
		record.ID,
	)
	value, err := fromGameRecord(record)
	if err != nil {
		return err
	}
	bytes, err := proto.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return g.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// GetGames returns the sender's games, newest first.
func (g GameRepository) GetGames(senderID string, limit int) ([]domain.GameRecord, error) {
	return g.scan(senderGamePrefix(senderID), limit)
}

// GetAllGames returns games of every sender, newest first.
func (g GameRepository) GetAllGames(limit int) ([]domain.GameRecord, error) {
	records, err := g.scan(gamePrefix, 0)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(records, func(a, b domain.GameRecord) int {
		return b.EndedAt.Compare(a.EndedAt)
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func senderGamePrefix(senderID string) string {
	return gamePrefix + hex.EncodeToString([]byte(senderID)) + ":"
}

func (g GameRepository) scan(prefixStr string, limit int) ([]domain.GameRecord, error) {
	var values [][]byte
	err := g.db.View(func(txn *badger.Txn) error {
		prefix := []byte(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Reverse iteration starts from the highest key sharing the prefix
		seekKey := append([]byte(prefixStr), 0xFF)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(values) == limit {
				g.log.Debug(fmt.Sprintf("Maximum of %d games reached", limit))
				break
			}
			err := it.Item().Value(func(val []byte) error {
				values = append(values, append([]byte(nil), val...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	records := make([]domain.GameRecord, 0, len(values))
	for _, b := range values {
		var value structpb.Struct
		if err = proto.Unmarshal(b, &value); err != nil {
			return nil, fmt.Errorf("unmarshal failed: %w", err)
		}
		record, err := toGameRecord(&value)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func fromGameRecord(record domain.GameRecord) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"id":            record.ID.String(),
		"sender":        record.SenderID,
		"chat":          record.Chat,
		"word":          record.Word,
		"status":        record.Status.String(),
		"wrong_guesses": record.WrongGuesses,
		"exp":           record.Exp,
		"started_at":    record.StartedAt.UTC().Format(time.RFC3339Nano),
		"ended_at":      record.EndedAt.UTC().Format(time.RFC3339Nano),
	})
}

func toGameRecord(value *structpb.Struct) (domain.GameRecord, error) {
	fields := value.GetFields()
	parsedID, err := uuid.Parse(fields["id"].GetStringValue())
	if err != nil {
		return domain.GameRecord{}, err
	}
	startedAt, err := time.Parse(time.RFC3339Nano, fields["started_at"].GetStringValue())
	if err != nil {
		return domain.GameRecord{}, err
	}
	endedAt, err := time.Parse(time.RFC3339Nano, fields["ended_at"].GetStringValue())
	if err != nil {
		return domain.GameRecord{}, err
	}
	return domain.GameRecord{
		ID:           parsedID,
		SenderID:     fields["sender"].GetStringValue(),
		Chat:         fields["chat"].GetStringValue(),
		Word:         fields["word"].GetStringValue(),
		Status:       domain.ParseStatus(fields["status"].GetStringValue()),
		WrongGuesses: int(fields["wrong_guesses"].GetNumberValue()),
		Exp:          int64(fields["exp"].GetNumberValue()),
		StartedAt:    startedAt,
		EndedAt:      endedAt,
	}, nil
}
