//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	userPrefix = "user:"
	expSuffix  = ":exp"
)

type IUserRepository interface {
	AddExp(senderID string, amount int64) (int64, error)
	GetExp(senderID string) (int64, error)
	TopExp(limit int) ([]UserExp, error)
}

type UserRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewUserRepository(db *badger.DB, log *slog.Logger) UserRepository {
	return UserRepository{db: db, log: log}
}

// UserExp is one leaderboard row.
type UserExp struct {
	SenderID string
	Exp      int64
}

func expKey(senderID string) []byte {
	return []byte(userPrefix + senderID + expSuffix)
}

// AddExp increments the sender's experience inside a single transaction
// and returns the new total. Unknown senders start at zero.
func (u UserRepository) AddExp(senderID string, amount int64) (int64, error) {
	var total int64
	err := u.db.Update(func(txn *badger.Txn) error {
		current, err := readExp(txn, senderID)
		if err != nil {
			return err
		}
		total = current + amount
		bytes, err := proto.Marshal(wrapperspb.Int64(total))
		if err != nil {
			return fmt.Errorf("marshal failed: %w", err)
		}
		return txn.Set(expKey(senderID), bytes)
	})
	if err != nil {
		return 0, err
	}
	u.log.Debug("Exp added", "sender", senderID, "amount", amount, "total", total)
	return total, nil
}

func (u UserRepository) GetExp(senderID string) (int64, error) {
	var exp int64
	err := u.db.View(func(txn *badger.Txn) error {
		var err error
		exp, err = readExp(txn, senderID)
		return err
	})
	return exp, err
}

// TopExp scans every user and returns the highest totals first.
// A limit <= 0 returns everybody.
func (u UserRepository) TopExp(limit int) ([]UserExp, error) {
	var rows []UserExp
	err := u.db.View(func(txn *badger.Txn) error {
		prefix := []byte(userPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			key := string(item.Key())
			if !strings.HasSuffix(key, expSuffix) {
				continue
			}
			senderID := strings.TrimSuffix(strings.TrimPrefix(key, userPrefix), expSuffix)
			err := item.Value(func(val []byte) error {
				exp, err := decodeExp(val)
				if err != nil {
					return err
				}
				rows = append(rows, UserExp{SenderID: senderID, Exp: exp})
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

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Exp == rows[j].Exp {
			return rows[i].SenderID < rows[j].SenderID
		}
		return rows[i].Exp > rows[j].Exp
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func readExp(txn *badger.Txn, senderID string) (int64, error) {
	item, err := txn.Get(expKey(senderID))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	var exp int64
	err = item.Value(func(val []byte) error {
		exp, err = decodeExp(val)
		return err
	})
	return exp, err
}

func decodeExp(val []byte) (int64, error) {
	var value wrapperspb.Int64Value
	if err := proto.Unmarshal(val, &value); err != nil {
		return 0, fmt.Errorf("unmarshal failed: %w", err)
	}
	return value.GetValue(), nil
}
