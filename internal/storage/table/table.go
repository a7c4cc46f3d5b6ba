// Package table holds the records persisted by the budget planner and the
// per-collection interfaces every storage backend implements.
package table

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// Collection names of the document store, shared with exports of the
// Firestore project the app started on.
const (
	CollectionAccounts    = "cuentas"
	CollectionIncomes     = "ingresos"
	CollectionExpenses    = "gastos"
	CollectionInvestments = "inversiones"
	CollectionCategories  = "categorias"
	CollectionTransfers   = "transacciones"
	CollectionTasks       = "tareas"
	CollectionRoutines    = "rutinas"
)

// Collections lists every collection name.
var Collections = []string{
	CollectionAccounts,
	CollectionIncomes,
	CollectionExpenses,
	CollectionInvestments,
	CollectionCategories,
	CollectionTransfers,
	CollectionTasks,
	CollectionRoutines,
}

// Ints is an integer list stored as a JSON array (jsonb in Postgres).
type Ints []int

// Value implements driver.Valuer.
func (i Ints) Value() (driver.Value, error) {
	if i == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]int(i))
}

// Scan implements sql.Scanner.
func (i *Ints) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*i = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("table.Ints: unsupported source %T", src)
	}

	var out []int
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	if len(out) == 0 {
		out = nil
	}
	*i = out
	return nil
}
