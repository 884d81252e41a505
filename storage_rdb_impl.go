package tinysearch

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

type DBConfig struct {
	User     string
	Password string
	Addr     string
	Port     string
	DB       string
}

func NewDBConfig(user, password, addr, port, db string) *DBConfig {
	return &DBConfig{
		User:     user,
		Password: password,
		Addr:     addr,
		Port:     port,
		DB:       db,
	}
}

func NewDBClient(dbConfig *DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open(
		"mysql",
		fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbConfig.User, dbConfig.Password, dbConfig.Addr, dbConfig.Port, dbConfig.DB),
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}

// StorageRdbImpl stores JSON-encoded snapshots in a MySQL table keyed by
// snapshot name:
//
//	create table snapshots (
//	    name varchar(255) primary key,
//	    payload mediumtext not null
//	);
type StorageRdbImpl struct {
	DB *sqlx.DB
}

func NewStorageRdbImpl(db *sqlx.DB) *StorageRdbImpl {
	return &StorageRdbImpl{
		DB: db,
	}
}

func (s *StorageRdbImpl) SaveSnapshot(name string, snapshot Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	_, err = s.DB.NamedExec(
		`insert into snapshots (name, payload)
		values (:name, :payload)
		on duplicate key update payload = :payload`,
		map[string]interface{}{
			"name":    name,
			"payload": string(payload),
		})
	return err
}

func (s *StorageRdbImpl) LoadSnapshot(name string) (Snapshot, error) {
	var payload string
	if err := s.DB.Get(&payload, `select payload from snapshots where name = ?`, name); err != nil {
		if err == sql.ErrNoRows {
			return Snapshot{}, ErrSnapshotNotFound
		}
		return Snapshot{}, err
	}
	var snapshot Snapshot
	if err := json.Unmarshal([]byte(payload), &snapshot); err != nil {
		return Snapshot{}, err
	}
	return snapshot, nil
}
