package store

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"time"

	"github.com/inovacc/givr/internal/application"
	"go.etcd.io/bbolt"
)

const (
	bucketSession = "session" // key: "session" -> Session JSON
	bucketConfig  = "config"  // key: "config" -> Config JSON

	sessionKey = "session"
	configKey  = "config"
)

// DefaultServerURL is used when neither the --server flag nor a stored
// configuration provides one.
const DefaultServerURL = "http://localhost:8000"

// ErrNoSession indicates no login has been performed yet.
var ErrNoSession = errors.New("no active session, run 'givr login' first")

// Session is the locally persisted authentication state plus the identity
// fields the views need (full name, username, city).
type Session struct {
	ServerURL string    `json:"server_url"`
	Token     string    `json:"token"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	City      string    `json:"city"`
	SavedAt   time.Time `json:"saved_at"`
}

// Config holds client defaults.
type Config struct {
	ServerURL string `json:"server_url"`
}

// DefaultConfig returns the configuration used before any login.
func DefaultConfig() Config {
	return Config{ServerURL: DefaultServerURL}
}

// Bolt is the BoltDB-backed store.
type Bolt struct {
	storage *bbolt.DB
}

// NewBolt creates a Bolt store at the specified path.
// This is primarily exposed for testing purposes.
func NewBolt(path string) (*Bolt, error) {
	instance, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(bucketSession)); err != nil {
			return err
		}

		if _, err := tx.CreateBucketIfNotExists([]byte(bucketConfig)); err != nil {
			return err
		}

		return nil
	}); err != nil {
		_ = instance.Close()

		return nil, err
	}

	return &Bolt{storage: instance}, nil
}

// Open opens the store at its default location in the application directory.
func Open() (*Bolt, error) {
	dir, err := application.GetApplicationDirectory()
	if err != nil {
		return nil, err
	}

	return NewBolt(filepath.Join(dir, "givr.bolt"))
}

// Close closes the database.
func (b *Bolt) Close() error {
	return b.storage.Close()
}

func (b *Bolt) Ping() error {
	return b.storage.View(func(tx *bbolt.Tx) error {
		return nil
	})
}

// SaveSession persists the session, stamping SavedAt.
func (b *Bolt) SaveSession(s *Session) error {
	if s == nil {
		return errors.New("session is required")
	}

	if s.Token == "" {
		return errors.New("session token is required")
	}

	s.SavedAt = time.Now()

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return b.storage.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketSession))

		return bucket.Put([]byte(sessionKey), data)
	})
}

// GetSession returns the stored session, or ErrNoSession when absent.
func (b *Bolt) GetSession() (*Session, error) {
	var session *Session

	err := b.storage.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketSession))
		v := bucket.Get([]byte(sessionKey))

		if v == nil {
			return ErrNoSession
		}

		var s Session
		if err := json.Unmarshal(v, &s); err != nil {
			return err
		}

		session = &s

		return nil
	})
	if err != nil {
		return nil, err
	}

	return session, nil
}

// ClearSession removes the stored session. Clearing an absent session is not
// an error.
func (b *Bolt) ClearSession() error {
	return b.storage.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketSession))

		return bucket.Delete([]byte(sessionKey))
	})
}

// GetConfig returns the stored configuration, or defaults when absent.
func (b *Bolt) GetConfig() (*Config, error) {
	var cfg *Config

	err := b.storage.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketConfig))
		v := bucket.Get([]byte(configKey))

		if v == nil {
			defaultCfg := DefaultConfig()
			cfg = &defaultCfg

			return nil
		}

		var c Config
		if err := json.Unmarshal(v, &c); err != nil {
			return err
		}

		cfg = &c

		return nil
	})

	return cfg, err
}

// SaveConfig persists the configuration.
func (b *Bolt) SaveConfig(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is required")
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	return b.storage.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketConfig))

		return bucket.Put([]byte(configKey), data)
	})
}
