package session

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/teamboard/teamboard/internal/models"
)

// Session is the client's record of the current authenticated identity.
// Role, Username and SubjectID are present if and only if Token is present;
// the store persists and clears all four together.
type Session struct {
	Token     string
	Role      models.Role
	Username  string
	SubjectID int64
}

// IsAuthenticated reports token presence, the sole authentication predicate.
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}

// IsPrivileged reports whether the session carries the PM role.
func (s Session) IsPrivileged() bool {
	return s.Role == models.RolePM
}

// record is the single durable row backing the session.
type record struct {
	ID        uint   `gorm:"primarykey"`
	Token     string `gorm:"not null"`
	Role      string `gorm:"not null"`
	Username  string `gorm:"not null"`
	SubjectID int64  `gorm:"not null"`
}

func (record) TableName() string { return "sessions" }

// Store persists the session across invocations in a local SQLite database.
type Store struct {
	db *gorm.DB
}

// DefaultPath returns the path to the session database file.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".teamboard", "teamboard.db"), nil
}

// Open opens (creating if needed) the session database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create teamboard directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate session schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Set decodes the token's claims and persists the session. A token whose
// claims cannot be decoded is not stored; the returned session is zero and
// the caller proceeds as unauthenticated.
func (s *Store) Set(token string) (Session, error) {
	claims, ok := DecodeClaims(token)
	if !ok {
		if err := s.Clear(); err != nil {
			return Session{}, err
		}
		return Session{}, nil
	}

	sess := Session{
		Token:     token,
		Role:      claims.Role,
		Username:  claims.Username,
		SubjectID: claims.SubjectID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&record{}).Error; err != nil {
			return err
		}
		return tx.Create(&record{
			Token:     sess.Token,
			Role:      string(sess.Role),
			Username:  sess.Username,
			SubjectID: sess.SubjectID,
		}).Error
	})
	if err != nil {
		return Session{}, fmt.Errorf("failed to persist session: %w", err)
	}

	return sess, nil
}

// Current returns the persisted session, or a zero session when none is
// stored or the stored row no longer decodes to valid claims.
func (s *Store) Current() Session {
	var rec record
	if err := s.db.First(&rec).Error; err != nil {
		return Session{}
	}

	role := models.Role(rec.Role)
	if rec.Token == "" || !role.Valid() {
		return Session{}
	}

	return Session{
		Token:     rec.Token,
		Role:      role,
		Username:  rec.Username,
		SubjectID: rec.SubjectID,
	}
}

// Token returns the current token, empty when unauthenticated. Suitable as
// the api client's token source.
func (s *Store) Token() string {
	return s.Current().Token
}

// Clear removes the persisted session. Idempotent.
func (s *Store) Clear() error {
	return s.db.Where("1 = 1").Delete(&record{}).Error
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
