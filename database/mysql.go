package database

import (
	"database/sql"
	"log"

	_ "github.com/go-sql-driver/mysql"
	"socialword/config"
)

var DB *sql.DB

func Connect() error {
	var err error
	DB, err = sql.Open("mysql", config.Cfg.MysqlDSN)
	if err != nil {
		return err
	}

	if err = DB.Ping(); err != nil {
		return err
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(5)

	log.Println("Database connected successfully")
	return nil
}

func Close() {
	if DB != nil {
		DB.Close()
	}
}

// CreateTables creates the schema on startup. Relationship and message
// tables store created_at as unix microseconds (BIGINT) so ordering is
// total and independent of DATETIME second precision.
func CreateTables() error {
	tables := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id          VARCHAR(36) PRIMARY KEY,
			email       VARCHAR(255) NOT NULL,
			username    VARCHAR(50) NOT NULL,
			password    VARCHAR(255) NOT NULL,
			bio         VARCHAR(500) NOT NULL DEFAULT '',
			avatar_url  VARCHAR(255) NOT NULL DEFAULT '',
			is_private  BOOLEAN NOT NULL DEFAULT FALSE,
			is_verified BOOLEAN NOT NULL DEFAULT FALSE,
			created_at  DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at  DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uk_email (email),
			UNIQUE KEY uk_username (username)
		)`,
		`CREATE TABLE IF NOT EXISTS verification_codes (
			id          VARCHAR(36) PRIMARY KEY,
			email       VARCHAR(255) NOT NULL,
			code        VARCHAR(8) NOT NULL,
			expires_at  BIGINT NOT NULL,
			created_at  DATETIME DEFAULT CURRENT_TIMESTAMP,
			INDEX idx_email (email)
		)`,
		`CREATE TABLE IF NOT EXISTS posts (
			id          VARCHAR(36) PRIMARY KEY,
			author_id   VARCHAR(36) NOT NULL,
			content     TEXT NOT NULL,
			media_url   VARCHAR(255),
			created_at  DATETIME DEFAULT CURRENT_TIMESTAMP,
			INDEX idx_author (author_id),
			INDEX idx_created (created_at)
		)`,
		`CREATE TABLE IF NOT EXISTS comments (
			id          VARCHAR(36) PRIMARY KEY,
			post_id     VARCHAR(36) NOT NULL,
			author_id   VARCHAR(36) NOT NULL,
			content     TEXT NOT NULL,
			created_at  DATETIME DEFAULT CURRENT_TIMESTAMP,
			INDEX idx_post_time (post_id, created_at)
		)`,
		`CREATE TABLE IF NOT EXISTS likes (
			id          VARCHAR(36) PRIMARY KEY,
			post_id     VARCHAR(36) NOT NULL,
			user_id     VARCHAR(36) NOT NULL,
			created_at  DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uk_post_user (post_id, user_id),
			INDEX idx_user (user_id)
		)`,
		`CREATE TABLE IF NOT EXISTS media (
			id          VARCHAR(36) PRIMARY KEY,
			user_id     VARCHAR(36) NOT NULL,
			url         VARCHAR(255) NOT NULL,
			type        ENUM('image', 'video') NOT NULL,
			created_at  DATETIME DEFAULT CURRENT_TIMESTAMP,
			INDEX idx_user (user_id)
		)`,
		`CREATE TABLE IF NOT EXISTS follow_edges (
			id           VARCHAR(36) PRIMARY KEY,
			follower_id  VARCHAR(36) NOT NULL,
			following_id VARCHAR(36) NOT NULL,
			created_at   BIGINT NOT NULL,
			UNIQUE KEY uk_follow (follower_id, following_id),
			INDEX idx_following (following_id)
		)`,
		`CREATE TABLE IF NOT EXISTS friend_requests (
			id          VARCHAR(36) PRIMARY KEY,
			sender_id   VARCHAR(36) NOT NULL,
			receiver_id VARCHAR(36) NOT NULL,
			status      ENUM('pending', 'accepted', 'declined') NOT NULL DEFAULT 'pending',
			pending_key VARCHAR(80),
			created_at  BIGINT NOT NULL,
			UNIQUE KEY uk_pending (pending_key),
			INDEX idx_receiver_status (receiver_id, status),
			INDEX idx_sender_status (sender_id, status)
		)`,
		`CREATE TABLE IF NOT EXISTS messages (
			id          VARCHAR(36) PRIMARY KEY,
			sender_id   VARCHAR(36) NOT NULL,
			receiver_id VARCHAR(36) NOT NULL,
			content     TEXT NOT NULL,
			created_at  BIGINT NOT NULL,
			INDEX idx_sender_time (sender_id, created_at),
			INDEX idx_receiver_time (receiver_id, created_at)
		)`,
	}

	for _, table := range tables {
		if _, err := DB.Exec(table); err != nil {
			return err
		}
	}

	log.Println("Database tables created successfully")
	return nil
}
