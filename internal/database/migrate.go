package database

import (
	"context"
	"database/sql"
	"fmt"
)

// migrations are applied in order at startup.  Every statement is
// idempotent (CREATE TABLE IF NOT EXISTS) so restarting the server
// against an existing database is safe.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS vehicles (
		id           BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		make         VARCHAR(64)  NOT NULL,
		model        VARCHAR(64)  NOT NULL,
		year         SMALLINT     NOT NULL,
		color        VARCHAR(32)  NOT NULL DEFAULT '',
		plate        VARCHAR(16)  NOT NULL DEFAULT '',
		chassis      VARCHAR(32)  NOT NULL DEFAULT '',
		fuel_type    VARCHAR(32)  NOT NULL DEFAULT '',
		transmission VARCHAR(32)  NOT NULL DEFAULT '',
		doors        TINYINT      NOT NULL DEFAULT 4,
		notes        TEXT         NOT NULL,
		entry_cost   DECIMAL(12,2) NOT NULL DEFAULT 0,
		sale_price   DECIMAL(12,2) NOT NULL DEFAULT 0,
		odometer     INT          NOT NULL DEFAULT 0,
		status       ENUM('IN_STOCK','SOLD') NOT NULL DEFAULT 'IN_STOCK',
		created_at   TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY idx_vehicles_status (status)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS vehicle_photos (
		id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		vehicle_id BIGINT UNSIGNED NOT NULL,
		image      MEDIUMBLOB      NOT NULL,
		created_at TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY idx_photos_vehicle (vehicle_id),
		CONSTRAINT fk_photos_vehicle FOREIGN KEY (vehicle_id) REFERENCES vehicles (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS expenses (
		id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		vehicle_id  BIGINT UNSIGNED NOT NULL,
		amount      DECIMAL(12,2)   NOT NULL,
		category    VARCHAR(64)     NOT NULL DEFAULT '',
		description TEXT            NOT NULL,
		spent_at    DATE            NOT NULL,
		created_at  TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY idx_expenses_vehicle (vehicle_id),
		CONSTRAINT fk_expenses_vehicle FOREIGN KEY (vehicle_id) REFERENCES vehicles (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS sales (
		id           BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		vehicle_id   BIGINT UNSIGNED NOT NULL,
		buyer_name   VARCHAR(128)    NOT NULL,
		amount       DECIMAL(12,2)   NOT NULL,
		sold_at      DATETIME        NOT NULL,
		contract_ref VARCHAR(255)    NULL,
		created_at   TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_sales_vehicle (vehicle_id),
		CONSTRAINT fk_sales_vehicle FOREIGN KEY (vehicle_id) REFERENCES vehicles (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS users (
		id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		username      VARCHAR(64)     NOT NULL,
		password_hash VARCHAR(255)    NOT NULL,
		display_name  VARCHAR(128)    NOT NULL DEFAULT '',
		role          ENUM('ADMIN','USER') NOT NULL DEFAULT 'USER',
		created_at    TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_users_username (username)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS leads (
		id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		vehicle_id BIGINT UNSIGNED NULL,
		name       VARCHAR(128)    NOT NULL,
		phone      VARCHAR(32)     NOT NULL,
		email      VARCHAR(128)    NOT NULL DEFAULT '',
		message    TEXT            NOT NULL,
		created_at TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY idx_leads_vehicle (vehicle_id),
		CONSTRAINT fk_leads_vehicle FOREIGN KEY (vehicle_id) REFERENCES vehicles (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		user_id    BIGINT UNSIGNED NOT NULL,
		token_hash CHAR(64)        NOT NULL,
		expires_at DATETIME        NOT NULL,
		revoked_at DATETIME        NULL,
		created_at TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_tokens_hash (token_hash),
		KEY idx_tokens_user (user_id),
		CONSTRAINT fk_tokens_user FOREIGN KEY (user_id) REFERENCES users (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Migrate creates the schema.  It runs each statement in order and
// stops at the first failure so a broken migration never leaves the
// server half-started silently.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
