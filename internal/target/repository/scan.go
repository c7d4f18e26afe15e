// Package repository implements target application persistence for PostgreSQL and MySQL.
package repository

import (
	"encoding/json"

	targetDomain "github.com/allisson/iga/internal/target/domain"
)

const targetApplicationColumns = `id, name, protocol, auth_type, base_url, config, is_active, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTargetApplication(row rowScanner) (*targetDomain.TargetApplication, error) {
	var app targetDomain.TargetApplication
	var config []byte

	if err := row.Scan(
		&app.ID,
		&app.Name,
		&app.Protocol,
		&app.AuthType,
		&app.BaseURL,
		&config,
		&app.IsActive,
		&app.CreatedAt,
	); err != nil {
		return nil, err
	}

	app.Config = json.RawMessage(config)
	return &app, nil
}
