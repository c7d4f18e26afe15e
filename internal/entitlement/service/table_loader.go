package service

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"gocloud.dev/blob"

	entitlementDomain "github.com/allisson/iga/internal/entitlement/domain"

	// Register blob drivers
	_ "gocloud.dev/blob/fileblob"
)

//go:embed roles.json
var builtinRoleTable []byte

// ParseRoleTable decodes and validates a JSON role table.
func ParseRoleTable(data []byte) (*entitlementDomain.RoleTable, error) {
	var table entitlementDomain.RoleTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("%w: %v", entitlementDomain.ErrInvalidRoleTable, err)
	}
	if err := table.Normalize(); err != nil {
		return nil, err
	}
	return &table, nil
}

// BuiltinRoleTable returns the role table compiled into the binary.
func BuiltinRoleTable() (*entitlementDomain.RoleTable, error) {
	return ParseRoleTable(builtinRoleTable)
}

// LoadRoleTable reads a role table object from a gocloud.dev bucket.
// bucketURL is any registered blob URL, e.g. file:///etc/iga.
func LoadRoleTable(ctx context.Context, bucketURL, key string) (*entitlementDomain.RoleTable, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open role table bucket: %w", err)
	}
	defer func() {
		_ = bucket.Close()
	}()

	data, err := bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read role table %q: %w", key, err)
	}

	return ParseRoleTable(data)
}
