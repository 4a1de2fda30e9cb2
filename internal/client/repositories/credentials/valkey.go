package credentials

import (
	"context"
	"fmt"
	"strings"

	"github.com/valkey-io/valkey-go"
)

// ValkeyRepository stores every credential as a plain string under
// "<prefix>:<key>".
type ValkeyRepository struct {
	client valkey.Client
	prefix string
}

func NewValkeyRepository(client valkey.Client, prefix string) *ValkeyRepository {
	return &ValkeyRepository{client: client, prefix: strings.TrimSuffix(prefix, ":")}
}

// OpenValkey connects to the valkey server at addr.
func OpenValkey(addr string) (valkey.Client, error) {
	client, err := valkey.NewClient(valkey.ClientOption{InitAddress: []string{addr}})
	if err != nil {
		return nil, fmt.Errorf("connect to valkey %s: %w", addr, err)
	}
	return client, nil
}

func (r *ValkeyRepository) key(key string) string {
	if r.prefix == "" {
		return key
	}
	return r.prefix + ":" + key
}

func (r *ValkeyRepository) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Do(ctx, r.client.B().Get().Key(r.key(key)).Build()).ToString()
	if valkey.IsValkeyNil(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, storageErr("get", key, err)
	}
	return value, true, nil
}

func (r *ValkeyRepository) Set(ctx context.Context, key, value string) error {
	if err := r.client.Do(ctx, r.client.B().Set().Key(r.key(key)).Value(value).Build()).Error(); err != nil {
		return storageErr("set", key, err)
	}
	return nil
}

func (r *ValkeyRepository) Remove(ctx context.Context, key string) error {
	if err := r.client.Do(ctx, r.client.B().Del().Key(r.key(key)).Build()).Error(); err != nil {
		return storageErr("remove", key, err)
	}
	return nil
}
