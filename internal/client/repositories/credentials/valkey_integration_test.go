//go:build integration

package credentials

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
	valkeycontainer "github.com/testcontainers/testcontainers-go/modules/valkey"
	"github.com/valkey-io/valkey-go"
)

func startValkey(t *testing.T) valkey.Client {
	t.Helper()
	ctx := context.Background()

	container, err := valkeycontainer.Run(ctx, "valkey/valkey:8-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client, err := OpenValkey(net.JoinHostPort("localhost", port.Port()))
	require.NoError(t, err)
	t.Cleanup(client.Close)
	return client
}

func TestValkeyRepository_Contract(t *testing.T) {
	client := startValkey(t)
	testRepositoryContract(t, NewValkeyRepository(client, "unievents-test:"))
}

func TestValkeyRepository_KeysArePrefixed(t *testing.T) {
	ctx := context.Background()
	client := startValkey(t)
	r := NewValkeyRepository(client, "campus")

	require.NoError(t, r.Set(ctx, "token", "T"))

	raw, err := client.Do(ctx, client.B().Get().Key("campus:token").Build()).ToString()
	require.NoError(t, err)
	require.Equal(t, "T", raw)
}
