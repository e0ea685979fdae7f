package solana

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillchain/skillchain-api/config"
)

// rpcServer fakes a Solana JSON-RPC node returning the given result body for
// every getTransaction call.
func rpcServer(t *testing.T, result string) (*httptest.Server, *rpcRequest) {
	t.Helper()
	var captured rpcRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":1,"result":%s}`, result)
	}))
	t.Cleanup(srv.Close)
	return srv, &captured
}

func newTestClient(url string) Client {
	return NewClient(&config.Config{Solana: config.Solana{RPCURL: url, TimeoutSeconds: 5}})
}

const successfulTransfer = `{
	"meta": {
		"err": null,
		"preBalances": [2000000000, 500, 1],
		"postBalances": [995000000, 1000000500, 1]
	},
	"transaction": {
		"message": {
			"accountKeys": ["PayerAAA", "TreasuryBBB", "11111111111111111111111111111111"]
		}
	}
}`

func TestGetTransaction_ParsesConfirmedTransfer(t *testing.T) {
	srv, captured := rpcServer(t, successfulTransfer)
	client := newTestClient(srv.URL)

	tx, err := client.GetTransaction(context.Background(), "sig-ok")
	require.NoError(t, err)

	assert.Equal(t, "getTransaction", captured.Method)
	require.Len(t, captured.Params, 2)
	assert.Equal(t, "sig-ok", captured.Params[0])
	opts, ok := captured.Params[1].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "confirmed", opts["commitment"])
	assert.EqualValues(t, 0, opts["maxSupportedTransactionVersion"])

	assert.False(t, tx.Failed)
	assert.Equal(t, "PayerAAA", tx.FeePayer())

	delta, involved := tx.BalanceDelta("TreasuryBBB")
	require.True(t, involved)
	assert.EqualValues(t, 1_000_000_000, delta)
}

func TestGetTransaction_NullResultIsNotFound(t *testing.T) {
	srv, _ := rpcServer(t, "null")
	client := newTestClient(srv.URL)

	_, err := client.GetTransaction(context.Background(), "sig-unknown")
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestGetTransaction_OnChainFailureIsFlagged(t *testing.T) {
	failed := `{
		"meta": {
			"err": {"InstructionError": [0, {"Custom": 1}]},
			"preBalances": [2000000000, 500],
			"postBalances": [1999995000, 500]
		},
		"transaction": {"message": {"accountKeys": ["PayerAAA", "TreasuryBBB"]}}
	}`
	srv, _ := rpcServer(t, failed)
	client := newTestClient(srv.URL)

	tx, err := client.GetTransaction(context.Background(), "sig-failed")
	require.NoError(t, err)
	assert.True(t, tx.Failed)
}

func TestGetTransaction_RPCErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"jsonrpc":"2.0","id":1,"error":{"code":-32602,"message":"invalid signature"}}`)
	}))
	t.Cleanup(srv.Close)
	client := newTestClient(srv.URL)

	_, err := client.GetTransaction(context.Background(), "sig-bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTransactionNotFound)
	assert.Contains(t, err.Error(), "invalid signature")
}

func TestBalanceDelta_AbsentAccount(t *testing.T) {
	tx := &TransactionDetail{
		AccountKeys:  []string{"A", "B"},
		PreBalances:  []int64{10, 20},
		PostBalances: []int64{5, 25},
	}

	_, involved := tx.BalanceDelta("C")
	assert.False(t, involved)

	delta, involved := tx.BalanceDelta("B")
	require.True(t, involved)
	assert.EqualValues(t, 5, delta)
}
