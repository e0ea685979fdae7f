// Package solana is a minimal read-only JSON-RPC client for the Solana
// ledger. The payment verifier only ever needs getTransaction, so no chain
// SDK is pulled in.
package solana

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/skillchain/skillchain-api/config"
)

// ErrTransactionNotFound is returned when the RPC node does not know the
// signature (not finalized yet, wrong cluster, or malformed).
var ErrTransactionNotFound = errors.New("transaction not found")

// Client fetches transaction records from the ledger.
type Client interface {
	GetTransaction(ctx context.Context, signature string) (*TransactionDetail, error)
}

// TransactionDetail is the slice of a confirmed transaction the verifier
// cares about: who signed, whether it executed, and how every account's
// balance moved.
type TransactionDetail struct {
	AccountKeys  []string
	PreBalances  []int64
	PostBalances []int64
	Failed       bool
}

// FeePayer returns the first signer account, which on Solana is always the
// account that paid for the transaction.
func (t *TransactionDetail) FeePayer() string {
	if len(t.AccountKeys) == 0 {
		return ""
	}
	return t.AccountKeys[0]
}

// BalanceDelta returns post-minus-pre lamports for the given address and
// whether the address appears in the transaction's account list at all.
func (t *TransactionDetail) BalanceDelta(address string) (int64, bool) {
	for i, key := range t.AccountKeys {
		if key != address {
			continue
		}
		if i >= len(t.PreBalances) || i >= len(t.PostBalances) {
			return 0, false
		}
		return t.PostBalances[i] - t.PreBalances[i], true
	}
	return 0, false
}

type rpcClient struct {
	url        string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Solana.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &rpcClient{
		url:        cfg.Solana.RPCURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type getTransactionResult struct {
	Meta *struct {
		Err          json.RawMessage `json:"err"`
		PreBalances  []int64         `json:"preBalances"`
		PostBalances []int64         `json:"postBalances"`
	} `json:"meta"`
	Transaction *struct {
		Message struct {
			AccountKeys []string `json:"accountKeys"`
		} `json:"message"`
	} `json:"transaction"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

func (c *rpcClient) GetTransaction(ctx context.Context, signature string) (*TransactionDetail, error) {
	payload := rpcRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "getTransaction",
		Params: []any{
			signature,
			map[string]any{
				"commitment":                     "confirmed",
				"maxSupportedTransactionVersion": 0,
				"encoding":                       "json",
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal rpc request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build rpc request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rpc call getTransaction: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rpc call getTransaction: status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read rpc response: %w", err)
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(raw, &rpcResp); err != nil {
		return nil, fmt.Errorf("decode rpc response: %w", err)
	}
	if rpcResp.Error != nil {
		return nil, fmt.Errorf("rpc error %d: %s", rpcResp.Error.Code, rpcResp.Error.Message)
	}
	if len(rpcResp.Result) == 0 || string(rpcResp.Result) == "null" {
		return nil, ErrTransactionNotFound
	}

	var result getTransactionResult
	if err := json.Unmarshal(rpcResp.Result, &result); err != nil {
		return nil, fmt.Errorf("decode transaction: %w", err)
	}
	if result.Meta == nil || result.Transaction == nil {
		log.Warn().Str("signature", signature).Msg("getTransaction returned incomplete record")
		return nil, ErrTransactionNotFound
	}

	return &TransactionDetail{
		AccountKeys:  result.Transaction.Message.AccountKeys,
		PreBalances:  result.Meta.PreBalances,
		PostBalances: result.Meta.PostBalances,
		Failed:       len(result.Meta.Err) > 0 && string(result.Meta.Err) != "null",
	}, nil
}
