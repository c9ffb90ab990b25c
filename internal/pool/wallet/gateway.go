package wallet

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	balanceTimeout    = 30 * time.Second
	defaultTimeout    = 30 * time.Second
	maxResponseLength = 1 << 20
)

var (
	ErrNotSent          = errors.New("transaction was not accepted by the node")
	ErrSolutionRejected = errors.New("solution was rejected by the node")
)

// RemoteError is an error object returned by the DLT node.
type RemoteError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("node error %d: %s", e.Code, e.Message)
}

// Config describes the pool wallet and the node that holds it.
type Config struct {
	NodeURL   string
	Address   string
	PublicKey string
	Timeout   time.Duration
}

// Gateway reaches the DLT node's JSON-RPC API on behalf of the pool wallet.
type Gateway struct {
	logger    *zap.Logger
	client    *http.Client
	nodeURL   string
	address   []byte
	publicKey []byte
	metrics   Metrics
}

// NewGateway validates the wallet identity and builds a Gateway.
func NewGateway(cfg Config, metrics Metrics, logger *zap.Logger) (*Gateway, error) {
	if cfg.NodeURL == "" {
		return nil, errors.New("wallet node url is required")
	}
	if metrics == nil {
		return nil, errors.New("wallet gateway metrics is required")
	}
	address, err := DecodeAddress(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("decode pool address: %w", err)
	}
	var publicKey []byte
	if cfg.PublicKey != "" {
		if publicKey, err = hex.DecodeString(cfg.PublicKey); err != nil {
			return nil, fmt.Errorf("decode pool public key: %w", err)
		}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Gateway{
		logger:    logger.Named("walletGateway"),
		client:    &http.Client{Timeout: timeout},
		nodeURL:   cfg.NodeURL,
		address:   address,
		publicKey: publicKey,
		metrics:   metrics,
	}, nil
}

// PrimaryAddress returns a copy of the pool's raw address.
func (g *Gateway) PrimaryAddress() []byte {
	return bytes.Clone(g.address)
}

// PrimaryPublicKey returns a copy of the pool's public key, nil when unknown.
func (g *Gateway) PrimaryPublicKey() []byte {
	return bytes.Clone(g.publicKey)
}

// Balance asks the node for the balance of an address.
func (g *Gateway) Balance(ctx context.Context, address []byte) (balance decimal.Decimal, err error) {
	started := time.Now()
	defer func() {
		g.metrics.Observe("get_balance", err, started)
	}()

	ctx, cancel := context.WithTimeout(ctx, balanceTimeout)
	defer cancel()

	var result string
	if err = g.call(ctx, "getbalance", map[string]string{"address": EncodeAddress(address)}, &result); err != nil {
		return decimal.Zero, fmt.Errorf("get balance: %w", err)
	}
	balance, err = decimal.NewFromString(result)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse balance %q: %w", result, err)
	}
	return balance, nil
}

// SendTransaction transfers amount from the pool wallet and returns the transaction id.
func (g *Gateway) SendTransaction(ctx context.Context, to []byte, amount decimal.Decimal) (txID string, err error) {
	started := time.Now()
	defer func() {
		g.metrics.Observe("send_transaction", err, started)
	}()

	if !amount.IsPositive() {
		err = fmt.Errorf("invalid amount %s", amount)
		return "", err
	}

	var result struct {
		ID string `json:"id"`
	}
	params := map[string]string{"to": EncodeAddress(to) + "_" + amount.String()}
	if err = g.call(ctx, "addtransaction", params, &result); err != nil {
		return "", fmt.Errorf("send transaction: %w", err)
	}
	if result.ID == "" {
		err = ErrNotSent
		return "", err
	}
	return result.ID, nil
}

// SendSolution broadcasts a proof-of-work solution for blockNum through the node.
func (g *Gateway) SendSolution(ctx context.Context, blockNum uint64, nonce string) (err error) {
	started := time.Now()
	defer func() {
		g.metrics.Observe("send_solution", err, started)
	}()

	var accepted bool
	params := map[string]string{
		"nonce":    nonce,
		"blocknum": strconv.FormatUint(blockNum, 10),
	}
	if err = g.call(ctx, "submitminingsolution", params, &accepted); err != nil {
		return fmt.Errorf("send solution for block %d: %w", blockNum, err)
	}
	if !accepted {
		err = ErrSolutionRejected
		return err
	}
	g.logger.Info("solution broadcast", zap.Uint64("block", blockNum))
	return nil
}

type rpcRequest struct {
	JSONRPC string            `json:"jsonrpc"`
	ID      string            `json:"id"`
	Method  string            `json:"method"`
	Params  map[string]string `json:"params"`
}

type rpcResponse struct {
	ID     string          `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *RemoteError    `json:"error"`
}

func (g *Gateway) call(ctx context.Context, method string, params map[string]string, out any) error {
	body, err := json.Marshal(rpcRequest{JSONRPC: "2.0", ID: uuid.NewString(), Method: method, Params: params})
	if err != nil {
		return fmt.Errorf("encode %s request: %w", method, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.nodeURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", method, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseLength))
	if err != nil {
		return fmt.Errorf("read %s response: %w", method, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("call %s: unexpected status %d", method, resp.StatusCode)
	}

	var decoded rpcResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}
	if decoded.Error != nil {
		return decoded.Error
	}
	if err := json.Unmarshal(decoded.Result, out); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}
	return nil
}
