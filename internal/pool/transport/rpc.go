package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/service/mining"
	"github.com/bogdanadnan/Ixian-LitePool/pkg/safe"
)

// RPC error codes returned to miners.
const (
	CodeInvalidParameter = -8
	CodeRateLimited      = -32005
	CodeInvalidRequest   = -32600
	CodeMethodNotFound   = -32601
	CodeInvalidParams    = -32602
	CodeInternal         = -32603
)

// RPCError is the error object of a response.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type rpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Method  string          `json:"method"`
	Params  params          `json:"params"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result"`
	Error   *RPCError       `json:"error"`
}

type miningBlockResult struct {
	Num uint64 `json:"num"`
	Ver uint32 `json:"ver"`
	Dif uint64 `json:"dif"`
	Chk []byte `json:"chk"`
	Adr []byte `json:"adr"`
}

// params holds request parameters from either the query string or a JSON body.
type params map[string]any

func (p params) str(key string) (string, bool) {
	v, ok := p[key]
	if !ok || v == nil {
		return "", false
	}
	switch val := v.(type) {
	case string:
		return val, true
	case json.Number:
		return val.String(), true
	case bool:
		return strconv.FormatBool(val), true
	default:
		return fmt.Sprint(val), true
	}
}

func (p params) required(key string) (string, *RPCError) {
	v, ok := p.str(key)
	if !ok {
		return "", &RPCError{Code: CodeInvalidParameter, Message: fmt.Sprintf("Parameter '%s' is missing", key)}
	}
	return v, nil
}

func (p params) uint(key string) (uint64, *RPCError) {
	if n, ok := p[key].(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			if v, err := safe.Uint64(i); err == nil {
				return v, nil
			}
		}
	}
	raw, rerr := p.required(key)
	if rerr != nil {
		return 0, rerr
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, &RPCError{Code: CodeInvalidParameter, Message: fmt.Sprintf("Parameter '%s' is not a valid number", key)}
	}
	return v, nil
}

func (p params) float(key string) float64 {
	raw, ok := p.str(key)
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// rpcErrorFor maps a mining error to its RPC code. ok is false for
// unexpected errors, which are reported as internal.
func rpcErrorFor(err error) (*RPCError, bool) {
	switch {
	case errors.Is(err, mining.ErrInvalidParameter):
		return &RPCError{Code: CodeInvalidParameter, Message: err.Error()}, true
	case errors.Is(err, mining.ErrRateLimited):
		return &RPCError{Code: CodeRateLimited, Message: "Too many invalid requests, try again later"}, true
	case errors.Is(err, mining.ErrInvalidAddress):
		return &RPCError{Code: CodeInvalidParams, Message: "Invalid wallet address specified"}, true
	case errors.Is(err, mining.ErrInvalidNonce):
		return &RPCError{Code: CodeInvalidParams, Message: "Invalid nonce was specified"}, true
	case errors.Is(err, mining.ErrInvalidBlock):
		return &RPCError{Code: CodeInvalidParams, Message: "Invalid block number specified"}, true
	case errors.Is(err, mining.ErrDuplicateShare):
		return &RPCError{Code: CodeInvalidParams, Message: "Duplicate share"}, true
	case errors.Is(err, mining.ErrShareRejected):
		return &RPCError{Code: CodeInvalidParams, Message: "Share rejected"}, true
	case errors.Is(err, mining.ErrNoCandidate):
		return &RPCError{Code: CodeInternal, Message: "Cannot retrieve mining block"}, true
	}
	return &RPCError{Code: CodeInternal, Message: "Unknown error occurred, see log for details"}, false
}
