package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/service/mining"
	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/service/status"
	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/wallet"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	methodGetMiningBlock = "getminingblock"
	methodSubmitSolution = "submitminingsolution"
	methodVerifySolution = "verifyminingsolution"
	methodGetBalance     = "getbalance"
	methodStatus         = "status"
)

func (s *Server) handleGet(c *gin.Context) {
	p := make(params)
	for key, values := range c.Request.URL.Query() {
		if key != "" && len(values) > 0 {
			p[key] = values[0]
		}
	}
	s.call(c, nil, c.Param("method"), p)
}

func (s *Server) handlePost(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxRequestBody))
	if err != nil {
		s.respond(c, nil, "", nil, &RPCError{Code: CodeInvalidRequest, Message: "Unreadable request body"}, time.Now())
		return
	}
	if len(bytes.TrimSpace(body)) == 0 {
		// an empty body behaves like a GET with query parameters
		s.handleGet(c)
		return
	}

	var req rpcRequest
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		s.respond(c, nil, "", nil, &RPCError{Code: CodeInvalidRequest, Message: "Malformed JSON-RPC request"}, time.Now())
		return
	}
	method := req.Method
	if method == "" {
		method = c.Param("method")
	}
	if req.Params == nil {
		req.Params = make(params)
	}
	s.call(c, req.ID, method, req.Params)
}

func (s *Server) call(c *gin.Context, id json.RawMessage, method string, p params) {
	started := time.Now()
	method = strings.ToLower(strings.TrimSpace(method))
	if method == "" {
		s.respond(c, id, method, nil, &RPCError{Code: CodeInvalidRequest, Message: "Unknown action."}, started)
		return
	}

	ctx := c.Request.Context()
	var (
		result any
		rerr   *RPCError
	)
	switch method {
	case methodGetMiningBlock:
		result, rerr = s.getMiningBlock(ctx, p)
	case methodSubmitSolution:
		result, rerr = s.submitSolution(ctx, p)
	case methodVerifySolution:
		result, rerr = s.verifySolution(ctx, p)
	case methodGetBalance:
		result, rerr = s.getBalance(ctx, p)
	case methodStatus:
		result, rerr = s.statusSnapshot(ctx)
	default:
		rerr = &RPCError{Code: CodeMethodNotFound, Message: "Method not found"}
	}
	s.respond(c, id, method, result, rerr, started)
}

func (s *Server) respond(c *gin.Context, id json.RawMessage, method string, result any, rerr *RPCError, started time.Time) {
	code := 0
	if rerr != nil {
		code = rerr.Code
		result = nil
	}
	s.metrics.Observe(method, code, started)
	if id == nil {
		id = json.RawMessage("null")
	}
	c.JSON(http.StatusOK, rpcResponse{JSONRPC: jsonRPCVersion, ID: id, Result: result, Error: rerr})
}

// fail maps err to an RPC error, logging the ones that are not the miner's fault.
func (s *Server) fail(method string, err error) *RPCError {
	rerr, known := rpcErrorFor(err)
	if !known {
		s.logger.Error("request failed", zap.String("method", method), zap.Error(err))
	}
	return rerr
}

func lockedError() *RPCError {
	return &RPCError{Code: CodeInvalidRequest, Message: "The pool is not accepting new miners"}
}

func (s *Server) getMiningBlock(ctx context.Context, p params) (any, *RPCError) {
	walletAddr, _ := p.str("wallet")
	if !s.admit(walletAddr) {
		return nil, lockedError()
	}
	minerID, _ := p.str("id")
	worker, _ := p.str("worker")
	app, _ := p.str("app")

	req := mining.MiningBlockRequest{
		MinerID:    minerID,
		Worker:     worker,
		Wallet:     walletAddr,
		Hashrate:   p.float("hashrate"),
		AppVersion: app,
	}

	key := minerID + "|" + worker + "|" + walletAddr
	block, hit := s.cache.Get(key)
	s.metrics.ObserveCache(hit)
	if hit {
		s.mining.RecordActivity(ctx, req)
	} else {
		var err error
		block, err = s.mining.GetMiningBlock(ctx, req)
		if err != nil {
			return nil, s.fail(methodGetMiningBlock, err)
		}
		s.cache.Add(key, block)
	}

	return miningBlockResult{
		Num: block.BlockNum,
		Ver: block.Version,
		Dif: block.Difficulty,
		Chk: block.Checksum,
		Adr: block.SolverAddress,
	}, nil
}

func (s *Server) submitSolution(ctx context.Context, p params) (any, *RPCError) {
	nonce, rerr := p.required("nonce")
	if rerr != nil {
		return nil, rerr
	}
	blockNum, rerr := p.uint("blocknum")
	if rerr != nil {
		return nil, rerr
	}
	walletAddr, _ := p.str("wallet")
	if !s.admit(walletAddr) {
		return nil, lockedError()
	}
	minerID, _ := p.str("id")
	worker, _ := p.str("worker")

	ok, err := s.mining.SubmitShare(ctx, mining.ShareRequest{
		MinerID:  minerID,
		Worker:   worker,
		Wallet:   walletAddr,
		Nonce:    nonce,
		BlockNum: blockNum,
	})
	if err != nil {
		return nil, s.fail(methodSubmitSolution, err)
	}
	return ok, nil
}

func (s *Server) verifySolution(ctx context.Context, p params) (any, *RPCError) {
	nonce, rerr := p.required("nonce")
	if rerr != nil {
		return nil, rerr
	}
	blockNum, rerr := p.uint("blocknum")
	if rerr != nil {
		return nil, rerr
	}
	difficulty, rerr := p.uint("diff")
	if rerr != nil {
		return nil, rerr
	}

	ok, err := s.mining.VerifySolution(ctx, nonce, blockNum, difficulty)
	if err != nil {
		return nil, s.fail(methodVerifySolution, err)
	}
	return ok, nil
}

func (s *Server) getBalance(ctx context.Context, p params) (any, *RPCError) {
	address := s.wallet.PrimaryAddress()
	if raw, ok := p.str("address"); ok && raw != "" {
		decoded, err := wallet.DecodeAddress(raw)
		if err != nil {
			return nil, &RPCError{Code: CodeInvalidParameter, Message: "Parameter 'address' is not a valid address"}
		}
		address = decoded
	}

	balance, err := s.wallet.Balance(ctx, address)
	if err != nil {
		s.logger.Warn("balance not available", zap.Error(err))
		return nil, &RPCError{Code: CodeInternal, Message: "Balance is not available"}
	}
	return balance.String(), nil
}

type statusResult struct {
	status.Snapshot
	APILocked bool `json:"apiLocked"`
}

func (s *Server) statusSnapshot(ctx context.Context) (any, *RPCError) {
	return statusResult{Snapshot: s.status.Snapshot(ctx), APILocked: s.locked.Load()}, nil
}
