package bolt

import (
	"fmt"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/model"
	"github.com/fxamacker/cbor/v2"
	"github.com/shopspring/decimal"
)

type blockRecord struct {
	Version    uint32 `cbor:"1,keyasint"`
	Difficulty uint64 `cbor:"2,keyasint"`
	Checksum   []byte `cbor:"3,keyasint"`
	Timestamp  int64  `cbor:"4,keyasint"`
}

type solverRecord struct {
	MinedIn uint64 `cbor:"1,keyasint"`
	Address []byte `cbor:"2,keyasint"`
	TxID    string `cbor:"3,keyasint"`
	Reward  string `cbor:"4,keyasint"`
}

type poolBlockRecord struct {
	MiningStart    int64  `cbor:"1,keyasint"`
	MiningEnd      int64  `cbor:"2,keyasint"`
	Resolution     uint8  `cbor:"3,keyasint"`
	PoolDifficulty uint64 `cbor:"4,keyasint"`
}

type minerRecord struct {
	Address  string `cbor:"1,keyasint"`
	LastSeen int64  `cbor:"2,keyasint"`
}

type workerRecord struct {
	MinerID   uint64  `cbor:"1,keyasint"`
	Name      string  `cbor:"2,keyasint"`
	MiningApp string  `cbor:"3,keyasint"`
	Hashrate  float64 `cbor:"4,keyasint"`
	LastSeen  int64   `cbor:"5,keyasint"`
}

type shareRecord struct {
	MinerID       uint64 `cbor:"1,keyasint"`
	WorkerID      uint64 `cbor:"2,keyasint"`
	Timestamp     int64  `cbor:"3,keyasint"`
	BlockNum      uint64 `cbor:"4,keyasint"`
	Difficulty    uint64 `cbor:"5,keyasint"`
	Nonce         string `cbor:"6,keyasint"`
	BlockResolved bool   `cbor:"7,keyasint"`
	Processed     bool   `cbor:"8,keyasint"`
}

type notificationRecord struct {
	Type   uint8  `cbor:"1,keyasint"`
	Text   string `cbor:"2,keyasint"`
	Active bool   `cbor:"3,keyasint"`
}

type paymentRecord struct {
	MinerID   uint64 `cbor:"1,keyasint"`
	Value     string `cbor:"2,keyasint"`
	Fee       string `cbor:"3,keyasint"`
	Timestamp int64  `cbor:"4,keyasint"`
	Verified  bool   `cbor:"5,keyasint"`
}

func encode(v interface{}) ([]byte, error) {
	data, err := cbor.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %T: %w", v, err)
	}
	return data, nil
}

func decode(data []byte, v interface{}) error {
	if err := cbor.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %T: %w", v, err)
	}
	return nil
}

func toSolverRecords(solvers []model.BlockSolver) []solverRecord {
	out := make([]solverRecord, 0, len(solvers))
	for _, s := range solvers {
		out = append(out, solverRecord{
			MinedIn: s.MinedIn,
			Address: s.SolverAddress,
			TxID:    s.TxID,
			Reward:  s.Reward.String(),
		})
	}
	return out
}

func fromSolverRecords(target uint64, recs []solverRecord) ([]model.BlockSolver, error) {
	out := make([]model.BlockSolver, 0, len(recs))
	for _, r := range recs {
		reward, err := decimal.NewFromString(r.Reward)
		if err != nil {
			return nil, fmt.Errorf("parse reward of %s: %w", r.TxID, err)
		}
		out = append(out, model.BlockSolver{
			BlockNum:      target,
			MinedIn:       r.MinedIn,
			SolverAddress: r.Address,
			TxID:          r.TxID,
			Reward:        reward,
		})
	}
	return out, nil
}
