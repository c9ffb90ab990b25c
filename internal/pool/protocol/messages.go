// Package protocol defines the messages exchanged with block-relay peers.
package protocol

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

const (
	// ProtocolID is the libp2p stream protocol used for every message.
	ProtocolID = "/ixian-litepool/msg/1.0.0"

	// MaxMessageSize bounds any single envelope read from a stream.
	MaxMessageSize = 8 * 1024 * 1024

	maxBlockTxIDs      = 20000
	maxChunkTxs        = 5000
	maxInventoryItems  = 1000
	maxChecksumLength  = 64
	maxTxDataLength    = 64 * 1024
	maxAddressLength   = 128
	powSolutionHeadLen = 8
)

// Endpoint identifies the peer a message came from or should go to.
type Endpoint string

// MessageType identifies the payload carried by an Envelope.
type MessageType uint8

const (
	MsgGetBlock           MessageType = 1
	MsgBlockHeader        MessageType = 2
	MsgTransactionChunk   MessageType = 3
	MsgInventory          MessageType = 4
	MsgHeightAnnouncement MessageType = 5
	MsgTransaction        MessageType = 6
)

var messageTypeNames = map[MessageType]string{
	MsgGetBlock:           "get_block",
	MsgBlockHeader:        "block_header",
	MsgTransactionChunk:   "transaction_chunk",
	MsgInventory:          "inventory",
	MsgHeightAnnouncement: "height_announcement",
	MsgTransaction:        "transaction",
}

func (t MessageType) String() string {
	if name, ok := messageTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// TxType mirrors the transaction kinds the pool cares about.
type TxType uint8

const (
	TxNormal TxType = iota
	TxPoWSolution
	TxStakingReward
	TxGenesis
	TxMultisig
)

// InventoryType identifies what an inventory item announces.
type InventoryType uint8

const (
	InvBlock InventoryType = iota + 1
	InvTransaction
	InvBlockSignature
)

// Envelope frames every message on the wire.
type Envelope struct {
	Type    MessageType `cbor:"1,keyasint"`
	Payload []byte      `cbor:"2,keyasint"`
}

// GetBlock asks a peer for a block header and optionally its transactions.
type GetBlock struct {
	BlockNum            uint64 `cbor:"1,keyasint"`
	IncludeTransactions uint8  `cbor:"2,keyasint"`
	FullHeader          bool   `cbor:"3,keyasint"`
}

// Block is a block header with the ids of its transactions.
type Block struct {
	BlockNum   uint64   `cbor:"1,keyasint"`
	Version    uint32   `cbor:"2,keyasint"`
	Difficulty uint64   `cbor:"3,keyasint"`
	Checksum   []byte   `cbor:"4,keyasint"`
	Timestamp  int64    `cbor:"5,keyasint"`
	TxIDs      [][]byte `cbor:"6,keyasint"`
}

// Transaction is the subset of a chain transaction the pool inspects.
type Transaction struct {
	ID          []byte `cbor:"1,keyasint"`
	Type        TxType `cbor:"2,keyasint"`
	From        []byte `cbor:"3,keyasint"`
	To          []byte `cbor:"4,keyasint"`
	Amount      string `cbor:"5,keyasint"`
	Fee         string `cbor:"6,keyasint"`
	Data        []byte `cbor:"7,keyasint"`
	BlockHeight uint64 `cbor:"8,keyasint"`
	PubKey      []byte `cbor:"9,keyasint"`
}

// TransactionChunk carries transactions of a block; BlockNum may be zero when
// the sender does not know which request they answer.
type TransactionChunk struct {
	BlockNum     uint64        `cbor:"1,keyasint"`
	Transactions []Transaction `cbor:"2,keyasint"`
}

// InventoryItem announces a single object a peer holds.
type InventoryItem struct {
	Type     InventoryType `cbor:"1,keyasint"`
	BlockNum uint64        `cbor:"2,keyasint"`
	Hash     []byte        `cbor:"3,keyasint"`
}

// Inventory is a batch of inventory announcements.
type Inventory struct {
	Items []InventoryItem `cbor:"1,keyasint"`
}

// HeightAnnouncement tells peers about a new chain tip.
type HeightAnnouncement struct {
	BlockNum uint64 `cbor:"1,keyasint"`
	Checksum []byte `cbor:"2,keyasint"`
}

var (
	ErrUnknownMessage = errors.New("unknown message type")
	ErrShortPoWData   = errors.New("pow solution data too short")
)

// IsRewardMarker reports whether a transaction id denotes a staking reward,
// which never arrives in transaction chunks.
func IsRewardMarker(txID []byte) bool {
	return len(txID) > 0 && txID[0] == 0
}

// Encode serializes a message to CBOR.
func Encode(msg interface{}) ([]byte, error) {
	return cbor.Marshal(msg)
}

// Wrap encodes msg into an Envelope of the given type.
func Wrap(t MessageType, msg interface{}) ([]byte, error) {
	payload, err := Encode(msg)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return Encode(Envelope{Type: t, Payload: payload})
}

// DecodeEnvelope decodes a CBOR-encoded Envelope.
func DecodeEnvelope(data []byte) (*Envelope, error) {
	if len(data) > MaxMessageSize {
		return nil, fmt.Errorf("message too large: %d bytes", len(data))
	}
	var env Envelope
	if err := cbor.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	if env.Type < MsgGetBlock || env.Type > MsgTransaction {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMessage, env.Type)
	}
	return &env, nil
}

// DecodeGetBlock decodes a CBOR-encoded GetBlock.
func DecodeGetBlock(data []byte) (*GetBlock, error) {
	var msg GetBlock
	if err := cbor.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	if msg.IncludeTransactions > 1 {
		return nil, fmt.Errorf("include transactions out of range: %d", msg.IncludeTransactions)
	}
	return &msg, nil
}

// DecodeBlock decodes a CBOR-encoded Block.
func DecodeBlock(data []byte) (*Block, error) {
	var msg Block
	if err := cbor.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	if len(msg.Checksum) == 0 || len(msg.Checksum) > maxChecksumLength {
		return nil, fmt.Errorf("block checksum length out of range: %d", len(msg.Checksum))
	}
	if len(msg.TxIDs) > maxBlockTxIDs {
		return nil, fmt.Errorf("block transaction count too large: %d", len(msg.TxIDs))
	}
	return &msg, nil
}

// DecodeTransactionChunk decodes a CBOR-encoded TransactionChunk.
func DecodeTransactionChunk(data []byte) (*TransactionChunk, error) {
	var msg TransactionChunk
	if err := cbor.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	if len(msg.Transactions) > maxChunkTxs {
		return nil, fmt.Errorf("transaction chunk too large: %d", len(msg.Transactions))
	}
	for _, tx := range msg.Transactions {
		if len(tx.ID) == 0 {
			return nil, errors.New("transaction without id")
		}
		if len(tx.Data) > maxTxDataLength {
			return nil, fmt.Errorf("transaction data too large: %d bytes", len(tx.Data))
		}
		if len(tx.From) > maxAddressLength {
			return nil, fmt.Errorf("transaction sender too long: %d bytes", len(tx.From))
		}
	}
	return &msg, nil
}

// DecodeInventory decodes a CBOR-encoded Inventory.
func DecodeInventory(data []byte) (*Inventory, error) {
	var msg Inventory
	if err := cbor.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	if len(msg.Items) > maxInventoryItems {
		return nil, fmt.Errorf("inventory too large: %d", len(msg.Items))
	}
	return &msg, nil
}

// DecodeHeightAnnouncement decodes a CBOR-encoded HeightAnnouncement.
func DecodeHeightAnnouncement(data []byte) (*HeightAnnouncement, error) {
	var msg HeightAnnouncement
	if err := cbor.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// DecodeTransaction decodes a single CBOR-encoded Transaction.
func DecodeTransaction(data []byte) (*Transaction, error) {
	var msg Transaction
	if err := cbor.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// EncodePoWSolution builds the data field of a proof-of-work solution transaction:
// the little-endian target block number followed by the nonce text.
func EncodePoWSolution(blockNum uint64, nonce string) []byte {
	data := make([]byte, powSolutionHeadLen, powSolutionHeadLen+len(nonce))
	binary.LittleEndian.PutUint64(data, blockNum)
	return append(data, nonce...)
}

// DecodePoWSolution extracts the target block number from a solution's data field.
func DecodePoWSolution(data []byte) (uint64, error) {
	if len(data) < powSolutionHeadLen {
		return 0, fmt.Errorf("%w: %d bytes", ErrShortPoWData, len(data))
	}
	return binary.LittleEndian.Uint64(data[:powSolutionHeadLen]), nil
}
